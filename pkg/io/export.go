package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/copurchase/pkg/dataset"
)

type document struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Category  string `json:"category,omitempty"`
	InGraph   bool   `json:"in_graph,omitempty"`
	InCatalog bool   `json:"in_catalog,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func buildDocument(p dataset.Pair) document {
	ids := p.Graph.IDs()
	for id := range p.Catalog {
		if !p.Graph.Has(id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	doc := document{
		Nodes: make([]node, 0, len(ids)),
		Edges: make([]edge, 0, p.Graph.EntryCount()),
	}
	for _, id := range ids {
		n := node{ID: id, InGraph: p.Graph.Has(id)}
		if e, ok := p.Catalog.Lookup(id); ok {
			n.Title, n.Category, n.InCatalog = e.Title, e.Category, true
		}
		doc.Nodes = append(doc.Nodes, n)
		for _, to := range p.Graph.Neighbors(id) {
			doc.Edges = append(doc.Edges, edge{From: id, To: to})
		}
	}
	return doc
}

// WriteJSON encodes a dataset as node-link JSON and writes it to w.
// The output can be re-imported with [ReadJSON] and yields an equal pair.
func WriteJSON(p dataset.Pair, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildDocument(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p dataset.Pair, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}
