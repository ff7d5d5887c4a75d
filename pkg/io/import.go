package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/copurchase/pkg/catalog"
	"github.com/matzehuels/copurchase/pkg/dataset"
	errs "github.com/matzehuels/copurchase/pkg/errors"
)

// ReadJSON decodes a node-link document from r into a dataset.
//
// ReadJSON returns an INVALID_FORMAT error if the JSON is malformed, a node
// id is repeated, or an edge starts at a node that is not marked in_graph.
// The empty id is a valid key, as the parser emits it for a blank ASIN line.
// Edge targets are not checked: neighbor lists may name products that have
// no entry of their own.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (dataset.Pair, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return dataset.Pair{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode dataset")
	}

	p := dataset.New()
	seen := make(map[string]struct{}, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, dup := seen[n.ID]; dup {
			return dataset.Pair{}, errs.New(errs.ErrCodeInvalidFormat, "node %q: duplicate id", n.ID)
		}
		seen[n.ID] = struct{}{}
		if n.InGraph {
			p.Graph[n.ID] = []string{}
		}
		if n.InCatalog {
			p.Catalog[n.ID] = catalog.Entry{Title: n.Title, Category: n.Category}
		}
	}
	for _, e := range doc.Edges {
		ns, ok := p.Graph[e.From]
		if !ok {
			return dataset.Pair{}, errs.New(errs.ErrCodeInvalidFormat, "edge %s->%s: unknown source", e.From, e.To)
		}
		p.Graph[e.From] = append(ns, e.To)
	}
	return p, nil
}

// ImportJSON reads a JSON file at path and returns the decoded dataset.
func ImportJSON(path string) (dataset.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset.Pair{}, errs.Wrap(errs.ErrCodeSourceUnavailable, err, "open %s", path)
	}
	defer f.Close()
	p, err := ReadJSON(f)
	if err != nil {
		return dataset.Pair{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
