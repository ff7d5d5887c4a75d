// Package dataset pairs a co-purchase graph with its metadata catalog.
//
// A [Pair] built directly from records is the raw pair. [Reconcile] restricts
// a pair to the identifiers present in both halves; statistics that look up
// metadata for every graph node consume the reconciled pair, the others the
// raw one (see pkg/stats).
package dataset

import (
	"github.com/matzehuels/copurchase/pkg/catalog"
	"github.com/matzehuels/copurchase/pkg/graph"
	"github.com/matzehuels/copurchase/pkg/record"
)

// Pair is a graph together with the metadata for its products.
type Pair struct {
	Graph   graph.Graph
	Catalog catalog.Catalog
}

// New returns an empty pair.
func New() Pair {
	return Pair{Graph: graph.New(), Catalog: catalog.New()}
}

// Add folds one record into both halves of the pair.
func (p Pair) Add(r record.Record) {
	p.Graph.AddSimilar(r.ID, r.Related)
	p.Catalog.Put(r)
}

// Build folds records into a new raw pair in input order.
func Build(records []record.Record) Pair {
	p := New()
	for _, r := range records {
		p.Add(r)
	}
	return p
}

// Reconcile returns a new pair holding only identifiers present in both the
// graph and the catalog. Neighbor lists are copied unchanged; they may still
// reference identifiers outside the reconciled set. The input is not modified.
func Reconcile(p Pair) Pair {
	out := Pair{
		Graph:   make(graph.Graph),
		Catalog: make(catalog.Catalog),
	}
	for id, ns := range p.Graph {
		e, ok := p.Catalog[id]
		if !ok {
			continue
		}
		cp := make([]string, len(ns))
		copy(cp, ns)
		out.Graph[id] = cp
		out.Catalog[id] = e
	}
	return out
}

// Equal reports whether two pairs hold identical graphs and catalogs.
func Equal(a, b Pair) bool {
	if !graph.Equal(a.Graph, b.Graph) || len(a.Catalog) != len(b.Catalog) {
		return false
	}
	for id, e := range a.Catalog {
		if o, ok := b.Catalog[id]; !ok || o != e {
			return false
		}
	}
	return true
}

// Size describes the shape of a pair for logging and reports.
type Size struct {
	Nodes          int `json:"nodes"`
	Adjacencies    int `json:"adjacencies"`
	CatalogEntries int `json:"catalog_entries"`
	Categories     int `json:"categories"`
}

// Size returns the pair's dimensions.
func (p Pair) Size() Size {
	return Size{
		Nodes:          p.Graph.NodeCount(),
		Adjacencies:    p.Graph.EntryCount(),
		CatalogEntries: len(p.Catalog),
		Categories:     len(p.Catalog.Categories()),
	}
}
