package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/copurchase/pkg/record"
)

// Graph is a symmetric adjacency mapping from identifier to neighbor list.
// Neighbor lists may contain duplicates and may reference identifiers that
// have no entry of their own after reconciliation.
type Graph map[string][]string

// New returns an empty graph.
func New() Graph {
	return make(Graph)
}

// Build folds records into a new graph in input order.
func Build(records []record.Record) Graph {
	g := New()
	for _, r := range records {
		g.AddSimilar(r.ID, r.Related)
	}
	return g
}

// AddSimilar records id as co-purchased with each identifier in related,
// in both directions. See the package documentation for the exact effect.
func (g Graph) AddSimilar(id string, related []string) {
	for _, r := range related {
		g[r] = append(g[r], id)
	}
	if _, ok := g[id]; !ok {
		g[id] = slices.Clone(related)
		if g[id] == nil {
			g[id] = []string{}
		}
	}
	g[id] = append(g[id], related...)
}

// Has reports whether id has an entry.
func (g Graph) Has(id string) bool {
	_, ok := g[id]
	return ok
}

// Neighbors returns the neighbor list of id. The slice is shared with the
// graph and must not be modified.
func (g Graph) Neighbors(id string) []string {
	return g[id]
}

// Degree returns the length of id's neighbor list, duplicates included.
func (g Graph) Degree(id string) int {
	return len(g[id])
}

// NodeCount returns the number of entries.
func (g Graph) NodeCount() int {
	return len(g)
}

// EntryCount returns the total length of all neighbor lists.
func (g Graph) EntryCount() int {
	n := 0
	for _, ns := range g {
		n += len(ns)
	}
	return n
}

// IDs returns all identifiers with an entry, sorted.
func (g Graph) IDs() []string {
	return slices.Sorted(maps.Keys(g))
}

// Clone returns a deep copy.
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for id, ns := range g {
		out[id] = slices.Clone(ns)
		if out[id] == nil {
			out[id] = []string{}
		}
	}
	return out
}

// Equal reports whether both graphs have the same entries with identical
// neighbor lists, order included.
func Equal(a, b Graph) bool {
	return maps.EqualFunc(a, b, func(x, y []string) bool { return slices.Equal(x, y) })
}

// IsSymmetric reports whether every neighbor reference has a matching
// reference back. Graphs produced by [Graph.AddSimilar] are always
// symmetric; imported or reconciled graphs may not be.
func (g Graph) IsSymmetric() bool {
	for id, ns := range g {
		for _, n := range ns {
			if !slices.Contains(g[n], id) {
				return false
			}
		}
	}
	return true
}
