// Package catalog holds per-product metadata: the title and category of each
// identifier.
//
// Entries are keyed by identifier and overwritten unconditionally: when two
// records share an identifier the later one wins. Titles and categories are
// stored as parsed, empty strings included.
package catalog

import (
	"maps"
	"slices"

	"github.com/matzehuels/copurchase/pkg/record"
)

// Entry is the metadata kept for one product.
type Entry struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Catalog maps identifier to metadata.
type Catalog map[string]Entry

// New returns an empty catalog.
func New() Catalog {
	return make(Catalog)
}

// Build folds records into a new catalog in input order.
func Build(records []record.Record) Catalog {
	c := New()
	for _, r := range records {
		c.Put(r)
	}
	return c
}

// Put stores the record's title and category, replacing any previous entry.
func (c Catalog) Put(r record.Record) {
	c[r.ID] = Entry{Title: r.Title, Category: r.Category}
}

// Lookup returns the entry for id.
func (c Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c[id]
	return e, ok
}

// Category returns the category of id and whether id has an entry.
func (c Catalog) Category(id string) (string, bool) {
	e, ok := c[id]
	return e.Category, ok
}

// Categories returns the distinct categories, sorted.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, e := range c {
		seen[e.Category] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// IDs returns all identifiers, sorted.
func (c Catalog) IDs() []string {
	return slices.Sorted(maps.Keys(c))
}

// Clone returns a copy.
func (c Catalog) Clone() Catalog {
	return maps.Clone(c)
}
