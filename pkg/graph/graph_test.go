package graph

import (
	"slices"
	"testing"

	"github.com/matzehuels/copurchase/pkg/record"
)

func TestAddSimilarFreshEntry(t *testing.T) {
	g := New()
	g.AddSimilar("A", []string{"B", "C"})

	tests := []struct {
		id   string
		want []string
	}{
		{"A", []string{"B", "C", "B", "C"}},
		{"B", []string{"A"}},
		{"C", []string{"A"}},
	}
	for _, tt := range tests {
		if got := g[tt.id]; !slices.Equal(got, tt.want) {
			t.Errorf("g[%s] = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestAddSimilarExistingEntry(t *testing.T) {
	g := New()
	g.AddSimilar("A", []string{"B"})
	g.AddSimilar("B", []string{"C"})

	// B already had [A] from the first record; C is appended, not assigned.
	if got, want := g["B"], []string{"A", "C"}; !slices.Equal(got, want) {
		t.Errorf("g[B] = %v, want %v", got, want)
	}
	if got, want := g["A"], []string{"B", "B"}; !slices.Equal(got, want) {
		t.Errorf("g[A] = %v, want %v", got, want)
	}
	if got, want := g["C"], []string{"B"}; !slices.Equal(got, want) {
		t.Errorf("g[C] = %v, want %v", got, want)
	}
}

func TestAddSimilarEmptyRelated(t *testing.T) {
	g := New()
	g.AddSimilar("A", nil)

	if !g.Has("A") {
		t.Fatal("A should have an entry")
	}
	if g.Degree("A") != 0 {
		t.Errorf("Degree(A) = %d, want 0", g.Degree("A"))
	}
	if g["A"] == nil {
		t.Error("g[A] should be an empty, non-nil list")
	}

	// Adding again with no related identifiers changes nothing.
	g.AddSimilar("A", nil)
	if g.Degree("A") != 0 {
		t.Errorf("Degree(A) after repeat = %d, want 0", g.Degree("A"))
	}
}

func TestAddSimilarDoesNotAliasInput(t *testing.T) {
	related := make([]string, 2, 10)
	related[0], related[1] = "B", "C"

	g := New()
	g.AddSimilar("A", related)
	g["A"][0] = "Z"

	if related[0] != "B" {
		t.Errorf("input slice modified: %v", related)
	}
}

func TestBuildIsSymmetric(t *testing.T) {
	records := []record.Record{
		{ID: "A", Related: []string{"B", "C"}},
		{ID: "B", Related: []string{"A", "D"}},
		{ID: "C", Related: []string{"E"}},
		{ID: "D"},
		{ID: "A", Related: []string{"E", "E"}},
	}
	g := Build(records)

	if !g.IsSymmetric() {
		t.Fatalf("graph is not symmetric: %v", g)
	}
	for id, ns := range g {
		for _, n := range ns {
			if !slices.Contains(g[n], id) {
				t.Errorf("%s lists %s but %s does not list %s", id, n, n, id)
			}
		}
	}
}

func TestIsSymmetricDetectsOneWayEdge(t *testing.T) {
	g := Graph{"A": {"B"}, "B": {}}
	if g.IsSymmetric() {
		t.Error("IsSymmetric() = true, want false")
	}
}

func TestCounts(t *testing.T) {
	g := Build([]record.Record{{ID: "A", Related: []string{"B", "C"}}})

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if g.EntryCount() != 6 {
		t.Errorf("EntryCount() = %d, want 6", g.EntryCount())
	}
	if got := g.IDs(); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("IDs() = %v", got)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := Build([]record.Record{{ID: "A", Related: []string{"B"}}, {ID: "C"}})
	c := g.Clone()

	if !Equal(g, c) {
		t.Fatal("clone should equal original")
	}
	c["A"][0] = "X"
	if g["A"][0] != "B" {
		t.Error("modifying clone changed original")
	}
	if Equal(g, c) {
		t.Error("Equal() = true after modifying clone")
	}
	if Equal(Graph{"A": {"B", "C"}}, Graph{"A": {"C", "B"}}) {
		t.Error("Equal() should be order sensitive")
	}
}
