package stats

import (
	"math"
	"testing"

	"github.com/matzehuels/copurchase/pkg/catalog"
	"github.com/matzehuels/copurchase/pkg/dataset"
	"github.com/matzehuels/copurchase/pkg/graph"
	errs "github.com/matzehuels/copurchase/pkg/errors"
)

const epsilon = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

func assertRatios(t *testing.T, name string, got, want map[string]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
		return
	}
	for k, w := range want {
		g, ok := got[k]
		if !ok || !approx(g, w) {
			t.Errorf("%s[%q] = %v, want %v", name, k, g, w)
		}
	}
}

// fiveNodes is the symmetric fixture A↔{B,C}, B↔{A,C,D}, C↔{A,B,D},
// D↔{B,C,E}, E↔{D}.
func fiveNodes() (graph.Graph, catalog.Catalog) {
	g := graph.Graph{
		"A": {"B", "C"},
		"B": {"A", "C", "D"},
		"C": {"A", "B", "D"},
		"D": {"B", "C", "E"},
		"E": {"D"},
	}
	c := catalog.Catalog{
		"A": {Title: "a", Category: "1"},
		"B": {Title: "b", Category: "2"},
		"C": {Title: "c", Category: "1"},
		"D": {Title: "d", Category: "3"},
		"E": {Title: "e", Category: "3"},
	}
	return g, c
}

func TestCategoryCounts(t *testing.T) {
	c := catalog.Catalog{
		"A": {Category: "cat1"},
		"B": {Category: "cat2"},
		"C": {Category: "cat1"},
	}
	got := CategoryCounts(c)
	want := map[string]int{"cat1": 2, "cat2": 1}
	if len(got) != len(want) {
		t.Fatalf("CategoryCounts = %v, want %v", got, want)
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("CategoryCounts[%q] = %d, want %d", k, got[k], w)
		}
	}
}

func TestCategoryCountsEmpty(t *testing.T) {
	if got := CategoryCounts(catalog.New()); len(got) != 0 {
		t.Errorf("CategoryCounts(empty) = %v, want empty", got)
	}
}

func TestAverageDegree(t *testing.T) {
	g, c := fiveNodes()
	assertRatios(t, "AverageDegree", AverageDegree(g, c),
		map[string]float64{"1": 2.5, "2": 3, "3": 2})
}

func TestAverageDegreeWithNeighbors(t *testing.T) {
	g, c := fiveNodes()
	g["F"] = []string{}
	c["F"] = catalog.Entry{Title: "f", Category: "3"}

	assertRatios(t, "AverageDegree", AverageDegree(g, c),
		map[string]float64{"1": 2.5, "2": 3, "3": 4.0 / 3})
	assertRatios(t, "AverageDegreeWithNeighbors", AverageDegreeWithNeighbors(g, c),
		map[string]float64{"1": 2.5, "2": 3, "3": 2})
}

func TestAverageDegreeSkipsUncategorized(t *testing.T) {
	g, c := fiveNodes()
	delete(c, "B")
	assertRatios(t, "AverageDegree", AverageDegree(g, c),
		map[string]float64{"1": 2.5, "3": 2})
}

func TestPurchasingLikelihood(t *testing.T) {
	g, c := fiveNodes()
	assertRatios(t, "PurchasingLikelihood", PurchasingLikelihood(g, c),
		map[string]float64{"1": 0.4, "2": 0, "3": 0.5})
}

func TestPurchasingLikelihoodSeedsCatalogCategories(t *testing.T) {
	g, c := fiveNodes()
	c["Z"] = catalog.Entry{Title: "z", Category: "lonely"}

	got := PurchasingLikelihood(g, c)
	v, ok := got["lonely"]
	if !ok {
		t.Fatalf("PurchasingLikelihood missing seeded category: %v", got)
	}
	if v != 0 || math.IsNaN(v) {
		t.Errorf("PurchasingLikelihood[lonely] = %v, want 0", v)
	}
}

func TestSelfRecommendationLikelihood(t *testing.T) {
	g, c := fiveNodes()
	assertRatios(t, "SelfRecommendationLikelihood", SelfRecommendationLikelihood(g, c),
		map[string]float64{"1": 1, "2": 0, "3": 1})
}

func TestLikelihoodsDisagree(t *testing.T) {
	g, c := fiveNodes()
	p := PurchasingLikelihood(g, c)
	s := SelfRecommendationLikelihood(g, c)
	if approx(p["1"], s["1"]) {
		t.Errorf("purchasing and self-recommendation agree on category 1: %v", p["1"])
	}
}

func TestSelfRecommendationCountsNodeOnce(t *testing.T) {
	g := graph.Graph{"A": {"B", "B", "C"}, "B": {"A", "A"}, "C": {"A"}}
	c := catalog.Catalog{
		"A": {Category: "x"},
		"B": {Category: "x"},
		"C": {Category: "y"},
	}
	assertRatios(t, "SelfRecommendationLikelihood", SelfRecommendationLikelihood(g, c),
		map[string]float64{"x": 1, "y": 0})
}

func TestCrossCategoryAverages(t *testing.T) {
	g, c := fiveNodes()
	got := CrossCategoryAverages(g, c)
	want := map[string]map[string]float64{
		"1": {"1": 1, "2": 1, "3": 0.5},
		"2": {"1": 2, "3": 1},
		"3": {"1": 0.5, "2": 0.5, "3": 1},
	}
	if len(got) != len(want) {
		t.Fatalf("CrossCategoryAverages = %v, want %v", got, want)
	}
	for src, row := range want {
		assertRatios(t, "CrossCategoryAverages["+src+"]", got[src], row)
	}
}

func TestCrossCategoryAveragesEmptyRow(t *testing.T) {
	g := graph.Graph{"A": {"X"}}
	c := catalog.Catalog{"A": {Category: "1"}}
	got := CrossCategoryAverages(g, c)
	row, ok := got["1"]
	if !ok || len(row) != 0 {
		t.Errorf("CrossCategoryAverages = %v, want {1: {}}", got)
	}
}

func TestStatisticsDoNotMutateInputs(t *testing.T) {
	g, c := fiveNodes()
	gc, cc := g.Clone(), c.Clone()
	in := Inputs{Raw: dataset.Pair{Graph: g, Catalog: c}}
	in.Reconciled = dataset.Reconcile(in.Raw)
	ComputeAll(in, Statistics)

	if !graph.Equal(g, gc) {
		t.Error("graph was modified")
	}
	if !dataset.Equal(dataset.Pair{Graph: g, Catalog: c}, dataset.Pair{Graph: gc, Catalog: cc}) {
		t.Error("catalog was modified")
	}
}

func TestRegistryInputs(t *testing.T) {
	tests := []struct {
		name string
		want Input
	}{
		{NameCategoryCounts, Raw},
		{NameAverageDegree, Reconciled},
		{NameAverageDegreeWithNeighbors, Reconciled},
		{NamePurchasingLikelihood, Raw},
		{NameSelfRecommendation, Raw},
		{NameCrossCategory, Raw},
	}
	for _, tt := range tests {
		st, ok := Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)
			continue
		}
		if st.Input != tt.want {
			t.Errorf("%s.Input = %v, want %v", tt.name, st.Input, tt.want)
		}
	}
}

func TestComputeAllUsesDeclaredInput(t *testing.T) {
	g, c := fiveNodes()
	// X has a graph entry but no metadata; it only survives in the raw pair.
	g["X"] = []string{"A"}
	c["Y"] = catalog.Entry{Title: "y", Category: "4"}
	raw := dataset.Pair{Graph: g, Catalog: c}
	in := Inputs{Raw: raw, Reconciled: dataset.Reconcile(raw)}

	s := ComputeAll(in, Statistics)
	if s.CategoryCounts["4"] != 1 {
		t.Errorf("CategoryCounts[4] = %d, want 1 (raw catalog)", s.CategoryCounts["4"])
	}
	if _, ok := s.AverageDegree["4"]; ok {
		t.Errorf("AverageDegree has category 4, want reconciled input only")
	}
	if _, ok := s.PurchasingLikelihood["4"]; !ok {
		t.Errorf("PurchasingLikelihood missing category 4 seeded from raw catalog")
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	if err != nil {
		t.Fatalf("Select(nil) error: %v", err)
	}
	if len(all) != len(Statistics) {
		t.Errorf("Select(nil) = %d statistics, want %d", len(all), len(Statistics))
	}

	got, err := Select([]string{NameCrossCategory, NameCategoryCounts, NameCrossCategory})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 2 || got[0].Name != NameCategoryCounts || got[1].Name != NameCrossCategory {
		t.Errorf("Select returned %d statistics, want [category_counts cross_category]", len(got))
	}

	_, err = Select([]string{"median"})
	if !errs.Is(err, errs.ErrCodeInvalidStatistic) {
		t.Errorf("Select(unknown) error = %v, want %s", err, errs.ErrCodeInvalidStatistic)
	}
}

func TestSummaryRatios(t *testing.T) {
	s := &Summary{AverageDegree: map[string]float64{"1": 2}}
	if m, ok := s.Ratios(NameAverageDegree); !ok || m["1"] != 2 {
		t.Errorf("Ratios(average_degree) = %v, %v", m, ok)
	}
	if _, ok := s.Ratios(NamePurchasingLikelihood); ok {
		t.Error("Ratios(purchasing_likelihood) ok on unset field")
	}
	if _, ok := s.Ratios(NameCrossCategory); ok {
		t.Error("Ratios(cross_category) ok, want false for matrix statistic")
	}
}

func TestInputString(t *testing.T) {
	if Raw.String() != "raw" || Reconciled.String() != "reconciled" {
		t.Errorf("Input.String() = %q, %q", Raw.String(), Reconciled.String())
	}
}
