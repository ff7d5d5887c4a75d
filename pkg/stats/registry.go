package stats

import (
	"slices"
	"strings"

	"github.com/matzehuels/copurchase/pkg/dataset"
	errs "github.com/matzehuels/copurchase/pkg/errors"
)

// Input selects which pair a statistic reads.
type Input int

const (
	// Raw is the pair built directly from the records.
	Raw Input = iota
	// Reconciled is the pair restricted to identifiers with both an
	// adjacency entry and metadata.
	Reconciled
)

// String returns "raw" or "reconciled".
func (i Input) String() string {
	if i == Reconciled {
		return "reconciled"
	}
	return "raw"
}

// Statistic names, as accepted by --stat and the config file.
const (
	NameCategoryCounts             = "category_counts"
	NameAverageDegree              = "average_degree"
	NameAverageDegreeWithNeighbors = "average_degree_with_neighbors"
	NamePurchasingLikelihood       = "purchasing_likelihood"
	NameSelfRecommendation         = "self_recommendation"
	NameCrossCategory              = "cross_category"
)

// Inputs carries both pairs so each statistic can pick the one it declares.
type Inputs struct {
	Raw        dataset.Pair
	Reconciled dataset.Pair
}

// Pair returns the pair selected by i.
func (in Inputs) Pair(i Input) dataset.Pair {
	if i == Reconciled {
		return in.Reconciled
	}
	return in.Raw
}

// Statistic describes one entry of the registry.
type Statistic struct {
	Name  string
	Title string
	Input Input

	// compute writes the statistic into its own field of the summary.
	compute func(p dataset.Pair, s *Summary)
}

// Compute evaluates the statistic on its declared input and stores the
// result in s. Distinct statistics write distinct fields, so they may run
// concurrently against the same summary.
func (st Statistic) Compute(in Inputs, s *Summary) {
	st.compute(in.Pair(st.Input), s)
}

// Statistics is the registry, in report order.
var Statistics = []Statistic{
	{
		Name:  NameCategoryCounts,
		Title: "Items per category",
		Input: Raw,
		compute: func(p dataset.Pair, s *Summary) {
			s.CategoryCounts = CategoryCounts(p.Catalog)
		},
	},
	{
		Name:  NameAverageDegree,
		Title: "Average degree",
		Input: Reconciled,
		compute: func(p dataset.Pair, s *Summary) {
			s.AverageDegree = AverageDegree(p.Graph, p.Catalog)
		},
	},
	{
		Name:  NameAverageDegreeWithNeighbors,
		Title: "Average degree, nodes with neighbors",
		Input: Reconciled,
		compute: func(p dataset.Pair, s *Summary) {
			s.AverageDegreeWithNeighbors = AverageDegreeWithNeighbors(p.Graph, p.Catalog)
		},
	},
	{
		Name:  NamePurchasingLikelihood,
		Title: "Same-category purchasing likelihood",
		Input: Raw,
		compute: func(p dataset.Pair, s *Summary) {
			s.PurchasingLikelihood = PurchasingLikelihood(p.Graph, p.Catalog)
		},
	},
	{
		Name:  NameSelfRecommendation,
		Title: "Same-category recommendation likelihood",
		Input: Raw,
		compute: func(p dataset.Pair, s *Summary) {
			s.SelfRecommendation = SelfRecommendationLikelihood(p.Graph, p.Catalog)
		},
	},
	{
		Name:  NameCrossCategory,
		Title: "Average recommendations per category",
		Input: Raw,
		compute: func(p dataset.Pair, s *Summary) {
			s.CrossCategory = CrossCategoryAverages(p.Graph, p.Catalog)
		},
	},
}

// Names returns the registered statistic names in report order.
func Names() []string {
	names := make([]string, len(Statistics))
	for i, st := range Statistics {
		names[i] = st.Name
	}
	return names
}

// Lookup finds a statistic by name.
func Lookup(name string) (Statistic, bool) {
	for _, st := range Statistics {
		if st.Name == name {
			return st, true
		}
	}
	return Statistic{}, false
}

// Select resolves names to registry entries in report order, dropping
// duplicates. An empty list selects everything.
func Select(names []string) ([]Statistic, error) {
	if len(names) == 0 {
		return slices.Clone(Statistics), nil
	}
	for _, n := range names {
		if _, ok := Lookup(n); !ok {
			return nil, errs.New(errs.ErrCodeInvalidStatistic,
				"unknown statistic %q (must be one of: %s)", n, strings.Join(Names(), ", "))
		}
	}
	var out []Statistic
	for _, st := range Statistics {
		if slices.Contains(names, st.Name) {
			out = append(out, st)
		}
	}
	return out, nil
}

// Summary holds the computed statistics. Fields of statistics that were not
// selected stay nil.
type Summary struct {
	CategoryCounts             map[string]int                `json:"category_counts,omitempty"`
	AverageDegree              map[string]float64            `json:"average_degree,omitempty"`
	AverageDegreeWithNeighbors map[string]float64            `json:"average_degree_with_neighbors,omitempty"`
	PurchasingLikelihood       map[string]float64            `json:"purchasing_likelihood,omitempty"`
	SelfRecommendation         map[string]float64            `json:"self_recommendation,omitempty"`
	CrossCategory              map[string]map[string]float64 `json:"cross_category,omitempty"`
}

// Ratios returns the scalar float statistic stored under name, if any.
func (s *Summary) Ratios(name string) (map[string]float64, bool) {
	switch name {
	case NameAverageDegree:
		return s.AverageDegree, s.AverageDegree != nil
	case NameAverageDegreeWithNeighbors:
		return s.AverageDegreeWithNeighbors, s.AverageDegreeWithNeighbors != nil
	case NamePurchasingLikelihood:
		return s.PurchasingLikelihood, s.PurchasingLikelihood != nil
	case NameSelfRecommendation:
		return s.SelfRecommendation, s.SelfRecommendation != nil
	}
	return nil, false
}

// ComputeAll evaluates the given statistics sequentially.
func ComputeAll(in Inputs, sel []Statistic) *Summary {
	s := &Summary{}
	for _, st := range sel {
		st.Compute(in, s)
	}
	return s
}
