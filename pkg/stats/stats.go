package stats

import (
	"github.com/matzehuels/copurchase/pkg/catalog"
	"github.com/matzehuels/copurchase/pkg/graph"
)

// CategoryCounts tallies one per catalog entry, keyed by category.
func CategoryCounts(c catalog.Catalog) map[string]int {
	counts := make(map[string]int)
	for _, e := range c {
		counts[e.Category]++
	}
	return counts
}

// degreeTally is the running degree sum and node count of one category.
type degreeTally struct {
	total int
	nodes int
}

type degreeAcc map[string]degreeTally

func foldDegree(acc degreeAcc, category string, degree int) degreeAcc {
	t := acc[category]
	t.total += degree
	t.nodes++
	acc[category] = t
	return acc
}

func (acc degreeAcc) averages() map[string]float64 {
	out := make(map[string]float64, len(acc))
	for cat, t := range acc {
		out[cat] = float64(t.total) / float64(t.nodes)
	}
	return out
}

// AverageDegree returns the mean neighbor-list length of the graph nodes in
// each category.
func AverageDegree(g graph.Graph, c catalog.Catalog) map[string]float64 {
	acc := make(degreeAcc)
	for id, ns := range g {
		cat, ok := c.Category(id)
		if !ok {
			continue
		}
		acc = foldDegree(acc, cat, len(ns))
	}
	return acc.averages()
}

// AverageDegreeWithNeighbors is [AverageDegree] restricted to nodes with a
// non-empty neighbor list.
func AverageDegreeWithNeighbors(g graph.Graph, c catalog.Catalog) map[string]float64 {
	acc := make(degreeAcc)
	for id, ns := range g {
		if len(ns) == 0 {
			continue
		}
		cat, ok := c.Category(id)
		if !ok {
			continue
		}
		acc = foldDegree(acc, cat, len(ns))
	}
	return acc.averages()
}

// likelihoodTally counts same-category hits against a total per category.
type likelihoodTally struct {
	hits  int
	total int
}

type likelihoodAcc map[string]likelihoodTally

func (acc likelihoodAcc) ratios() map[string]float64 {
	out := make(map[string]float64, len(acc))
	for cat, t := range acc {
		if t.total == 0 {
			out[cat] = 0
			continue
		}
		out[cat] = float64(t.hits) / float64(t.total)
	}
	return out
}

// foldPurchasing adds one node: its degree to the category total, and one hit
// per neighbor in the same category.
func foldPurchasing(acc likelihoodAcc, c catalog.Catalog, category string, neighbors []string) likelihoodAcc {
	t := acc[category]
	t.total += len(neighbors)
	for _, n := range neighbors {
		if nc, ok := c.Category(n); ok && nc == category {
			t.hits++
		}
	}
	acc[category] = t
	return acc
}

// PurchasingLikelihood returns, per category, the fraction of its nodes'
// adjacencies that point at a node of the same category. Every catalog
// category appears in the result; categories without connections are 0.
func PurchasingLikelihood(g graph.Graph, c catalog.Catalog) map[string]float64 {
	acc := make(likelihoodAcc)
	for _, e := range c {
		acc[e.Category] = likelihoodTally{}
	}
	for id, ns := range g {
		cat, ok := c.Category(id)
		if !ok {
			continue
		}
		acc = foldPurchasing(acc, c, cat, ns)
	}
	return acc.ratios()
}

// foldSelfRecommendation adds one node: a hit if any neighbor shares its
// category, and one to the node count either way.
func foldSelfRecommendation(acc likelihoodAcc, c catalog.Catalog, category string, neighbors []string) likelihoodAcc {
	seen := make(map[string]struct{}, len(neighbors))
	for _, n := range neighbors {
		if nc, ok := c.Category(n); ok {
			seen[nc] = struct{}{}
		}
	}
	t := acc[category]
	if _, ok := seen[category]; ok {
		t.hits++
	}
	t.total++
	acc[category] = t
	return acc
}

// SelfRecommendationLikelihood returns, per category, the fraction of its
// nodes that have at least one neighbor in the same category. Each node
// counts once no matter how many matching neighbors it has.
func SelfRecommendationLikelihood(g graph.Graph, c catalog.Catalog) map[string]float64 {
	acc := make(likelihoodAcc)
	for id, ns := range g {
		cat, ok := c.Category(id)
		if !ok {
			continue
		}
		acc = foldSelfRecommendation(acc, c, cat, ns)
	}
	return acc.ratios()
}

// crossAcc holds neighbor tallies per (source, target) category and node
// counts per source category.
type crossAcc struct {
	tally map[string]map[string]int
	nodes map[string]int
}

func foldCross(acc crossAcc, c catalog.Catalog, category string, neighbors []string) crossAcc {
	row, ok := acc.tally[category]
	if !ok {
		row = make(map[string]int)
		acc.tally[category] = row
	}
	for _, n := range neighbors {
		if nc, ok := c.Category(n); ok {
			row[nc]++
		}
	}
	acc.nodes[category]++
	return acc
}

// CrossCategoryAverages returns avg[src][dst]: the mean number of neighbors
// in category dst per node of category src. Only categories with at least
// one graph node appear as sources; a source whose nodes have no categorized
// neighbors maps to an empty row.
func CrossCategoryAverages(g graph.Graph, c catalog.Catalog) map[string]map[string]float64 {
	acc := crossAcc{
		tally: make(map[string]map[string]int),
		nodes: make(map[string]int),
	}
	for id, ns := range g {
		cat, ok := c.Category(id)
		if !ok {
			continue
		}
		acc = foldCross(acc, c, cat, ns)
	}

	out := make(map[string]map[string]float64, len(acc.tally))
	for src, row := range acc.tally {
		n := float64(acc.nodes[src])
		avg := make(map[string]float64, len(row))
		for dst, count := range row {
			avg[dst] = float64(count) / n
		}
		out[src] = avg
	}
	return out
}
