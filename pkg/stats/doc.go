// Package stats computes category-level statistics over a co-purchase graph
// and its metadata catalog.
//
// Every statistic is a pure function of a (graph, catalog) pair. Graph nodes
// without a catalog entry are skipped, and no function divides by zero: a
// category only gets an average once it has counted at least one node, and
// [PurchasingLikelihood] keeps 0 for categories with no connections.
//
// # Statistics
//
//   - [CategoryCounts]: products per category
//   - [AverageDegree]: mean neighbor-list length per category
//   - [AverageDegreeWithNeighbors]: the same, ignoring isolated nodes
//   - [PurchasingLikelihood]: share of a category's adjacencies that stay
//     inside the category (edge weighted)
//   - [SelfRecommendationLikelihood]: share of a category's nodes with at
//     least one same-category neighbor (node weighted)
//   - [CrossCategoryAverages]: mean number of neighbors in each target
//     category per source-category node
//
// The two likelihoods answer different questions and generally disagree; both
// are reported.
//
// # Inputs
//
// Each [Statistic] in the [Statistics] registry declares whether it reads
// the raw pair or the reconciled pair. Degree averages use the reconciled
// pair; counts, likelihoods and cross-category averages use the raw one.
package stats
