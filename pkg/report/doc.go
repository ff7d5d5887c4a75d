// Package report renders analysis results.
//
// A [Report] wraps a [stats.Summary] with run metadata. [Render] writes it in
// one of four formats:
//
//   - text: one lipgloss table per statistic, keys sorted
//   - json: the report as indented JSON, with a run id from google/uuid
//   - dot: a Graphviz digraph of the cross-category averages
//   - svg: the dot output laid out in-process with goccy/go-graphviz
//
// Only the statistics named in Report.Statistics are printed. Map keys are
// always sorted before display so output is stable across runs.
//
// [stats.Summary]: github.com/matzehuels/copurchase/pkg/stats.Summary
package report
