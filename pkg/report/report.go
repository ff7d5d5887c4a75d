package report

import (
	"context"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/copurchase/pkg/dataset"
	errs "github.com/matzehuels/copurchase/pkg/errors"
	"github.com/matzehuels/copurchase/pkg/observability"
	"github.com/matzehuels/copurchase/pkg/pipeline"
	"github.com/matzehuels/copurchase/pkg/stats"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

// ValidFormats is the set of supported formats.
var ValidFormats = map[Format]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(f string) error {
	if !ValidFormats[Format(f)] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, dot, svg)", f)
	}
	return nil
}

// ValidateSelection checks that the statistics a format draws are among the
// selected names. The graph formats draw cross_category.
func ValidateSelection(f Format, names []string) error {
	if drawsGraph(f) && !slices.Contains(names, stats.NameCrossCategory) {
		return errs.New(errs.ErrCodeInvalidFormat, "format %s requires the %s statistic", f, stats.NameCrossCategory)
	}
	return nil
}

func drawsGraph(f Format) bool {
	return f == FormatDOT || f == FormatSVG
}

// DefaultPrecision is the number of decimals printed for ratios.
const DefaultPrecision = 2

// Options controls rendering.
type Options struct {
	Format    Format
	Precision int
}

// Report is a summary plus the run it came from.
type Report struct {
	RunID       string         `json:"run_id"`
	Source      string         `json:"source"`
	GeneratedAt time.Time      `json:"generated_at"`
	Records     int            `json:"records"`
	Raw         dataset.Size   `json:"raw"`
	Reconciled  dataset.Size   `json:"reconciled"`
	Statistics  []string       `json:"statistics"`
	Summary     *stats.Summary `json:"summary"`
}

// New builds a report for a pipeline result. sel lists the statistics that
// were computed, in report order.
func New(res *pipeline.Result, sel []stats.Statistic) *Report {
	names := make([]string, len(sel))
	for i, st := range sel {
		names[i] = st.Name
	}
	return &Report{
		RunID:       uuid.NewString(),
		Source:      res.Source,
		GeneratedAt: time.Now().UTC(),
		Records:     res.Stats.Records,
		Raw:         res.Stats.Raw,
		Reconciled:  res.Stats.Reconciled,
		Statistics:  names,
		Summary:     res.Summary,
	}
}

// Render writes r to w in the requested format.
func Render(ctx context.Context, w io.Writer, r *Report, opts Options) error {
	if err := ValidateFormat(string(opts.Format)); err != nil {
		return err
	}
	if err := errs.ValidatePrecision(opts.Precision); err != nil {
		return err
	}
	if drawsGraph(opts.Format) && (r.Summary == nil || r.Summary.CrossCategory == nil) {
		return errs.New(errs.ErrCodeInvalidFormat, "format %s requires the %s statistic", opts.Format, stats.NameCrossCategory)
	}

	hooks := observability.Report()
	hooks.OnReportStart(ctx, string(opts.Format))
	start := time.Now()
	cw := &countingWriter{w: w}

	var err error
	switch opts.Format {
	case FormatText:
		err = writeText(cw, r, opts.Precision)
	case FormatJSON:
		err = writeJSON(cw, r)
	case FormatDOT:
		_, err = io.WriteString(cw, ToDOT(r.Summary.CrossCategory, opts.Precision))
	case FormatSVG:
		var svg []byte
		svg, err = RenderSVG(ctx, ToDOT(r.Summary.CrossCategory, opts.Precision))
		if err == nil {
			_, err = cw.Write(svg)
		}
	}

	hooks.OnReportComplete(ctx, string(opts.Format), cw.n, time.Since(start), err)
	return err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// displayCategory renders the empty category visibly.
func displayCategory(c string) string {
	if c == "" {
		return "(none)"
	}
	return c
}
