package pipeline

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/copurchase/pkg/dataset"
	dsio "github.com/matzehuels/copurchase/pkg/io"
	"github.com/matzehuels/copurchase/pkg/observability"
	"github.com/matzehuels/copurchase/pkg/record"
	"github.com/matzehuels/copurchase/pkg/source"
	"github.com/matzehuels/copurchase/pkg/stats"
)

// Runner executes pipeline stages. It holds no run state, so one Runner may
// serve concurrent runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs load, reconcile and analyze.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Source: opts.Input}

	// Stage 1: Load
	raw, ls, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Raw = raw
	result.Stats.Lines = ls.Lines
	result.Stats.Records = ls.Records
	result.Stats.Dropped = ls.Dropped
	result.Stats.LoadTime = ls.Time
	result.Stats.Raw = raw.Size()

	// Stage 2: Reconcile
	result.Reconciled, result.Stats.ReconcileTime = r.Reconcile(ctx, raw)
	result.Stats.Reconciled = result.Reconciled.Size()

	// Stage 3: Analyze
	analyzeStart := time.Now()
	summary, err := r.Analyze(ctx, result.Inputs(), opts.Selected())
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	result.Summary = summary
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	r.Logger.Info("computed statistics",
		"count", len(opts.Selected()),
		"duration", result.Stats.AnalyzeTime)

	return result, nil
}

// Load reads the input into a raw pair. The record stream is scanned once
// and feeds both the graph and the catalog.
func (r *Runner) Load(ctx context.Context, opts Options) (dataset.Pair, LoadStats, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return dataset.Pair{}, LoadStats{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	var (
		p   dataset.Pair
		ls  LoadStats
		err error
	)
	switch {
	case opts.IsDataset() && opts.Reader != nil:
		p, err = dsio.ReadJSON(opts.Reader)
		if err != nil {
			err = fmt.Errorf("%s: %w", opts.Input, err)
		}
		ls.Records = p.Graph.NodeCount()
	case opts.IsDataset():
		p, err = dsio.ImportJSON(opts.Input)
		ls.Records = p.Graph.NodeCount()
	default:
		p, ls, err = r.scan(ctx, opts)
	}
	ls.Time = time.Since(start)
	hooks.OnLoadComplete(ctx, opts.Input, ls.Records, ls.Time, err)
	if err != nil {
		return dataset.Pair{}, ls, err
	}

	if ls.Dropped {
		opts.Logger.Debug("dropped trailing record without closing blank line", "source", opts.Input)
	}
	opts.Logger.Info("loaded records",
		"records", ls.Records,
		"nodes", p.Graph.NodeCount(),
		"entries", len(p.Catalog),
		"duration", ls.Time)
	return p, ls, nil
}

func (r *Runner) scan(ctx context.Context, opts Options) (dataset.Pair, LoadStats, error) {
	var lines *source.Lines
	if opts.Reader != nil {
		lines = source.FromReader(opts.Input, opts.Reader)
	} else {
		l, err := source.Open(opts.Input)
		if err != nil {
			return dataset.Pair{}, LoadStats{}, err
		}
		lines = l
	}
	defer lines.Close()

	p := dataset.New()
	var (
		res     record.Result
		records int
	)
	ropts := record.Options{ResetOnClose: opts.ResetFields}
	err := record.Scan(withContext(ctx, lines.All()), ropts, func(rec record.Record) error {
		p.Add(rec)
		records++
		return nil
	}, &res)
	if err != nil {
		return dataset.Pair{}, LoadStats{Lines: lines.Count()}, err
	}

	return p, LoadStats{
		Lines:   res.Lines,
		Records: records,
		Dropped: res.Dropped,
	}, nil
}

// withContext stops a line sequence with ctx.Err() once ctx is done.
func withContext(ctx context.Context, lines iter.Seq2[string, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for line, err := range lines {
			if cerr := ctx.Err(); cerr != nil {
				yield("", cerr)
				return
			}
			if !yield(line, err) {
				return
			}
		}
	}
}

// Reconcile returns the reconciled pair and how long it took.
func (r *Runner) Reconcile(ctx context.Context, raw dataset.Pair) (dataset.Pair, time.Duration) {
	start := time.Now()
	rec := dataset.Reconcile(raw)
	d := time.Since(start)
	observability.Pipeline().OnReconcile(ctx, raw.Graph.NodeCount(), rec.Graph.NodeCount(), d)
	r.Logger.Debug("reconciled dataset",
		"raw_nodes", raw.Graph.NodeCount(),
		"nodes", rec.Graph.NodeCount(),
		"duration", d)
	return rec, d
}

// Analyze evaluates sel concurrently. The pairs are only read; each
// statistic writes its own summary field. Cancellation is checked before
// each statistic starts.
func (r *Runner) Analyze(ctx context.Context, in stats.Inputs, sel []stats.Statistic) (*stats.Summary, error) {
	summary := &stats.Summary{}
	hooks := observability.Pipeline()

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range sel {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hooks.OnStatisticStart(gctx, st.Name)
			start := time.Now()
			st.Compute(in, summary)
			d := time.Since(start)
			hooks.OnStatisticComplete(gctx, st.Name, d, nil)
			r.Logger.Debug("computed statistic", "name", st.Name, "input", st.Input, "duration", d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
