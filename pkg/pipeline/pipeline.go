// Package pipeline provides the load → reconcile → analyze pipeline for
// copurchase.
//
// The CLI commands share this package so that analyze, browse and export all
// read input the same way.
//
// # Stages
//
//  1. Load: scan the input once, feeding every record into both the graph
//     and the catalog (see pkg/dataset). Paths ending in ".json" are read as
//     an exported dataset instead.
//  2. Reconcile: restrict the raw pair to identifiers present in both halves.
//  3. Analyze: evaluate the selected statistics concurrently, each on the
//     input it declares in the pkg/stats registry.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:      "amazon-meta.txt.gz",
//	    Statistics: []string{"average_degree"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary.AverageDegree)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/copurchase/pkg/dataset"
	errs "github.com/matzehuels/copurchase/pkg/errors"
	"github.com/matzehuels/copurchase/pkg/stats"
)

// Options configures a pipeline run.
type Options struct {
	// Input is the path of the metadata dump or exported dataset.
	Input string `json:"input"`

	// Reader, when set, is read instead of opening Input. Input is then used
	// only as the source name and to pick the format: a .json name decodes
	// Reader as an exported dataset.
	Reader io.Reader `json:"-"`

	// ResetFields clears identifier, title and category between records
	// instead of carrying them over to the next record. The related list is
	// cleared either way.
	ResetFields bool `json:"reset_fields,omitempty"`

	// Statistics names the statistics to compute. Empty selects all.
	Statistics []string `json:"statistics,omitempty"`

	// Logger receives load progress. Runner fills it in when nil.
	Logger *log.Logger `json:"-"`

	selected  []stats.Statistic
	validated bool
}

// ValidateAndSetDefaults checks required fields and resolves the statistic
// selection. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	sel, err := stats.Select(o.Statistics)
	if err != nil {
		return err
	}
	o.selected = sel
	o.validated = true
	return nil
}

// ValidateForLoad checks the fields needed to load a dataset.
func (o *Options) ValidateForLoad() error {
	if o.Reader == nil {
		if err := errs.ValidateInputPath(o.Input); err != nil {
			return err
		}
	}
	return nil
}

// Selected returns the statistics chosen by the last successful validation.
func (o *Options) Selected() []stats.Statistic {
	return o.selected
}

// IsDataset reports whether the input is an exported JSON dataset.
func (o *Options) IsDataset() bool {
	return strings.HasSuffix(strings.ToLower(o.Input), ".json")
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Source is the input path or name.
	Source string

	// Raw is the pair built directly from the records.
	Raw dataset.Pair

	// Reconciled is Raw restricted to identifiers present in both halves.
	Reconciled dataset.Pair

	// Summary holds the selected statistics.
	Summary *stats.Summary

	// Stats contains timing and size information.
	Stats Stats
}

// Inputs returns the pairs in the form the statistic registry consumes.
func (r *Result) Inputs() stats.Inputs {
	return stats.Inputs{Raw: r.Raw, Reconciled: r.Reconciled}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Lines   int  // input lines scanned
	Records int  // records emitted by the parser
	Dropped bool // a trailing record was discarded

	Raw        dataset.Size
	Reconciled dataset.Size

	LoadTime      time.Duration
	ReconcileTime time.Duration
	AnalyzeTime   time.Duration
}

// LoadStats describes a completed load.
type LoadStats struct {
	Lines   int
	Records int
	Dropped bool
	Time    time.Duration
}
