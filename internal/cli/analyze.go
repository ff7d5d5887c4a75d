package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/copurchase/pkg/config"
	errs "github.com/matzehuels/copurchase/pkg/errors"
	"github.com/matzehuels/copurchase/pkg/pipeline"
	"github.com/matzehuels/copurchase/pkg/report"
	"github.com/matzehuels/copurchase/pkg/stats"
)

type analyzeFlags struct {
	inputFlags
	format     string
	output     string
	statistics []string
	precision  int
}

func (c *CLI) analyzeCommand() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute category statistics for a metadata dump",
		Long: `Analyze parses a product metadata dump (plain or .gz) or an exported
dataset (.json), builds the co-purchase graph, and reports per-category
statistics.

Available statistics: ` + fmt.Sprint(stats.Names()),
		Example: `  copurchase analyze amazon-meta.txt.gz
  copurchase analyze amazon-meta.txt --stat average_degree --precision 3
  copurchase analyze export.json --format svg -o categories.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args, flags)
		},
	}

	flags.inputFlags.register(cmd.Flags())
	cmd.Flags().StringVarP(&flags.format, "format", "f", config.DefaultFormat, "output format: text, json, dot, svg")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVarP(&flags.statistics, "stat", "s", nil, "statistics to compute (repeatable; default all)")
	cmd.Flags().IntVar(&flags.precision, "precision", report.DefaultPrecision, "decimals printed for ratios")

	_ = cmd.RegisterFlagCompletionFunc("stat", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return stats.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "dot", "svg"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, args []string, flags analyzeFlags) (err error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, ropts, err := analyzeOptions(cfg, cmd, args, flags)
	if err != nil {
		return err
	}

	res, err := c.execute(cmd, opts)
	if err != nil {
		return err
	}

	if res.Stats.Dropped {
		printWarning("last record in %s has no closing blank line and was skipped", opts.Input)
	}
	printSize("raw", res.Stats.Raw)
	printSize("reconciled", res.Stats.Reconciled)

	out, err := openOutput(flags.output)
	if err != nil {
		return err
	}
	defer closeOutput(out, flags.output, &err)

	prog := newProgress(logger)
	if err := report.Render(ctx, out, report.New(res, opts.Selected()), ropts); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	prog.done("rendered report", "format", ropts.Format)

	if flags.output != "" {
		printSuccess("Wrote %s report", ropts.Format)
		printFile(flags.output)
	}
	return nil
}

// execute runs the pipeline behind a spinner.
func (c *CLI) execute(cmd *cobra.Command, opts pipeline.Options) (*pipeline.Result, error) {
	ctx := cmd.Context()
	spin := newSpinner(ctx, "Analyzing "+opts.Input)
	spin.Start()
	res, err := c.newRunner().Execute(ctx, opts)
	spin.Stop()
	return res, err
}

// analyzeOptions resolves pipeline and report options from config and flags.
// The returned pipeline options are already validated.
func analyzeOptions(cfg config.Config, cmd *cobra.Command, args []string, flags analyzeFlags) (pipeline.Options, report.Options, error) {
	fs := cmd.Flags()
	opts, err := pipelineOptions(cfg, fs, args, flags.inputFlags)
	if err != nil {
		return opts, report.Options{}, err
	}
	if fs.Changed("stat") {
		opts.Statistics = flags.statistics
	}

	ropts := report.Options{
		Format:    report.Format(cfg.Report.Format),
		Precision: cfg.Report.Precision,
	}
	if fs.Changed("format") {
		ropts.Format = report.Format(flags.format)
	}
	if fs.Changed("precision") {
		ropts.Precision = flags.precision
	}
	if err := report.ValidateFormat(string(ropts.Format)); err != nil {
		return opts, ropts, err
	}
	if err := errs.ValidatePrecision(ropts.Precision); err != nil {
		return opts, ropts, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, ropts, err
	}
	names := make([]string, 0, len(opts.Selected()))
	for _, st := range opts.Selected() {
		names = append(names, st.Name)
	}
	if err := report.ValidateSelection(ropts.Format, names); err != nil {
		return opts, ropts, err
	}
	return opts, ropts, nil
}
