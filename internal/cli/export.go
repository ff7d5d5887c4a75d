package cli

import (
	"github.com/spf13/cobra"

	dsio "github.com/matzehuels/copurchase/pkg/io"
)

type exportFlags struct {
	inputFlags
	output     string
	reconciled bool
}

func (c *CLI) exportCommand() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the parsed dataset as node-link JSON",
		Long: `Export parses a metadata dump and writes the graph and catalog as a
node-link JSON document. The document can be passed back to analyze or
browse, which skips re-parsing the dump.`,
		Example: `  copurchase export amazon-meta.txt.gz -o dataset.json
  copurchase export amazon-meta.txt --reconciled -o reconciled.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args, flags)
		},
	}

	flags.inputFlags.register(cmd.Flags())
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.reconciled, "reconciled", false, "export only products with both links and metadata")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, args []string, flags exportFlags) (err error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, err := pipelineOptions(cfg, cmd.Flags(), args, flags.inputFlags)
	if err != nil {
		return err
	}

	runner := c.newRunner()
	spin := newSpinner(ctx, "Loading "+opts.Input)
	spin.Start()
	p, ls, err := runner.Load(ctx, opts)
	spin.Stop()
	if err != nil {
		return err
	}
	if ls.Dropped {
		printWarning("last record in %s has no closing blank line and was skipped", opts.Input)
	}
	if flags.reconciled {
		p, _ = runner.Reconcile(ctx, p)
	}

	out, err := openOutput(flags.output)
	if err != nil {
		return err
	}
	defer closeOutput(out, flags.output, &err)

	prog := newProgress(logger)
	if err := dsio.WriteJSON(p, out); err != nil {
		return err
	}
	prog.done("exported dataset", "nodes", p.Graph.NodeCount(), "entries", len(p.Catalog))

	if flags.output != "" {
		printSuccess("Exported dataset")
		printFile(flags.output)
		printNextStep("Analyze it", "copurchase analyze "+flags.output)
	}
	return nil
}
