package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/copurchase/pkg/errors"
	"github.com/matzehuels/copurchase/pkg/report"
)

func (c *CLI) browseCommand() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore category statistics interactively",
		Long: `Browse computes every statistic for the input and opens a terminal UI
listing its categories. Selecting a category shows its values and how many
neighbors its items have in each other category.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd, args, flags)
		},
	}

	flags.inputFlags.register(cmd.Flags())
	cmd.Flags().IntVar(&flags.precision, "precision", report.DefaultPrecision, "decimals printed for ratios")

	return cmd
}

func (c *CLI) runBrowse(cmd *cobra.Command, args []string, flags analyzeFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	// The browser shows every statistic regardless of the configured selection.
	cfg.Statistics = nil
	opts, ropts, err := analyzeOptions(cfg, cmd, args, flags)
	if err != nil {
		return err
	}

	res, err := c.execute(cmd, opts)
	if err != nil {
		return err
	}

	model := NewCategoryListModel(res.Summary, ropts.Precision)
	if len(model.Categories) == 0 {
		printInfo("no categories found in %s", opts.Input)
		return nil
	}

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "run browser")
	}
	return nil
}
