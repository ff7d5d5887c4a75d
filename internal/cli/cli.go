// Package cli implements the copurchase command-line interface.
//
// # Commands
//
//   - analyze: compute category statistics and print a report
//   - browse: explore the statistics per category in a terminal UI
//   - export: write the parsed dataset as node-link JSON
//   - config: create or locate the config file
//
// Every command accepts --config to name a TOML settings file; values given
// as flags win over values from the file. --verbose (-v) enables debug logs.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/copurchase/pkg/buildinfo"
	"github.com/matzehuels/copurchase/pkg/config"
	errs "github.com/matzehuels/copurchase/pkg/errors"
	"github.com/matzehuels/copurchase/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// stderr receives status lines; tests swap it out.
var stderr io.Writer = os.Stderr

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is bound to the persistent --config flag.
	configPath string
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "copurchase",
		Short: "Category statistics for product co-purchase networks",
		Long: `copurchase reads a product metadata dump, builds the symmetric co-purchase
graph from each product's "similar" list, and reports how products in one
category link to products in the same and other categories.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/copurchase/config.toml)")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadConfig reads the file named by --config, or the default file.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "input", cfg.Input)
	return cfg, nil
}

// inputFlags are shared by every command that loads a dataset.
type inputFlags struct {
	resetFields bool
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.resetFields, "reset-fields", false, "clear identifier, title and category between records instead of carrying them over")
}

// pipelineOptions merges the positional input, flags and config. A flag
// only overrides the config when it was set explicitly.
func pipelineOptions(cfg config.Config, fs *pflag.FlagSet, args []string, f inputFlags) (pipeline.Options, error) {
	opts := pipeline.Options{
		Input:       cfg.Input,
		ResetFields: cfg.ResetFields,
		Statistics:  cfg.Statistics,
	}
	if len(args) > 0 {
		opts.Input = args[0]
	}
	if fs.Changed("reset-fields") {
		opts.ResetFields = f.resetFields
	}
	if opts.Input == "" {
		return opts, errs.New(errs.ErrCodeInvalidInput, "no input file: pass one as an argument or set input in the config file")
	}
	return opts, nil
}

// openOutput returns stdout when path is empty, else a new file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errs.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, nil
}

// closeOutput closes out and stores a close failure in *err unless an
// earlier error is already set. A failed close on a file can lose buffered
// output.
func closeOutput(out io.Closer, path string, err *error) {
	if cerr := out.Close(); cerr != nil && *err == nil {
		*err = errs.Wrap(errs.ErrCodeInvalidPath, cerr, "close %s", path)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
