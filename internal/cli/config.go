package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/copurchase/pkg/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the copurchase config file",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path(c.configPath)
			if err != nil {
				return err
			}
			if err := config.Write(config.Default(), path, force); err != nil {
				return err
			}
			printSuccess("Created config file")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path(c.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			statistics := "all"
			if len(cfg.Statistics) > 0 {
				statistics = strings.Join(cfg.Statistics, ", ")
			}
			input := cfg.Input
			if input == "" {
				input = "(none)"
			}
			printKeyValue("input", input)
			printKeyValue("reset", strconv.FormatBool(cfg.ResetFields))
			printKeyValue("statistics", statistics)
			printKeyValue("format", cfg.Report.Format)
			printKeyValue("precision", strconv.Itoa(cfg.Report.Precision))
			return nil
		},
	}
}
