package cli

import (
	"io"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/copurchase/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for copurchase.

To load completions:

Bash:
  $ source <(copurchase completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ copurchase completion bash > /etc/bash_completion.d/copurchase
  # macOS:
  $ copurchase completion bash > $(brew --prefix)/etc/bash_completion.d/copurchase

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ copurchase completion zsh > "${fpath[1]}/_copurchase"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ copurchase completion fish | source

  # To load completions for each session, execute once:
  $ copurchase completion fish > ~/.config/fish/completions/copurchase.fish

PowerShell:
  PS> copurchase completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> copurchase completion powershell > copurchase.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errs.New(errs.ErrCodeInvalidInput, "unsupported shell %q", shell)
}
