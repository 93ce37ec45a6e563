package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for portvr.

To load completions:

Bash:
  $ source <(portvr completion bash)

Zsh:
  $ portvr completion zsh > "${fpath[1]}/_portvr"
  $ compinit

Fish:
  $ portvr completion fish | source

PowerShell:
  PS> portvr completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletion(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}
