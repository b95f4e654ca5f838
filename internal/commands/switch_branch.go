package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/branch"
	"github.com/sqve/gitfu/internal/completion"
	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/logger"
)

// NewSwitchBranchCmd creates the switch-branch command
func NewSwitchBranchCmd() *cobra.Command {
	var force bool
	var stash bool
	var commit bool

	cmd := &cobra.Command{
		Use:     "switch-branch [query]",
		Aliases: []string{"sb"},
		Short:   "Switch to the branch matching a query",
		Long: `Switch to the single local branch whose name contains query.

Without a query, list the branches you can switch to.

When local changes block the checkout, choose how to handle them:
  -f  discard the blocking changes
  -s  stash them, switch, and pop the stash
  -c  commit them as a WIP commit, which is undone when you switch back`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completion.BranchCompletion(completion.NewCompletionContext(DefaultExecutorProvider.GetExecutor()), toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := branch.StrategyFromFlags(force, stash, commit)
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runSwitchBranch(cmd.OutOrStdout(), query, strategy)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Discard local changes that block the switch")
	cmd.Flags().BoolVarP(&stash, "stash", "s", false, "Stash local changes and restore them after switching")
	cmd.Flags().BoolVarP(&commit, "commit", "c", false, "Commit local changes as a WIP commit before switching")
	cmd.MarkFlagsMutuallyExclusive("force", "stash", "commit")

	return cmd
}

func runSwitchBranch(out io.Writer, query string, strategy branch.ChangeStrategy) error {
	switcher := branch.NewSwitcher(DefaultExecutorProvider.GetExecutor(), config.WipMarker())

	if query == "" {
		listing, err := switcher.ListBranches()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, listing)
		return err
	}

	name, err := switcher.Switch(query, strategy)
	if err != nil {
		return err
	}

	logger.Success("Switched to branch '%s'", name)
	return nil
}
