package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/branch"
	"github.com/sqve/gitfu/internal/completion"
	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/errors"
)

// NewRemoveBranchCmd creates the remove-branch command
func NewRemoveBranchCmd() *cobra.Command {
	var force bool
	var remote string
	var prune bool

	cmd := &cobra.Command{
		Use:     "remove-branch [query]",
		Aliases: []string{"rb"},
		Short:   "Delete a branch locally and on the remote",
		Long: `Delete the branch matching query, locally and on the remote.

The query is a substring of the branch name and must match exactly one
branch. If no local branch matches, remote-only branches are searched.
Every deletion is confirmed once before anything is removed.

With --prune, delete every branch already merged into the current one,
except protected branches (branch.protected, default master and main).`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completion.BranchCompletion(completion.NewCompletionContext(DefaultExecutorProvider.GetExecutor()), toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote == "" {
				remote = config.DefaultRemote()
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runRemoveBranch(query, remote, force, prune)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the branch is not fully merged")
	cmd.Flags().StringVarP(&remote, "remote", "r", "", "Remote to delete from (default: git.default_remote, origin)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete all branches merged into the current branch")

	return cmd
}

func runRemoveBranch(query, remote string, force, prune bool) error {
	remover := branch.NewRemover(
		DefaultExecutorProvider.GetExecutor(),
		DefaultExecutorProvider.GetAsker(),
		config.ProtectedBranches(),
	)

	if prune {
		if query != "" {
			return errors.ErrInvalidArgs("--prune does not take a branch name.")
		}
		return remover.PruneMerged(remote, force)
	}

	if query == "" {
		return errors.ErrInvalidArgs("Branch name required.")
	}

	return remover.RemoveBranch(query, remote, force)
}
