package completion

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/branch"
	"github.com/sqve/gitfu/internal/logger"
)

// priorityBranches are offered first, in this order.
var priorityBranches = []string{"main", "master", "develop", "development"}

// BranchCompletion completes local branch names.
func BranchCompletion(ctx *CompletionContext, toComplete string) ([]string, cobra.ShellCompDirective) {
	if !ctx.IsInRepository() {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	branches, err := ctx.WithTimeout(branch.NewLister(ctx.Executor).ListLocal)
	if err != nil {
		logger.Debug("failed to get branch names: %v", err)
		return nil, cobra.ShellCompDirectiveError
	}

	filtered := FilterCompletions(prioritizeBranches(branches), toComplete)
	logger.Debug("branch completion: %d of %d for %q", len(filtered), len(branches), toComplete)

	return filtered, cobra.ShellCompDirectiveNoFileComp
}

func prioritizeBranches(branches []string) []string {
	if len(branches) == 0 {
		return branches
	}

	var prioritized []string
	for _, priority := range priorityBranches {
		if slices.Contains(branches, priority) {
			prioritized = append(prioritized, priority)
		}
	}

	var regular []string
	for _, b := range branches {
		if !slices.Contains(priorityBranches, b) {
			regular = append(regular, b)
		}
	}
	slices.Sort(regular)

	return append(prioritized, regular...)
}
