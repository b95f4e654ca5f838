package completion

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/logger"
	"github.com/sqve/gitfu/internal/shell"
	"github.com/sqve/gitfu/internal/utils"
)

// CompletionTimeout is the maximum time to wait for completion operations.
const CompletionTimeout = 2 * time.Second

// CompletionContext provides context for completion operations.
type CompletionContext struct {
	Executor git.GitExecutor
	Timeout  time.Duration
}

func NewCompletionContext(executor git.GitExecutor) *CompletionContext {
	return &CompletionContext{
		Executor: executor,
		Timeout:  CompletionTimeout,
	}
}

type completionResult struct {
	names []string
	err   error
}

// WithTimeout runs fn and gives up once the context timeout passes, so a slow
// git never blocks the shell. fn keeps running in the background.
func (c *CompletionContext) WithTimeout(fn func() ([]string, error)) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	done := make(chan completionResult, 1)
	go func() {
		names, err := fn()
		done <- completionResult{names: names, err: err}
	}()

	select {
	case res := <-done:
		return res.names, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("completion gave up after %s", c.Timeout)
	}
}

func (c *CompletionContext) IsInRepository() bool {
	isRepo, err := utils.IsGitRepository(c.Executor)
	if err != nil || !isRepo {
		logger.Debug("not in git repository for completion: %v", err)
		return false
	}
	return true
}

// FilterCompletions keeps the names starting with toComplete.
func FilterCompletions(names []string, toComplete string) []string {
	if toComplete == "" {
		return names
	}
	return slices.DeleteFunc(slices.Clone(names), func(name string) bool {
		return !strings.HasPrefix(name, toComplete)
	})
}

// CreateCompletionCommands adds `gitfu completion <shell>`.
func CreateCompletionCommands(rootCmd *cobra.Command) {
	completionCmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print the shell completion script",
		Long: `Print the completion script for bash, zsh or fish.

Branch names are completed for switch-branch and remove-branch.

  source <(gitfu completion bash)
  gitfu completion zsh > "${fpath[1]}/_gitfu"
  gitfu completion fish > ~/.config/fish/completions/gitfu.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shell.Supported,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletionV2(out, true)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}

	rootCmd.AddCommand(completionCmd)
}
