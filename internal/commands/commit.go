package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	gitfuerrors "github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/git"
)

// NewCommitCmd creates the commit shim
func NewCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit [git commit args...]",
		Short: "git commit, refusing to build on top of a WIP commit",
		Long: `Run git commit with the given arguments, unless the last commit is a
work-in-progress commit (its subject starts with a word containing "wip").`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(args)
		},
	}
}

func runCommit(args []string) error {
	executor := DefaultExecutorProvider.GetExecutor()

	if err := preventWipCommit(executor); err != nil {
		return err
	}

	return executor.ExecutePassthrough(append([]string{"commit"}, args...)...)
}

// preventWipCommit fails when the subject of HEAD marks it as a WIP.
func preventWipCommit(executor git.GitExecutor) error {
	subject, err := git.LastCommitSubject(executor)
	if errors.Is(err, git.ErrNoCommits) {
		return nil
	}
	if err != nil {
		return err
	}

	if isWipSubject(subject) {
		return gitfuerrors.ErrWipCommit(subject)
	}
	return nil
}

func isWipSubject(subject string) bool {
	fields := strings.Fields(subject)
	if len(fields) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(fields[0]), "wip")
}
