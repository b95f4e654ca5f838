package utils

import (
	"errors"
	"os"

	gitfuerrors "github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/git"
)

// IsGitRepository reports whether the current directory is inside a git repository.
func IsGitRepository(executor git.GitExecutor) (bool, error) {
	_, err := executor.ExecuteRaw("rev-parse", "--git-dir")
	if err == nil {
		return true, nil
	}

	// git exits 128 outside a repository.
	var gitErr *git.GitError
	if errors.As(err, &gitErr) && gitErr.ExitCode == 128 {
		return false, nil
	}
	return false, err
}

// RequireRepository returns a NOT_A_REPO error outside a git repository.
func RequireRepository(executor git.GitExecutor) error {
	isRepo, err := IsGitRepository(executor)
	if err != nil {
		return err
	}
	if !isRepo {
		cwd, _ := os.Getwd()
		return gitfuerrors.ErrNotARepo(cwd)
	}
	return nil
}

// GetRepositoryRoot returns the root directory of the current git repository.
func GetRepositoryRoot(executor git.GitExecutor) (string, error) {
	return executor.ExecuteRaw("rev-parse", "--show-toplevel")
}

// GetRepositoryPrefix returns the current directory relative to the
// repository root, with a trailing slash, or "" at the root.
func GetRepositoryPrefix(executor git.GitExecutor) (string, error) {
	return executor.ExecuteRaw("rev-parse", "--show-prefix")
}
