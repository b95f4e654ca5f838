package git

import (
	"errors"
	"strings"
)

// ErrNoCommits is returned when HEAD does not point at a commit yet.
var ErrNoCommits = errors.New("repository has no commits")

// HasCommits reports whether HEAD resolves to a commit.
func HasCommits(executor GitExecutor) (bool, error) {
	_, err := executor.ExecuteRaw("rev-parse", "--verify", "--quiet", "HEAD")
	if err == nil {
		return true, nil
	}

	// --quiet exits 1 without output for an unborn HEAD.
	var gitErr *GitError
	if errors.As(err, &gitErr) && gitErr.ExitCode == 1 {
		return false, nil
	}
	return false, err
}

// LastCommitSubject returns the subject line of the commit at HEAD.
func LastCommitSubject(executor GitExecutor) (string, error) {
	hasCommits, err := HasCommits(executor)
	if err != nil {
		return "", err
	}
	if !hasCommits {
		return "", ErrNoCommits
	}

	return executor.ExecuteRaw("log", "-1", "--pretty=format:%s")
}

// ShortHead returns the abbreviated hash of HEAD.
func ShortHead(executor GitExecutor) (string, error) {
	return executor.ExecuteRaw("rev-parse", "--short", "HEAD")
}

// DeleteLocalBranch runs `git branch -d`, or `-D` when force is set.
func DeleteLocalBranch(executor GitExecutor, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := executor.Execute("branch", flag, name)
	return err
}

// DeleteRemoteBranch removes name from remote with `git push --delete`.
func DeleteRemoteBranch(executor GitExecutor, remote, name string) error {
	_, err := executor.Execute("push", remote, "--delete", name)
	return err
}

// Checkout switches the working tree to branch.
func Checkout(executor GitExecutor, branch string) error {
	_, err := executor.ExecuteRaw("checkout", branch)
	return err
}

// TopPaths prefixes each path with the :(top) pathspec magic so it resolves
// from the repository root regardless of the current directory.
func TopPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, ":(top)"+p)
	}
	return out
}
