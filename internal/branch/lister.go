package branch

import (
	"slices"
	"strings"

	"github.com/sqve/gitfu/internal/git"
)

// Lister reads branch names from git. All listings run without colour so
// the output can be parsed.
type Lister struct {
	executor git.GitExecutor
}

func NewLister(executor git.GitExecutor) *Lister {
	return &Lister{executor: executor}
}

// ListLocal returns every local branch.
func (l *Lister) ListLocal() ([]string, error) {
	out, err := l.executor.ExecuteRaw("branch")
	if err != nil {
		return nil, err
	}
	return parseLocalBranches(out), nil
}

// ListRemote returns the branches of remote with the "<remote>/" prefix
// removed. The symbolic HEAD entry is never included.
func (l *Lister) ListRemote(remote string) ([]string, error) {
	out, err := l.executor.ExecuteRaw("branch", "-r")
	if err != nil {
		return nil, err
	}
	return parseRemoteBranches(out, remote), nil
}

// ListMergedLocal returns the current branch and the local branches already
// merged into it. The current branch and protected branches are excluded.
func (l *Lister) ListMergedLocal(protected []string) (current string, names []string, err error) {
	out, err := l.executor.ExecuteRaw("branch", "--merged")
	if err != nil {
		return "", nil, err
	}

	current, merged := parseMergedBranches(out)
	for _, name := range merged {
		if !slices.Contains(protected, name) {
			names = append(names, name)
		}
	}
	return current, names, nil
}

// ListMergedRemote returns the branches of remote merged into HEAD, without
// the counterpart of current.
func (l *Lister) ListMergedRemote(remote, current string) ([]string, error) {
	out, err := l.executor.ExecuteRaw("branch", "-r", "--merged")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, name := range parseRemoteBranches(out, remote) {
		if current != "" && name == current {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// parseLocalBranches strips the current (*) and other-worktree (+) markers.
// A detached HEAD line such as "* (HEAD detached at 1a2b3c)" is not a branch.
func parseLocalBranches(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		name := trimMarker(line)
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// parseMergedBranches splits `git branch --merged` output into the current
// branch and the rest. Branches checked out in another worktree are skipped
// since git refuses to delete them.
func parseMergedBranches(output string) (current string, names []string) {
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		name := trimMarker(line)
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "*"):
			current = name
		case strings.HasPrefix(trimmed, "+"):
		default:
			names = append(names, name)
		}
	}
	return current, names
}

// parseRemoteBranches keeps the entries of remote. Only the first field is
// used, which drops the "-> origin/main" part of the symbolic HEAD line.
func parseRemoteBranches(output, remote string) []string {
	prefix := remote + "/"

	var names []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], prefix) {
			continue
		}

		name := strings.TrimPrefix(fields[0], prefix)
		if name == "" || name == "HEAD" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func trimMarker(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "*+")
	return strings.TrimSpace(line)
}
