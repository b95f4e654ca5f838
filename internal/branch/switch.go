package branch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/logger"
)

// Switcher checks out branches by partial name.
type Switcher struct {
	executor  git.GitExecutor
	lister    *Lister
	wipMarker string
}

// NewSwitcher creates a Switcher. wipMarker is the subject used for WIP
// commits created by StrategyCommit.
func NewSwitcher(executor git.GitExecutor, wipMarker string) *Switcher {
	return &Switcher{
		executor:  executor,
		lister:    NewLister(executor),
		wipMarker: wipMarker,
	}
}

// ListBranches returns the coloured branch listing shown when no query is given.
func (s *Switcher) ListBranches() (string, error) {
	out, err := s.executor.Execute("branch")
	if err != nil {
		return "", err
	}
	return "These are the branches you can switch to:\n" + out, nil
}

// Switch checks out the single local branch matching query and returns its
// name. If the checkout is blocked by local changes and strategy is not
// StrategyNone, the changes are dealt with and the checkout retried once.
// A WIP commit left by an earlier switch away from the destination is undone.
func (s *Switcher) Switch(query string, strategy ChangeStrategy) (string, error) {
	local, err := s.lister.ListLocal()
	if err != nil {
		return "", err
	}

	match := Resolve(query, local)
	switch match.Kind {
	case NotFound:
		return "", &BranchNotFoundError{Query: query, Suggestions: Suggest(query, local, 3)}
	case Ambiguous:
		return "", &AmbiguousQueryError{Query: query, Candidates: match.Names}
	case ExactlyOne:
	}

	name := match.Name()
	if err := s.checkout(name, strategy); err != nil {
		return name, err
	}
	return name, s.dropWipCommit()
}

func (s *Switcher) checkout(name string, strategy ChangeStrategy) error {
	err := git.Checkout(s.executor, name)
	if err == nil || strategy == StrategyNone {
		return err
	}

	var gitErr *git.GitError
	if !errors.As(err, &gitErr) {
		return err
	}
	files := ParseBlockingFiles(gitErr.Stderr)
	logger.Debug("checkout blocked: %d tracked, %d untracked", len(files.Tracked), len(files.Untracked))

	switch strategy {
	case StrategyDiscard:
		return s.discard(name, files, err)
	case StrategyStash:
		return s.stash(name)
	case StrategyCommit:
		return s.commit(name, files, err)
	case StrategyNone:
		return err
	}
	return fmt.Errorf("unknown change strategy %v", strategy)
}

// discard unstages and reverts tracked files, deletes untracked ones and
// retries the checkout. A staged file that HEAD does not know becomes
// untracked once unstaged, so it is deleted instead of reverted.
func (s *Switcher) discard(name string, files BlockingFiles, checkoutErr error) error {
	if files.Empty() {
		return checkoutErr
	}

	untracked := slices.Clone(files.Untracked)
	if len(files.Tracked) > 0 {
		if _, err := s.executor.ExecuteRaw(append([]string{"reset", "-q", "--"}, git.TopPaths(files.Tracked)...)...); err != nil {
			return err
		}

		known, err := s.knownToHead(files.Tracked)
		if err != nil {
			return err
		}

		var restore []string
		for _, path := range files.Tracked {
			if slices.Contains(known, path) {
				restore = append(restore, path)
			} else {
				untracked = append(untracked, path)
			}
		}

		if len(restore) > 0 {
			if _, err := s.executor.ExecuteRaw(append([]string{"checkout", "--"}, git.TopPaths(restore)...)...); err != nil {
				return err
			}
		}
	}

	if paths := git.TopPaths(untracked); len(paths) > 0 {
		if _, err := s.executor.ExecuteRaw(append([]string{"clean", "-f", "-q", "--"}, paths...)...); err != nil {
			return err
		}
	}

	return git.Checkout(s.executor, name)
}

// knownToHead returns the paths the index tracks, relative to the repository
// root. Called right after a reset, so the index matches HEAD for paths.
func (s *Switcher) knownToHead(paths []string) ([]string, error) {
	out, err := s.executor.ExecuteRaw(append([]string{"ls-files", "--full-name", "--"}, git.TopPaths(paths)...)...)
	if err != nil {
		return nil, err
	}

	var known []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			known = append(known, line)
		}
	}
	return known, nil
}

// stash shelves every local change, retries the checkout and re-applies the
// changes on the destination. Conflicts from the re-apply are left for the
// user; the stash entry is kept by git in that case.
func (s *Switcher) stash(name string) error {
	out, err := s.executor.ExecuteRaw("stash", "push", "--include-untracked")
	if err != nil {
		return err
	}
	stashed := !strings.Contains(out, "No local changes to save")

	if err := git.Checkout(s.executor, name); err != nil {
		if stashed {
			if _, popErr := s.executor.ExecuteRaw("stash", "pop"); popErr != nil {
				logger.Warning("Changes are still stashed: %v", popErr)
			}
		}
		return err
	}

	if !stashed {
		return nil
	}
	_, err = s.executor.ExecuteRaw("stash", "pop")
	return err
}

// commit records the blocking files in a WIP commit on the current branch
// and retries the checkout.
func (s *Switcher) commit(name string, files BlockingFiles, checkoutErr error) error {
	if files.Empty() {
		return checkoutErr
	}

	if _, err := s.executor.ExecuteRaw(append([]string{"add", "--"}, git.TopPaths(files.All())...)...); err != nil {
		return err
	}
	if _, err := s.executor.ExecuteRaw("commit", "-m", s.wipMarker); err != nil {
		return err
	}
	logger.Info("Saved local changes in a %q commit", s.wipMarker)

	return git.Checkout(s.executor, name)
}

// dropWipCommit undoes a WIP commit at HEAD, keeping its changes staged.
func (s *Switcher) dropWipCommit() error {
	subject, err := git.LastCommitSubject(s.executor)
	if errors.Is(err, git.ErrNoCommits) {
		return nil
	}
	if err != nil {
		return err
	}
	if subject != s.wipMarker {
		return nil
	}

	if _, err := s.executor.ExecuteRaw("reset", "--soft", "HEAD~1"); err != nil {
		return err
	}
	logger.Info("Restored changes from the %q commit", s.wipMarker)
	return nil
}
