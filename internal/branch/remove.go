package branch

import (
	"slices"

	"github.com/dustin/go-humanize/english"

	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/logger"
)

// Confirmer asks the user to approve deleting the named branches.
type Confirmer interface {
	ConfirmDeletion(names ...string) (bool, error)
}

// Remover deletes branches locally and on a remote. Every deletion is
// preceded by a confirmation naming exactly the branches involved.
type Remover struct {
	executor  git.GitExecutor
	lister    *Lister
	confirmer Confirmer
	protected []string
}

// NewRemover creates a Remover. Branches in protected are never pruned.
func NewRemover(executor git.GitExecutor, confirmer Confirmer, protected []string) *Remover {
	return &Remover{
		executor:  executor,
		lister:    NewLister(executor),
		confirmer: confirmer,
		protected: protected,
	}
}

// RemoveBranch deletes the local branch matching query and its counterpart
// on remote. When no local branch matches, the query is resolved against the
// remote branches instead. The user is asked once; the answer covers both
// deletions.
func (r *Remover) RemoveBranch(query, remote string, force bool) error {
	local, err := r.lister.ListLocal()
	if err != nil {
		return err
	}

	var name string
	confirmed := false

	match := Resolve(query, local)
	switch match.Kind {
	case Ambiguous:
		return &AmbiguousQueryError{Query: query, Candidates: match.Names}
	case ExactlyOne:
		name = match.Name()
		ok, err := r.confirmer.ConfirmDeletion(name)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("Aborting")
			return nil
		}
		confirmed = true

		if err := git.DeleteLocalBranch(r.executor, name, force); err != nil {
			return err
		}
		logger.Success("Deleted local branch %s", name)
	case NotFound:
		logger.Warning("Unable to find any local branches. Searching remote-only branches...")
	}

	remoteBranches, err := r.lister.ListRemote(remote)
	if err != nil {
		return err
	}

	if name != "" {
		if !slices.Contains(remoteBranches, name) {
			logger.Debug("%s has no counterpart on %s", name, remote)
			return nil
		}
	} else {
		match := Resolve(query, remoteBranches)
		switch match.Kind {
		case NotFound:
			return &BranchNotFoundError{
				Query:       query,
				Remote:      remote,
				Suggestions: Suggest(query, append(append([]string(nil), local...), remoteBranches...), 3),
			}
		case Ambiguous:
			return &AmbiguousQueryError{Query: query, Candidates: match.Names}
		case ExactlyOne:
			name = match.Name()
		}
	}

	if !confirmed {
		ok, err := r.confirmer.ConfirmDeletion(remote + "/" + name)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("Aborting")
			return nil
		}
	}

	if err := git.DeleteRemoteBranch(r.executor, remote, name); err != nil {
		return err
	}
	logger.Success("Deleted remote branch %s/%s", remote, name)
	return nil
}

// PruneMerged deletes every local and remote branch already merged into the
// current branch after a single confirmation. Deletions are independent:
// a failure is reported and the rest of the batch still runs.
func (r *Remover) PruneMerged(remote string, force bool) error {
	current, local, err := r.lister.ListMergedLocal(r.protected)
	if err != nil {
		return err
	}

	merged, err := r.lister.ListMergedRemote(remote, current)
	if err != nil {
		return err
	}
	var remoteBranches []string
	for _, name := range merged {
		if !slices.Contains(r.protected, name) {
			remoteBranches = append(remoteBranches, name)
		}
	}

	if len(local) == 0 && len(remoteBranches) == 0 {
		logger.Info("No branches to delete!")
		return nil
	}

	names := slices.Clone(local)
	for _, name := range remoteBranches {
		names = append(names, remote+"/"+name)
	}

	ok, err := r.confirmer.ConfirmDeletion(names...)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("Aborting")
		return nil
	}

	total := len(names)
	step := 0
	failed := 0

	for _, name := range local {
		step++
		logger.Info("%s", logger.StepFormat(step, total, "Deleting "+name))
		if err := git.DeleteLocalBranch(r.executor, name, force); err != nil {
			failed++
			logger.Warning("Failed to delete %s: %v", name, err)
		}
	}

	for _, name := range remoteBranches {
		step++
		logger.Info("%s", logger.StepFormat(step, total, "Deleting "+remote+"/"+name))
		if err := git.DeleteRemoteBranch(r.executor, remote, name); err != nil {
			failed++
			logger.Warning("Failed to delete %s/%s: %v", remote, name, err)
		}
	}

	if failed > 0 {
		logger.Warning("%d of %d deletions failed", failed, total)
		return nil
	}
	logger.Success("Deleted %d merged %s", total, english.PluralWord(total, "branch", "branches"))
	return nil
}
