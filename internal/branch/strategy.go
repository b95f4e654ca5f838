package branch

import (
	"fmt"
)

// ChangeStrategy selects how a checkout blocked by local changes is
// unblocked.
type ChangeStrategy int

const (
	// StrategyNone surfaces the checkout failure unchanged.
	StrategyNone ChangeStrategy = iota
	// StrategyDiscard throws the blocking changes away.
	StrategyDiscard
	// StrategyStash carries the changes over to the destination branch.
	StrategyStash
	// StrategyCommit parks the changes in a WIP commit on the source branch.
	StrategyCommit
)

func (s ChangeStrategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyDiscard:
		return "discard"
	case StrategyStash:
		return "stash"
	case StrategyCommit:
		return "commit"
	default:
		return fmt.Sprintf("ChangeStrategy(%d)", int(s))
	}
}

// StrategyFromFlags maps the switch-branch flags to a strategy. At most one
// flag may be set.
func StrategyFromFlags(force, stash, commit bool) (ChangeStrategy, error) {
	strategy := StrategyNone
	count := 0
	if force {
		strategy = StrategyDiscard
		count++
	}
	if stash {
		strategy = StrategyStash
		count++
	}
	if commit {
		strategy = StrategyCommit
		count++
	}

	if count > 1 {
		return StrategyNone, fmt.Errorf("--force, --stash and --commit are mutually exclusive")
	}
	return strategy, nil
}
