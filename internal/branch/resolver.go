// Package branch resolves branch queries and implements the removal and
// switch workflows on top of a git.GitExecutor.
package branch

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// MatchKind classifies the outcome of resolving a query.
type MatchKind int

const (
	NotFound MatchKind = iota
	ExactlyOne
	Ambiguous
)

func (k MatchKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ExactlyOne:
		return "exactly one"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// MatchResult holds the names a query matched. Names is empty for NotFound,
// has one entry for ExactlyOne and two or more, sorted, for Ambiguous.
type MatchResult struct {
	Kind  MatchKind
	Names []string
}

// Name returns the single match, or "" unless Kind is ExactlyOne.
func (r MatchResult) Name() string {
	if r.Kind != ExactlyOne {
		return ""
	}
	return r.Names[0]
}

// Resolve matches query as a case-sensitive substring of each candidate.
// An empty query matches every candidate.
func Resolve(query string, candidates []string) MatchResult {
	var names []string
	for _, candidate := range candidates {
		if strings.Contains(candidate, query) {
			names = append(names, candidate)
		}
	}

	slices.Sort(names)
	names = slices.Compact(names)

	switch len(names) {
	case 0:
		return MatchResult{Kind: NotFound}
	case 1:
		return MatchResult{Kind: ExactlyOne, Names: names}
	default:
		return MatchResult{Kind: Ambiguous, Names: names}
	}
}

// Suggest returns up to limit candidates that fuzzy-match query, best first.
// Used for did-you-mean hints only; a suggestion is never acted on.
func Suggest(query string, candidates []string, limit int) []string {
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(query, candidates)
	var out []string
	for _, m := range matches {
		if slices.Contains(out, m.Str) {
			continue
		}
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
