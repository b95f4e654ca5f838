package branch

import (
	"fmt"
	"strings"
)

// BranchNotFoundError is returned when a query matches no branch.
type BranchNotFoundError struct {
	Query string
	// Remote is set when the lookup was against remote-tracking branches.
	Remote      string
	Suggestions []string
}

func (e *BranchNotFoundError) Error() string {
	var b strings.Builder
	if e.Remote != "" {
		fmt.Fprintf(&b, "No branch matching %q found on remote %q.", e.Query, e.Remote)
	} else {
		fmt.Fprintf(&b, "No branch found matching %q.", e.Query)
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nDid you mean:")
		writeList(&b, e.Suggestions)
	}
	return b.String()
}

// AmbiguousQueryError is returned when a query matches several branches.
// Nothing is modified when it is returned.
type AmbiguousQueryError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousQueryError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "More than one branch matches %q:", e.Query)
	writeList(&b, e.Candidates)
	b.WriteString("\n\nTry a more specific query.")
	return b.String()
}

func writeList(b *strings.Builder, names []string) {
	for _, name := range names {
		b.WriteString("\n - ")
		b.WriteString(name)
	}
}
