package branch

import (
	"strings"
)

// BlockingFiles are the paths git reported as preventing a checkout.
// Paths are relative to the repository root.
type BlockingFiles struct {
	Tracked   []string
	Untracked []string
}

// All returns tracked then untracked paths.
func (b BlockingFiles) All() []string {
	out := make([]string, 0, len(b.Tracked)+len(b.Untracked))
	out = append(out, b.Tracked...)
	return append(out, b.Untracked...)
}

func (b BlockingFiles) Empty() bool {
	return len(b.Tracked) == 0 && len(b.Untracked) == 0
}

const (
	trackedHeader   = "Your local changes to the following files would be overwritten"
	untrackedHeader = "The following untracked working tree files would be"
)

var boilerplatePrefixes = []string{
	"Please commit your changes or stash them",
	"Please move or remove them",
	"Aborting",
	"hint:",
}

// ParseBlockingFiles extracts the blocking paths from the stderr of a failed
// checkout. This scrapes git's human-readable message: if git rewords it,
// paths end up in the wrong bucket or are dropped.
func ParseBlockingFiles(stderr string) BlockingFiles {
	var files BlockingFiles
	var bucket *[]string

	for _, line := range strings.Split(stderr, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.Contains(trimmed, trackedHeader):
			bucket = &files.Tracked
			continue
		case strings.Contains(trimmed, untrackedHeader):
			bucket = &files.Untracked
			continue
		case isBoilerplate(trimmed):
			continue
		}

		if bucket != nil {
			*bucket = append(*bucket, trimmed)
		}
	}

	return files
}

func isBoilerplate(line string) bool {
	for _, prefix := range boilerplatePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
