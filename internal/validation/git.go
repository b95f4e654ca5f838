// Package validation checks names before they reach git.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// Characters git reserves for revision syntax.
	invalidCharsRegex    = regexp.MustCompile(`[~^:?*\[\]\\]`)
	consecutiveDotsRegex = regexp.MustCompile(`\.\.`)
	invalidStartEndRegex = regexp.MustCompile(`^[./]|[./]$`)
	controlCharsRegex    = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)

// ValidateBranchName reports why name cannot be used as a branch name.
func ValidateBranchName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("cannot be empty")
	case strings.Contains(name, " "):
		return errors.New("cannot contain spaces")
	case strings.HasPrefix(name, "-"):
		return errors.New("cannot start with a dash")
	case invalidCharsRegex.MatchString(name):
		return errors.New("contains invalid characters (~^:?*[]\\)")
	case consecutiveDotsRegex.MatchString(name):
		return errors.New("cannot contain consecutive dots (..)")
	case invalidStartEndRegex.MatchString(name):
		return errors.New("cannot start or end with dots or slashes")
	case controlCharsRegex.MatchString(name):
		return errors.New("cannot contain control characters")
	case name == "HEAD" || name == "@":
		return errors.New("cannot be 'HEAD' or '@'")
	case strings.HasSuffix(name, ".lock"):
		return errors.New("cannot end with '.lock'")
	}
	return nil
}

// ValidateRemoteName reports why name cannot be used as a remote name.
// Remote names follow the branch rules but are a single path component.
func ValidateRemoteName(name string) error {
	if strings.ContainsAny(name, "/\t") {
		return errors.New("cannot contain whitespace or slashes")
	}
	if err := ValidateBranchName(name); err != nil {
		if err.Error() == "cannot contain spaces" {
			return errors.New("cannot contain whitespace or slashes")
		}
		return err
	}
	return nil
}
