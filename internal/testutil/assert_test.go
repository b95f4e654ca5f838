package testutil

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAssertErrorContains(t *testing.T) {
	AssertErrorContains(t, errors.New("branch not found"), "not found")
}

func TestAssertFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	WriteFile(t, path, "content")

	AssertFileContent(t, path, "content")
}

func TestAssertContains(t *testing.T) {
	AssertContains(t, []string{"main", "feature"}, "feature")
	AssertNotContains(t, []string{"main", "feature"}, "develop")
}
