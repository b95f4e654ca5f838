package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/testutil"
	testgit "github.com/sqve/gitfu/internal/testutil/git"
)

func TestRunAddStaged(t *testing.T) {
	t.Run("nothing staged updates tracked files", func(t *testing.T) {
		mock := testutil.NewMockExecutor()
		useMock(t, mock, "")

		require.NoError(t, runAddStaged())

		assert.Equal(t, []string{
			"diff --staged --name-only --diff-filter=ARM",
			"add -u",
		}, mock.CommandStrings())
	})

	t.Run("re-adds staged files at the root", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("diff --staged", "a.go\npkg/b.go", nil).
			On("rev-parse --show-prefix", "", nil)
		stdout, _ := useMock(t, mock, "")

		require.NoError(t, runAddStaged())

		assert.True(t, mock.Ran("add -- a.go pkg/b.go"))
		assert.Contains(t, stdout.String(), "Re-added 2 staged files")
	})

	t.Run("re-adds staged files from a subdirectory", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("diff --staged", "a.go\npkg/b.go", nil).
			On("rev-parse --show-prefix", "pkg/", nil)
		useMock(t, mock, "")

		require.NoError(t, runAddStaged())

		assert.True(t, mock.Ran("add -- :(top)a.go b.go"))
	})

	t.Run("add failure keeps git's error", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("diff --staged", "a.go", nil).
			Fail("add --", "fatal: Unable to create '.git/index.lock': File exists.")
		useMock(t, mock, "")

		err := runAddStaged()

		assert.True(t, errors.IsGitfuError(err, errors.ErrCodeGitOperation))
		var gitErr *git.GitError
		require.ErrorAs(t, err, &gitErr)
		assert.Contains(t, gitErr.Stderr, "index.lock")
	})
}

func TestRelativeToPrefix(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		prefix   string
		expected []string
	}{
		{"root", []string{"a", "b/c"}, "", []string{"a", "b/c"}},
		{"inside prefix", []string{"b/c", "b/d/e"}, "b/", []string{"c", "d/e"}},
		{"outside prefix", []string{"a"}, "b/", []string{":(top)a"}},
		{"similar name is outside", []string{"bb/c"}, "b/", []string{":(top)bb/c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, relativeToPrefix(tt.paths, tt.prefix))
		})
	}
}

func TestRunAddStaged_Repository(t *testing.T) {
	repo := testgit.NewTestRepo(t)
	repo.WriteFile("sub/file.txt", "one\n")
	repo.Add("sub/file.txt")
	repo.WriteFile("sub/file.txt", "two\n")
	testutil.Chdir(t, filepath.Join(repo.Path, "sub"))

	useMock(t, testutil.NewMockExecutor(), "")
	SetExecutorProvider(NewExecutorProviderWith(git.NewRunner(false), nil))

	require.NoError(t, runAddStaged())

	assert.Empty(t, repo.Git("diff", "--name-only"))
	assert.Equal(t, "sub/file.txt", repo.Git("diff", "--staged", "--name-only"))
}
