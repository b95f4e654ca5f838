package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqve/gitfu/internal/branch"
	"github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/testutil"
)

func TestNewRemoveBranchCmd(t *testing.T) {
	cmd := NewRemoveBranchCmd()

	assert.Equal(t, "remove-branch [query]", cmd.Use)
	assert.Contains(t, cmd.Aliases, "rb")
	testutil.AssertFlagExists(t, cmd, "force", testutil.Ptr("false"), "bool", "f")
	testutil.AssertFlagExists(t, cmd, "remote", testutil.Ptr(""), "string", "r")
	testutil.AssertFlagExists(t, cmd, "prune", testutil.Ptr("false"), "bool", "")
}

func TestRunRemoveBranch(t *testing.T) {
	t.Run("requires a branch name", func(t *testing.T) {
		mock := testutil.NewMockExecutor()
		useMock(t, mock, "")

		err := runRemoveBranch("", "origin", false, false)

		assert.True(t, errors.IsGitfuError(err, errors.ErrCodeInvalidArgs))
		assert.Equal(t, "Branch name required.", err.Error())
		assert.Empty(t, mock.Commands)
	})

	t.Run("prune does not take a branch name", func(t *testing.T) {
		mock := testutil.NewMockExecutor()
		useMock(t, mock, "")

		err := runRemoveBranch("feature", "origin", false, true)

		testutil.AssertErrorContains(t, err, "--prune does not take a branch name")
		assert.True(t, errors.IsGitfuError(err, errors.ErrCodeInvalidArgs))
		assert.Empty(t, mock.Commands)
	})

	t.Run("deletes locally and on the default remote", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("branch", "* main\n  bugfix-42", nil).
			On("branch -r", "  origin/bugfix-42\n  origin/main", nil)
		stdout, _ := useMock(t, mock, "y\n")

		_, err := executeCommand(NewRemoveBranchCmd(), "bugfix")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"branch",
			"branch -d bugfix-42",
			"branch -r",
			"push origin --delete bugfix-42",
		}, mock.CommandStrings())
		assert.Contains(t, stdout.String(), "Deleted remote branch origin/bugfix-42")
	})

	t.Run("remote comes from config", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("branch", "* main", nil).
			On("branch -r", "  upstream/old-topic", nil)
		useMock(t, mock, "y\n")
		viper.Set("git.default_remote", "upstream")

		_, err := executeCommand(NewRemoveBranchCmd(), "old")

		require.NoError(t, err)
		assert.True(t, mock.Ran("push upstream --delete old-topic"))
	})

	t.Run("remote flag wins over config", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("branch", "* main", nil).
			On("branch -r", "  fork/old-topic", nil)
		useMock(t, mock, "y\n")
		viper.Set("git.default_remote", "upstream")

		_, err := executeCommand(NewRemoveBranchCmd(), "old", "-r", "fork")

		require.NoError(t, err)
		assert.True(t, mock.Ran("push fork --delete old-topic"))
	})

	t.Run("unknown branch", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("branch", "* main", nil).
			On("branch -r", "  origin/main", nil)
		useMock(t, mock, "")

		_, err := executeCommand(NewRemoveBranchCmd(), "nope")

		var notFound *branch.BranchNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "origin", notFound.Remote)
	})

	t.Run("prune merged branches", func(t *testing.T) {
		mock := testutil.NewMockExecutor().
			On("branch --merged", "* main\n  done-1\n  master", nil).
			On("branch -r --merged", "  origin/done-1\n  origin/main", nil)
		stdout, _ := useMock(t, mock, "y\n")

		_, err := executeCommand(NewRemoveBranchCmd(), "--prune")

		require.NoError(t, err)
		commands := mock.CommandStrings()
		testutil.AssertContains(t, commands, "branch -d done-1")
		testutil.AssertContains(t, commands, "push origin --delete done-1")
		testutil.AssertNotContains(t, commands, "branch -d master")
		testutil.AssertNotContains(t, commands, "push origin --delete main")
		assert.Contains(t, stdout.String(), "[1/2] Deleting done-1")
	})
}
