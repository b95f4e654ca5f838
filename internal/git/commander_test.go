package git

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitfuerrors "github.com/sqve/gitfu/internal/errors"
)

func TestBinaryPath(t *testing.T) {
	t.Run("resolves git once", func(t *testing.T) {
		t.Setenv(BinaryEnv, "")
		calls := 0
		b := &Binary{lookPath: func(name string) (string, error) {
			calls++
			assert.Equal(t, "git", name)
			return "/usr/bin/git", nil
		}}

		first, err := b.Path()
		require.NoError(t, err)
		second, err := b.Path()
		require.NoError(t, err)

		assert.Equal(t, "/usr/bin/git", first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("honours override", func(t *testing.T) {
		t.Setenv(BinaryEnv, "git-2.45")
		var looked string
		b := &Binary{lookPath: func(name string) (string, error) {
			looked = name
			return "/opt/git/bin/git-2.45", nil
		}}

		path, err := b.Path()
		require.NoError(t, err)

		assert.Equal(t, "git-2.45", looked)
		assert.Equal(t, "/opt/git/bin/git-2.45", path)
	})

	t.Run("makes relative paths absolute", func(t *testing.T) {
		t.Setenv(BinaryEnv, "")
		b := &Binary{lookPath: func(string) (string, error) {
			return filepath.Join("bin", "git"), nil
		}}

		path, err := b.Path()
		require.NoError(t, err)

		assert.True(t, filepath.IsAbs(path), "expected absolute path, got %s", path)
	})

	t.Run("reports missing git", func(t *testing.T) {
		t.Setenv(BinaryEnv, "")
		b := &Binary{lookPath: func(string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		}}

		_, err := b.Path()
		require.Error(t, err)
		assert.True(t, gitfuerrors.IsGitfuError(err, gitfuerrors.ErrCodeGitNotFound))

		_, again := b.Path()
		assert.Equal(t, err, again)
	})
}

func TestGitErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *GitError
		want string
	}{
		{
			name: "uses stderr",
			err:  &GitError{Args: []string{"checkout", "nope"}, Stderr: "error: pathspec 'nope' did not match", ExitCode: 1},
			want: "error: pathspec 'nope' did not match",
		},
		{
			name: "falls back to stdout",
			err:  &GitError{Args: []string{"stash", "pop"}, Stdout: "CONFLICT (content): Merge conflict in a.txt", ExitCode: 1},
			want: "CONFLICT (content): Merge conflict in a.txt",
		},
		{
			name: "falls back to command and exit code",
			err:  &GitError{Args: []string{"push", "origin", "--delete", "x"}, ExitCode: 128},
			want: "git push origin --delete x failed (exit 128)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
