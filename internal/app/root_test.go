package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqve/gitfu/internal/commands"
	"github.com/sqve/gitfu/internal/config"
	gitfuerrors "github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/logger"
	"github.com/sqve/gitfu/internal/testutil"
)

// isolate gives the test a clean HOME, no git or gitfu configuration and
// captured logger output.
func isolate(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(home))
	t.Setenv("GITFU_CONFIG", "")
	t.Setenv("GITFU_PLAIN", "1")

	viper.Reset()
	t.Cleanup(viper.Reset)

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	logger.SetOutput(stdout, stderr)
	t.Cleanup(func() {
		logger.SetOutput(nil, nil)
		config.Global.Plain = false
		config.Global.Debug = false
	})

	return stdout, stderr
}

func TestNewRootCommand(t *testing.T) {
	rootCmd, err := NewRootCommand()
	require.NoError(t, err)

	assert.Equal(t, "gitfu", rootCmd.Use)
	assert.True(t, rootCmd.SilenceErrors)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("plain"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	for _, expected := range []string{
		"add-staged", "check", "commit", "completion", "config",
		"init", "remove-branch", "run", "status", "switch-branch",
	} {
		assert.Contains(t, names, expected)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectedStderr string
	}{
		{
			name:         "success",
			expectedCode: 0,
		},
		{
			name:         "streamed git failure keeps git's code",
			err:          &git.GitError{ExitCode: 129, Streamed: true},
			expectedCode: 129,
		},
		{
			name:           "captured git failure prints stderr",
			err:            &git.GitError{Stderr: "error: branch 'x' not found.", ExitCode: 1},
			expectedCode:   1,
			expectedStderr: "error: branch 'x' not found.\n",
		},
		{
			name:           "captured git failure reported on stdout",
			err:            &git.GitError{Stdout: "CONFLICT (content): Merge conflict in a.txt", ExitCode: 1},
			expectedCode:   1,
			expectedStderr: "CONFLICT (content): Merge conflict in a.txt\n",
		},
		{
			name:           "captured git failure without output",
			err:            &git.GitError{Args: []string{"stash", "pop"}, ExitCode: 1},
			expectedCode:   1,
			expectedStderr: "ERROR: git stash pop failed (exit 1)\n",
		},
		{
			name:           "coded error",
			err:            gitfuerrors.ErrWipCommit("wip"),
			expectedCode:   1,
			expectedStderr: "ERROR: Last commit was a WIP.\n",
		},
		{
			name:           "plain error",
			err:            errors.New("boom"),
			expectedCode:   1,
			expectedStderr: "ERROR: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr := isolate(t)
			config.Global.Plain = true

			assert.Equal(t, tt.expectedCode, exitCode(tt.err))
			assert.Equal(t, tt.expectedStderr, stderr.String())
		})
	}
}

func TestRun(t *testing.T) {
	testutil.RequireGit(t)

	t.Run("repository commands fail outside a repository", func(t *testing.T) {
		_, stderr := isolate(t)
		testutil.Chdir(t, t.TempDir())
		t.Cleanup(commands.ResetExecutorProvider)

		code := Run([]string{"switch-branch", "main"})

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "not a git repository")
	})

	t.Run("invalid configuration is reported", func(t *testing.T) {
		_, stderr := isolate(t)
		testutil.Chdir(t, t.TempDir())
		t.Setenv("GITFU_GIT_DEFAULT_REMOTE", "bad remote")
		t.Cleanup(commands.ResetExecutorProvider)

		code := Run([]string{"config"})

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "invalid configuration")
	})

	t.Run("plain flag enables plain mode", func(t *testing.T) {
		isolate(t)
		t.Setenv("GITFU_PLAIN", "")
		testutil.Chdir(t, t.TempDir())
		t.Cleanup(commands.ResetExecutorProvider)

		code := Run([]string{"--plain", "init", "bash", "-d", "/usr/local/bin"})

		assert.Equal(t, 0, code)
		assert.True(t, config.IsPlain())
	})
}
