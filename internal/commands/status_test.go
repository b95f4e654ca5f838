package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqve/gitfu/internal/testutil"
)

func TestRunStatus(t *testing.T) {
	t.Run("adds a blank line after git status", func(t *testing.T) {
		mock := testutil.NewMockExecutor().On("status", "On branch main\nnothing to commit", nil)
		useMock(t, mock, "")

		var out bytes.Buffer
		require.NoError(t, runStatus(&out, []string{"-sb"}))

		assert.Equal(t, "On branch main\nnothing to commit\n\n", out.String())
		assert.Equal(t, []string{"status -sb"}, mock.CommandStrings())
	})

	t.Run("returns git errors", func(t *testing.T) {
		mock := testutil.NewMockExecutor().Fail("status", "fatal: not a git repository")
		useMock(t, mock, "")

		var out bytes.Buffer
		err := runStatus(&out, nil)

		require.Error(t, err)
		assert.Equal(t, "fatal: not a git repository", err.Error())
		assert.Empty(t, out.String())
	})
}
