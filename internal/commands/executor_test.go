package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/prompt"
	"github.com/sqve/gitfu/internal/testutil"
)

func TestExecutorProvider(t *testing.T) {
	t.Run("builds a runner and terminal prompt lazily", func(t *testing.T) {
		provider := NewExecutorProvider()

		assert.IsType(t, &git.Runner{}, provider.GetExecutor())
		assert.Same(t, provider.GetExecutor(), provider.GetExecutor())
		assert.IsType(t, &prompt.Confirmer{}, provider.GetAsker())
	})

	t.Run("uses the given instances", func(t *testing.T) {
		mock := testutil.NewMockExecutor()
		provider := NewExecutorProviderWith(mock, nil)

		assert.Same(t, mock, provider.GetExecutor())
	})

	t.Run("set and reset the default provider", func(t *testing.T) {
		original := DefaultExecutorProvider
		t.Cleanup(func() { DefaultExecutorProvider = original })

		custom := NewExecutorProviderWith(testutil.NewMockExecutor(), nil)
		SetExecutorProvider(custom)
		assert.Same(t, custom, DefaultExecutorProvider)

		ResetExecutorProvider()
		assert.NotSame(t, custom, DefaultExecutorProvider)
	})
}
