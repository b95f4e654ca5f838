package commands

import (
	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/prompt"
)

// Asker answers the yes/no questions commands put to the user.
type Asker interface {
	Confirm(question string) (bool, error)
	ConfirmDeletion(names ...string) (bool, error)
}

// ExecutorProvider manages git executor and prompt instances for commands.
type ExecutorProvider struct {
	executor git.GitExecutor
	asker    Asker
}

// NewExecutorProvider creates a provider that builds a git runner on first
// use, after configuration has decided whether git output is coloured.
func NewExecutorProvider() *ExecutorProvider {
	return &ExecutorProvider{}
}

// NewExecutorProviderWith creates a provider with fixed instances.
// This is primarily used for testing.
func NewExecutorProviderWith(executor git.GitExecutor, asker Asker) *ExecutorProvider {
	return &ExecutorProvider{
		executor: executor,
		asker:    asker,
	}
}

// GetExecutor returns the configured git executor.
func (ep *ExecutorProvider) GetExecutor() git.GitExecutor {
	if ep.executor == nil {
		ep.executor = git.NewRunner(config.ColorEnabled())
	}
	return ep.executor
}

// GetAsker returns the prompt used for confirmations.
func (ep *ExecutorProvider) GetAsker() Asker {
	if ep.asker == nil {
		ep.asker = prompt.NewTerminal()
	}
	return ep.asker
}

// Global executor provider instance for commands.
var DefaultExecutorProvider = NewExecutorProvider()

// SetExecutorProvider sets the global executor provider.
// This is primarily used for testing.
func SetExecutorProvider(provider *ExecutorProvider) {
	DefaultExecutorProvider = provider
}

// ResetExecutorProvider resets the global executor provider to default.
func ResetExecutorProvider() {
	DefaultExecutorProvider = NewExecutorProvider()
}
