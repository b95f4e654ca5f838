package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// Command represents a gitfu command that can be registered with the command registry.
type Command interface {
	// Name returns the command name (e.g., "switch-branch", "check").
	Name() string

	// Command returns the cobra.Command instance for this command.
	Command() *cobra.Command

	// RequiresRepository reports whether the command only works inside a git repository.
	RequiresRepository() bool
}

// BaseCommand provides common functionality for all gitfu commands.
type BaseCommand struct {
	name               string
	cmd                *cobra.Command
	requiresRepository bool
}

// NewBaseCommand creates a new BaseCommand with the given parameters.
func NewBaseCommand(name string, cmd *cobra.Command, requiresRepository bool) *BaseCommand {
	return &BaseCommand{
		name:               name,
		cmd:                cmd,
		requiresRepository: requiresRepository,
	}
}

func (b *BaseCommand) Name() string {
	return b.name
}

func (b *BaseCommand) Command() *cobra.Command {
	return b.cmd
}

func (b *BaseCommand) RequiresRepository() bool {
	return b.requiresRepository
}

// Registry manages the registration and discovery of gitfu commands.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s is already registered", name)
	}

	r.commands[name] = cmd
	return nil
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// List returns all registered command names in alphabetical order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AttachToRoot attaches all registered commands to the provided root command.
func (r *Registry) AttachToRoot(rootCmd *cobra.Command) error {
	for _, name := range r.List() {
		cobraCmd := r.commands[name].Command()
		if cobraCmd == nil {
			return fmt.Errorf("command %s returned nil cobra.Command", name)
		}

		rootCmd.AddCommand(cobraCmd)
	}
	return nil
}

// RequiresRepository reports whether the registered command behind cmd, or
// any of its parents, needs a git repository.
func (r *Registry) RequiresRepository(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if registered, ok := r.commands[c.Name()]; ok {
			return registered.RequiresRepository()
		}
	}
	return false
}

// NewBuiltinRegistry returns a registry holding every gitfu command.
func NewBuiltinRegistry() (*Registry, error) {
	registry := NewRegistry()

	builtins := []Command{
		NewBaseCommand("remove-branch", NewRemoveBranchCmd(), true),
		NewBaseCommand("switch-branch", NewSwitchBranchCmd(), true),
		NewBaseCommand("add-staged", NewAddStagedCmd(), true),
		NewBaseCommand("check", NewCheckCmd(), true),
		NewBaseCommand("commit", NewCommitCmd(), true),
		NewBaseCommand("status", NewStatusCmd(), false),
		NewBaseCommand("run", NewRunCmd(), false),
		NewBaseCommand("init", NewInitCmd(), false),
		NewBaseCommand("config", NewConfigCmd(), false),
	}

	for _, cmd := range builtins {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("failed to register command %s: %w", cmd.Name(), err)
		}
	}

	return registry, nil
}
