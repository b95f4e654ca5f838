package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/shell"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var directory string

	cmd := &cobra.Command{
		Use:       "init [bash|zsh|fish]",
		Short:     "Output the shell functions that route git through gitfu",
		ValidArgs: shell.Supported,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `Output a git shell function that sends every git invocation through
'gitfu run', plus switch-branch, remove-branch and add-staged functions.

The shell defaults to bash. The functions call the gitfu binary in the
directory given by --directory, which defaults to the directory of the
running executable.`,
		Example: `  eval "$(gitfu init bash)"        # add to ~/.bashrc
  eval "$(gitfu init zsh)"         # add to ~/.zshrc
  gitfu init fish | source         # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "bash"
			if len(args) > 0 {
				name = args[0]
			}
			return runInit(cmd.OutOrStdout(), name, directory)
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", "", "Directory containing the gitfu binary")

	return cmd
}

func runInit(out io.Writer, name, directory string) error {
	if directory == "" {
		dir, err := executableDir()
		if err != nil {
			return err
		}
		directory = dir
	}

	script, err := shell.Generate(name, directory)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, script)
	return err
}

func executableDir() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate the gitfu executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Dir(path), nil
}
