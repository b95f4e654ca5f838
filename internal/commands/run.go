package commands

import (
	"io"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command the shell shim sends every git
// invocation through.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <git args...>",
		Short: "Run git, routing shimmed commands through gitfu",
		Long: `Run git with the given arguments. commit, status and check are handled
by gitfu; everything else goes to git unchanged, keeping its exit code.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShim(cmd.OutOrStdout(), args)
		},
	}
}

func runShim(out io.Writer, args []string) error {
	executor := DefaultExecutorProvider.GetExecutor()

	if len(args) == 0 {
		return executor.ExecutePassthrough("-h")
	}

	switch args[0] {
	case "commit":
		return runCommit(args[1:])
	case "status":
		return runStatus(out, args[1:])
	case "check":
		return runCheck(out, args[1:])
	default:
		return executor.ExecutePassthrough(args...)
	}
}
