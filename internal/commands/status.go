package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status shim
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "status [git status args...]",
		Short:              "git status followed by a blank line",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.OutOrStdout(), args)
		},
	}
}

func runStatus(out io.Writer, args []string) error {
	output, err := DefaultExecutorProvider.GetExecutor().Execute(append([]string{"status"}, args...)...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s\n\n", output)
	return err
}
