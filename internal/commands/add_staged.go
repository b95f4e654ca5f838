package commands

import (
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/logger"
	"github.com/sqve/gitfu/internal/utils"
)

// NewAddStagedCmd creates the add-staged command
func NewAddStagedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-staged",
		Short: "Re-add files that are already staged",
		Long: `Stage the current contents of every file that is already staged.

Useful after a formatter rewrote staged files. With nothing staged, all
tracked files are updated instead (git add -u).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddStaged()
		},
	}
}

func runAddStaged() error {
	executor := DefaultExecutorProvider.GetExecutor()

	output, err := executor.ExecuteRaw("diff", "--staged", "--name-only", "--diff-filter=ARM")
	if err != nil {
		return err
	}

	staged := splitLines(output)
	if len(staged) == 0 {
		_, err := executor.Execute("add", "-u")
		return err
	}

	prefix, err := utils.GetRepositoryPrefix(executor)
	if err != nil {
		return err
	}

	if _, err := executor.Execute(append([]string{"add", "--"}, relativeToPrefix(staged, prefix)...)...); err != nil {
		return errors.ErrGitOperation("add", err).WithContext("files", len(staged))
	}

	logger.Success("Re-added %d staged %s", len(staged), english.PluralWord(len(staged), "file", "files"))
	return nil
}

// relativeToPrefix turns repository-root paths into paths git resolves from
// the current directory. Paths outside it keep working through :(top).
func relativeToPrefix(paths []string, prefix string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		switch {
		case prefix == "":
			out = append(out, p)
		case strings.HasPrefix(p, prefix):
			out = append(out, strings.TrimPrefix(p, prefix))
		default:
			out = append(out, ":(top)"+p)
		}
	}
	return out
}

func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
