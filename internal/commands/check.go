package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/sqve/gitfu/internal/config"
	gitfuerrors "github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/fs"
	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/prompt"
	"github.com/sqve/gitfu/internal/styles"
	"github.com/sqve/gitfu/internal/utils"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Review the diff of each modified file and choose what to stage",
		Long: `Show the diff of every modified file, one at a time, and ask whether to
add it. Directories expand to the modified files below them. With no paths,
every modified file is reviewed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args)
		},
	}
}

// checker walks modified files for one run of check.
type checker struct {
	executor git.GitExecutor
	asker    Asker
	out      io.Writer
	width    int

	// shortHead is resolved at most once per run.
	shortHead func() (string, error)
}

func runCheck(out io.Writer, paths []string) error {
	executor := DefaultExecutorProvider.GetExecutor()

	c := &checker{
		executor: executor,
		asker:    DefaultExecutorProvider.GetAsker(),
		out:      out,
		width:    utils.GetTerminalWidth(),
		shortHead: sync.OnceValues(func() (string, error) {
			return git.ShortHead(executor)
		}),
	}

	deleted, err := c.changedFiles("--diff-filter=D")
	if err != nil {
		return err
	}

	files, err := c.hydrate(paths)
	if err != nil {
		return err
	}

	for _, file := range files {
		var review error
		if slices.Contains(deleted, file) {
			review = c.verifyDeletion(file)
		} else {
			review = c.reviewChange(file)
		}

		if errors.Is(review, prompt.ErrNoInput) {
			return nil
		}
		if review != nil {
			return gitfuerrors.WithContext(gitfuerrors.WithOperation(review, "check"), "file", file)
		}
	}

	return nil
}

// changedFiles lists unstaged changes, relative to the repository root.
func (c *checker) changedFiles(filters ...string) ([]string, error) {
	args := append([]string{"diff", "--name-only"}, filters...)
	output, err := c.executor.ExecuteRaw(args...)
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// hydrate turns the given paths into repository-root relative files,
// expanding directories into the modified files below them.
func (c *checker) hydrate(paths []string) ([]string, error) {
	known, err := c.changedFiles()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return known, nil
	}

	prefix, err := utils.GetRepositoryPrefix(c.executor)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, p := range paths {
		rooted := filepath.ToSlash(filepath.Join(prefix, p))

		if !fs.DirectoryExists(p) {
			files = append(files, rooted)
			continue
		}

		for _, name := range known {
			if fs.PathHasPrefix(filepath.FromSlash(name), filepath.FromSlash(rooted)) {
				files = append(files, name)
			}
		}
	}

	return slices.Compact(files), nil
}

func (c *checker) reviewChange(file string) error {
	diff, err := c.executor.Execute("diff", "--", ":(top)"+file)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, utils.HeaderRule(file, c.width))
	fmt.Fprintf(c.out, "%s\n\n", diff)

	return c.promptAdd(file)
}

// verifyDeletion prints a diff removing every line of file as of HEAD, since
// git diff has nothing to show for a file that is gone from the work tree.
func (c *checker) verifyDeletion(file string) error {
	content, err := c.executor.ExecuteRaw("show", "HEAD:"+file)
	if err != nil {
		return err
	}

	head, err := c.shortHead()
	if err != nil {
		return err
	}

	body, count := deletionHunk(content)

	fmt.Fprintln(c.out, utils.HeaderRule(file, c.width))
	fmt.Fprintf(c.out, "diff --git a/%s b/%s\n", file, file)
	fmt.Fprintf(c.out, "index %s..0000000\n", head)
	fmt.Fprintf(c.out, "--- a/%s\n", file)
	fmt.Fprintln(c.out, "+++ /dev/null")
	fmt.Fprintf(c.out, "@@ -1,%d +0,0 @@\n", count)
	fmt.Fprintf(c.out, "%s\n\n", body)

	return c.promptAdd(file)
}

func (c *checker) promptAdd(file string) error {
	add, err := c.asker.Confirm("Do you want to add this file?")
	if err != nil || !add {
		return err
	}

	_, err = c.executor.Execute("add", "--", ":(top)"+file)
	return err
}

// deletionHunk renders the line diff from content to nothing and returns it
// with the number of lines removed.
func deletionHunk(content string) (string, int) {
	dmp := diffmatchpatch.New()
	from, to, lines := dmp.DiffLinesToChars(content, "")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(from, to, false), lines)

	var b strings.Builder
	count := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffDelete {
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if count > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(removedLine("-" + line))
			count++
		}
	}

	return b.String(), count
}

func removedLine(line string) string {
	if !config.ColorEnabled() {
		return line
	}
	return styles.Render(&styles.Deleted, line)
}
