// Package shell generates the shell functions that route git through gitfu.
package shell

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Supported lists the shells Generate accepts.
var Supported = []string{"bash", "zsh", "fish"}

// Wrappers are the gitfu subcommands exposed as standalone shell functions.
var Wrappers = []string{"switch-branch", "remove-branch", "add-staged"}

// Generate returns the init script for shell. binDir is the directory holding
// the gitfu executable.
func Generate(shell, binDir string) (string, error) {
	binary := filepath.Join(binDir, "gitfu")

	switch shell {
	case "bash", "zsh":
		return posixScript(shell, binary)
	case "fish":
		return fishScript(binary), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(Supported, ", "))
	}
}

// posixScript builds the bash/zsh functions and round-trips them through the
// shell parser so a bad path can never produce a broken script.
func posixScript(shell, binary string) (string, error) {
	quoted, err := syntax.Quote(binary, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("cannot quote %q for %s: %w", binary, shell, err)
	}

	var src strings.Builder
	fmt.Fprintf(&src, "# gitfu shell integration\n# Install: eval \"$(gitfu init %s)\"\n\n", shell)
	fmt.Fprintf(&src, "git() {\n%s run \"$@\"\n}\n", quoted)
	for _, name := range Wrappers {
		fmt.Fprintf(&src, "\n%s() {\n%s %s \"$@\"\n}\n", name, quoted, name)
	}

	parser := syntax.NewParser(syntax.KeepComments(true), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(src.String()), shell)
	if err != nil {
		return "", fmt.Errorf("generated %s script is invalid: %w", shell, err)
	}

	var out bytes.Buffer
	if err := syntax.NewPrinter(syntax.Indent(4)).Print(&out, file); err != nil {
		return "", err
	}
	return out.String(), nil
}

func fishScript(binary string) string {
	quoted := fishQuote(binary)

	var b strings.Builder
	b.WriteString("# gitfu shell integration\n# Install: gitfu init fish | source\n\n")
	fmt.Fprintf(&b, "function git --wraps=git --description 'git through gitfu'\n    %s run $argv\nend\n", quoted)
	for _, name := range Wrappers {
		fmt.Fprintf(&b, "\nfunction %s\n    %s %s $argv\nend\n", name, quoted, name)
	}
	return b.String()
}

// fishQuote single-quotes s; inside fish single quotes only \ and ' are special.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
