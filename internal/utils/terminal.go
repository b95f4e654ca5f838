package utils

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// DefaultTerminalWidth is the fallback terminal width when detection fails.
const DefaultTerminalWidth = 80

// maxRuleWidth keeps header rules readable on very wide terminals.
const maxRuleWidth = 120

// GetTerminalWidth falls back to DefaultTerminalWidth if detection fails or
// if not running in a terminal.
func GetTerminalWidth() int {
	// COLUMNS wins, which keeps output stable in tests.
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if width, err := strconv.Atoi(cols); err == nil && width > 0 {
			return width
		}
	}

	if width := getTerminalWidthUnix(); width > 0 {
		return width
	}

	return DefaultTerminalWidth
}

// getTerminalWidthUnix attempts to get terminal width using unix system calls.
func getTerminalWidthUnix() int {
	// Try stdout first, then stderr, then stdin.
	fds := []int{int(os.Stdout.Fd()), int(os.Stderr.Fd()), int(os.Stdin.Fd())}

	for _, fd := range fds {
		if winsize, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
			if winsize.Col > 0 {
				return int(winsize.Col)
			}
		}
	}

	return 0
}

// HeaderRule renders "── title ───…" filling width columns, capped at 120.
// A title wider than the rule is returned with only the leading dashes.
func HeaderRule(title string, width int) string {
	width = min(width, maxRuleWidth)
	head := "── " + title + " "
	fill := width - utf8.RuneCountInString(head)
	if fill <= 0 {
		return strings.TrimRight(head, " ")
	}
	return head + strings.Repeat("─", fill)
}
