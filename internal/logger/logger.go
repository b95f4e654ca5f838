package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/styles"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects normal and diagnostic output. Passing nil restores the
// process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

// Init sets plain and debug mode in one call.
func Init(plain, debug bool) {
	config.Global.Plain = plain
	config.Global.Debug = debug
}

// Debug prints debug information when debug mode is enabled
func Debug(format string, args ...any) {
	if config.IsDebug() {
		fmt.Fprintf(stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints normal output
func Info(format string, args ...any) {
	fmt.Fprintf(stdout, format+"\n", args...)
}

// Success prints success messages
func Success(format string, args ...any) {
	if config.IsPlain() {
		fmt.Fprintf(stdout, format+"\n", args...)
	} else {
		fmt.Fprintf(stdout, "%s %s\n", styles.Render(&styles.Success, "✓"), fmt.Sprintf(format, args...))
	}
}

// Warning prints a WARNING-labelled message to stderr
func Warning(format string, args ...any) {
	fmt.Fprintf(stderr, "%s: %s\n", styles.Render(&styles.Warning, "WARNING"), fmt.Sprintf(format, args...))
}

// Error prints an ERROR-labelled message to stderr
func Error(format string, args ...any) {
	fmt.Fprintf(stderr, "%s: %s\n", styles.Render(&styles.Error, "ERROR"), fmt.Sprintf(format, args...))
}

// Raw writes text to stderr unchanged. Used for diagnostics that come
// straight from git.
func Raw(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(stderr, text)
}

// GitCommand logs a git invocation in debug mode.
func GitCommand(args []string) {
	Debug("Executing: git %s", strings.Join(args, " "))
}

// GitResult logs the outcome of a git invocation in debug mode.
func GitResult(args []string, success bool, duration time.Duration) {
	status := "ok"
	if !success {
		status = "failed"
	}
	Debug("git %s: %s (%s)", strings.Join(args, " "), status, duration.Round(time.Millisecond))
}
