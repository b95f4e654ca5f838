package config

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Global holds the global configuration state for gitfu
var Global struct {
	Plain bool // Disable colors and symbols
	Debug bool // Enable debug logging
}

// IsPlain returns true if plain output mode is enabled
func IsPlain() bool {
	return Global.Plain
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return Global.Debug
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() {
	if isTruthy(os.Getenv("GITFU_PLAIN")) || os.Getenv("NO_COLOR") != "" {
		Global.Plain = true
	}
	if isTruthy(os.Getenv("GITFU_DEBUG")) {
		Global.Debug = true
	}
}

// DetectTerminal enables plain mode when stderr is not a terminal, since
// labels and prompts are written there.
func DetectTerminal() {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		Global.Plain = true
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
