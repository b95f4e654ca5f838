package config

import (
	"bufio"
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// gitConfigKeys maps gitfu.* git config keys (lowercased, as git reports
// them) to viper keys.
var gitConfigKeys = map[string]string{
	"gitfu.remote":    "git.default_remote",
	"gitfu.color":     "git.color",
	"gitfu.protected": "branch.protected",
	"gitfu.wipmarker": "switch.wip_marker",
	"gitfu.plain":     "plain",
	"gitfu.debug":     "debug",
}

// readGitConfig returns every gitfu.* entry visible from the current directory.
// Config resolution happens before the git runner exists, so this shells out
// directly.
func readGitConfig() (string, error) {
	cmd := exec.Command("git", "config", "--get-regexp", `^gitfu\.`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		// Exit 1 means no matching keys.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}

	return stdout.String(), nil
}

// parseGitConfig turns `git config --get-regexp` output into viper settings.
// Multi-valued keys become slices; unknown keys are ignored.
func parseGitConfig(output string) map[string]any {
	values := make(map[string][]string)
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		key = strings.ToLower(key)
		if _, ok := gitConfigKeys[key]; !ok {
			continue
		}
		values[key] = append(values[key], strings.TrimSpace(value))
	}

	settings := make(map[string]any)
	for key, vals := range values {
		target := gitConfigKeys[key]
		switch target {
		case "branch.protected":
			settings[target] = vals
		case "git.color", "plain", "debug":
			settings[target] = isTruthy(vals[len(vals)-1])
		default:
			settings[target] = vals[len(vals)-1]
		}
	}

	return settings
}
