package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
)

// Initialize layers defaults, config files, git config and GITFU_* env vars
// into viper, then refreshes Global. Flags are bound by the caller.
func Initialize() error {
	SetDefaults()

	viper.SetEnvPrefix("GITFU")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for _, path := range ConfigFiles(repositoryRoot()) {
		cfg, err := LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := viper.MergeConfigMap(nest(cfg.Settings())); err != nil {
			return err
		}
	}

	if output, err := readGitConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read git config: %v\n", err)
	} else if err := viper.MergeConfigMap(nest(parseGitConfig(output))); err != nil {
		return err
	}

	cfg, err := Get()
	if err != nil {
		return err
	}
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	Global.Plain = Global.Plain || cfg.Plain
	Global.Debug = Global.Debug || cfg.Debug
	LoadFromEnv()

	return nil
}

// repositoryRoot returns the top level of the enclosing repository, or "".
func repositoryRoot() string {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// nest expands dotted keys into the nested maps viper merges.
func nest(settings map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range settings {
		parts := strings.Split(key, ".")
		m := out
		for _, part := range parts[:len(parts)-1] {
			child, ok := m[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				m[part] = child
			}
			m = child
		}
		m[parts[len(parts)-1]] = value
	}
	return out
}
