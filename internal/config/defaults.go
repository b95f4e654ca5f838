package config

import (
	"github.com/spf13/viper"
)

// DefaultWipMarker is the commit subject used for switch-branch WIP commits.
const DefaultWipMarker = "WIP: switch-branch-cache"

// Config is the effective configuration after all layers are merged.
type Config struct {
	Git struct {
		DefaultRemote string `mapstructure:"default_remote" toml:"default_remote"`
		Color         bool   `mapstructure:"color" toml:"color"`
	} `mapstructure:"git" toml:"git"`
	Branch struct {
		Protected []string `mapstructure:"protected" toml:"protected"`
	} `mapstructure:"branch" toml:"branch"`
	Switch struct {
		WipMarker string `mapstructure:"wip_marker" toml:"wip_marker"`
	} `mapstructure:"switch" toml:"switch"`
	Plain bool `mapstructure:"plain" toml:"plain"`
	Debug bool `mapstructure:"debug" toml:"debug"`
}

func SetDefaults() {
	viper.SetDefault("git.default_remote", "origin")
	viper.SetDefault("git.color", true)

	// Never pruned, locally or on the remote.
	viper.SetDefault("branch.protected", []string{"master", "main"})

	viper.SetDefault("switch.wip_marker", DefaultWipMarker)

	viper.SetDefault("plain", false)
	viper.SetDefault("debug", false)
}

// Get unmarshals the current viper state.
func Get() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultRemote returns the remote used when -r is not given.
func DefaultRemote() string {
	if remote := viper.GetString("git.default_remote"); remote != "" {
		return remote
	}
	return "origin"
}

// ColorEnabled reports whether git output should be colourised.
func ColorEnabled() bool {
	return viper.GetBool("git.color")
}

// ProtectedBranches returns the branches prune must never select.
func ProtectedBranches() []string {
	protected := viper.GetStringSlice("branch.protected")
	if len(protected) == 0 {
		return []string{"master", "main"}
	}
	return protected
}

// WipMarker returns the commit subject of switch-branch WIP commits.
func WipMarker() string {
	if marker := viper.GetString("switch.wip_marker"); marker != "" {
		return marker
	}
	return DefaultWipMarker
}
