package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/sqve/gitfu/internal/fs"
)

const FileName = ".gitfu.toml"

//go:embed gitfu.template.toml
var initTemplate string

// FileConfig mirrors the TOML file. Pointer and empty values mean "not set",
// so a file only overrides what it mentions.
type FileConfig struct {
	Git struct {
		DefaultRemote string `toml:"default_remote,omitempty"`
		Color         *bool  `toml:"color,omitempty"`
	} `toml:"git"`
	Branch struct {
		Protected []string `toml:"protected,omitempty"`
	} `toml:"branch"`
	Switch struct {
		WipMarker string `toml:"wip_marker,omitempty"`
	} `toml:"switch"`
	Plain *bool `toml:"plain,omitempty"`
	Debug *bool `toml:"debug,omitempty"`
}

// LoadFromFile returns empty config if file missing, error if file invalid.
func LoadFromFile(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the config search list
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Settings flattens the fields that are set into viper keys.
func (c FileConfig) Settings() map[string]any {
	settings := make(map[string]any)

	if c.Git.DefaultRemote != "" {
		settings["git.default_remote"] = c.Git.DefaultRemote
	}
	if c.Git.Color != nil {
		settings["git.color"] = *c.Git.Color
	}
	if len(c.Branch.Protected) > 0 {
		settings["branch.protected"] = c.Branch.Protected
	}
	if c.Switch.WipMarker != "" {
		settings["switch.wip_marker"] = c.Switch.WipMarker
	}
	if c.Plain != nil {
		settings["plain"] = *c.Plain
	}
	if c.Debug != nil {
		settings["debug"] = *c.Debug
	}

	return settings
}

// WriteTemplateToPath writes the template to path, creating its directory.
func WriteTemplateToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), fs.DirStrict); err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, []byte(initTemplate), fs.FileGit)
}
