package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// UserFileName is the config file name inside the user config directory.
const UserFileName = "config.toml"

// ConfigFiles returns the config files gitfu reads, lowest precedence first:
// the user config, the repository's .gitfu.toml, then $GITFU_CONFIG.
func ConfigFiles(repoRoot string) []string {
	var files []string

	if dir := getUserConfigDir(); dir != "" {
		files = append(files, filepath.Join(dir, UserFileName))
	}

	if repoRoot != "" {
		files = append(files, filepath.Join(repoRoot, FileName))
	}

	if envPath := os.Getenv("GITFU_CONFIG"); envPath != "" {
		files = append(files, envPath)
	}

	return files
}

// GetDefaultConfigPath returns the user config file path for the current platform
func GetDefaultConfigPath() string {
	configDir := getUserConfigDir()
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, UserFileName)
}

// getUserConfigDir returns the user's config directory based on platform
func getUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return getWindowsConfigDir()
	case "darwin":
		return getMacOSConfigDir()
	default:
		return getLinuxConfigDir()
	}
}

func getWindowsConfigDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "gitfu")
	}
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		return filepath.Join(userProfile, "AppData", "Roaming", "gitfu")
	}
	return ""
}

func getMacOSConfigDir() string {
	if homeDir := getHomeDir(); homeDir != "" {
		return filepath.Join(homeDir, "Library", "Application Support", "gitfu")
	}
	return ""
}

func getLinuxConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitfu")
	}
	if homeDir := getHomeDir(); homeDir != "" {
		return filepath.Join(homeDir, ".config", "gitfu")
	}
	return ""
}

// getHomeDir returns the user's home directory
func getHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		return userProfile
	}
	return ""
}
