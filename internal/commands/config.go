package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqve/gitfu/internal/config"
	"github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/fs"
	"github.com/sqve/gitfu/internal/logger"
	"github.com/sqve/gitfu/internal/utils"
)

// configKeys are the settings gitfu understands, in display order.
var configKeys = []string{
	"git.default_remote",
	"git.color",
	"branch.protected",
	"switch.wip_marker",
	"plain",
	"debug",
}

// NewConfigCmd creates the main config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise gitfu configuration",
		Long: `Show the effective gitfu configuration.

Settings are layered, later sources winning: built-in defaults, the user
config file, .gitfu.toml in the repository root, $GITFU_CONFIG, git config
(gitfu.*), GITFU_* environment variables and command-line flags.

Examples:
  gitfu config                       # Show all settings
  gitfu config get git.default_remote
  gitfu config list --format=toml    # Show settings as a config file
  gitfu config path                  # Show where config files are read from
  gitfu config init                  # Write .gitfu.toml in the repository`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigList(cmd.OutOrStdout(), "text")
		},
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: configKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), args[0])
		},
	}
}

func newConfigListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigList(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, toml)")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigPath(cmd.OutOrStdout())
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var global bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented configuration file",
		Long: `Write a configuration template with every setting commented out.

By default the file is .gitfu.toml in the repository root. With --global it
is the user config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(global, force)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the user config file instead of .gitfu.toml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runConfigGet(out io.Writer, key string) error {
	if !slices.Contains(configKeys, key) {
		return errors.ErrInvalidArgs(fmt.Sprintf("invalid configuration key: %s (valid keys: %s)", key, strings.Join(configKeys, ", ")))
	}

	_, err := fmt.Fprintln(out, formatValue(viper.Get(key)))
	return err
}

func runConfigList(out io.Writer, format string) error {
	cfg, err := config.Get()
	if err != nil {
		return errors.ErrConfigInvalid(err)
	}

	switch format {
	case "text":
		for _, key := range configKeys {
			fmt.Fprintf(out, "%s = %s\n", key, formatValue(viper.Get(key)))
		}
	case "json":
		data, err := json.MarshalIndent(viper.AllSettings(), "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprint(out, string(data))
	default:
		return errors.ErrInvalidArgs(fmt.Sprintf("unsupported format: %s (supported: text, json, toml)", format))
	}

	return nil
}

func runConfigPath(out io.Writer) error {
	root, _ := utils.GetRepositoryRoot(DefaultExecutorProvider.GetExecutor())

	fmt.Fprintln(out, "Configuration files, lowest precedence first:")
	for i, path := range config.ConfigFiles(root) {
		state := "not found"
		if fs.FileExists(path) {
			state = "found"
		}
		fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, path, state)
	}

	return nil
}

func runConfigInit(global, force bool) error {
	var path string
	if global {
		path = config.GetDefaultConfigPath()
		if path == "" {
			return errors.ErrInvalidArgs("Cannot determine the user config directory.")
		}
	} else {
		executor := DefaultExecutorProvider.GetExecutor()
		if err := utils.RequireRepository(executor); err != nil {
			return err
		}
		root, err := utils.GetRepositoryRoot(executor)
		if err != nil {
			return err
		}
		path = filepath.Join(root, config.FileName)
	}

	if fs.FileExists(path) && !force {
		return errors.ErrInvalidArgs(fmt.Sprintf("configuration file already exists at %s (use --force to overwrite)", path))
	}

	if err := config.WriteTemplateToPath(path); err != nil {
		return errors.Wrapf(err, "failed to write %s", config.FileName)
	}

	logger.Success("Created configuration file: %s", path)
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
