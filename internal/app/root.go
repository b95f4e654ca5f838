package app

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqve/gitfu/internal/commands"
	"github.com/sqve/gitfu/internal/completion"
	"github.com/sqve/gitfu/internal/config"
	gitfuerrors "github.com/sqve/gitfu/internal/errors"
	"github.com/sqve/gitfu/internal/git"
	"github.com/sqve/gitfu/internal/logger"
	"github.com/sqve/gitfu/internal/utils"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// NewRootCommand creates and configures the gitfu root command
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:     "gitfu",
		Short:   "Branch shortcuts and guard rails for everyday git",
		Version: Version,
		Long: `gitfu wraps git with shortcuts for finding, switching and deleting
branches by partial name, plus a few guard rails for everyday commands.

Install the shell integration to route git through gitfu:
  eval "$(gitfu init bash)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	registry, err := commands.NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}

	if err := setupRootCommand(rootCmd, registry); err != nil {
		return nil, err
	}
	return rootCmd, nil
}

// setupRootCommand configures flags, commands, and initialization for the root command
func setupRootCommand(rootCmd *cobra.Command, registry *commands.Registry) error {
	// Errors are printed once, by Run.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	setupFlags(rootCmd)
	setupInitialization(rootCmd, registry)

	if err := registry.AttachToRoot(rootCmd); err != nil {
		return err
	}
	completion.CreateCompletionCommands(rootCmd)
	return nil
}

// setupFlags adds persistent flags to the root command
func setupFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
	rootCmd.PersistentFlags().Bool("debug", false, "Print every git invocation")
}

// setupInitialization loads configuration before any subcommand runs and
// checks for a repository when the command needs one.
func setupInitialization(rootCmd *cobra.Command, registry *commands.Registry) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := InitializeConfig(rootCmd); err != nil {
			return err
		}

		if registry.RequiresRepository(cmd) {
			return utils.RequireRepository(commands.DefaultExecutorProvider.GetExecutor())
		}
		return nil
	}
}

// InitializeConfig initializes application configuration and logging
func InitializeConfig(rootCmd *cobra.Command) error {
	config.DetectTerminal()

	if err := config.Initialize(); err != nil {
		return gitfuerrors.ErrConfigInvalid(err)
	}

	bindFlags(rootCmd)

	config.Global.Plain = config.Global.Plain || viper.GetBool("plain")
	config.Global.Debug = config.Global.Debug || viper.GetBool("debug")
	return nil
}

// bindFlags binds cobra flags to viper configuration
func bindFlags(rootCmd *cobra.Command) {
	for _, name := range []string{"plain", "debug"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			logger.Warning("failed to bind %s flag: %v", name, err)
		}
	}
}

// Execute runs gitfu with the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:])
}

// Run runs gitfu with args and returns the exit code.
func Run(args []string) int {
	rootCmd, err := NewRootCommand()
	if err != nil {
		logger.Error("%v", err)
		return 1
	}

	rootCmd.SetArgs(args)
	return exitCode(rootCmd.Execute())
}

// exitCode reports err and maps it to a process exit code. Git's own exit
// code is kept when git already wrote its diagnostics to the terminal.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *git.GitError
	if errors.As(err, &gitErr) {
		if gitErr.Streamed {
			return gitErr.ExitCode
		}
		if diag := gitErr.Diagnostic(); diag != "" {
			logger.Raw(diag)
		} else {
			logger.Error("%v", gitErr)
		}
		return 1
	}

	logger.Error("%v", err)

	if code := gitfuerrors.GetErrorCode(err); code != "" {
		logger.Debug("error code %s", code)
	}
	return 1
}
