package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xunit/internal/cli"
	"xunit/internal/cli/commands"
	"xunit/internal/config"
	"xunit/internal/logging"
	"xunit/internal/suites"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.New()

	reg, err := suites.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	deps := &commands.Deps{Config: cfg, Registry: reg}
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "xunit",
		Short:         "Minimal xUnit-style test runner",
		Long:          `Runs the registered test suites one test at a time, reports failures the way the JUnit console launcher does and keeps the results for later inspection.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.LoadEnv(); err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			deps.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if deps.Logger != nil {
				_ = deps.Logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+config.EnvLogLevel+" or warn")
	rootCmd.PersistentFlags().StringVar(&cfg.ProjectPath, "project", config.DefaultProjectPath, "Directory holding .env and the storage directory")

	var flags cli.Flags
	commands.NewCommands(deps).Register(rootCmd, &flags)
	return rootCmd
}
