/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ssargent/palmdoc/pkg/config"
	"github.com/ssargent/palmdoc/pkg/di"
)

var container *di.Container

// SetContainer sets the dependency injection container
func SetContainer(c *di.Container) {
	container = c
}

// newRootCmd represents the base command when called without any subcommands
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palmdoc",
		Short: "PalmDoc - convert text to and from PalmOS Doc e-books",
		Long: `palmdoc converts UTF-8 text files into PalmOS Doc (.pdb) e-books and
back again, translating between Unicode and the PalmOS character set.
It can also dump the structure of any Palm database file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Configuration file (default ~/.config/palmdoc/config.yaml)")
	flags.BoolP("verbose", "v", false, "Print progress for every record")
	flags.BoolP("no-warnings", "w", false, "Suppress character mapping warnings (dropped control characters are still reported)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file when done")

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newDumpCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "palmdoc: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, "Run 'palmdoc --help' for usage.")
		}
		os.Exit(exitCode(err))
	}
}

// setup loads the configuration, applies flag overrides and rebuilds the
// logger for the command being run
func setup(cmd *cobra.Command) error {
	if container == nil {
		return errors.New("dependency container not initialized")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return usageError{err}
	}
	level, _ := cfg.LogLevel()

	container.SetConfig(cfg)
	container.SetLogger(di.NewLogger(cmd.ErrOrStderr(), level))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg := config.DefaultConfig()

	path, _ := flags.GetString("config")
	if path == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
		path = config.GetDefaultConfigPath()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("no-warnings") {
		quiet, _ := flags.GetBool("no-warnings")
		cfg.Warnings = !quiet
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}

	return cfg, cfg.Validate()
}
