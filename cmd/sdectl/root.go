package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdefoundry/sdectl/internal/workspace"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the top-level sdectl command.
var rootCmd = &cobra.Command{
	Use:   "sdectl",
	Short: "Build and install the SDE",
	Long: `Sdectl orchestrates builds of the switch SDE. Profiles declare which
build options are enabled along with auxiliary parameters such as the BSP
path and P4 example programs; sdectl resolves a profile into an execution
plan and runs dependency installation, configuration and build in order.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sdectl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig wires up viper: an explicit --config file wins, otherwise
// ~/.sdectl.yaml, with SDECTL_* environment variables on top.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sdectl")
	}

	viper.SetEnvPrefix("SDECTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Logs go to stderr so stage output on stdout stays clean.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// currentWorkspace builds the workspace context from configuration. It is
// constructed per invocation and passed explicitly to everything that
// needs it.
func currentWorkspace() *workspace.Workspace {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return workspace.FromViper(viper.GetViper(), root)
}
