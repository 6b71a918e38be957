package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/varoOP/sankanime/internal/app"
	"github.com/varoOP/sankanime/internal/config"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sankanime",
	Short: "Query the sankavollerei anime catalog",
	Long: `sankanime is a command line client for the sankavollerei anime API.
The home page aggregate is cached locally and concurrent requests for it
share a single upstream call.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	config.Version = version
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/config.yaml or ./config.yaml)")
	flags.String("base-url", config.DefaultBaseURL, "anime API base url")
	flags.String("storage", "sqlite", "home cache storage: sqlite, redis or memory")
	flags.String("data-dir", ".", "directory holding the sqlite database")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.StringP("output", "o", "", "write the result to a file instead of stdout (.json, .yaml or .yml)")
	flags.Bool("table", false, "render list results as a table")

	viper.BindPFlag("base_url", flags.Lookup("base-url"))
	viper.BindPFlag("storage", flags.Lookup("storage"))
	viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SANKANIME")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// withApp initializes the application for the duration of fn
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	application, err := app.NewApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			application.Log().Warn().Err(err).Msg("failed to close storage")
		}
	}()

	return fn(ctx, application)
}
