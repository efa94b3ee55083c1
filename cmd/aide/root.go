package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/aide/internal/config"
)

var (
	cfgFile    string
	envFile    string
	verbose    bool
	jsonOutput bool

	v      = config.New()
	cfg    *config.Config
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aide",
	Short: "Notes, tasks, contacts and finances kept in flat JSON files",
	Long: `aide keeps four independent collections (notes, tasks, contacts and
financial entries) as JSON documents in one data directory, with CSV, JSON and
YAML import/export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}

		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if cfg.File != "" {
			logger.Debug("config loaded", "file", cfg.File)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: aide.yaml in the working directory or project root)")
	flags.StringVar(&envFile, "env-file", ".env", "Environment file with AIDE_* variables")
	flags.String("data-dir", "data", "Directory holding the collection files")
	flags.Bool("read-only", false, "Reject every change")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	bindFlag(v, config.KeyDataDir, "data-dir")
	bindFlag(v, config.KeyReadOnly, "read-only")
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
