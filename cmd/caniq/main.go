package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"caniq/internal/config"
)

// Version is stamped by the release build.
var Version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Query flags
	jsonOut  bool
	longDesc bool
	pick     bool
	parallel int

	// Logger, built in PersistentPreRunE
	logger *zap.Logger

	// Loaded configuration
	cfg *config.Config
)

// rootCmd runs a search when invoked with arguments, mirroring
// `caniq query`.
var rootCmd = &cobra.Command{
	Use:   "caniq [search term]",
	Short: "caniq - browser compatibility lookup from your terminal",
	Long: `caniq searches caniuse.com for web-platform features and renders
per-browser support tables, with footnotes resolved inline.

Examples:
  caniq css grid
  caniq query websocket --json
  caniq feature css-grid
  caniq history`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		zapCfg.OutputPaths = []string{"stderr"}
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err = config.Load(path)
		if err != nil {
			// A broken config file should not brick the tool.
			logger.Warn("config load failed, using defaults", zap.Error(err))
			cfg = config.DefaultConfig()
		}
		if parallel > 0 {
			cfg.Fetch.Parallel = parallel
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runQuery(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the caniq version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("caniq %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/caniq/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (overrides config)")

	for _, cmd := range []*cobra.Command{rootCmd, queryCmd, featureCmd} {
		cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit normalized rows as JSON")
		cmd.Flags().BoolVar(&longDesc, "long", false, "Render full descriptions as markdown")
		cmd.Flags().IntVar(&parallel, "parallel", 0, "Max concurrent feature fetches (overrides config)")
	}
	queryCmd.Flags().BoolVar(&pick, "pick", false, "Pick interactively among matching features")
	rootCmd.Flags().BoolVar(&pick, "pick", false, "Pick interactively among matching features")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(featureCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
