package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/letterswap/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command. Verbose output lowers level to debug.
func NewRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "letterswap",
		Short: "Play the letter swap word game against a computer opponent",
		Long: `letterswap is a word game played against a computer opponent.

Players take turns changing one letter of the shared word using a card from
their hand. The new word must be in the dictionary. Invalid moves, passes and
slow answers cost a penalty card. The first player to empty their hand wins.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Verbose && level != nil {
				level.Set(slog.LevelDebug)
			}

			fc, err := cfg.FactoryConfig()
			if err != nil {
				return err
			}
			fc.Logger = logger

			app, err = factory.New(fc)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis, sqlite (env: LETTERSWAP_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: LETTERSWAP_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file (env: LETTERSWAP_SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "Word frequency file (env: LETTERSWAP_DICTIONARY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Difficulty, "difficulty", "d", cfg.Difficulty, "Bot difficulty: easy, medium, hard (env: LETTERSWAP_DIFFICULTY)")
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducible games (env: LETTERSWAP_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(logger *slog.Logger, level *slog.LevelVar) {
	if err := NewRootCmd(logger, level).Execute(); err != nil {
		os.Exit(1)
	}
}
