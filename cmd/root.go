package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edututor/edututor/internal/config"
	"github.com/edututor/edututor/internal/llm"
	"github.com/edututor/edututor/internal/quizgen"
	"github.com/edututor/edututor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edututor",
	Short: "Adaptive AI quiz tutor",
	Long: "EduTutor generates adaptive quizzes, classifies learner skill levels\n" +
		"from diagnostic assessments, and tracks progress for students and educators.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUTUTOR_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then EDUTUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildGenerator returns the question generator for the configured
// source. With source "llm" it falls back to the bank when no API key
// is available, so the app stays usable offline.
func buildGenerator(ctx context.Context, cfg *config.Config, s *store.Store) quizgen.Generator {
	if cfg.Quiz.Source == "llm" {
		if lcfg, ok := llmConfig(cfg.LLM); ok {
			provider, err := llm.NewProvider(ctx, lcfg, s.LLMLog())
			if err == nil {
				return quizgen.NewLLM(provider, quizgen.DefaultConfig())
			}
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		} else {
			fmt.Fprintln(os.Stderr, "No LLM API key found; using the built-in question bank.")
		}
	}
	return quizgen.NewBank()
}

// llmConfig builds the provider configuration from the llm config
// section. A named provider is used as-is; otherwise the provider is
// discovered from whichever API key is set.
func llmConfig(c config.LLMConfig) (llm.Config, bool) {
	var lcfg llm.Config
	var ok bool
	if c.Provider != "" {
		lcfg, ok = llm.ConfigForProvider(c.Provider)
	} else {
		lcfg, ok = llm.DiscoverConfig()
	}
	if !ok {
		return llm.Config{}, false
	}

	lcfg = lcfg.WithModel(c.Model)
	lcfg.Timeout = time.Duration(c.TimeoutSec) * time.Second
	lcfg.Retry = llm.RetryConfig{
		MaxAttempts: c.RetryMaxAttempts,
		InitialWait: time.Duration(c.RetryInitialWaitMs) * time.Millisecond,
		MaxWait:     time.Duration(c.RetryMaxWaitMs) * time.Millisecond,
		Multiplier:  c.RetryMultiplier,
	}
	return lcfg, true
}
