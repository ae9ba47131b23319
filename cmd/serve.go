package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/edututor/edututor/internal/api"
	"github.com/edututor/edututor/internal/config"
	"github.com/edututor/edututor/internal/quizgen"
	"github.com/edututor/edututor/internal/store"
	"github.com/edututor/edututor/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}

		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(log)

		dbPath := cfg.Database.Path
		if dbPath == "" {
			dbPath, err = resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
		} else if err := store.EnsureDir(dbPath); err != nil {
			return fmt.Errorf("prepare database directory: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		generator := buildGenerator(ctx, cfg, s)
		svc := tutor.New(s, generator, quizgen.NewBank(), tutor.Config{
			DefaultCount:    cfg.Quiz.DefaultCount,
			MaxCount:        cfg.Quiz.MaxCount,
			DiagnosticCount: cfg.Quiz.DiagnosticCount,
		})

		server := api.NewServer(svc, s, log)
		handler := server.Router(api.Options{CORSOrigins: cfg.Server.CORSOrigins})

		return server.ListenAndServe(ctx, cfg.Server.Addr, handler,
			time.Duration(cfg.Server.ReadTimeoutSec)*time.Second,
			time.Duration(cfg.Server.WriteTimeoutSec)*time.Second,
		)
	},
}

func init() {
	// Flag defaults mirror config.Default so an unchanged flag never
	// overrides a file or env setting with an empty value.
	def := config.Default()
	serveCmd.Flags().String("server.addr", def.Server.Addr, "Listen address, host:port")
	serveCmd.Flags().String("quiz.source", def.Quiz.Source, "Question source: llm or bank")
	serveCmd.Flags().String("llm.provider", def.LLM.Provider, "LLM provider: anthropic, openai, gemini, openrouter or mock (empty: discover by API key)")
	serveCmd.Flags().String("llm.model", def.LLM.Model, "Model ID override for the selected provider")
}
