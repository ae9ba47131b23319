// Package api exposes the tutoring service over HTTP with JSON bodies.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/edututor/edututor/internal/store"
	"github.com/edututor/edututor/internal/tutor"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	tutor     *tutor.Service
	users     store.UserRepo
	analytics store.AnalyticsRepo
	log       *slog.Logger
}

// Options configures router construction.
type Options struct {
	// CORSOrigins lists allowed browser origins. Empty disables CORS.
	CORSOrigins []string
}

// NewServer wires the service and store into a Server.
func NewServer(svc *tutor.Service, s *store.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		tutor:     svc,
		users:     s.Users(),
		analytics: s.Analytics(),
		log:       log,
	}
}

// Router builds the chi router with the full route table.
func (s *Server) Router(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", s.handleHealth)
	r.Post("/login", s.handleLogin)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)
		r.Get("/", s.handleListUsers)

		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", s.handleGetUser)
			r.Post("/diagnostic", s.handleStartDiagnostic)
			r.Post("/diagnostic/submit", s.handleSubmitDiagnostic)
			r.Post("/quizzes", s.handleCreateQuiz)
			r.Get("/history", s.handleHistory)
			r.Get("/progress", s.handleProgress)
			r.Get("/achievements", s.handleAchievements)
		})
	})

	r.Post("/quizzes/{quizID}/submit", s.handleSubmitQuiz)

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/students", s.handleStudentAnalytics)
		r.Get("/courses", s.handleCourseAnalytics)
	})

	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
