package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edututor/edututor/internal/quizgen"
	"github.com/edututor/edututor/internal/store"
	"github.com/edututor/edututor/internal/tutor"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorBody{Error: msg})
}

// serviceError maps domain errors onto HTTP statuses.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	var genErr *quizgen.GenerationError

	switch {
	case errors.Is(err, tutor.ErrUserNotFound):
		s.respondError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, tutor.ErrQuizNotFound):
		s.respondError(w, http.StatusNotFound, "quiz not found or already submitted")
	case errors.Is(err, tutor.ErrNotStudent):
		s.respondError(w, http.StatusForbidden, "operation requires a student account")
	case errors.Is(err, store.ErrDuplicateEmail):
		s.respondError(w, http.StatusConflict, "email already registered")
	case errors.As(err, &genErr):
		s.log.Error("quiz generation failed", "stage", genErr.Stage, "error", genErr.Err)
		s.respondError(w, http.StatusBadGateway, "quiz generation failed, try again")
	default:
		s.log.Error("request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
