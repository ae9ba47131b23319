package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edututor/edututor/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		s.respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	role := store.Role(req.Role)
	if role == "" {
		role = store.RoleStudent
	}
	if role != store.RoleStudent && role != store.RoleEducator {
		s.respondError(w, http.StatusBadRequest, "role must be student or educator")
		return
	}

	user, err := s.users.Create(r.Context(), req.Name, req.Email, role)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email string `json:"email"`
}

// handleLogin is a session-less login: it resolves the account by email
// and stamps last_login. There is no password; access control is out of
// scope for this service.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" {
		s.respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if user == nil {
		s.respondError(w, http.StatusNotFound, "no account for that email")
		return
	}
	if err := s.users.TouchLogin(r.Context(), user.ID); err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	role := store.Role(r.URL.Query().Get("role"))
	users, err := s.users.List(r.Context(), role)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if users == nil {
		users = []*store.User{}
	}
	s.respondJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if user == nil {
		s.respondError(w, http.StatusNotFound, "user not found")
		return
	}
	s.respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleStartDiagnostic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	quiz, err := s.tutor.StartDiagnostic(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, quiz)
}

func (s *Server) handleSubmitDiagnostic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	var req submitQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := s.tutor.SubmitDiagnostic(r.Context(), id, req.Answers)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, outcome)
}

type createQuizRequest struct {
	Topic   string `json:"topic"`
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

func (s *Server) handleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	var req createQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" {
		s.respondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	quiz, err := s.tutor.CreateQuiz(r.Context(), id, req.Topic, req.Subject, req.Count)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, quiz)
}

type submitQuizRequest struct {
	Answers []int `json:"answers"`
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizID")
	if quizID == "" {
		s.respondError(w, http.StatusBadRequest, "quiz id is required")
		return
	}
	var req submitQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := s.tutor.Submit(r.Context(), quizID, req.Answers)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	history, err := s.tutor.History(r.Context(), id, limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if history == nil {
		history = []*store.QuizAttempt{}
	}
	s.respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	progress, err := s.tutor.UserProgress(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, progress)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}
	achievements, err := s.tutor.Achievements(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, achievements)
}

func (s *Server) handleStudentAnalytics(w http.ResponseWriter, r *http.Request) {
	progress, err := s.analytics.StudentsProgress(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if progress == nil {
		progress = []*store.StudentProgress{}
	}
	s.respondJSON(w, http.StatusOK, progress)
}

func (s *Server) handleCourseAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.analytics.CourseAnalytics(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if stats == nil {
		stats = []*store.CourseStats{}
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		s.respondError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}
