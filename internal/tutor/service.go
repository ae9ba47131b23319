package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edututor/edututor/internal/quizgen"
	"github.com/edututor/edututor/internal/scoring"
	"github.com/edututor/edututor/internal/store"
)

// Service drives the learning pipeline: diagnostic, adaptive quiz
// generation, scoring and persistence. Generated answer keys stay
// server-side in the pending cache until the quiz is submitted.
type Service struct {
	users       store.UserRepo
	attempts    store.AttemptRepo
	diagnostics store.DiagnosticRepo
	generator   quizgen.Generator
	bank        *quizgen.BankGenerator
	pending     *pendingCache
	config      Config
}

// Config holds quiz sizing defaults.
type Config struct {
	// DefaultCount is the question count when a request doesn't specify.
	DefaultCount int

	// MaxCount caps the questions per quiz.
	MaxCount int

	// DiagnosticCount is the size of the diagnostic quiz.
	DiagnosticCount int
}

// DefaultConfig returns the standard quiz sizing.
func DefaultConfig() Config {
	return Config{
		DefaultCount:    5,
		MaxCount:        20,
		DiagnosticCount: 10,
	}
}

// New creates a Service. The generator produces adaptive quizzes; the
// bank serves diagnostics and stays available regardless of provider.
func New(s *store.Store, generator quizgen.Generator, bank *quizgen.BankGenerator, cfg Config) *Service {
	return &Service{
		users:       s.Users(),
		attempts:    s.Attempts(),
		diagnostics: s.Diagnostics(),
		generator:   generator,
		bank:        bank,
		pending:     newPendingCache(),
		config:      cfg,
	}
}

// Errors surfaced to the API layer.
var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrNotStudent   = fmt.Errorf("user is not a student")
	ErrQuizNotFound = fmt.Errorf("quiz not found or already submitted")
)

// QuestionView is a question as shown to the learner: no answer key.
type QuestionView struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Topic   string   `json:"topic"`
}

// QuizView is a generated quiz handed to the client for answering.
type QuizView struct {
	QuizID     string             `json:"quiz_id"`
	Diagnostic bool               `json:"diagnostic"`
	Subject    string             `json:"subject"`
	Topic      string             `json:"topic"`
	Difficulty quizgen.Difficulty `json:"difficulty"`
	Questions  []QuestionView     `json:"questions"`
}

// SubmitOutcome is the scored result of a quiz or diagnostic submission.
type SubmitOutcome struct {
	QuizID     string             `json:"quiz_id"`
	Diagnostic bool               `json:"diagnostic"`
	Result     scoring.Result     `json:"result"`
	SkillLevel scoring.SkillLevel `json:"skill_level"`
	Difficulty quizgen.Difficulty `json:"next_difficulty"`
}

// StartDiagnostic assembles a fresh diagnostic quiz for the student.
func (s *Service) StartDiagnostic(ctx context.Context, userID int64) (*QuizView, error) {
	user, err := s.requireStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.bank.Diagnostic(s.config.DiagnosticCount)
	if err != nil {
		return nil, err
	}

	p := s.pending.put(user.ID, pendingQuiz{
		Diagnostic: true,
		Subject:    "general",
		Topic:      "Diagnostic Assessment",
		Difficulty: quizgen.DifficultyMedium,
		Questions:  questions,
	})
	return p.view(), nil
}

// CreateQuiz generates an adaptive quiz. Difficulty comes from the
// learner's recent attempts, falling back to their classified level.
func (s *Service) CreateQuiz(ctx context.Context, userID int64, topic, subject string, count int) (*QuizView, error) {
	user, err := s.requireStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if count <= 0 {
		count = s.config.DefaultCount
	}
	if count > s.config.MaxCount {
		count = s.config.MaxCount
	}

	recent, err := s.attempts.RecentPercentages(ctx, user.ID, 5)
	if err != nil {
		return nil, fmt.Errorf("load recent attempts: %w", err)
	}
	fallback := quizgen.DifficultyFromLevel(user.DifficultyLevel)
	difficulty := scoring.AdaptDifficulty(recent, fallback)

	prior, weak, err := s.learnerContext(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if subject == "" {
		subject = quizgen.InferSubject(topic)
	}

	questions, err := s.generator.Generate(ctx, quizgen.GenerateInput{
		Topic:          topic,
		Subject:        subject,
		Difficulty:     difficulty,
		Count:          count,
		PriorQuestions: prior,
		WeakTopics:     weak,
	})
	if err != nil {
		return nil, err
	}

	p := s.pending.put(user.ID, pendingQuiz{
		Subject:    subject,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
	})
	return p.view(), nil
}

// Submit scores a pending quiz. Diagnostics classify the learner's
// level; regular quizzes append to history and re-adapt the level.
// A quiz can be submitted once; repeats return ErrQuizNotFound.
func (s *Service) Submit(ctx context.Context, quizID string, answers []int) (*SubmitOutcome, error) {
	p, ok := s.pending.take(quizID)
	if !ok {
		return nil, ErrQuizNotFound
	}

	result := scoring.Evaluate(p.Questions, answers)

	if p.Diagnostic {
		return s.finishDiagnostic(ctx, p, result)
	}
	return s.finishQuiz(ctx, p, answers, result)
}

// SubmitDiagnostic scores the user's pending diagnostic. It is the
// user-addressed form of Submit for diagnostic flows where the client
// tracks only the learner, not the quiz ID.
func (s *Service) SubmitDiagnostic(ctx context.Context, userID int64, answers []int) (*SubmitOutcome, error) {
	if _, err := s.requireStudent(ctx, userID); err != nil {
		return nil, err
	}
	p, ok := s.pending.takeDiagnostic(userID)
	if !ok {
		return nil, ErrQuizNotFound
	}
	return s.finishDiagnostic(ctx, p, scoring.Evaluate(p.Questions, answers))
}

func (s *Service) finishDiagnostic(ctx context.Context, p pendingQuiz, result scoring.Result) (*SubmitOutcome, error) {
	level := scoring.ClassifyLevel(result.Percentage)
	difficulty := level.Difficulty()

	err := s.diagnostics.Record(ctx, &store.DiagnosticResult{
		UserID:          p.UserID,
		Score:           result.CorrectCount,
		TotalQuestions:  result.TotalQuestions,
		Percentage:      result.Percentage,
		SkillLevel:      string(level),
		DifficultyLevel: difficulty.Level(),
	})
	if err != nil {
		return nil, fmt.Errorf("record diagnostic: %w", err)
	}

	if err := s.users.UpdateDiagnostic(ctx, p.UserID, difficulty.Level(), string(level)); err != nil {
		return nil, err
	}

	return &SubmitOutcome{
		QuizID:     p.ID,
		Diagnostic: true,
		Result:     result,
		SkillLevel: level,
		Difficulty: difficulty,
	}, nil
}

func (s *Service) finishQuiz(ctx context.Context, p pendingQuiz, answers []int, result scoring.Result) (*SubmitOutcome, error) {
	questionsJSON, err := json.Marshal(p.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}
	feedbackJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}

	err = s.attempts.Append(ctx, &store.QuizAttempt{
		ID:             p.ID,
		UserID:         p.UserID,
		Subject:        p.Subject,
		Topic:          p.Topic,
		Difficulty:     string(p.Difficulty),
		QuestionsJSON:  string(questionsJSON),
		AnswersJSON:    string(answersJSON),
		Score:          result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		FeedbackJSON:   string(feedbackJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}

	// Re-adapt the learner's level from the updated history.
	recent, err := s.attempts.RecentPercentages(ctx, p.UserID, 5)
	if err != nil {
		return nil, fmt.Errorf("load recent attempts: %w", err)
	}
	difficulty := scoring.AdaptDifficulty(recent, p.Difficulty)
	level := scoring.LevelForDifficulty(difficulty)

	if err := s.users.UpdateLevel(ctx, p.UserID, difficulty.Level(), string(level)); err != nil {
		return nil, err
	}

	return &SubmitOutcome{
		QuizID:     p.ID,
		Result:     result,
		SkillLevel: level,
		Difficulty: difficulty,
	}, nil
}

// History returns the learner's scored attempts, most recent first.
func (s *Service) History(ctx context.Context, userID int64, limit int) ([]*store.QuizAttempt, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.attempts.History(ctx, userID, limit)
}

// learnerContext collects prompt context from recent history: question
// texts for deduplication and topics the learner missed.
func (s *Service) learnerContext(ctx context.Context, userID int64) (prior, weak []string, err error) {
	history, err := s.attempts.History(ctx, userID, 5)
	if err != nil {
		return nil, nil, fmt.Errorf("load history: %w", err)
	}

	for _, a := range history {
		var questions []quizgen.Question
		if err := json.Unmarshal([]byte(a.QuestionsJSON), &questions); err != nil {
			continue // tolerate rows from older schema revisions
		}
		for _, q := range questions {
			prior = append(prior, q.Text)
		}

		var result scoring.Result
		if err := json.Unmarshal([]byte(a.FeedbackJSON), &result); err != nil {
			continue
		}
		weak = append(weak, scoring.WeakTopics(result.Feedback)...)
	}
	return prior, weak, nil
}

func (s *Service) requireUser(ctx context.Context, userID int64) (*store.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) requireStudent(ctx context.Context, userID int64) (*store.User, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != store.RoleStudent {
		return nil, ErrNotStudent
	}
	return user, nil
}
