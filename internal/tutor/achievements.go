package tutor

import (
	"context"
	"fmt"

	"github.com/edututor/edututor/internal/scoring"
	"github.com/edututor/edututor/internal/store"
)

// Achievement is a milestone the learner has or hasn't reached.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// Achievements evaluates the learner's milestones from their history
// and current skill level.
func (s *Service) Achievements(ctx context.Context, userID int64) ([]Achievement, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.attempts.History(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	best := 0.0
	for _, a := range history {
		if a.Percentage > best {
			best = a.Percentage
		}
	}

	return []Achievement{
		{
			ID:          "first-quiz",
			Title:       "First Steps",
			Description: "Complete your first quiz",
			Earned:      len(history) >= 1,
		},
		{
			ID:          "quiz-streak",
			Title:       "Dedicated Learner",
			Description: "Complete 5 quizzes",
			Earned:      len(history) >= 5,
		},
		{
			ID:          "high-scorer",
			Title:       "High Scorer",
			Description: "Score 90% or higher on a quiz",
			Earned:      best >= 90,
		},
		{
			ID:          "advanced",
			Title:       "Advanced Standing",
			Description: "Reach the Advanced skill level",
			Earned:      scoring.SkillLevel(user.SkillLevel) == scoring.LevelAdvanced,
		},
	}, nil
}

// Progress summarizes a learner's standing for the dashboard.
type Progress struct {
	User          *store.User             `json:"user"`
	Attempts      int                     `json:"attempts"`
	AveragePct    float64                 `json:"average_percentage"`
	BestPct       float64                 `json:"best_percentage"`
	RecentHistory []*store.QuizAttempt    `json:"recent_history"`
	Diagnostic    *store.DiagnosticResult `json:"diagnostic,omitempty"`
	Achievements  []Achievement           `json:"achievements"`
}

// UserProgress assembles the learner dashboard view.
func (s *Service) UserProgress(ctx context.Context, userID int64) (*Progress, error) {
	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.attempts.History(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var sum, best float64
	for _, a := range history {
		sum += a.Percentage
		if a.Percentage > best {
			best = a.Percentage
		}
	}
	avg := 0.0
	if len(history) > 0 {
		avg = sum / float64(len(history))
	}

	diag, err := s.diagnostics.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load diagnostic: %w", err)
	}

	achievements, err := s.Achievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent := history
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &Progress{
		User:          user,
		Attempts:      len(history),
		AveragePct:    avg,
		BestPct:       best,
		RecentHistory: recent,
		Diagnostic:    diag,
		Achievements:  achievements,
	}, nil
}
