package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DiagnosticResult records one diagnostic run. The latest row for a user
// parameterizes subsequent quiz generation.
type DiagnosticResult struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Score           int       `json:"score"`
	TotalQuestions  int       `json:"total_questions"`
	Percentage      float64   `json:"percentage"`
	SkillLevel      string    `json:"skill_level"`
	DifficultyLevel int       `json:"difficulty_level"`
	TakenAt         time.Time `json:"taken_at"`
}

// DiagnosticRepo manages diagnostic results.
type DiagnosticRepo interface {
	// Record stores a new diagnostic result.
	Record(ctx context.Context, d *DiagnosticResult) error

	// Latest returns the most recent result for the user, or nil if the
	// user has never taken a diagnostic.
	Latest(ctx context.Context, userID int64) (*DiagnosticResult, error)
}

type diagnosticRepo struct {
	db *sql.DB
}

func (r *diagnosticRepo) Record(ctx context.Context, d *DiagnosticResult) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO diagnostic_results
			(user_id, score, total_questions, percentage, skill_level, difficulty_level)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.UserID, d.Score, d.TotalQuestions, d.Percentage, d.SkillLevel, d.DifficultyLevel)
	if err != nil {
		return fmt.Errorf("insert diagnostic for user %d: %w", d.UserID, err)
	}
	if id, err := res.LastInsertId(); err == nil {
		d.ID = id
	}
	return nil
}

func (r *diagnosticRepo) Latest(ctx context.Context, userID int64) (*DiagnosticResult, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, score, total_questions, percentage,
		       skill_level, difficulty_level, taken_at
		FROM diagnostic_results
		WHERE user_id = ?
		ORDER BY taken_at DESC, id DESC
		LIMIT 1
	`, userID)

	var d DiagnosticResult
	err := row.Scan(
		&d.ID, &d.UserID, &d.Score, &d.TotalQuestions, &d.Percentage,
		&d.SkillLevel, &d.DifficultyLevel, &d.TakenAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan diagnostic: %w", err)
	}
	return &d, nil
}
