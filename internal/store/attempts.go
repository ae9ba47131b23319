package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// QuizAttempt is one scored quiz session. Rows are append-only.
type QuizAttempt struct {
	ID             string    `json:"id"` // uuid assigned at generation time
	UserID         int64     `json:"user_id"`
	Subject        string    `json:"subject"`
	Topic          string    `json:"topic"`
	Difficulty     string    `json:"difficulty"`
	QuestionsJSON  string    `json:"-"` // questions as presented to the learner
	AnswersJSON    string    `json:"-"` // selected option indexes
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	FeedbackJSON   string    `json:"-"`
	AttemptDate    time.Time `json:"attempt_date"`
}

// AttemptRepo manages quiz attempt history.
type AttemptRepo interface {
	// Append stores a scored attempt. The attempt date is set by the
	// database.
	Append(ctx context.Context, a *QuizAttempt) error

	// History returns the user's attempts, most recent first.
	// limit of 0 means unlimited.
	History(ctx context.Context, userID int64, limit int) ([]*QuizAttempt, error)

	// RecentPercentages returns up to n most recent attempt percentages
	// for the user, most recent first. Used for adaptive difficulty.
	RecentPercentages(ctx context.Context, userID int64, n int) ([]float64, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a *QuizAttempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_attempts
			(id, user_id, subject, topic, difficulty, questions, answers,
			 score, total_questions, percentage, feedback)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID, a.UserID, a.Subject, a.Topic, a.Difficulty,
		a.QuestionsJSON, a.AnswersJSON,
		a.Score, a.TotalQuestions, a.Percentage, a.FeedbackJSON,
	)
	if err != nil {
		return fmt.Errorf("insert attempt %s: %w", a.ID, err)
	}
	return nil
}

func (r *attemptRepo) History(ctx context.Context, userID int64, limit int) ([]*QuizAttempt, error) {
	q := `
		SELECT id, user_id, subject, topic, difficulty, questions, answers,
		       score, total_questions, percentage, COALESCE(feedback, ''), attempt_date
		FROM quiz_attempts
		WHERE user_id = ?
		ORDER BY attempt_date DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history for user %d: %w", userID, err)
	}
	defer rows.Close()

	var attempts []*QuizAttempt
	for rows.Next() {
		var a QuizAttempt
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Subject, &a.Topic, &a.Difficulty,
			&a.QuestionsJSON, &a.AnswersJSON,
			&a.Score, &a.TotalQuestions, &a.Percentage, &a.FeedbackJSON,
			&a.AttemptDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, &a)
	}
	return attempts, rows.Err()
}

func (r *attemptRepo) RecentPercentages(ctx context.Context, userID int64, n int) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT percentage FROM quiz_attempts
		WHERE user_id = ?
		ORDER BY attempt_date DESC, id DESC
		LIMIT ?
	`, userID, n)
	if err != nil {
		return nil, fmt.Errorf("query recent percentages for user %d: %w", userID, err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan percentage: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
