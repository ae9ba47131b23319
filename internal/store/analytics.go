package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StudentProgress is one row of the educator dashboard: per-student
// aggregates over their quiz history.
type StudentProgress struct {
	UserID       int64      `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	SkillLevel   string     `json:"skill_level"`
	TotalQuizzes int        `json:"total_quizzes"`
	AvgScore     float64    `json:"avg_score"` // average percentage, 0 when no attempts
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// CourseStats aggregates attempts per subject and topic.
type CourseStats struct {
	Subject  string  `json:"subject"`
	Topic    string  `json:"topic"`
	Attempts int     `json:"attempts"`
	AvgScore float64 `json:"avg_score"`
	MinScore float64 `json:"min_score"`
	MaxScore float64 `json:"max_score"`
}

// AnalyticsRepo serves the educator dashboard queries.
type AnalyticsRepo interface {
	// StudentsProgress returns aggregates for every student, including
	// students with no attempts yet.
	StudentsProgress(ctx context.Context) ([]*StudentProgress, error)

	// CourseAnalytics returns per subject/topic aggregates ordered by
	// subject then descending average score.
	CourseAnalytics(ctx context.Context) ([]*CourseStats, error)
}

type analyticsRepo struct {
	db *sql.DB
}

func (r *analyticsRepo) StudentsProgress(ctx context.Context) ([]*StudentProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.name, u.email, u.skill_level,
		       COUNT(qa.id) AS total_quizzes,
		       COALESCE(AVG(qa.percentage), 0) AS avg_score,
		       MAX(qa.attempt_date) AS last_activity
		FROM users u
		LEFT JOIN quiz_attempts qa ON u.id = qa.user_id
		WHERE u.role = 'student'
		GROUP BY u.id, u.name, u.email, u.skill_level
		ORDER BY u.name
	`)
	if err != nil {
		return nil, fmt.Errorf("query students progress: %w", err)
	}
	defer rows.Close()

	var out []*StudentProgress
	for rows.Next() {
		var p StudentProgress
		var last sql.NullTime
		err := rows.Scan(
			&p.UserID, &p.Name, &p.Email, &p.SkillLevel,
			&p.TotalQuizzes, &p.AvgScore, &last,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student progress: %w", err)
		}
		if last.Valid {
			p.LastActivity = &last.Time
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *analyticsRepo) CourseAnalytics(ctx context.Context) ([]*CourseStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT subject, topic,
		       COUNT(*) AS attempts,
		       AVG(percentage) AS avg_score,
		       MIN(percentage) AS min_score,
		       MAX(percentage) AS max_score
		FROM quiz_attempts
		GROUP BY subject, topic
		ORDER BY subject, avg_score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query course analytics: %w", err)
	}
	defer rows.Close()

	var out []*CourseStats
	for rows.Next() {
		var c CourseStats
		err := rows.Scan(
			&c.Subject, &c.Topic, &c.Attempts,
			&c.AvgScore, &c.MinScore, &c.MaxScore,
		)
		if err != nil {
			return nil, fmt.Errorf("scan course stats: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
