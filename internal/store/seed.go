package store

import (
	"context"
	"fmt"
)

// demoUsers are the built-in demo accounts, seeded on request only.
// Difficulty matches the skill level so seeded learners get quizzes at
// their level before their adaptive window fills.
var demoUsers = []struct {
	name       string
	email      string
	role       Role
	level      string
	difficulty int
}{
	{"Demo Student", "demo@student.edu", RoleStudent, "Intermediate", 2},
	{"Prof Demo", "prof@university.edu", RoleEducator, "Advanced", 3},
	{"Alice Smith", "alice@student.edu", RoleStudent, "Advanced", 3},
	{"John Doe", "john@student.edu", RoleStudent, "Beginner", 1},
}

// Seed inserts the demo accounts if the users table is empty.
// Returns the number of users created.
func (s *Store) Seed(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, u := range demoUsers {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO users (name, email, role, skill_level, difficulty_level)
			VALUES (?, ?, ?, ?, ?)
		`, u.name, u.email, string(u.role), u.level, u.difficulty)
		if err != nil {
			return 0, fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}
	return len(demoUsers), nil
}

// Reset deletes all learner data: attempts, diagnostics and the LLM log.
// User accounts are kept.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM quiz_attempts`,
		`DELETE FROM diagnostic_results`,
		`DELETE FROM llm_requests`,
		`UPDATE users SET diagnostic_completed = 0, difficulty_level = 1, skill_level = 'Beginner'`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}
