package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Role distinguishes learners from educators.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
)

// User is an account row. Identity fields are immutable after signup;
// skill level and last_login move as the learner progresses.
type User struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Role                Role       `json:"role"`
	DiagnosticCompleted bool       `json:"diagnostic_completed"`
	DifficultyLevel     int        `json:"difficulty_level"` // 1..3
	SkillLevel          string     `json:"skill_level"`      // Beginner, Intermediate, Advanced
	CreatedAt           time.Time  `json:"created_at"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
}

// ErrDuplicateEmail is returned by Create when the email is taken.
var ErrDuplicateEmail = fmt.Errorf("email already registered")

// UserRepo manages user accounts.
type UserRepo interface {
	// Create inserts a new user and returns it with the assigned ID.
	// Returns ErrDuplicateEmail if the email already exists.
	Create(ctx context.Context, name, email string, role Role) (*User, error)

	// Get returns the user by ID, or nil if not found.
	Get(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns the user by email, or nil if not found.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List returns users ordered by name. An empty role returns every
	// account; otherwise only users with that role.
	List(ctx context.Context, role Role) ([]*User, error)

	// UpdateDiagnostic records a completed diagnostic: marks the flag and
	// sets the classified skill level and difficulty.
	UpdateDiagnostic(ctx context.Context, id int64, difficultyLevel int, skillLevel string) error

	// UpdateLevel adjusts the skill level and difficulty after a quiz.
	UpdateLevel(ctx context.Context, id int64, difficultyLevel int, skillLevel string) error

	// TouchLogin sets last_login to now.
	TouchLogin(ctx context.Context, id int64) error
}

type userRepo struct {
	db *sql.DB
}

const userColumns = `id, name, email, role, diagnostic_completed, difficulty_level, skill_level, created_at, last_login`

func (r *userRepo) Create(ctx context.Context, name, email string, role Role) (*User, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email, role) VALUES (?, ?, ?)
	`, name, email, string(role))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *userRepo) Get(ctx context.Context, id int64) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *userRepo) List(ctx context.Context, role Role) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`
	args := []any{}
	if role != "" {
		query = `SELECT ` + userColumns + ` FROM users WHERE role = ? ORDER BY name`
		args = append(args, string(role))
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) UpdateDiagnostic(ctx context.Context, id int64, difficultyLevel int, skillLevel string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET diagnostic_completed = 1, difficulty_level = ?, skill_level = ?
		WHERE id = ?
	`, difficultyLevel, skillLevel, id)
	if err != nil {
		return fmt.Errorf("update diagnostic for user %d: %w", id, err)
	}
	return nil
}

func (r *userRepo) UpdateLevel(ctx context.Context, id int64, difficultyLevel int, skillLevel string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET difficulty_level = ?, skill_level = ? WHERE id = ?
	`, difficultyLevel, skillLevel, id)
	if err != nil {
		return fmt.Errorf("update level for user %d: %w", id, err)
	}
	return nil
}

func (r *userRepo) TouchLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("touch login for user %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	var role string
	var lastLogin sql.NullTime
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&role,
		&u.DiagnosticCompleted,
		&u.DifficultyLevel,
		&u.SkillLevel,
		&u.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = Role(role)
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return &u, nil
}
