package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequest is one row of the LLM traffic log.
type LLMRequest struct {
	ID           int64
	Timestamp    time.Time
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMLogRepo provides append and query access to the LLM request log.
// The llm logging middleware is its only writer.
type LLMLogRepo interface {
	// Append records one LLM call.
	Append(ctx context.Context, req LLMRequest) error

	// List returns the most recent entries, newest first.
	// limit of 0 means a default of 50.
	List(ctx context.Context, limit int) ([]*LLMRequest, error)

	// Get returns an entry by ID including request/response bodies, or
	// nil if not found.
	Get(ctx context.Context, id int64) (*LLMRequest, error)
}

type llmLogRepo struct {
	db *sql.DB
}

func (r *llmLogRepo) Append(ctx context.Context, req LLMRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_requests
			(model, purpose, input_tokens, output_tokens, latency_ms,
			 success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		req.Model, req.Purpose, req.InputTokens, req.OutputTokens,
		req.LatencyMs, req.Success, req.ErrorMessage,
		req.RequestBody, req.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

func (r *llmLogRepo) List(ctx context.Context, limit int) ([]*LLMRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, COALESCE(error_message, '')
		FROM llm_requests
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm requests: %w", err)
	}
	defer rows.Close()

	var out []*LLMRequest
	for rows.Next() {
		var e LLMRequest
		err := rows.Scan(
			&e.ID, &e.Timestamp, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs,
			&e.Success, &e.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *llmLogRepo) Get(ctx context.Context, id int64) (*LLMRequest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, COALESCE(error_message, ''),
		       COALESCE(request_body, ''), COALESCE(response_body, '')
		FROM llm_requests
		WHERE id = ?
	`, id)

	var e LLMRequest
	err := row.Scan(
		&e.ID, &e.Timestamp, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs,
		&e.Success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan llm request %d: %w", id, err)
	}
	return &e, nil
}
