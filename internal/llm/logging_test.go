package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/edututor/edututor/internal/store"
)

// memLogRepo records appended rows in memory.
type memLogRepo struct {
	rows []store.LLMRequest
	fail bool
}

func (m *memLogRepo) Append(_ context.Context, req store.LLMRequest) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.rows = append(m.rows, req)
	return nil
}

func (m *memLogRepo) List(context.Context, int) ([]*store.LLMRequest, error) { return nil, nil }
func (m *memLogRepo) Get(context.Context, int64) (*store.LLMRequest, error)  { return nil, nil }

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewScriptedProvider(Turn{
		Content: json.RawMessage(`{"x": 1}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	repo := &memLogRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(t.Context(), "quiz-gen")
	_, err := p.Generate(ctx, Request{
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(repo.rows))
	}
	rec := repo.rows[0]
	if rec.Purpose != "quiz-gen" {
		t.Errorf("Purpose = %q, want quiz-gen", rec.Purpose)
	}
	if !rec.Success {
		t.Error("Success = false, want true")
	}
	if rec.InputTokens != 10 || rec.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 10/20", rec.InputTokens, rec.OutputTokens)
	}
	if !strings.Contains(rec.RequestBody, "be helpful") || !strings.Contains(rec.RequestBody, "hello") {
		t.Errorf("request body missing prompt content: %q", rec.RequestBody)
	}
	if rec.ResponseBody != `{"x": 1}` {
		t.Errorf("ResponseBody = %q", rec.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewScriptedProvider(Turn{Err: &ErrProviderUnavailable{}})
	repo := &memLogRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(t.Context(), Request{})
	if err == nil {
		t.Fatal("expected provider error")
	}

	if len(repo.rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(repo.rows))
	}
	rec := repo.rows[0]
	if rec.Success {
		t.Error("Success = true, want false")
	}
	if rec.ErrorMessage == "" {
		t.Error("ErrorMessage is empty")
	}
	if rec.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown default", rec.Purpose)
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewScriptedProvider(Turn{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, &memLogRepo{fail: true})

	if _, err := p.Generate(t.Context(), Request{}); err != nil {
		t.Errorf("Generate failed because logging failed: %v", err)
	}
}
