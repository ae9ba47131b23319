package quizgen

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/edututor/edututor/internal/llm"
)

const validQuizJSON = `{
	"questions": [
		{
			"question": "What is the derivative of x^2?",
			"options": ["2x", "x", "x^2", "2"],
			"correct": 0,
			"explanation": "Power rule: d/dx x^n = n*x^(n-1).",
			"topic": "Derivatives"
		},
		{
			"question": "What is the integral of 1 dx?",
			"options": ["x + C", "1", "0", "x^2"],
			"correct": 0,
			"explanation": "The antiderivative of a constant 1 is x.",
			"topic": "Integrals"
		}
	]
}`

func TestLLMGenerator_Success(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Turn{
		Content: json.RawMessage(validQuizJSON),
	})
	g := NewLLM(mock, DefaultConfig())

	quiz, err := g.Generate(t.Context(), GenerateInput{
		Topic:      "calculus",
		Difficulty: DifficultyMedium,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(quiz) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz))
	}
	if quiz[0].Subject != SubjectMathematics {
		t.Errorf("subject = %q, want inferred mathematics", quiz[0].Subject)
	}
	if quiz[0].Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %v, want medium", quiz[0].Difficulty)
	}

	if mock.RequestCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.RequestCount())
	}
	req := mock.Request(0)
	if req.Schema == nil || req.Schema.Name != "adaptive-quiz" {
		t.Error("expected schema name 'adaptive-quiz'")
	}
	if !strings.Contains(req.Messages[0].Content, "calculus") {
		t.Error("prompt does not mention the topic")
	}
}

func TestLLMGenerator_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Turn{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(t.Context(), GenerateInput{Topic: "algebra", Difficulty: DifficultyEasy, Count: 2})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %T, want GenerationError", err)
	}
	if genErr.Stage != "provider" {
		t.Errorf("stage = %q, want provider", genErr.Stage)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Error("cause not unwrappable to ErrProviderUnavailable")
	}
}

func TestLLMGenerator_MalformedJSON(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Turn{
		Content: json.RawMessage(`{"questions": [`),
	})
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(t.Context(), GenerateInput{Topic: "algebra", Difficulty: DifficultyEasy, Count: 1})

	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "decode" {
		t.Errorf("got %v, want decode GenerationError", err)
	}
}

func TestLLMGenerator_ValidationFailure(t *testing.T) {
	// Wrong count: one question when two were requested.
	mock := llm.NewScriptedProvider(llm.Turn{
		Content: json.RawMessage(`{
			"questions": [{
				"question": "What is 2+2?",
				"options": ["4", "3", "2", "1"],
				"correct": 0,
				"explanation": "Basic addition.",
				"topic": "Arithmetic"
			}]
		}`),
	})
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(t.Context(), GenerateInput{Topic: "algebra", Difficulty: DifficultyEasy, Count: 2})

	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "validate" {
		t.Fatalf("got %v, want validate GenerationError", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "structural" {
		t.Errorf("cause = %v, want structural ValidationError", genErr.Err)
	}
}

func TestLLMGenerator_DuplicateAgainstHistory(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Turn{
		Content: json.RawMessage(validQuizJSON),
	})
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(t.Context(), GenerateInput{
		Topic:          "calculus",
		Difficulty:     DifficultyMedium,
		Count:          2,
		PriorQuestions: []string{"What is the derivative of x^2?"},
	})

	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "validate" {
		t.Fatalf("got %v, want validate GenerationError", err)
	}
}

func TestLLMGenerator_PromptCarriesWeakTopics(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Turn{
		Content: json.RawMessage(validQuizJSON),
	})
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(t.Context(), GenerateInput{
		Topic:      "calculus",
		Difficulty: DifficultyMedium,
		Count:      2,
		WeakTopics: []string{"Integrals"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(mock.Request(0).Messages[0].Content, "Integrals") {
		t.Error("prompt does not mention weak topics")
	}
}
