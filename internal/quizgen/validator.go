package quizgen

import (
	"fmt"
	"strings"
)

// Validator checks a generated quiz for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging,
	// e.g. "structural", "uniqueness".
	Name() string

	// Validate checks the quiz and returns nil if it passes.
	Validate(quiz []Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a quiz failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that the quiz is non-empty, sized as
// requested, and that every question is well formed: non-empty prompt,
// exactly 4 distinct options, correct index in range, explanation present.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(quiz []Question, input GenerateInput) *ValidationError {
	if len(quiz) == 0 {
		return v.fail("quiz is empty")
	}
	if input.Count > 0 && len(quiz) != input.Count {
		return v.fail(fmt.Sprintf("expected %d questions, got %d", input.Count, len(quiz)))
	}

	for i, q := range quiz {
		if strings.TrimSpace(q.Text) == "" {
			return v.fail(fmt.Sprintf("question %d has empty text", i))
		}
		if len(q.Text) > 500 {
			return v.fail(fmt.Sprintf("question %d exceeds 500 characters", i))
		}
		if len(q.Options) != OptionCount {
			return v.fail(fmt.Sprintf("question %d has %d options, want %d", i, len(q.Options), OptionCount))
		}
		seen := make(map[string]bool, OptionCount)
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return v.fail(fmt.Sprintf("question %d option %d is empty", i, j))
			}
			if seen[opt] {
				return v.fail(fmt.Sprintf("question %d has duplicate option %q", i, opt))
			}
			seen[opt] = true
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return v.fail(fmt.Sprintf("question %d correct index %d out of range", i, q.Correct))
		}
		if strings.TrimSpace(q.Explanation) == "" {
			return v.fail(fmt.Sprintf("question %d has empty explanation", i))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// UniquenessValidator rejects quizzes with repeated prompts, either
// within the quiz or against the learner's already-seen list.
type UniquenessValidator struct{}

func (v *UniquenessValidator) Name() string { return "uniqueness" }

func (v *UniquenessValidator) Validate(quiz []Question, input GenerateInput) *ValidationError {
	seen := make(map[string]bool, len(quiz)+len(input.PriorQuestions))
	for _, prior := range input.PriorQuestions {
		seen[normalizePrompt(prior)] = true
	}

	for i, q := range quiz {
		key := normalizePrompt(q.Text)
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d repeats %q", i, q.Text),
			}
		}
		seen[key] = true
	}
	return nil
}

func normalizePrompt(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
