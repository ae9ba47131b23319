package quizgen

import (
	"strings"
	"testing"
)

func validQuestion(text string) Question {
	return Question{
		Text:        text,
		Options:     []string{"a", "b", "c", "d"},
		Correct:     1,
		Explanation: "because",
		Topic:       "Algebra",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantMsg string
	}{
		{"empty text", func(q *Question) { q.Text = "  " }, "empty text"},
		{"too long", func(q *Question) { q.Text = strings.Repeat("x", 501) }, "exceeds 500"},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, "has 3 options"},
		{"blank option", func(q *Question) { q.Options[2] = " " }, "is empty"},
		{"duplicate option", func(q *Question) { q.Options[3] = q.Options[0] }, "duplicate option"},
		{"correct out of range", func(q *Question) { q.Correct = 4 }, "out of range"},
		{"negative correct", func(q *Question) { q.Correct = -1 }, "out of range"},
		{"empty explanation", func(q *Question) { q.Explanation = "" }, "empty explanation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion("What is 2+2?")
			tt.mutate(&q)

			verr := v.Validate([]Question{q}, GenerateInput{Count: 1})
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestStructuralValidator_Passes(t *testing.T) {
	v := &StructuralValidator{}
	quiz := []Question{validQuestion("one?"), validQuestion("two?")}
	if verr := v.Validate(quiz, GenerateInput{Count: 2}); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}
}

func TestStructuralValidator_EmptyQuiz(t *testing.T) {
	v := &StructuralValidator{}
	if verr := v.Validate(nil, GenerateInput{Count: 3}); verr == nil {
		t.Error("expected error for empty quiz")
	}
}

func TestStructuralValidator_CountMismatch(t *testing.T) {
	v := &StructuralValidator{}
	quiz := []Question{validQuestion("one?")}
	if verr := v.Validate(quiz, GenerateInput{Count: 5}); verr == nil {
		t.Error("expected error for short quiz")
	}
}

func TestUniquenessValidator_RejectsInternalDuplicate(t *testing.T) {
	v := &UniquenessValidator{}
	quiz := []Question{
		validQuestion("What is 2+2?"),
		validQuestion("what  is 2+2?"), // same after normalization
	}
	if verr := v.Validate(quiz, GenerateInput{}); verr == nil {
		t.Error("expected duplicate to be rejected")
	}
}

func TestUniquenessValidator_RejectsSeenQuestion(t *testing.T) {
	v := &UniquenessValidator{}
	quiz := []Question{validQuestion("What is 2+2?")}
	input := GenerateInput{PriorQuestions: []string{"WHAT IS 2+2?"}}
	if verr := v.Validate(quiz, input); verr == nil {
		t.Error("expected already-seen question to be rejected")
	}
}

func TestUniquenessValidator_Passes(t *testing.T) {
	v := &UniquenessValidator{}
	quiz := []Question{validQuestion("one?"), validQuestion("two?")}
	input := GenerateInput{PriorQuestions: []string{"three?"}}
	if verr := v.Validate(quiz, input); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}
}
