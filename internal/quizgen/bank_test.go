package quizgen

import (
	"errors"
	"testing"
)

func TestBankGenerate_CountAndDifficulty(t *testing.T) {
	g := NewBankSeeded(42)

	quiz, err := g.Generate(t.Context(), GenerateInput{
		Topic:      "algebra basics",
		Difficulty: DifficultyEasy,
		Count:      3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(quiz) != 3 {
		t.Fatalf("got %d questions, want 3", len(quiz))
	}
	for i, q := range quiz {
		if q.Subject != SubjectMathematics {
			t.Errorf("question %d subject = %q, want mathematics", i, q.Subject)
		}
		if len(q.Options) != OptionCount {
			t.Errorf("question %d has %d options", i, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			t.Errorf("question %d correct index %d out of range", i, q.Correct)
		}
	}
}

func TestBankGenerate_SpillsToOtherDifficulties(t *testing.T) {
	g := NewBankSeeded(1)

	// More questions than any single difficulty pool holds.
	quiz, err := g.Generate(t.Context(), GenerateInput{
		Subject:    SubjectPhysics,
		Difficulty: DifficultyHard,
		Count:      8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(quiz) == 0 {
		t.Fatal("got empty quiz")
	}
}

func TestBankGenerate_UnknownSubjectFallsBack(t *testing.T) {
	g := NewBankSeeded(7)

	quiz, err := g.Generate(t.Context(), GenerateInput{
		Subject:    "astrology",
		Difficulty: DifficultyMedium,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, q := range quiz {
		if q.Subject != SubjectMathematics {
			t.Errorf("subject = %q, want mathematics fallback", q.Subject)
		}
	}
}

func TestBankGenerate_InvalidInput(t *testing.T) {
	g := NewBankSeeded(3)

	var genErr *GenerationError
	_, err := g.Generate(t.Context(), GenerateInput{Difficulty: DifficultyEasy, Count: 0})
	if !errors.As(err, &genErr) || genErr.Stage != "validate" {
		t.Errorf("zero count: got %v, want validate GenerationError", err)
	}

	_, err = g.Generate(t.Context(), GenerateInput{Difficulty: "impossible", Count: 3})
	if !errors.As(err, &genErr) || genErr.Stage != "validate" {
		t.Errorf("bad difficulty: got %v, want validate GenerationError", err)
	}
}

func TestBankDiagnostic_SpreadsDifficulties(t *testing.T) {
	g := NewBankSeeded(99)

	quiz, err := g.Diagnostic(10)
	if err != nil {
		t.Fatalf("Diagnostic: %v", err)
	}
	if len(quiz) == 0 {
		t.Fatal("got empty diagnostic")
	}

	counts := map[Difficulty]int{}
	for _, q := range quiz {
		counts[q.Difficulty]++
	}
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if counts[d] == 0 {
			t.Errorf("diagnostic has no %s questions", d)
		}
	}
}

func TestBankDiagnostic_RejectsBadCount(t *testing.T) {
	g := NewBankSeeded(5)
	if _, err := g.Diagnostic(0); err == nil {
		t.Error("expected error for zero count")
	}
}

func TestInferSubject(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"linear algebra", SubjectMathematics},
		{"Python programming", SubjectComputerSci},
		{"Newtonian mechanics", SubjectPhysics},
		{"Shakespeare sonnets", SubjectLiterature},
		{"underwater basket weaving", SubjectMathematics},
	}
	for _, tt := range tests {
		if got := InferSubject(tt.topic); got != tt.want {
			t.Errorf("InferSubject(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}
