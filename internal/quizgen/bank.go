package quizgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// BankGenerator serves quizzes from the built-in question banks. It backs
// the diagnostic quiz (fixed, trusted content) and acts as the offline
// generator when no LLM provider is configured.
type BankGenerator struct {
	rng *rand.Rand
}

// NewBank creates a BankGenerator with a time-seeded RNG.
func NewBank() *BankGenerator {
	return NewBankSeeded(uint64(time.Now().UnixNano()))
}

// NewBankSeeded creates a BankGenerator with a fixed seed, for tests.
func NewBankSeeded(seed uint64) *BankGenerator {
	return &BankGenerator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate samples questions from the bank for the subject and
// difficulty. When the target bank is short, adjacent difficulties of
// the same subject fill the remainder.
func (g *BankGenerator) Generate(_ context.Context, input GenerateInput) ([]Question, error) {
	if input.Count <= 0 {
		return nil, &GenerationError{Stage: "validate", Err: fmt.Errorf("question count must be positive, got %d", input.Count)}
	}
	if !input.Difficulty.Valid() {
		return nil, &GenerationError{Stage: "validate", Err: fmt.Errorf("unknown difficulty %q", input.Difficulty)}
	}

	subject := input.Subject
	if subject == "" {
		subject = InferSubject(input.Topic)
	}

	bank, ok := questionBanks[subject]
	if !ok {
		bank = questionBanks[SubjectMathematics]
		subject = SubjectMathematics
	}

	pool := append([]bankQuestion(nil), bank[input.Difficulty]...)
	if len(pool) < input.Count {
		for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
			if d != input.Difficulty {
				pool = append(pool, bank[d]...)
			}
		}
	}
	if len(pool) == 0 {
		return nil, &GenerationError{Stage: "provider", Err: fmt.Errorf("no bank questions for subject %q", subject)}
	}

	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n := input.Count
	if n > len(pool) {
		n = len(pool)
	}

	quiz := make([]Question, n)
	for i, bq := range pool[:n] {
		quiz[i] = bq.toQuestion(subject, input.Difficulty)
	}
	return quiz, nil
}

// Diagnostic assembles the skill assessment quiz: an even spread across
// difficulties, subjects chosen at random, shuffled for presentation.
func (g *BankGenerator) Diagnostic(count int) ([]Question, error) {
	if count <= 0 {
		return nil, &GenerationError{Stage: "validate", Err: fmt.Errorf("question count must be positive, got %d", count)}
	}

	difficulties := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	perDifficulty := count / len(difficulties)
	remainder := count % len(difficulties)

	var quiz []Question
	for i, d := range difficulties {
		n := perDifficulty
		if i < remainder {
			n++
		}
		for range n {
			subject := Subjects[g.rng.IntN(len(Subjects))]
			pool := questionBanks[subject][d]
			if len(pool) == 0 {
				continue
			}
			bq := pool[g.rng.IntN(len(pool))]
			quiz = append(quiz, bq.toQuestion(subject, d))
		}
	}

	if len(quiz) == 0 {
		return nil, &GenerationError{Stage: "provider", Err: fmt.Errorf("question banks are empty")}
	}

	g.rng.Shuffle(len(quiz), func(i, j int) { quiz[i], quiz[j] = quiz[j], quiz[i] })
	return quiz, nil
}

// subjectKeywords drives InferSubject. First match wins, checked in
// Subjects order.
var subjectKeywords = map[string][]string{
	SubjectMathematics: {"math", "algebra", "calculus", "geometry", "statistics", "equation", "derivative", "integral", "fraction"},
	SubjectComputerSci: {"programming", "algorithm", "data structure", "computer", "coding", "software", "python", "java"},
	SubjectPhysics:     {"physics", "force", "energy", "momentum", "gravity", "quantum", "mechanics"},
	SubjectLiterature:  {"literature", "novel", "poem", "shakespeare", "author", "writing", "story"},
}

// InferSubject picks a subject area from topic keywords.
// Unrecognized topics default to mathematics.
func InferSubject(topic string) string {
	lower := strings.ToLower(topic)
	for _, subject := range Subjects {
		for _, kw := range subjectKeywords[subject] {
			if strings.Contains(lower, kw) {
				return subject
			}
		}
	}
	return SubjectMathematics
}
