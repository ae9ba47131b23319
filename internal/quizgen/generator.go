package quizgen

import "context"

// Generator produces quizzes at a requested difficulty.
type Generator interface {
	// Generate produces an ordered, validated quiz for the given input.
	// On success the quiz is never empty and every question has exactly
	// one correct option. Any failure is reported as *GenerationError.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}
