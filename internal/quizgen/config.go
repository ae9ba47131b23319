package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list run on every generated quiz.
	// They execute in order; the first failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many previously seen questions are
	// included in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxWeakTopics caps how many weak topics are included in the prompt.
	MaxWeakTopics int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&UniquenessValidator{},
		},
		MaxTokens:         2048,
		Temperature:       0.7,
		MaxPriorQuestions: 20,
		MaxWeakTopics:     5,
	}
}
