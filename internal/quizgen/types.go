package quizgen

import "fmt"

// Difficulty is the ordinal difficulty scale for quizzes.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyFromLevel maps the stored 1..3 level to a Difficulty.
// Out-of-range values fall back to medium.
func DifficultyFromLevel(level int) Difficulty {
	switch level {
	case 1:
		return DifficultyEasy
	case 3:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Level returns the 1..3 representation of the difficulty.
func (d Difficulty) Level() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// Valid reports whether d is one of the three known difficulties.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question is a single multiple-choice question ready for display.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string `json:"question"`

	// Options holds exactly 4 answer choices.
	Options []string `json:"options"`

	// Correct is the index into Options of the right answer.
	Correct int `json:"correct"`

	// Explanation is a short worked justification shown after scoring.
	Explanation string `json:"explanation"`

	// Topic tags the concept the question exercises, e.g. "Percentages".
	Topic string `json:"topic"`

	// Subject is the subject area the question belongs to.
	Subject string `json:"subject"`

	// Difficulty the question was generated at.
	Difficulty Difficulty `json:"difficulty"`
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Topic is the learner-supplied free-text topic.
	Topic string

	// Subject is the subject area. Empty means infer from the topic.
	Subject string

	// Difficulty is the target difficulty for every question.
	Difficulty Difficulty

	// Count is the number of questions requested. Must be positive.
	Count int

	// PriorQuestions contains prompts the learner has already seen,
	// used for deduplication in the LLM prompt.
	PriorQuestions []string

	// WeakTopics lists topics the learner recently missed questions on.
	// Included in the prompt so generation leans toward them.
	WeakTopics []string
}

// GenerationError reports that quiz generation failed. Callers receive
// this rather than an empty or partial quiz.
type GenerationError struct {
	Stage string // "provider", "decode", "validate"
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed (%s): %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
