package scoring

import "github.com/edututor/edututor/internal/quizgen"

// SkillLevel is the ordinal learner proficiency scale.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// Difficulty returns the quiz difficulty a learner at this level
// should be served.
func (l SkillLevel) Difficulty() quizgen.Difficulty {
	switch l {
	case LevelAdvanced:
		return quizgen.DifficultyHard
	case LevelIntermediate:
		return quizgen.DifficultyMedium
	default:
		return quizgen.DifficultyEasy
	}
}

// ClassifyLevel maps a diagnostic percentage to a skill level:
// 80 and above is Advanced, 60 and above is Intermediate, below that
// Beginner.
func ClassifyLevel(percentage float64) SkillLevel {
	switch {
	case percentage >= 80:
		return LevelAdvanced
	case percentage >= 60:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// adaptWindow is how many recent attempts feed difficulty adaptation.
const adaptWindow = 5

// AdaptDifficulty picks the next quiz difficulty from recent attempt
// percentages (most recent first): average of the last 5 at 85 or above
// means hard, at 65 or above medium, otherwise easy. With no history the
// fallback difficulty is returned.
func AdaptDifficulty(recent []float64, fallback quizgen.Difficulty) quizgen.Difficulty {
	if len(recent) == 0 {
		return fallback
	}
	if len(recent) > adaptWindow {
		recent = recent[:adaptWindow]
	}

	var sum float64
	for _, p := range recent {
		sum += p
	}
	avg := sum / float64(len(recent))

	switch {
	case avg >= 85:
		return quizgen.DifficultyHard
	case avg >= 65:
		return quizgen.DifficultyMedium
	default:
		return quizgen.DifficultyEasy
	}
}

// LevelForDifficulty maps a difficulty back to the skill level it
// represents, used when a learner's level is re-estimated after a quiz.
func LevelForDifficulty(d quizgen.Difficulty) SkillLevel {
	switch d {
	case quizgen.DifficultyHard:
		return LevelAdvanced
	case quizgen.DifficultyMedium:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
