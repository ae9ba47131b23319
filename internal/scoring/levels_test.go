package scoring

import (
	"testing"

	"github.com/edututor/edututor/internal/quizgen"
)

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		percentage float64
		want       SkillLevel
	}{
		{100, LevelAdvanced},
		{80, LevelAdvanced},
		{79.9, LevelIntermediate},
		{60, LevelIntermediate},
		{59.9, LevelBeginner},
		{0, LevelBeginner},
	}
	for _, tt := range tests {
		if got := ClassifyLevel(tt.percentage); got != tt.want {
			t.Errorf("ClassifyLevel(%v) = %v, want %v", tt.percentage, got, tt.want)
		}
	}
}

func TestSkillLevelDifficulty(t *testing.T) {
	tests := []struct {
		level SkillLevel
		want  quizgen.Difficulty
	}{
		{LevelAdvanced, quizgen.DifficultyHard},
		{LevelIntermediate, quizgen.DifficultyMedium},
		{LevelBeginner, quizgen.DifficultyEasy},
		{SkillLevel("garbage"), quizgen.DifficultyEasy},
	}
	for _, tt := range tests {
		if got := tt.level.Difficulty(); got != tt.want {
			t.Errorf("%v.Difficulty() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestAdaptDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		recent   []float64
		fallback quizgen.Difficulty
		want     quizgen.Difficulty
	}{
		{"no history uses fallback", nil, quizgen.DifficultyMedium, quizgen.DifficultyMedium},
		{"high average goes hard", []float64{90, 85, 88}, quizgen.DifficultyEasy, quizgen.DifficultyHard},
		{"mid average goes medium", []float64{70, 68}, quizgen.DifficultyEasy, quizgen.DifficultyMedium},
		{"low average goes easy", []float64{40, 50, 30}, quizgen.DifficultyHard, quizgen.DifficultyEasy},
		{"exactly 85 goes hard", []float64{85}, quizgen.DifficultyEasy, quizgen.DifficultyHard},
		{"exactly 65 goes medium", []float64{65}, quizgen.DifficultyEasy, quizgen.DifficultyMedium},
		{
			// Scores older than the window must not drag the average up.
			"only last five count",
			[]float64{50, 50, 50, 50, 50, 100, 100, 100},
			quizgen.DifficultyHard,
			quizgen.DifficultyEasy,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdaptDifficulty(tt.recent, tt.fallback); got != tt.want {
				t.Errorf("AdaptDifficulty(%v) = %v, want %v", tt.recent, got, tt.want)
			}
		})
	}
}

func TestLevelForDifficulty_RoundTrip(t *testing.T) {
	for _, d := range []quizgen.Difficulty{quizgen.DifficultyEasy, quizgen.DifficultyMedium, quizgen.DifficultyHard} {
		if got := LevelForDifficulty(d).Difficulty(); got != d {
			t.Errorf("round trip for %v gave %v", d, got)
		}
	}
}

// A 2/5 diagnostic should land the learner at Beginner with easy quizzes.
func TestDiagnosticPipeline_LowScore(t *testing.T) {
	quiz := makeQuiz("a", "b", "c", "d", "e")
	answers := make([]int, len(quiz))
	for i, q := range quiz {
		if i < 2 {
			answers[i] = q.Correct
		} else {
			answers[i] = (q.Correct + 1) % 4
		}
	}

	res := Evaluate(quiz, answers)
	if res.Percentage != 40 {
		t.Fatalf("Percentage = %v, want 40", res.Percentage)
	}

	level := ClassifyLevel(res.Percentage)
	if level != LevelBeginner {
		t.Errorf("level = %v, want Beginner", level)
	}
	if d := level.Difficulty(); d != quizgen.DifficultyEasy {
		t.Errorf("difficulty = %v, want easy", d)
	}
}
