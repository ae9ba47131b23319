package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/edututor/edututor/internal/quizgen"
)

func makeQuiz(topics ...string) []quizgen.Question {
	quiz := make([]quizgen.Question, len(topics))
	for i, topic := range topics {
		quiz[i] = quizgen.Question{
			Text:        "question " + topic,
			Options:     []string{"a", "b", "c", "d"},
			Correct:     i % 4,
			Explanation: "because",
			Topic:       topic,
		}
	}
	return quiz
}

func allCorrect(quiz []quizgen.Question) []int {
	answers := make([]int, len(quiz))
	for i, q := range quiz {
		answers[i] = q.Correct
	}
	return answers
}

func TestEvaluate_AllCorrect(t *testing.T) {
	quiz := makeQuiz("algebra", "algebra", "geometry", "geometry")
	res := Evaluate(quiz, allCorrect(quiz))

	if res.CorrectCount != 4 {
		t.Errorf("CorrectCount = %d, want 4", res.CorrectCount)
	}
	if res.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100", res.Percentage)
	}
	if res.PerformanceLevel != "Excellent" {
		t.Errorf("PerformanceLevel = %q, want Excellent", res.PerformanceLevel)
	}
	for _, f := range res.Feedback {
		if !f.IsCorrect {
			t.Errorf("question %d marked incorrect", f.Index)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	quiz := makeQuiz("algebra", "geometry", "calculus")
	answers := []int{0, 0, 0}

	first := Evaluate(quiz, answers)
	second := Evaluate(quiz, answers)

	if !reflect.DeepEqual(first, second) {
		t.Error("scoring the same submission twice gave different results")
	}
}

func TestEvaluate_MonotoneInCorrectAnswers(t *testing.T) {
	quiz := makeQuiz("algebra", "geometry", "calculus", "trig", "stats")

	// Start all wrong, then flip answers to correct one at a time.
	// Each flip may only raise the percentage.
	answers := make([]int, len(quiz))
	for i, q := range quiz {
		answers[i] = (q.Correct + 1) % len(q.Options)
	}

	prev := Evaluate(quiz, answers).Percentage
	for i, q := range quiz {
		answers[i] = q.Correct
		got := Evaluate(quiz, answers).Percentage
		if got < prev {
			t.Fatalf("percentage dropped from %v to %v after correcting question %d", prev, got, i)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("final percentage = %v, want 100", prev)
	}
}

func TestEvaluate_MissingAnswersCountAsWrong(t *testing.T) {
	quiz := makeQuiz("algebra", "geometry", "calculus", "trig")
	// Only the first question answered (correctly).
	res := Evaluate(quiz, []int{0})

	if res.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", res.CorrectCount)
	}
	if res.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", res.TotalQuestions)
	}
	for _, f := range res.Feedback[1:] {
		if f.YourAnswer != "No answer" {
			t.Errorf("question %d YourAnswer = %q, want No answer", f.Index, f.YourAnswer)
		}
	}
}

func TestEvaluate_OutOfRangeAnswerIsWrong(t *testing.T) {
	quiz := makeQuiz("algebra")
	res := Evaluate(quiz, []int{7})

	if res.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0", res.CorrectCount)
	}
	if res.Feedback[0].YourAnswer != "No answer" {
		t.Errorf("YourAnswer = %q, want No answer", res.Feedback[0].YourAnswer)
	}
}

func TestEvaluate_ExtraAnswersIgnored(t *testing.T) {
	quiz := makeQuiz("algebra", "geometry")
	res := Evaluate(quiz, []int{0, 1, 3, 3, 3})

	if res.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", res.TotalQuestions)
	}
	if len(res.Feedback) != 2 {
		t.Errorf("len(Feedback) = %d, want 2", len(res.Feedback))
	}
}

func TestEvaluate_EmptyQuiz(t *testing.T) {
	res := Evaluate(nil, nil)

	if res.TotalQuestions != 0 || res.CorrectCount != 0 {
		t.Errorf("got %d/%d, want 0/0", res.CorrectCount, res.TotalQuestions)
	}
	if res.PerformanceLevel != "Incomplete" {
		t.Errorf("PerformanceLevel = %q, want Incomplete", res.PerformanceLevel)
	}
}

func TestPerformanceLevel_Bands(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89.9, "Very Good"},
		{80, "Very Good"},
		{79, "Good"},
		{70, "Good"},
		{69, "Fair"},
		{60, "Fair"},
		{59.9, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		if got := performanceLevel(tt.percentage); got != tt.want {
			t.Errorf("performanceLevel(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestWeakestTopic(t *testing.T) {
	feedback := []QuestionFeedback{
		{Topic: "algebra", IsCorrect: false},
		{Topic: "geometry", IsCorrect: false},
		{Topic: "geometry", IsCorrect: false},
		{Topic: "calculus", IsCorrect: true},
	}
	if got := WeakestTopic(feedback); got != "geometry" {
		t.Errorf("WeakestTopic = %q, want geometry", got)
	}
}

func TestWeakestTopic_TieResolvesToEarlier(t *testing.T) {
	feedback := []QuestionFeedback{
		{Topic: "algebra", IsCorrect: false},
		{Topic: "geometry", IsCorrect: false},
	}
	if got := WeakestTopic(feedback); got != "algebra" {
		t.Errorf("WeakestTopic = %q, want algebra", got)
	}
}

func TestWeakestTopic_AllCorrect(t *testing.T) {
	feedback := []QuestionFeedback{
		{Topic: "algebra", IsCorrect: true},
	}
	if got := WeakestTopic(feedback); got != "" {
		t.Errorf("WeakestTopic = %q, want empty", got)
	}
}

func TestWeakTopics_FirstMissOrder(t *testing.T) {
	feedback := []QuestionFeedback{
		{Topic: "geometry", IsCorrect: false},
		{Topic: "algebra", IsCorrect: false},
		{Topic: "geometry", IsCorrect: false},
		{Topic: "calculus", IsCorrect: true},
	}
	want := []string{"geometry", "algebra"}
	if got := WeakTopics(feedback); !reflect.DeepEqual(got, want) {
		t.Errorf("WeakTopics = %v, want %v", got, want)
	}
}

func TestEvaluate_RecommendationsNameWeakestTopic(t *testing.T) {
	quiz := makeQuiz("fractions", "fractions", "decimals")
	answers := []int{
		(quiz[0].Correct + 1) % 4, // miss
		(quiz[1].Correct + 1) % 4, // miss
		quiz[2].Correct,
	}

	res := Evaluate(quiz, answers)
	found := false
	for _, rec := range res.Recommendations {
		if strings.Contains(rec, "fractions") {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations %v do not mention fractions", res.Recommendations)
	}
}
