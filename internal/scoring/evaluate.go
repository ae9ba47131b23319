package scoring

import (
	"fmt"

	"github.com/edututor/edututor/internal/quizgen"
)

// NoAnswer marks an unanswered question in a submission.
const NoAnswer = -1

// Result is the outcome of scoring one quiz submission.
type Result struct {
	CorrectCount     int                `json:"correct_count"`
	TotalQuestions   int                `json:"total_questions"`
	Percentage       float64            `json:"percentage"`
	PerformanceLevel string             `json:"performance_level"`
	Feedback         []QuestionFeedback `json:"feedback"`
	Recommendations  []string           `json:"recommendations"`
}

// QuestionFeedback explains the outcome of a single question.
type QuestionFeedback struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
}

// Evaluate scores a submission against the answer key. Answers beyond
// the question count are ignored; missing or out-of-range answers count
// as wrong. The function is pure: scoring the same submission twice
// yields the same Result.
func Evaluate(questions []quizgen.Question, answers []int) Result {
	res := Result{
		TotalQuestions: len(questions),
		Feedback:       make([]QuestionFeedback, 0, len(questions)),
	}
	if len(questions) == 0 {
		res.PerformanceLevel = "Incomplete"
		return res
	}

	for i, q := range questions {
		answer := NoAnswer
		if i < len(answers) {
			answer = answers[i]
		}

		correct := answer == q.Correct
		if correct {
			res.CorrectCount++
		}

		yours := "No answer"
		if answer >= 0 && answer < len(q.Options) {
			yours = q.Options[answer]
		}

		res.Feedback = append(res.Feedback, QuestionFeedback{
			Index:         i,
			Question:      q.Text,
			YourAnswer:    yours,
			CorrectAnswer: q.Options[q.Correct],
			IsCorrect:     correct,
			Explanation:   q.Explanation,
			Topic:         q.Topic,
		})
	}

	res.Percentage = float64(res.CorrectCount) / float64(res.TotalQuestions) * 100
	res.PerformanceLevel = performanceLevel(res.Percentage)
	res.Recommendations = buildRecommendations(res.Percentage, res.Feedback)
	return res
}

// performanceLevel maps a percentage to the display band.
func performanceLevel(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 80:
		return "Very Good"
	case percentage >= 70:
		return "Good"
	case percentage >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// buildRecommendations produces study advice from the score band and the
// topic with the most misses.
func buildRecommendations(percentage float64, feedback []QuestionFeedback) []string {
	var recs []string

	switch {
	case percentage >= 90:
		recs = append(recs,
			"Excellent work! Consider advancing to more challenging topics.",
			"You might be ready for advanced level material.")
	case percentage >= 70:
		recs = append(recs,
			"Good performance! Review the questions you missed.",
			"Focus on strengthening weak areas for even better results.")
	default:
		recs = append(recs,
			"Consider reviewing fundamental concepts.",
			"Practice more problems in areas where you struggled.")
	}

	if topic := WeakestTopic(feedback); topic != "" {
		recs = append(recs, fmt.Sprintf("Pay special attention to %s - this seems to be a challenging area.", topic))
	}

	return recs
}

// WeakestTopic returns the topic with the most incorrect answers, or ""
// when everything was correct. Ties resolve to the earlier topic.
func WeakestTopic(feedback []QuestionFeedback) string {
	misses := make(map[string]int)
	order := make([]string, 0)
	for _, f := range feedback {
		if f.IsCorrect {
			continue
		}
		if _, seen := misses[f.Topic]; !seen {
			order = append(order, f.Topic)
		}
		misses[f.Topic]++
	}

	best := ""
	max := 0
	for _, topic := range order {
		if misses[topic] > max {
			max = misses[topic]
			best = topic
		}
	}
	return best
}

// WeakTopics returns every topic with at least one miss, in first-miss
// order. Fed to the generator's prompt for the next quiz.
func WeakTopics(feedback []QuestionFeedback) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range feedback {
		if f.IsCorrect || seen[f.Topic] {
			continue
		}
		seen[f.Topic] = true
		out = append(out, f.Topic)
	}
	return out
}
