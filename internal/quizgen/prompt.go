package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a tutor writing multiple-choice quiz questions for an adaptive learning platform.

Rules:
- Generate the requested number of questions for the given topic, subject and difficulty. Every question must match the requested difficulty.
- Use plain text for all content. No LaTeX, no markdown.
- Each question has exactly 4 options with exactly one correct answer. Distractors should reflect common mistakes, not random values.
- The explanation must justify the correct answer in one or two sentences.
- Tag each question with the specific concept it exercises in the "topic" field.
- Questions must be self-contained and unambiguous.
- Do not repeat any question from the "already seen" list.
- When weak topics are listed, bias question selection toward them.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	b.WriteString("\nAlready seen by this learner:\n")
	b.WriteString(formatList(input.PriorQuestions, cfg.MaxPriorQuestions))

	b.WriteString("\nWeak topics for this learner:\n")
	b.WriteString(formatList(input.WeakTopics, cfg.MaxWeakTopics))

	return b.String()
}

// formatList renders the most recent max entries as a numbered list,
// or "None" when empty.
func formatList(entries []string, max int) string {
	if len(entries) == 0 {
		return "None"
	}

	if max > 0 && len(entries) > max {
		entries = entries[len(entries)-max:]
	}

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e)
	}
	return strings.TrimRight(b.String(), "\n")
}
