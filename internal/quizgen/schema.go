package quizgen

import "github.com/edututor/edututor/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "adaptive-quiz",
	Description: "A set of multiple-choice quiz questions at a single difficulty",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The quiz questions in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief worked justification of the correct answer",
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "The concept this question exercises, e.g. \"Percentages\"",
						},
					},
					"required":             []any{"question", "options", "correct", "explanation", "topic"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
