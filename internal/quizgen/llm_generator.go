package quizgen

import (
	"context"
	"encoding/json"

	"github.com/edututor/edututor/internal/llm"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLM creates a new LLMGenerator with the given provider and config.
func NewLLM(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		Correct     int      `json:"correct"`
		Explanation string   `json:"explanation"`
		Topic       string   `json:"topic"`
	} `json:"questions"`
}

// Generate produces a full quiz in a single LLM call.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	if input.Subject == "" {
		input.Subject = InferSubject(input.Topic)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Stage: "provider", Err: err}
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: "decode", Err: err}
	}

	quiz := make([]Question, len(raw.Questions))
	for i, q := range raw.Questions {
		quiz[i] = Question{
			Text:        q.Question,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
			Topic:       q.Topic,
			Subject:     input.Subject,
			Difficulty:  input.Difficulty,
		}
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(quiz, input); verr != nil {
			return nil, &GenerationError{Stage: "validate", Err: verr}
		}
	}

	return quiz, nil
}
