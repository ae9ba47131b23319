package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Turn is one scripted exchange: generated quiz content, or the error
// the backend would have produced.
type Turn struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// ScriptedProvider replays a fixed script of turns in order and records
// every request it saw. It backs the "mock" provider setting, so quiz
// flows can run deterministically without an API key, and it is the
// test double for everything layered on Provider.
type ScriptedProvider struct {
	mu    sync.Mutex
	turns []Turn
	seen  []Request
}

// NewScriptedProvider builds a provider that plays the given turns.
func NewScriptedProvider(turns ...Turn) *ScriptedProvider {
	return &ScriptedProvider{turns: turns}
}

// Generate records the request and consumes the next turn. A drained
// script answers ErrProviderUnavailable.
func (p *ScriptedProvider) Generate(_ context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seen = append(p.seen, req)

	if len(p.turns) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	turn := p.turns[0]
	p.turns = p.turns[1:]

	if turn.Err != nil {
		return nil, turn.Err
	}
	return &Response{
		Content:    turn.Content,
		Usage:      turn.Usage,
		Model:      p.ModelID(),
		StopReason: "end",
	}, nil
}

func (p *ScriptedProvider) ModelID() string { return "scripted" }

// Request returns the i-th request seen by Generate.
func (p *ScriptedProvider) Request(i int) Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seen[i]
}

// RequestCount reports how many Generate calls were made.
func (p *ScriptedProvider) RequestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}
