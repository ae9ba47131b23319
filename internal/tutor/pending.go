package tutor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edututor/edututor/internal/quizgen"
)

// pendingTTL bounds how long an unanswered quiz stays claimable.
const pendingTTL = 2 * time.Hour

// pendingQuiz is a generated quiz awaiting submission. The answer key
// lives only here; clients see the view.
type pendingQuiz struct {
	ID         string
	UserID     int64
	Diagnostic bool
	Subject    string
	Topic      string
	Difficulty quizgen.Difficulty
	Questions  []quizgen.Question
	createdAt  time.Time
}

func (p pendingQuiz) view() *QuizView {
	views := make([]QuestionView, len(p.Questions))
	for i, q := range p.Questions {
		views[i] = QuestionView{Text: q.Text, Options: q.Options, Topic: q.Topic}
	}
	return &QuizView{
		QuizID:     p.ID,
		Diagnostic: p.Diagnostic,
		Subject:    p.Subject,
		Topic:      p.Topic,
		Difficulty: p.Difficulty,
		Questions:  views,
	}
}

type pendingCache struct {
	mu      sync.Mutex
	quizzes map[string]pendingQuiz
}

func newPendingCache() *pendingCache {
	return &pendingCache{quizzes: make(map[string]pendingQuiz)}
}

// put assigns the quiz an ID, stores it and prunes stale entries.
func (c *pendingCache) put(userID int64, p pendingQuiz) pendingQuiz {
	p.ID = uuid.NewString()
	p.UserID = userID
	p.createdAt = time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, old := range c.quizzes {
		if time.Since(old.createdAt) > pendingTTL {
			delete(c.quizzes, id)
		}
	}
	c.quizzes[p.ID] = p
	return p
}

// take removes and returns the quiz, so each ID submits at most once.
// An entry past the TTL is dropped rather than honored, even when no
// put has pruned it yet.
func (c *pendingCache) take(id string) (pendingQuiz, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.quizzes[id]
	if !ok {
		return pendingQuiz{}, false
	}
	delete(c.quizzes, id)
	if time.Since(p.createdAt) > pendingTTL {
		return pendingQuiz{}, false
	}
	return p, true
}

// takeDiagnostic removes and returns the user's pending diagnostic, so
// the diagnostic can be submitted without the client echoing a quiz ID.
func (c *pendingCache) takeDiagnostic(userID int64) (pendingQuiz, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, p := range c.quizzes {
		if p.UserID == userID && p.Diagnostic && time.Since(p.createdAt) <= pendingTTL {
			delete(c.quizzes, id)
			return p, true
		}
	}
	return pendingQuiz{}, false
}
