package tutor

import (
	"testing"
	"time"
)

func TestPendingCache_TakeIsOneShot(t *testing.T) {
	c := newPendingCache()
	p := c.put(1, pendingQuiz{Topic: "algebra", Questions: fixedQuiz(3)})

	got, ok := c.take(p.ID)
	if !ok || got.Topic != "algebra" {
		t.Fatalf("take = %+v, %v", got, ok)
	}
	if _, ok := c.take(p.ID); ok {
		t.Error("second take succeeded")
	}
}

func TestPendingCache_ExpiredQuizNotHonored(t *testing.T) {
	c := newPendingCache()
	p := c.put(1, pendingQuiz{Topic: "algebra", Questions: fixedQuiz(3)})

	// Age the entry past the TTL without a put in between to prune it.
	c.mu.Lock()
	aged := c.quizzes[p.ID]
	aged.createdAt = time.Now().Add(-pendingTTL - time.Minute)
	c.quizzes[p.ID] = aged
	c.mu.Unlock()

	if _, ok := c.take(p.ID); ok {
		t.Error("expired quiz was honored")
	}
	if _, ok := c.quizzes[p.ID]; ok {
		t.Error("expired quiz left in the cache")
	}
}

func TestPendingCache_PutPrunesExpired(t *testing.T) {
	c := newPendingCache()
	old := c.put(1, pendingQuiz{Topic: "stale", Questions: fixedQuiz(1)})

	c.mu.Lock()
	aged := c.quizzes[old.ID]
	aged.createdAt = time.Now().Add(-pendingTTL - time.Minute)
	c.quizzes[old.ID] = aged
	c.mu.Unlock()

	c.put(1, pendingQuiz{Topic: "fresh", Questions: fixedQuiz(1)})

	c.mu.Lock()
	_, ok := c.quizzes[old.ID]
	n := len(c.quizzes)
	c.mu.Unlock()
	if ok {
		t.Error("stale quiz survived the prune")
	}
	if n != 1 {
		t.Errorf("cache holds %d quizzes, want 1", n)
	}
}
