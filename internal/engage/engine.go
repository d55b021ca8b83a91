// Package engage computes values derived from the state container:
// streaks, achievement unlocks, goal-completion transitions and daily
// summaries. It does not persist any entity itself.
package engage

import (
	"sync"
	"time"

	"vitalog/internal/settings"
	"vitalog/internal/store"
	"vitalog/internal/wellness"
)

type Engine struct {
	store *store.Store
	prefs *settings.Store

	mu           sync.Mutex
	achievements []wellness.Achievement
	streak       int
	prevGoals    map[string]wellness.Goal

	now func() time.Time
}

type Option func(*Engine)

// WithClock pins the calendar day in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(st *store.Store, prefs *settings.Store, opts ...Option) *Engine {
	e := &Engine{
		store:        st,
		prefs:        prefs,
		achievements: wellness.DefaultAchievements(),
		prevGoals:    make(map[string]wellness.Goal),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, g := range st.Goals() {
		e.prevGoals[g.ID] = g
	}
	return e
}

// Streak returns the current consecutive-day visit count.
func (e *Engine) Streak() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.streak
}

// Achievements returns the catalog with current unlock state.
func (e *Engine) Achievements() []wellness.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]wellness.Achievement(nil), e.achievements...)
}
