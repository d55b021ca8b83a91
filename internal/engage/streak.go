package engage

import (
	"vitalog/internal/settings"
	"vitalog/internal/wellness"
)

// EvaluateVisit advances the visit streak for today and persists both the
// streak and the last-visit date. The rules:
//
//   - last visit was yesterday: streak += 1
//   - last visit was neither yesterday nor today (gap or first visit): streak = 1
//   - last visit was today (repeat visit): streak unchanged
//
// Re-running on the same day is idempotent.
func (e *Engine) EvaluateVisit() (int, error) {
	today := e.now().Format(wellness.DateLayout)
	yesterday := e.now().AddDate(0, 0, -1).Format(wellness.DateLayout)

	lastVisit, err := e.prefs.Get(settings.KeyLastVisit)
	if err != nil {
		return 0, err
	}
	persisted, err := e.prefs.GetInt(settings.KeyStreak)
	if err != nil {
		return 0, err
	}

	var streak int
	switch {
	case lastVisit == yesterday:
		streak = persisted + 1
	case lastVisit != today:
		streak = 1
	default:
		streak = persisted
	}

	if err := e.prefs.Set(settings.KeyLastVisit, today); err != nil {
		return 0, err
	}
	if err := e.prefs.SetInt(settings.KeyStreak, streak); err != nil {
		return 0, err
	}

	e.mu.Lock()
	e.streak = streak
	e.mu.Unlock()
	return streak, nil
}
