package engage

import "vitalog/internal/wellness"

// CompletedNow diffs the current goal snapshot against the previous one
// and returns the goals that crossed from below target to at-or-above
// target since the last call. A goal that was already complete does not
// fire again when incremented further.
func (e *Engine) CompletedNow() []wellness.Goal {
	current := e.store.Goals()

	e.mu.Lock()
	defer e.mu.Unlock()

	var completed []wellness.Goal
	for _, g := range current {
		prev, ok := e.prevGoals[g.ID]
		if ok && prev.Current < prev.Target && g.Current >= g.Target {
			completed = append(completed, g)
		}
		e.prevGoals[g.ID] = g
	}
	return completed
}

// CompletionPercent reports goal progress capped at 100.
func CompletionPercent(g wellness.Goal) float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := float64(g.Current) / float64(g.Target) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
