package engage

import "vitalog/internal/wellness"

// Evaluate checks the fixed achievement catalog against the current meal
// count, workout count and streak. Unlocks are monotonic: an achievement
// already unlocked is never re-evaluated. The returned slice contains only
// the achievements that transitioned to unlocked in this pass, so a repeat
// evaluation with unchanged inputs returns nothing.
func (e *Engine) Evaluate() []wellness.Achievement {
	meals, workouts := e.store.Counts()

	e.mu.Lock()
	defer e.mu.Unlock()

	var unlocked []wellness.Achievement
	for i := range e.achievements {
		if e.achievements[i].Unlocked {
			continue
		}
		if !unlockCondition(e.achievements[i].ID, meals, workouts, e.streak) {
			continue
		}
		e.achievements[i].Unlocked = true
		unlocked = append(unlocked, e.achievements[i])
	}
	return unlocked
}

func unlockCondition(id string, meals, workouts, streak int) bool {
	switch id {
	case wellness.AchFirstMeal:
		return meals >= 1
	case wellness.AchFiveMeals:
		return meals >= 5
	case wellness.AchFirstWorkout:
		return workouts >= 1
	case wellness.AchThreeWorkouts:
		return workouts >= 3
	case wellness.AchStreak3:
		return streak >= 3
	case wellness.AchStreak7:
		return streak >= 7
	}
	return false
}
