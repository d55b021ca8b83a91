package wellness

// Fixed goal ids. The steps goal may exceed its target; the others are
// clamped to [0, target].
const (
	GoalSteps   = "steps"
	GoalWater   = "water"
	GoalWorkout = "workout"
)

// DefaultGoals returns the fixed goal catalog with zeroed progress.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: GoalSteps, Title: "Daily Steps", Target: 10000, Unit: "steps"},
		{ID: GoalWater, Title: "Drink Water", Target: 8, Unit: "glasses"},
		{ID: GoalWorkout, Title: "Weekly Workouts", Target: 3, Unit: "sessions"},
	}
}

// Fixed achievement ids.
const (
	AchFirstMeal     = "first_meal"
	AchFiveMeals     = "five_meals"
	AchFirstWorkout  = "first_workout"
	AchThreeWorkouts = "three_workouts"
	AchStreak3       = "streak_3"
	AchStreak7       = "streak_7"
)

// DefaultAchievements returns the fixed achievement catalog, all locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchFirstMeal, Title: "First Bite", Description: "Log your first meal."},
		{ID: AchFiveMeals, Title: "Meal Planner", Description: "Log 5 meals."},
		{ID: AchFirstWorkout, Title: "Getting Started", Description: "Log your first workout."},
		{ID: AchThreeWorkouts, Title: "Fitness Fanatic", Description: "Log 3 workouts in a week."},
		{ID: AchStreak3, Title: "On a Roll!", Description: "Maintain a 3-day streak."},
		{ID: AchStreak7, Title: "Habit Builder", Description: "Maintain a 7-day streak."},
	}
}

// ReferenceRecord is the single read-only medical record instance surfaced
// in the records view and fed to the record-summary feature.
func ReferenceRecord() MedicalRecord {
	return MedicalRecord{
		Allergies:  []string{"Penicillin", "Peanuts"},
		Conditions: []string{"Hypertension", "Type 2 Diabetes"},
		LabResults: []LabResult{
			{Test: "Cholesterol", Result: "210 mg/dL", Date: "2023-10-15"},
			{Test: "A1C", Result: "6.8%", Date: "2023-09-20"},
		},
		Immunizations: []Immunization{
			{Vaccine: "Influenza", Date: "2023-10-05"},
			{Vaccine: "COVID-19 Bivalent Booster", Date: "2023-09-01"},
		},
	}
}
