package server

import "net/http"

// NewMux registers every endpoint on a fresh ServeMux and wraps it in
// the CORS middleware.
func NewMux(s *Service) http.Handler {
	mux := http.NewServeMux()

	// Journal
	mux.HandleFunc("POST /api/meals", s.handleAddMeal)
	mux.HandleFunc("GET /api/meals", s.handleListMeals)
	mux.HandleFunc("POST /api/sleep", s.handleAddSleep)
	mux.HandleFunc("GET /api/sleep", s.handleListSleep)
	mux.HandleFunc("POST /api/medications", s.handleAddMedication)
	mux.HandleFunc("GET /api/medications", s.handleListMedications)
	mux.HandleFunc("POST /api/steps", s.handleLogSteps)
	mux.HandleFunc("GET /api/steps", s.handleListSteps)
	mux.HandleFunc("POST /api/goals/progress", s.handleGoalProgress)
	mux.HandleFunc("GET /api/goals", s.handleListGoals)
	mux.HandleFunc("POST /api/workouts", s.handleAddWorkout)
	mux.HandleFunc("GET /api/workouts", s.handleListWorkouts)
	mux.HandleFunc("POST /api/metrics", s.handleAddMetric)
	mux.HandleFunc("GET /api/metrics", s.handleListMetrics)
	mux.HandleFunc("POST /api/metrics/entries", s.handleAddMetricEntry)
	mux.HandleFunc("GET /api/metrics/entries", s.handleListMetricEntries)
	mux.HandleFunc("POST /api/appointments", s.handleAddAppointment)
	mux.HandleFunc("GET /api/appointments", s.handleListAppointments)
	mux.HandleFunc("POST /api/vitals/blood-pressure", s.handleAddBP)
	mux.HandleFunc("GET /api/vitals/blood-pressure", s.handleListBP)
	mux.HandleFunc("POST /api/vitals/glucose", s.handleAddGlucose)
	mux.HandleFunc("GET /api/vitals/glucose", s.handleListGlucose)
	mux.HandleFunc("GET /api/medical-record", s.handleMedicalRecord)

	// Engagement
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/achievements", s.handleAchievements)
	mux.HandleFunc("POST /api/visit", s.handleVisit)

	// Preferences
	mux.HandleFunc("GET /api/settings/theme", s.handleGetTheme)
	mux.HandleFunc("PUT /api/settings/theme", s.handlePutTheme)

	// Coach
	mux.HandleFunc("POST /api/coach/nutrition", s.handleCoachNutrition)
	mux.HandleFunc("POST /api/coach/workout-plan", s.handleCoachWorkoutPlan)
	mux.HandleFunc("POST /api/coach/recipes", s.handleCoachRecipes)
	mux.HandleFunc("POST /api/coach/grocery-list", s.handleCoachGroceryList)
	mux.HandleFunc("POST /api/coach/music", s.handleCoachMusic)
	mux.HandleFunc("POST /api/coach/exercise-form", s.handleCoachExerciseForm)
	mux.HandleFunc("POST /api/coach/mindfulness", s.handleCoachMindfulness)
	mux.HandleFunc("POST /api/coach/affirmation", s.handleCoachAffirmation)
	mux.HandleFunc("POST /api/coach/medication-info", s.handleCoachMedicationInfo)
	mux.HandleFunc("POST /api/coach/health-topic", s.handleCoachHealthTopic)
	mux.HandleFunc("POST /api/coach/prescription", s.handleCoachPrescription)
	mux.HandleFunc("POST /api/coach/record-summary", s.handleCoachRecordSummary)
	mux.HandleFunc("POST /api/coach/appointment-slots", s.handleCoachAppointmentSlots)
	mux.HandleFunc("POST /api/coach/weekly-report", s.handleCoachWeeklyReport)

	// Chat
	mux.HandleFunc("GET /ws/chat", s.HandleChatWS)

	return cors(mux)
}
