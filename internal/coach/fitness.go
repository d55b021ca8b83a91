package coach

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/llm"
	"vitalog/internal/util/jsonutil"
	"vitalog/internal/wellness"
)

// WorkoutPlan generates a multi-day plan for a stated goal.
func (s *Service) WorkoutPlan(ctx context.Context, goal string, days int) ([]wellness.WorkoutDay, error) {
	const feature = "workout_plan"
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:   fmt.Sprintf("Create a %d-day workout plan for someone whose goal is %q. Provide a focus for each day and a list of exercises with sets and reps.", days, goal),
		Schema: workoutPlanSchema(),
	})
	if err != nil {
		return nil, err
	}

	var plan []wellness.WorkoutDay
	if err := jsonutil.UnmarshalFlex([]byte(resp.Text), &plan); err != nil {
		return nil, responseErr(feature, err)
	}
	if len(plan) == 0 {
		return nil, responseErr(feature, fmt.Errorf("empty plan"))
	}
	for _, day := range plan {
		if strings.TrimSpace(day.Day) == "" {
			return nil, missingField(feature, "day")
		}
		if strings.TrimSpace(day.Focus) == "" {
			return nil, missingField(feature, "focus")
		}
	}
	return plan, nil
}

// SuggestMusic returns genre or playlist ideas for a workout focus, one
// suggestion per line with any leading bullet marker stripped.
func (s *Service) SuggestMusic(ctx context.Context, focus string) ([]string, error) {
	const feature = "suggest_music"
	resp, err := s.generate(ctx, feature, llm.Request{
		Text: fmt.Sprintf("Suggest 3 music genres or playlist ideas for a workout focusing on %s.", focus),
	})
	if err != nil {
		return nil, err
	}

	var out []string
	for _, line := range strings.Split(resp.Text, "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// ExerciseForm reviews recorded exercise footage and returns actionable
// feedback.
func (s *Service) ExerciseForm(ctx context.Context, media llm.Blob, exercise string) (string, error) {
	const feature = "exercise_form"
	if len(media.Data) == 0 {
		return "", responseErr(feature, fmt.Errorf("no media supplied"))
	}
	resp, err := s.generate(ctx, feature, llm.Request{
		Text:  fmt.Sprintf("Analyze my form for the exercise %q. Provide 3-4 specific, actionable tips for improvement. Focus on proper alignment, safety, and effectiveness. Format the tips as a bulleted list.", exercise),
		Media: &media,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
