package coach

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/engage"
	"vitalog/internal/llm"
)

// WeeklyReport generates a personalized markdown report from the last
// seven days of logged data.
func (s *Service) WeeklyReport(ctx context.Context, week engage.WeeklyWindow) (string, error) {
	resp, err := s.generate(ctx, "weekly_report", llm.Request{
		Text: buildWeeklyReportPrompt(week),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func buildWeeklyReportPrompt(week engage.WeeklyWindow) string {
	var b strings.Builder
	b.WriteString(`You are a supportive and insightful wellness coach. Analyze the user's health data from the past week and generate a personalized report.
The report should be encouraging and provide actionable advice. Structure your response in markdown format with the following sections:
- **Overall Summary:** A brief, positive overview of the week.
- **Nutrition Breakdown:** Comment on the user's eating habits based on their logged meals. Mention consistency and any patterns you see.
- **Activity & Fitness:** Summarize the workouts. Acknowledge their effort and suggest how they could enhance their routine if applicable.
- **Sleep Patterns:** Analyze sleep duration and quality. Highlight the importance of good sleep and provide tips if there's room for improvement.
- **Your Week Ahead:** Provide 3 clear, actionable, and encouraging tips for the user to focus on in the coming week based on their data.

Here is the user's data for the last 7 days:

**Logged Meals:**
`)
	if len(week.Meals) == 0 {
		b.WriteString("No meals logged.\n")
	} else {
		for _, m := range week.Meals {
			fmt.Fprintf(&b, "- %s (Approx. %.0f kcal)\n", m.Description, m.Calories)
		}
	}

	b.WriteString("\n**Workout Logs:**\n")
	if len(week.Workouts) == 0 {
		b.WriteString("No workouts logged.\n")
	} else {
		for _, w := range week.Workouts {
			fmt.Fprintf(&b, "- %s: %s for %d minutes\n", w.Date, w.Type, w.Duration)
		}
	}

	b.WriteString("\n**Sleep Entries:**\n")
	if len(week.Sleep) == 0 {
		b.WriteString("No sleep logged.\n")
	} else {
		for _, entry := range week.Sleep {
			fmt.Fprintf(&b, "- %s: %g hours (Quality: %s)\n", entry.Date, entry.Duration, entry.Quality)
		}
	}

	b.WriteString("\nPlease generate the report.\n")
	return b.String()
}
