package coach

import (
	"context"
	"fmt"

	"vitalog/internal/llm"
)

// MindfulnessScript writes a short guided script tuned to the user's mood.
func (s *Service) MindfulnessScript(ctx context.Context, mood string) (string, error) {
	resp, err := s.generate(ctx, "mindfulness_script", llm.Request{
		Text: fmt.Sprintf("Write a short, calming, guided mindfulness script (around 150-200 words) for someone who is feeling %q. The script should be easy to follow and focus on breathing and being present. Use paragraph breaks for pacing.", mood),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Affirmation returns a single positive affirmation for a mood.
func (s *Service) Affirmation(ctx context.Context, mood string) (string, error) {
	resp, err := s.generate(ctx, "affirmation", llm.Request{
		Text: fmt.Sprintf("Write a short, powerful, positive affirmation for someone feeling %s.", mood),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
