package llm

import (
	"context"
	"strings"
)

// FakeClient returns deterministic canned responses for offline use and
// tests. Structured requests are answered with JSON matching the feature's
// declared schema, recognized by prompt keywords.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Generate(_ context.Context, req Request) (Response, error) {
	prompt := strings.ToLower(req.Text)

	if req.Schema != nil {
		switch {
		case strings.Contains(prompt, "nutritional content"):
			return Response{Text: `{"calories":450,"protein":30,"carbs":40,"fat":15}`}, nil
		case strings.Contains(prompt, "workout plan"):
			return Response{Text: `[{"day":"Day 1","focus":"Upper Body","exercises":[{"name":"Push Up","sets":"3","reps":"12"}]}]`}, nil
		case strings.Contains(prompt, "recipes"):
			return Response{Text: `[{"recipeName":"Veggie Bowl","ingredients":["rice","broccoli"],"instructions":["Cook rice.","Steam broccoli."]}]`}, nil
		case strings.Contains(prompt, "grocery list"):
			return Response{Text: `{"groceryList":["oats","eggs","spinach"]}`}, nil
		case strings.Contains(prompt, "prescription"):
			return Response{Text: `{"name":"Amoxicillin","dosage":"500mg"}`}, nil
		case strings.Contains(prompt, "appointment"):
			return Response{Text: `[{"doctor":"Dr. Rivera","specialty":"General Practice","date":"2026-09-03","time":"10:00 AM"}]`}, nil
		default:
			return Response{Text: `{}`}, nil
		}
	}

	switch {
	case strings.Contains(prompt, "music"):
		return Response{Text: "- Upbeat electronic\n- Classic rock\n- Lo-fi beats"}, nil
	case strings.Contains(prompt, "affirmation"):
		return Response{Text: "You are capable of more than you know."}, nil
	case req.Search:
		return Response{
			Text:    "An offline explanation of the requested topic.",
			Sources: []Source{{Title: "Example Health Library", URI: "https://example.org/topics"}},
		}, nil
	default:
		return Response{Text: "Offline response: the configured model is not available."}, nil
	}
}
