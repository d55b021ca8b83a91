package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"vitalog/internal/coach"
	"vitalog/internal/config"
	"vitalog/internal/engage"
	"vitalog/internal/llm"
	"vitalog/internal/server"
	"vitalog/internal/settings"
	"vitalog/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("create data dir %s: %v", cfg.DataDir, err)
	}
	prefs, err := settings.Open(cfg.SettingsPath())
	if err != nil {
		log.Fatalf("open settings store: %v", err)
	}
	defer prefs.Close()

	st := store.New(store.WithNotifier(func(msg string) {
		log.Printf("notify: %s", msg)
	}))
	st.Seed()

	engine := engage.New(st, prefs)
	if streak, err := engine.EvaluateVisit(); err != nil {
		log.Printf("visit evaluation failed: %v", err)
	} else {
		log.Printf("daily streak: %d", streak)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		log.Fatalf("init llm client: %v", err)
	}
	defer client.Close()

	svc, err := coach.New(client)
	if err != nil {
		log.Fatalf("init coach: %v", err)
	}
	defer svc.Close()

	handler := server.NewMux(server.NewService(st, engine, svc, prefs))

	log.Printf("listening on %s (env=%s, model=%s)", cfg.Port, cfg.Env, cfg.Gemini.Model)
	if err := http.ListenAndServe(cfg.Port, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// newLLMClient picks the real Gemini client when an API key is present
// and the canned offline client otherwise, then wraps it with retry and
// request logging.
func newLLMClient(cfg *config.Config) (llm.Client, error) {
	var base llm.Client
	if cfg.Gemini.Fake || cfg.Gemini.APIKey == "" {
		if cfg.Gemini.APIKey == "" && !cfg.Gemini.Fake {
			log.Printf("GEMINI_API_KEY not set, using offline responses")
		}
		base = llm.NewFakeClient()
	} else {
		cli, err := llm.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, err
		}
		base = cli
	}
	return llm.Chain(base,
		llm.Retry(cfg.Gemini.MaxAttempts, 500*time.Millisecond),
		llm.Logging(),
	), nil
}
