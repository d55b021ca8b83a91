package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	DataDir string

	Gemini GeminiConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
	// Fake forces the offline client; also implied by a missing API key.
	Fake        bool
	MaxAttempts int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	dataDir := strings.TrimSpace(os.Getenv("VITALOG_DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}

	return &Config{
		Port:    *port,
		Env:     env,
		DataDir: dataDir,
		Gemini:  loadGeminiConfig(),
	}, nil
}

func loadGeminiConfig() GeminiConfig {
	cfg := GeminiConfig{
		APIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:       firstNonEmpty(strings.TrimSpace(os.Getenv("VITALOG_MODEL")), "gemini-2.5-flash"),
		MaxAttempts: 3,
	}
	if raw := strings.TrimSpace(os.Getenv("LLM_FAKE")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Fake = v
		}
	}
	if raw := strings.TrimSpace(os.Getenv("LLM_MAX_ATTEMPTS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	return cfg
}

// SettingsPath is the sqlite file holding the persisted preferences.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "settings.db")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
