package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"planflow/internal/model"
)

// Config keeps runtime settings for the planner.
type Config struct {
	// DatabaseURL is the SQLite path holding the planner state.
	DatabaseURL string
	// ReviewTime is the HH:MM at which the remind command surfaces the
	// daily review.
	ReviewTime string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("PLANFLOW_DB")),
		ReviewTime:  strings.TrimSpace(os.Getenv("PLANFLOW_REVIEW_TIME")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "planflow.db"
	}
	if cfg.ReviewTime == "" {
		cfg.ReviewTime = "09:00"
	}
	if _, _, err := model.ParseClock(cfg.ReviewTime); err != nil {
		return cfg, fmt.Errorf("PLANFLOW_REVIEW_TIME: %w", err)
	}

	return cfg, nil
}
