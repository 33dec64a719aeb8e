package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLANFLOW_DB", "")
	t.Setenv("PLANFLOW_REVIEW_TIME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "planflow.db", cfg.DatabaseURL)
	assert.Equal(t, "09:00", cfg.ReviewTime)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PLANFLOW_DB", "  /tmp/plan.db  ")
	t.Setenv("PLANFLOW_REVIEW_TIME", "18:30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plan.db", cfg.DatabaseURL)
	assert.Equal(t, "18:30", cfg.ReviewTime)
}

func TestLoadRejectsBadReviewTime(t *testing.T) {
	t.Setenv("PLANFLOW_REVIEW_TIME", "25:99")

	_, err := Load()
	assert.Error(t, err)
}
