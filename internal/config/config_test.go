package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, strings.HasSuffix(cfg.WorkspaceFile, filepath.Join(".eduplan", "emploi-du-temps.json")))
	assert.Equal(t, "Europe/Paris", cfg.Timezone)
	assert.Equal(t, 400*time.Millisecond, cfg.StageDelay())
	assert.Equal(t, 1500*time.Millisecond, cfg.AnalyzeDuration())
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, "Europe/Paris", cfg.Location().String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EDUPLAN_FILE", "/tmp/edt.json")
	t.Setenv("EDUPLAN_TIMEZONE", "America/Montreal")
	t.Setenv("EDUPLAN_STAGE_DELAY_MS", "0")
	t.Setenv("EDUPLAN_ANALYZE_DELAY_MS", "250")
	t.Setenv("EDUPLAN_LOG_USECASES", "true")

	cfg := Load()

	assert.Equal(t, "/tmp/edt.json", cfg.WorkspaceFile)
	assert.Equal(t, "America/Montreal", cfg.Timezone)
	assert.Equal(t, time.Duration(0), cfg.StageDelay())
	assert.Equal(t, 250*time.Millisecond, cfg.AnalyzeDuration())
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("EDUPLAN_TIMEZONE", "Mars/Olympus")
	t.Setenv("EDUPLAN_STAGE_DELAY_MS", "-5")
	t.Setenv("EDUPLAN_ANALYZE_DELAY_MS", "soon")
	t.Setenv("EDUPLAN_LOG_USECASES", "maybe")

	cfg := Load()

	assert.Equal(t, "Europe/Paris", cfg.Timezone)
	assert.Equal(t, 400, cfg.StageDelayMs)
	assert.Equal(t, 1500, cfg.AnalyzeDelayMs)
	assert.False(t, cfg.LogUseCases)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := Config{Timezone: "Nowhere/Special"}
	assert.Equal(t, time.UTC, cfg.Location())
}
