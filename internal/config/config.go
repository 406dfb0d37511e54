package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"
)

// Config holds host settings for the planner.
type Config struct {
	// WorkspaceFile is the JSON snapshot holding the active course list.
	WorkspaceFile  string
	Timezone       string
	StageDelayMs   int
	AnalyzeDelayMs int
	LogUseCases    bool
}

// DefaultWorkspaceFile returns ~/.eduplan/emploi-du-temps.json, or a path
// relative to the working directory when no home directory is known.
func DefaultWorkspaceFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".eduplan", "emploi-du-temps.json")
	}
	return filepath.Join(home, ".eduplan", "emploi-du-temps.json")
}

// Default returns a Config with the standard settings.
func Default() Config {
	return Config{
		WorkspaceFile:  DefaultWorkspaceFile(),
		Timezone:       "Europe/Paris",
		StageDelayMs:   400,
		AnalyzeDelayMs: 1500,
		LogUseCases:    false,
	}
}

// Load reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("EDUPLAN_FILE"); v != "" {
		cfg.WorkspaceFile = v
	}
	if v := os.Getenv("EDUPLAN_TIMEZONE"); v != "" {
		if _, err := time.LoadLocation(v); err == nil {
			cfg.Timezone = v
		}
	}
	if v := os.Getenv("EDUPLAN_STAGE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.StageDelayMs = n
		}
	}
	if v := os.Getenv("EDUPLAN_ANALYZE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.AnalyzeDelayMs = n
		}
	}
	if v := os.Getenv("EDUPLAN_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

func (c Config) StageDelay() time.Duration {
	return time.Duration(c.StageDelayMs) * time.Millisecond
}

func (c Config) AnalyzeDuration() time.Duration {
	return time.Duration(c.AnalyzeDelayMs) * time.Millisecond
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
