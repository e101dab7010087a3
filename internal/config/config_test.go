package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"BOARD_WIDTH", "LOG_LEVEL", "REDIS_URL", "SESSION_IDLE_TIMEOUT_MINUTES", "CLEANUP_INTERVAL_MINUTES"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	if cfg.BoardWidth != 0 {
		t.Fatalf("expected width 0 (prompt), got %d", cfg.BoardWidth)
	}
	if cfg.LogLevel != "info" || cfg.RedisURL != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionIdleTime != 30*time.Minute || cfg.CleanupInterval != 5*time.Minute {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if AppConfig != cfg {
		t.Fatalf("AppConfig not updated")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "6")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("SESSION_IDLE_TIMEOUT_MINUTES", "2")

	cfg := LoadConfig()
	if cfg.BoardWidth != 6 || cfg.LogLevel != "debug" || cfg.RedisURL != "localhost:6379" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SessionIdleTime != 2*time.Minute {
		t.Fatalf("expected 2m idle time, got %s", cfg.SessionIdleTime)
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "seven")
	if got := GetEnvAsInt("BOARD_WIDTH", 5); got != 5 {
		t.Fatalf("expected fallback 5, got %d", got)
	}
}

func TestLoadConfigRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("CLEANUP_INTERVAL_MINUTES", "0")
	t.Setenv("SESSION_IDLE_TIMEOUT_MINUTES", "-3")

	cfg := LoadConfig()
	if cfg.CleanupInterval != 5*time.Minute {
		t.Fatalf("expected default cleanup interval, got %s", cfg.CleanupInterval)
	}
	if cfg.SessionIdleTime != 30*time.Minute {
		t.Fatalf("expected default idle time, got %s", cfg.SessionIdleTime)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"no", false},
	}
	for _, tt := range tests {
		t.Setenv("RESET_TOTALS", tt.value)
		if got := GetEnvAsBool("RESET_TOTALS", false); got != tt.want {
			t.Errorf("RESET_TOTALS=%q: got %v", tt.value, got)
		}
	}
	t.Setenv("RESET_TOTALS", "true")
	if !LoadConfig().ResetTotals {
		t.Fatalf("LoadConfig ignored RESET_TOTALS")
	}
}
