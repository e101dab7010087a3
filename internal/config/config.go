package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	BoardWidth      int // 0 asks the player
	LogLevel        string
	RedisURL        string
	RedisPassword   string
	ResetTotals     bool
	SessionIdleTime time.Duration
	CleanupInterval time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	boardWidth := GetEnvAsInt("BOARD_WIDTH", 0)
	logLevel := strings.ToLower(GetEnv("LOG_LEVEL", "info"))

	// Outcome tally; empty disables Redis entirely
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	resetTotals := GetEnvAsBool("RESET_TOTALS", false)

	// Session housekeeping
	idleMin := GetEnvAsPositiveInt("SESSION_IDLE_TIMEOUT_MINUTES", 30)
	cleanupMin := GetEnvAsPositiveInt("CLEANUP_INTERVAL_MINUTES", 5)

	AppConfig = &Config{
		BoardWidth:      boardWidth,
		LogLevel:        logLevel,
		RedisURL:        redisURL,
		RedisPassword:   redisPassword,
		ResetTotals:     resetTotals,
		SessionIdleTime: time.Duration(idleMin) * time.Minute,
		CleanupInterval: time.Duration(cleanupMin) * time.Minute,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("invalid integer in environment, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsPositiveInt is GetEnvAsInt for values that must be above zero.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Warn().Str("key", key).Int("value", value).Int("default", defaultValue).
			Msg("value must be positive, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).
			Msg("invalid boolean in environment, using default")
		return defaultValue
	}
	return value
}
