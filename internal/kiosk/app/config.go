package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir   string // Directory holding users.jsonl and attendance.log (default: ./data)
	StaticDir string // Directory with the embedded web client (default: ./web)

	SensorDriver   string // Fingerprint sensor driver (sim) (default: sim)
	SensorCapacity int    // Template slots on the sensor bank (default: 127)

	MinConfidence int           // Minimum match confidence for attendance; 0 accepts any
	DailyDedup    bool          // Collapse repeat check-ins on the same day
	SessionTTL    time.Duration // Enrollment session expiry; 0 disables (default: 2m)
	HistoryLimit  int           // Max rows returned by the attendance listing (default: 100)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text, console) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A .env beside the binary is convenience for dev boxes; real
	// deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		DataDir:             getEnvOrDefault("KIOSK_DATA_DIR", "data"),
		StaticDir:           getEnvOrDefault("KIOSK_STATIC_DIR", "web"),
		SensorDriver:        getEnvOrDefault("KIOSK_SENSOR_DRIVER", "sim"),
		SensorCapacity:      getEnvIntOrDefault("KIOSK_SENSOR_CAPACITY", 127),
		MinConfidence:       getEnvIntOrDefault("KIOSK_MIN_CONFIDENCE", 0),
		DailyDedup:          getEnvBoolOrDefault("KIOSK_DAILY_DEDUP", false),
		SessionTTL:          getEnvDurationOrDefault("KIOSK_SESSION_TTL", 2*time.Minute),
		HistoryLimit:        getEnvIntOrDefault("KIOSK_HISTORY_LIMIT", 100),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are taken as seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
