package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the dashboard needs at startup.
type Config struct {
	Port    string
	GinMode string

	API     APIConfig
	Session SessionConfig
	Query   QueryConfig
	Log     LogConfig
	DB      DBConfig

	CORSOrigins []string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	// Store is "memory" or "postgres".
	Store string
}

type QueryConfig struct {
	StaleTime  time.Duration
	RenderWait time.Duration
}

type LogConfig struct {
	File  string
	Level string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "https://api.gocommuta.com/v1/admin"), "/"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 0),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "supersecret"),
			TTL:    getEnvAsDuration("SESSION_TTL", 72*time.Hour),
			Store:  strings.ToLower(getEnv("SESSION_STORE", "memory")),
		},
		Query: QueryConfig{
			StaleTime:  getEnvAsDuration("QUERY_STALE_TIME", 30*time.Second),
			RenderWait: getEnvAsDuration("QUERY_RENDER_WAIT", 2*time.Second),
		},
		Log: LogConfig{
			File:  getEnv("LOG_FILE", "./logs/app.log"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "commuta_admin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvAsDuration accepts Go durations ("30s") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
