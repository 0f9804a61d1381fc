package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	CourseAPI CourseAPIConfig
	Dashboard DashboardConfig
	Session   SessionConfig
	App       AppConfig
}

type ServerConfig struct {
	Port        string
	MaxUploadMB int
	CORSOrigins []string
}

// CourseAPIConfig points the dashboard at the remote course API.
type CourseAPIConfig struct {
	BaseURL       string
	Timeout       time.Duration
	UploadTimeout time.Duration
	RateLimit     float64 // requests per second, 0 disables pacing
	Burst         int
}

// DashboardConfig holds the unit/project pair served at /dashboard.
type DashboardConfig struct {
	DefaultUnit    string
	DefaultProject string
}

type SessionConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
	SweepSchedule string
	CookieName    string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			MaxUploadMB: getEnvAsInt("MAX_UPLOAD_MB", 64),
			CORSOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		},
		CourseAPI: CourseAPIConfig{
			BaseURL:       strings.TrimRight(getEnv("COURSE_API_BASE_URL", "http://3.27.122.31"), "/"),
			Timeout:       getEnvAsDuration("COURSE_API_TIMEOUT", 30*time.Second),
			UploadTimeout: getEnvAsDuration("COURSE_API_UPLOAD_TIMEOUT", 90*time.Second),
			RateLimit:     getEnvAsFloat("COURSE_API_RATE_LIMIT", 0),
			Burst:         getEnvAsInt("COURSE_API_BURST", 10),
		},
		Dashboard: DashboardConfig{
			DefaultUnit:    getEnv("DEFAULT_UNIT_CODE", "CS101"),
			DefaultProject: getEnv("DEFAULT_PROJECT_NAME", "Fastest Scheduling Algorithm"),
		},
		Session: SessionConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			TTL:           getEnvAsDuration("SESSION_TTL", 12*time.Hour),
			SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 10m"),
			CookieName:    getEnv("SESSION_COOKIE", "dash_session"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.CourseAPI.BaseURL == "" {
		return fmt.Errorf("COURSE_API_BASE_URL is required")
	}
	u, err := url.Parse(c.CourseAPI.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("COURSE_API_BASE_URL is not an absolute URL: %q", c.CourseAPI.BaseURL)
	}

	if c.CourseAPI.RateLimit < 0 {
		return fmt.Errorf("COURSE_API_RATE_LIMIT must not be negative")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
