package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	RedisAddr   string
	KafkaBroker string
	JWTSecret   string
	CORSOrigins []string

	SlackAlertWebhookURL   string
	SlackWriteUpWebhookURL string

	DefaultAdminUsername string
	DefaultAdminPassword string

	RunMigrations      bool
	OutboxPollInterval time.Duration
}

type DatabaseConfig struct {
	Driver     string // postgres | sqlite
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the environment. Call godotenv.Load before this in cmd/*.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			Name:       getEnv("DB_NAME", "writeups"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "writeups.db"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		SlackAlertWebhookURL:   strings.TrimSpace(getEnv("SLACK_ALERT_WEBHOOK_URL", "")),
		SlackWriteUpWebhookURL: strings.TrimSpace(getEnv("SLACK_WRITEUP_WEBHOOK_URL", "")),

		DefaultAdminUsername: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),

		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
