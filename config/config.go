package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	LogLevel string

	ListingSource    string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SessionBackend string
	SessionFile    string
	RedisURL       string

	ChatDelayMs      int
	AssistantDelayMs int
	MaxRetries       int

	CSVOutputPath string

	// EnvFileLoaded is false when no .env was found and only the process
	// environment was consulted.
	EnvFileLoaded bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ListingSource:    getEnv("LISTING_SOURCE", "fixtures"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "educonnect"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "educonnect"),
		PostgresDB:       getEnv("POSTGRES_DB", "educonnect"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SessionBackend: getEnv("SESSION_BACKEND", "file"),
		SessionFile:    getEnv("SESSION_FILE", "./.educonnect/session.json"),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),

		ChatDelayMs:      getEnvInt("CHAT_DELAY_MS", 1500),
		AssistantDelayMs: getEnvInt("ASSISTANT_DELAY_MS", 1000),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/housing.csv"),

		EnvFileLoaded: loaded,
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// ChatDelay is the typing delay of the floating chat widget.
func (c *Config) ChatDelay() time.Duration {
	return time.Duration(c.ChatDelayMs) * time.Millisecond
}

// AssistantDelay is the typing delay of the inline assistant page.
func (c *Config) AssistantDelay() time.Duration {
	return time.Duration(c.AssistantDelayMs) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
