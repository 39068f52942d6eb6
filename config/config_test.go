package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHAT_DELAY_MS", "")
	t.Setenv("SESSION_BACKEND", "")

	cfg := Load()
	assert.Equal(t, 1500*time.Millisecond, cfg.ChatDelay())
	assert.Equal(t, "file", cfg.SessionBackend)
	assert.Equal(t, "fixtures", cfg.ListingSource)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASSISTANT_DELAY_MS", "250")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("MAX_RETRIES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 250*time.Millisecond, cfg.AssistantDelay())
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 3, cfg.MaxRetries, "invalid ints fall back to the default")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "edu", PostgresSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=edu sslmode=disable", cfg.DSN())
}
