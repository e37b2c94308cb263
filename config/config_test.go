package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "leverage", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "results@founderleverage.com", cfg.ResendFromEmail)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("NOTION_API_KEY", "secret_test")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "secret_test", cfg.NotionAPIKey)
}
