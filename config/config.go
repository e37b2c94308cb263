package config

import "os"

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	// Lead pipeline integrations; empty values disable the integration
	NotionAPIKey     string
	NotionDatabaseID string
	ResendAPIKey     string
	ResendFromEmail  string
}

func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "leverage"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),

		NotionAPIKey:     os.Getenv("NOTION_API_KEY"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ResendFromEmail:  getEnv("RESEND_FROM_EMAIL", "results@founderleverage.com"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
