package config

import "os"

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// EmailCategorize is for batch email thread categorization (needs to be fast)
	EmailCategorize string `json:"emailCategorize"`

	// CalendarCategorize is for batch calendar event categorization (needs to be fast)
	CalendarCategorize string `json:"calendarCategorize"`

	// Solutions is for personalized AI-solution synthesis (quality over speed)
	Solutions string `json:"solutions"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			// Fast models for the inline categorization passes
			EmailCategorize:    getEnvOrDefault("GEMINI_MODEL_EMAIL", "gemini-2.0-flash"),
			CalendarCategorize: getEnvOrDefault("GEMINI_MODEL_CALENDAR", "gemini-2.0-flash"),

			// Quality model for the final recommendations
			Solutions: getEnvOrDefault("GEMINI_MODEL_SOLUTIONS", "gemini-2.5-flash-preview-05-20"),
		},
		TimeoutMS: 15000, // categorization batches are larger than single prompts
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
