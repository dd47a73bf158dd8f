package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	// Google Gemini API settings
	GoogleAPIKey string `json:"-"` // Don't expose in JSON
	GoogleModel  string `json:"google_model"`

	// Hotlist API settings
	APIBase string `json:"api_base"`

	// Prompt template file
	PromptFile string `json:"prompt_file"`

	// Items fetched per channel
	Limit int `json:"limit"`

	// Server settings (serve mode)
	Port string `json:"port"`
	Host string `json:"host"`

	UpdateInterval int `json:"update_interval_minutes"`
	CacheDuration  int `json:"cache_duration_hours"`
}

// Load reads configuration from environment variables and .env file
func Load() *Config {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		GoogleModel:    getEnvOrDefault("GOOGLE_MODEL_NAME", "gemini-pro"),
		APIBase:        getEnvOrDefault("HOTLIST_API_BASE", "https://dailyhotapi-gamma.vercel.app"),
		PromptFile:     getEnvOrDefault("PROMPT_FILE", "prompt.json"),
		Limit:          getEnvOrDefaultInt("HOTLIST_LIMIT", 20),
		Port:           getEnvOrDefault("PORT", "8080"),
		Host:           getEnvOrDefault("HOST", "0.0.0.0"),
		UpdateInterval: getEnvOrDefaultInt("UPDATE_INTERVAL_MINUTES", 30),
		CacheDuration:  getEnvOrDefaultInt("CACHE_DURATION_HOURS", 24),
	}

	// A missing key disables keyword extraction instead of aborting the run.
	if config.GoogleAPIKey == "" {
		log.Warn("GOOGLE_API_KEY is not set, keyword extraction will be unavailable")
	}

	return config
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
