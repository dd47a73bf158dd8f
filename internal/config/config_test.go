package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Set some test environment variables
	os.Setenv("GOOGLE_API_KEY", "test-key")
	os.Setenv("GOOGLE_MODEL_NAME", "gemini-1.5-flash")
	defer os.Unsetenv("GOOGLE_API_KEY")
	defer os.Unsetenv("GOOGLE_MODEL_NAME")

	cfg := Load()

	if cfg.GoogleAPIKey != "test-key" {
		t.Errorf("Expected GoogleAPIKey to be 'test-key', got '%s'", cfg.GoogleAPIKey)
	}

	if cfg.GoogleModel != "gemini-1.5-flash" {
		t.Errorf("Expected GoogleModel to be 'gemini-1.5-flash', got '%s'", cfg.GoogleModel)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be '8080', got '%s'", cfg.Port)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("GOOGLE_API_KEY")
	os.Unsetenv("GOOGLE_MODEL_NAME")
	os.Unsetenv("HOTLIST_API_BASE")
	os.Unsetenv("HOTLIST_LIMIT")

	cfg := Load()

	// Missing key degrades extraction, it must not fail loading.
	if cfg.GoogleAPIKey != "" {
		t.Errorf("Expected empty GoogleAPIKey, got '%s'", cfg.GoogleAPIKey)
	}

	if cfg.GoogleModel != "gemini-pro" {
		t.Errorf("Expected default model 'gemini-pro', got '%s'", cfg.GoogleModel)
	}

	if cfg.APIBase != "https://dailyhotapi-gamma.vercel.app" {
		t.Errorf("Unexpected default API base '%s'", cfg.APIBase)
	}

	if cfg.PromptFile != "prompt.json" {
		t.Errorf("Expected default prompt file 'prompt.json', got '%s'", cfg.PromptFile)
	}

	if cfg.Limit != 20 {
		t.Errorf("Expected default limit 20, got %d", cfg.Limit)
	}

	if cfg.UpdateInterval != 30 {
		t.Errorf("Expected default update interval 30, got %d", cfg.UpdateInterval)
	}

	if cfg.CacheDuration != 24 {
		t.Errorf("Expected default cache duration 24, got %d", cfg.CacheDuration)
	}
}

func TestGetEnvOrDefaultInt(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{"", 42},
		{"7", 7},
		{"not-a-number", 42},
	}

	for _, test := range tests {
		if test.value == "" {
			os.Unsetenv("HOTWORDS_TEST_INT")
		} else {
			os.Setenv("HOTWORDS_TEST_INT", test.value)
		}

		result := getEnvOrDefaultInt("HOTWORDS_TEST_INT", 42)
		if result != test.expected {
			t.Errorf("For value '%s', expected %d, got %d", test.value, test.expected, result)
		}
	}
	os.Unsetenv("HOTWORDS_TEST_INT")
}
