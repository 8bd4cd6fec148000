package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "NB_TEST_VAR_1", "redis://localhost:6379", "fallback", "redis://localhost:6379"},
		{"uses default when empty", "NB_TEST_VAR_2", "", "fallback", "fallback"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "NB_TEST_INT_1", "8", 5, 8},
		{"uses default for empty", "NB_TEST_INT_2", "", 5, 5},
		{"uses default for non-numeric", "NB_TEST_INT_3", "many", 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NB_NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NB_NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	os.Setenv("NB_TEST_REQUIRED", "api-key-123")
	defer os.Unsetenv("NB_TEST_REQUIRED")

	result := mustGetEnv("NB_TEST_REQUIRED")
	if result != "api-key-123" {
		t.Errorf("Expected 'api-key-123', got %q", result)
	}
}
