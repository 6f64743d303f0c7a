package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		prepFunc      func(configPath string) error
		expected      Config
		expectedError bool
	}{
		{
			name: "Config file exists and is valid",
			prepFunc: func(configPath string) error {
				return os.WriteFile(configPath, []byte(`{
					"civitai_models_url": "http://example.com/models",
					"civitai_versions_url": "http://example.com/model-versions",
					"log_level": "debug",
					"log_file_path": "/tmp/civiscope.log"
				}`), 0644)
			},
			expected: Config{
				ModelsURL:   "http://example.com/models",
				VersionsURL: "http://example.com/model-versions",
				LogLevel:    "debug",
				LogFilePath: "/tmp/civiscope.log",
			},
		},
		{
			name:     "Config file does not exist (created with defaults)",
			prepFunc: nil,
			expected: Config{
				ModelsURL:   DefaultModelsURL,
				VersionsURL: DefaultVersionsURL,
				LogLevel:    "info",
				LogFilePath: "",
			},
		},
		{
			name: "Config file is invalid",
			prepFunc: func(configPath string) error {
				return os.WriteFile(configPath, []byte("invalid json"), 0644)
			},
			expectedError: true,
		},
		{
			name: "Partial config falls back to defaults",
			prepFunc: func(configPath string) error {
				return os.WriteFile(configPath, []byte(`{"log_level": "error"}`), 0644)
			},
			expected: Config{
				ModelsURL:   DefaultModelsURL,
				VersionsURL: DefaultVersionsURL,
				LogLevel:    "error",
				LogFilePath: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("CIVITAI_MODELS")
			os.Unsetenv("CIVITAI_VERSIONS")

			configPath := filepath.Join(t.TempDir(), "config.json")
			if tt.prepFunc != nil {
				require.NoError(t, tt.prepFunc(configPath))
			}

			got, err := loadConfigFromPath(configPath)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			// A missing config file must be created with defaults.
			_, statErr := os.Stat(configPath)
			assert.NoError(t, statErr)
		})
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CIVITAI_MODELS", "http://mirror.local/models")
	t.Setenv("CIVITAI_VERSIONS", "http://mirror.local/model-versions")

	configPath := filepath.Join(t.TempDir(), "config.json")
	got, err := loadConfigFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://mirror.local/models", got.ModelsURL)
	assert.Equal(t, "http://mirror.local/model-versions", got.VersionsURL)
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	input := Config{
		ModelsURL:   "http://example.com/models",
		VersionsURL: "http://example.com/model-versions",
		LogLevel:    "debug",
		LogFilePath: "/tmp/civiscope.log",
	}
	require.NoError(t, saveConfigToPath(configPath, input))

	os.Unsetenv("CIVITAI_MODELS")
	os.Unsetenv("CIVITAI_VERSIONS")

	got, err := loadConfigFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}
