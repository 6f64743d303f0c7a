package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/civiscope/civiscope/logging"
	"github.com/civiscope/civiscope/utils"
)

const (
	DefaultModelsURL   = "https://civitai.com/api/v1/models"
	DefaultVersionsURL = "https://civitai.com/api/v1/model-versions"
)

type Config struct {
	ModelsURL   string `mapstructure:"civitai_models_url"`
	VersionsURL string `mapstructure:"civitai_versions_url"`
	LogLevel    string `mapstructure:"log_level"`
	LogFilePath string `mapstructure:"log_file_path"`
}

// LoadConfig reads the config file, creating it with defaults if it doesn't
// exist. The endpoint URLs can be overridden with the CIVITAI_MODELS and
// CIVITAI_VERSIONS environment variables.
func LoadConfig() (Config, error) {
	return loadConfigFromPath(utils.GetConfigPath())
}

func loadConfigFromPath(configPath string) (Config, error) {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			logging.ErrorLogger.Printf("Failed to read config file: %v\n", err)
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return Config{}, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := v.WriteConfigAs(configPath); err != nil {
			return Config{}, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		logging.ErrorLogger.Printf("Failed to decode config file: %v\n", err)
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes the config back to the config file.
func SaveConfig(config Config) error {
	return saveConfigToPath(utils.GetConfigPath(), config)
}

func saveConfigToPath(configPath string, config Config) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("civitai_models_url", config.ModelsURL)
	v.Set("civitai_versions_url", config.VersionsURL)
	v.Set("log_level", config.LogLevel)
	v.Set("log_file_path", config.LogFilePath)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	v.SetDefault("civitai_models_url", DefaultModelsURL)
	v.SetDefault("civitai_versions_url", DefaultVersionsURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file_path", "")

	_ = v.BindEnv("civitai_models_url", "CIVITAI_MODELS")
	_ = v.BindEnv("civitai_versions_url", "CIVITAI_VERSIONS")

	return v
}
