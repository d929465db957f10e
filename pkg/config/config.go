package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	AccessToken     string `json:"access_token,omitempty"`      // Bearer token for the student registration API
	WeatherAPIKey   string `json:"weather_api_key,omitempty"`   // OpenWeatherMap key
	Latitude        string `json:"latitude,omitempty"`          // Weather coordinates, kept as literal strings
	Longitude       string `json:"longitude,omitempty"`
	HomeStationID   string `json:"home_station_id,omitempty"`   // Transit stop near home
	HomeStationName string `json:"home_station_name,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.fhnwctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fhnwctl.json"), nil
}

// Load reads the application configuration from disk and applies
// environment overrides. Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine, fall through to the env overlay
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets environment variables override the file values so secrets
// can stay out of the dotfile. A local .env file is honored when present.
func applyEnv(cfg *AppConfig) {
	_ = godotenv.Load() // No .env around is not an error

	if token, ok := os.LookupEnv("FHNW_ACCESS_TOKEN"); ok {
		cfg.AccessToken = token
	}
	if key, ok := os.LookupEnv("OPENWEATHER_API_KEY"); ok {
		cfg.WeatherAPIKey = key
	}
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
