package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// OAuthClientConfig holds the Google OAuth client credentials used for
// publishing matches to Sheets
type OAuthClientConfig struct {
	Web struct {
		ClientID     string   `yaml:"client_id" json:"client_id" validate:"required"`
		ClientSecret string   `yaml:"client_secret" json:"client_secret" validate:"required"`
		AuthURI      string   `yaml:"auth_uri" json:"auth_uri"`
		TokenURI     string   `yaml:"token_uri" json:"token_uri"`
		RedirectURIs []string `yaml:"redirect_uris" json:"redirect_uris"`
	} `yaml:"web" json:"web"`
}

// GeocoderConfig controls the online fallback used for cities missing
// from the bundled gazetteer
type GeocoderConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
}

// Config holds the application configuration loaded from YAML
type Config struct {
	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"database_url" validate:"required"`

	// MatchSheetID is the Google Sheet matches are published to.
	// Optional; publishing fails with a clear error when unset.
	MatchSheetID string `yaml:"match_sheet_id"`

	// GazetteerPath overrides the bundled city gazetteer when set
	GazetteerPath string `yaml:"gazetteer_path"`

	Geocoder GeocoderConfig `yaml:"geocoder"`

	OAuth *OAuthClientConfig `yaml:"oauth"`
}

// Load reads and validates the config file for the given environment.
// The file is looked up as config.<env>.yaml in the working directory,
// overridable via the MATCHMAKER_CONFIG environment variable.
func Load(env string) (*Config, error) {
	path := os.Getenv("MATCHMAKER_CONFIG")
	if path == "" {
		path = fmt.Sprintf("config.%s.yaml", env)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the config against its struct constraints
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.OAuth != nil {
		if err := validate.Struct(cfg.OAuth); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}
	return nil
}
