package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL:  "postgres://localhost:5432/matchmaker",
		MatchSheetID: "sheet123",
		Geocoder: GeocoderConfig{
			Enabled: true,
			BaseURL: "https://nominatim.openstreetmap.org",
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/matchmaker",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := &Config{
		MatchSheetID: "sheet123",
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_OAuthMissingClientSecret(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/matchmaker",
		OAuth:       &OAuthClientConfig{},
	}
	cfg.OAuth.Web.ClientID = "client123"
	// Missing ClientSecret

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.test.yaml")
	content := `
database_url: postgres://localhost:5432/matchmaker_test
match_sheet_id: sheet123
gazetteer_path: /etc/matchmaker/cities.yaml
geocoder:
  enabled: true
  base_url: https://nominatim.openstreetmap.org
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("MATCHMAKER_CONFIG", path)

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/matchmaker_test", cfg.DatabaseURL)
	assert.Equal(t, "sheet123", cfg.MatchSheetID)
	assert.Equal(t, "/etc/matchmaker/cities.yaml", cfg.GazetteerPath)
	assert.True(t, cfg.Geocoder.Enabled)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("MATCHMAKER_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load("test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: [unclosed"), 0644))
	t.Setenv("MATCHMAKER_CONFIG", path)

	_, err := Load("test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
