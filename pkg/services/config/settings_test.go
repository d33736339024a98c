package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	cfg, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "simple", cfg.RevenueFormula)
	assert.Equal(t, "profit_tiered", cfg.BonusFormula)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	// No indentation for top-level keys to keep the YAML valid
	content := `revenue_formula: "simple"
bonus_formula: "profit_tiered"
log_level: "debug"
output: "json"
profiles_path: "/etc/sales-atlas/profiles"
server:
  host: "0.0.0.0"
  port: 9000`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "/etc/sales-atlas/profiles", cfg.ProfilesPath)
	assert.Equal(t, ServerSettings{Host: "0.0.0.0", Port: 9000}, cfg.Server)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: table\n"), 0o644))

	t.Setenv("SALES_ATLAS_OUTPUT", "json")
	t.Setenv("SALES_ATLAS_SERVER_PORT", "9100")

	cfg, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoadSettings_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown output", content: "output: xml\n", wantErr: "Output"},
		{name: "bad port", content: "server:\n  port: 70000\n", wantErr: "Port"},
		{name: "empty formula", content: "bonus_formula: \"\"\n", wantErr: "BonusFormula"},
		{name: "invalid yaml", content: "output: table: bad", wantErr: "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadSettings(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
