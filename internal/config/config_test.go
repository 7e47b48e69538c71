package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_url": "postgres://localhost/shadow",
		"api_key": "key",
		"models": ["gemini-2.5-flash"],
		"github_username": "ayoub"
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/shadow", cfg.DatabaseURL)
	assert.Equal(t, []string{"gemini-2.5-flash"}, cfg.Models)
	assert.Equal(t, "ayoub", cfg.GitHubUsername)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "empty")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "parse")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/shadow")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GITHUB_USERNAME", "env-user")

	cfg := &Config{APIKey: "explicit"}
	cfg.FromEnv()

	assert.Equal(t, "postgres://env/shadow", cfg.DatabaseURL)
	// Explicit values win over the environment.
	assert.Equal(t, "explicit", cfg.APIKey)
	assert.Equal(t, "env-user", cfg.GitHubUsername)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.Validate(), "database_url")

	cfg.DatabaseURL = "postgres://localhost/shadow"
	assert.ErrorContains(t, cfg.Validate(), "api_key")

	cfg.APIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.CredentialsPath = "/nonexistent/creds.json"
	assert.ErrorContains(t, cfg.Validate(), "credentials")
}

func TestRecoveryModeActive(t *testing.T) {
	t.Setenv(RecoveryModeEnv, "")
	assert.False(t, RecoveryModeActive())

	t.Setenv(RecoveryModeEnv, "RECOVERY")
	assert.True(t, RecoveryModeActive())

	t.Setenv(RecoveryModeEnv, "NORMAL")
	assert.False(t, RecoveryModeActive())
}
