package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
		},
		"session": map[string]any{
			"cookieName": "",
			"secret":     "",
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_SECRET", want: "session.secret"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("api:\n  baseUrl: http://api.local/api/\n  timeout: 3s\nsession:\n  secret: from-file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))

	t.Setenv("OTOBIZNES_SESSION_SECRET", "from-env")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "http://api.local/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
}

func TestLoadWithEnv_IgnoresUnprefixedVariables(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("env:\n  env: production\napi:\n  timeout: 3s\nsession:\n  secret: from-file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))

	t.Setenv("API_TIMEOUT_MS", "30000")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET_FILE", "/run/secrets/s")
	t.Setenv("SESSION_SECRET", "not-ours")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env.Env)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "from-file", cfg.Session.Secret)
}

func TestApplyDefaults_RejectsPlaceholderSecretOutsideLocal(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{name: "local", env: "local", wantErr: false},
		{name: "production", env: "production", wantErr: true},
		{name: "unset", env: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Env.Env = tt.env
			cfg.Session.Secret = placeholderSecret

			err := cfg.applyDefaults()

			if tt.wantErr {
				assert.ErrorContains(t, err, "session secret must be changed")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApplyDefaults_RequiresSecret(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()

	assert.ErrorContains(t, err, "session secret must be provided")
}
