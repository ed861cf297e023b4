package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, config map[string]any) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	data, err := yaml.Marshal(config)
	require.NoError(t, err, "failed to marshal test config")
	require.NoError(t, os.WriteFile(configPath, data, 0o600), "failed to write test config")

	return configPath
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]any
		wantErr bool
	}{
		{
			name: "valid config",
			config: map[string]any{
				"auth_token": "maciej:ABC123",
			},
			wantErr: false,
		},
		{
			name: "valid full config",
			config: map[string]any{
				"auth_token": "maciej:ABC123",
				"test_mode":  true,
				"log_level":  "debug",
				"timeout":    "30s",
				"output":     "yaml",
				"rate_limit": map[string]any{
					"requests_per_second": 0.5,
					"burst":               2,
				},
			},
			wantErr: false,
		},
		{
			name:    "missing auth_token",
			config:  map[string]any{"log_level": "info"},
			wantErr: true,
		},
		{
			name:    "auth_token without username",
			config:  map[string]any{"auth_token": "ABC123"},
			wantErr: true,
		},
		{
			name: "invalid log_level",
			config: map[string]any{
				"auth_token": "maciej:ABC123",
				"log_level":  "verbose",
			},
			wantErr: true,
		},
		{
			name: "invalid output",
			config: map[string]any{
				"auth_token": "maciej:ABC123",
				"output":     "xml",
			},
			wantErr: true,
		},
		{
			name: "negative rate limit",
			config: map[string]any{
				"auth_token": "maciej:ABC123",
				"rate_limit": map[string]any{"requests_per_second": -1},
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			config: map[string]any{
				"auth_token": "maciej:ABC123",
				"timeout":    "-5s",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config), nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, map[string]any{"auth_token": "maciej:ABC123"}), nil)
	require.NoError(t, err)

	assert.Equal(t, "maciej:ABC123", cfg.AuthToken)
	assert.False(t, cfg.TestMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Output)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1, cfg.RateLimit.Burst)
}

func TestLoad_OverridesWin(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"auth_token": "maciej:ABC123",
		"output":     "json",
		"timeout":    "5s",
	})

	cfg, err := Load(path, map[string]any{
		"auth_token":       "other:XYZ",
		"output":           "yaml",
		"test_mode":        true,
		"rate_limit.burst": 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "other:XYZ", cfg.AuthToken)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", map[string]any{"auth_token": "maciej:ABC123"})
	require.NoError(t, err)
	assert.Equal(t, "maciej:ABC123", cfg.AuthToken)

	_, err = Load("", nil)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "failed to load config file")
}

func TestValidate_NamesFailingKeys(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "missing token",
			cfg:  Config{LogLevel: "info", Output: "json"},
			want: []string{"auth_token: failed required"},
		},
		{
			name: "token without username",
			cfg:  Config{AuthToken: "ABC123", LogLevel: "info", Output: "json"},
			want: []string{"auth_token: failed contains=:"},
		},
		{
			name: "nested key and several failures",
			cfg: Config{
				AuthToken: "maciej:ABC123",
				LogLevel:  "loud",
				Output:    "json",
				RateLimit: RateLimit{Burst: -2},
			},
			want: []string{"log_level: failed oneof=error warn info debug (got loud)", "rate_limit.burst: failed min=0 (got -2)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}
