package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type RateLimit struct {
	// RequestsPerSecond of zero disables client-side pacing.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"min=0"`
	Burst             int     `koanf:"burst" validate:"min=0"`
}

type Config struct {
	// AuthToken has the form "username:TOKEN".
	AuthToken string        `koanf:"auth_token" validate:"required,contains=:"`
	TestMode  bool          `koanf:"test_mode"`
	LogLevel  string        `koanf:"log_level" validate:"oneof=error warn info debug"`
	Timeout   time.Duration `koanf:"timeout" validate:"min=0"`
	Output    string        `koanf:"output" validate:"oneof=json yaml"`
	RateLimit RateLimit     `koanf:"rate_limit"`
}

// Validate checks c against its struct tags. Failures name the config key,
// e.g. "rate_limit.burst".
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		// Namespace is "Config.rate_limit.burst"; drop the root type.
		key := fe.Namespace()
		if _, rest, ok := strings.Cut(key, "."); ok {
			key = rest
		}
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s: failed %s=%s (got %v)", key, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			problems = append(problems, fmt.Sprintf("%s: failed %s", key, fe.Tag()))
		}
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
}

// Load reads defaults, then the YAML file at path (skipped when path is
// empty), then overrides. Override keys use the same dotted names as the
// file, e.g. "rate_limit.burst".
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := setDefaultValues(k); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to apply overrides: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaultValues(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(map[string]any{
		"log_level":                      "info",
		"timeout":                        "10s",
		"output":                         "json",
		"rate_limit.requests_per_second": 0,
		"rate_limit.burst":               1,
	}, "."), nil)
}
