// Package config loads application configuration from an optional YAML
// file, EDUTUTOR_* environment variables and command-line flags, in
// that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	flag "github.com/spf13/pflag"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Quiz     QuizConfig     `koanf:"quiz"`
	LLM      LLMConfig      `koanf:"llm"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string   `koanf:"addr" validate:"required,hostname_port"`
	ReadTimeoutSec  int      `koanf:"read_timeout_sec" validate:"min=1"`
	WriteTimeoutSec int      `koanf:"write_timeout_sec" validate:"min=1"`
	CORSOrigins     []string `koanf:"cors_origins"`
}

// DatabaseConfig configures the SQLite store. An empty path falls back
// to the per-user default location.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// QuizConfig configures quiz sizing and the generation source.
type QuizConfig struct {
	// Source selects the question generator: "llm" or "bank".
	Source          string `koanf:"source" validate:"oneof=llm bank"`
	DefaultCount    int    `koanf:"default_count" validate:"min=1,max=50"`
	MaxCount        int    `koanf:"max_count" validate:"min=1,max=50"`
	DiagnosticCount int    `koanf:"diagnostic_count" validate:"min=3,max=50"`
}

// LLMConfig configures the model used for quiz generation. API keys
// are read from the conventional environment variables (GEMINI_API_KEY
// and friends), never from the config file. An empty provider selects
// whichever provider has a key set, in discovery priority order. The
// retry keys are kept flat so each maps to one EDUTUTOR_LLM_* variable.
type LLMConfig struct {
	Provider           string  `koanf:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock"`
	Model              string  `koanf:"model"`
	TimeoutSec         int     `koanf:"timeout_sec" validate:"min=1"`
	RetryMaxAttempts   int     `koanf:"retry_max_attempts" validate:"min=1,max=10"`
	RetryInitialWaitMs int     `koanf:"retry_initial_wait_ms" validate:"min=1"`
	RetryMaxWaitMs     int     `koanf:"retry_max_wait_ms" validate:"min=1"`
	RetryMultiplier    float64 `koanf:"retry_multiplier" validate:"min=1"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            "localhost:8080",
			ReadTimeoutSec:  15,
			WriteTimeoutSec: 30,
			CORSOrigins:     []string{"http://localhost:3000"},
		},
		Quiz: QuizConfig{
			Source:          "llm",
			DefaultCount:    5,
			MaxCount:        20,
			DiagnosticCount: 10,
		},
		LLM: LLMConfig{
			TimeoutSec:         30,
			RetryMaxAttempts:   3,
			RetryInitialWaitMs: 1000,
			RetryMaxWaitMs:     10000,
			RetryMultiplier:    2.0,
		},
	}
}

// Load merges the YAML file at path (skipped when empty or absent),
// EDUTUTOR_* environment variables, then flags over the defaults.
func Load(path string, flags *flag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	// EDUTUTOR_SERVER_ADDR -> server.addr
	err := k.Load(env.Provider("EDUTUTOR_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "EDUTUTOR_"))
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	// Unmarshal fills only the keys that were loaded, so untouched
	// fields keep their defaults.
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its constraints.
func Validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("invalid config: field %s fails %q", e.Namespace(), e.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Quiz.DefaultCount > cfg.Quiz.MaxCount {
		return fmt.Errorf("invalid config: quiz.default_count %d exceeds quiz.max_count %d",
			cfg.Quiz.DefaultCount, cfg.Quiz.MaxCount)
	}
	if cfg.LLM.RetryInitialWaitMs > cfg.LLM.RetryMaxWaitMs {
		return fmt.Errorf("invalid config: llm.retry_initial_wait_ms %d exceeds llm.retry_max_wait_ms %d",
			cfg.LLM.RetryInitialWaitMs, cfg.LLM.RetryMaxWaitMs)
	}
	return nil
}
