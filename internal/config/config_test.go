package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Equal(t, "llm", cfg.Quiz.Source)
	assert.Equal(t, 5, cfg.Quiz.DefaultCount)
	assert.Equal(t, 10, cfg.Quiz.DiagnosticCount)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  addr: 0.0.0.0:9000\nquiz:\n  source: bank\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "bank", cfg.Quiz.Source)
	// Untouched keys keep their defaults.
	assert.Equal(t, 5, cfg.Quiz.DefaultCount)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: 0.0.0.0:9000\n"), 0o644))
	t.Setenv("EDUTUTOR_SERVER_ADDR", "127.0.0.1:7000")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
}

func TestLoad_LLMSection(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	// Provider and model are empty by default: discovery decides.
	assert.Empty(t, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Model)
	assert.Equal(t, 30, cfg.LLM.TimeoutSec)
	assert.Equal(t, 3, cfg.LLM.RetryMaxAttempts)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "llm:\n  provider: openai\n  model: gpt-4.1-mini\n  retry_max_attempts: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("EDUTUTOR_LLM_MODEL", "gpt-4.1")

	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, 5, cfg.LLM.RetryMaxAttempts)
	assert.Equal(t, 1000, cfg.LLM.RetryInitialWaitMs)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("EDUTUTOR_LLM_PROVIDER", "abacus")
	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM.Provider")
}

func TestValidate_RetryWaitOrdering(t *testing.T) {
	cfg := Default()
	cfg.LLM.RetryInitialWaitMs = 20000
	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry_initial_wait_ms")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("EDUTUTOR_QUIZ_SOURCE", "carrier-pigeon")
	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quiz.Source")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a map"), 0o644))

	_, err := Load(path, nil)
	require.Error(t, err)
}

func TestValidate_CountOrdering(t *testing.T) {
	cfg := Default()
	cfg.Quiz.DefaultCount = 30
	cfg.Quiz.MaxCount = 10
	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_count")
}
