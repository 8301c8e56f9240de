package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config file in sight

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tasklog.csv", cfg.StoragePath)
	assert.Equal(t, "llama3", cfg.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, 60000, cfg.TimeoutMs)
	assert.False(t, cfg.LogLLMCalls)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKLOG_FILE", "work.csv")
	t.Setenv("TASKLOG_MODEL", "mistral")
	t.Setenv("TASKLOG_ENDPOINT", "http://10.0.0.2:11434")
	t.Setenv("TASKLOG_TIMEOUT_MS", "5000")
	t.Setenv("TASKLOG_LOG_LLM_CALLS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "work.csv", cfg.StoragePath)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, "http://10.0.0.2:11434", cfg.Endpoint)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.True(t, cfg.LogLLMCalls)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := "file: team.csv\nmodel: llama3.2\ntimeout_ms: 30000\n"
	require.NoError(t, os.WriteFile("tasklog.yaml", []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "team.csv", cfg.StoragePath)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	// untouched keys keep their defaults
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile("tasklog.yaml", []byte("model: llama3.2\n"), 0o644))
	t.Setenv("TASKLOG_MODEL", "mistral")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mistral", cfg.Model)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad endpoint", "TASKLOG_ENDPOINT", "not a url"},
		{"zero timeout", "TASKLOG_TIMEOUT_MS", "0"},
		{"negative timeout", "TASKLOG_TIMEOUT_MS", "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("tasklog.yaml", []byte("model: [unclosed\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
