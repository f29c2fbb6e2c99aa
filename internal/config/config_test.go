package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPC.Port)
	assert.Equal(t, 8081, cfg.Admin.Port)
	assert.Equal(t, 64, cfg.Orchestrator.MaxWorkers)
	assert.Equal(t, time.Second, cfg.Orchestrator.MinLatency)
	assert.Equal(t, 3*time.Second, cfg.Orchestrator.MaxLatency)
	assert.Zero(t, cfg.Orchestrator.FailureRate)
	assert.Equal(t, 16, cfg.Eliza.HistoryLimit)
	assert.Equal(t, 256, cfg.Streaming.RingCapacity)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	const doc = `
grpc:
  port: 6000
orchestrator:
  max_workers: 4
  min_latency: 10ms
  max_latency: 50ms
  failure_rate: 0.25
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "basicd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.GRPC.Port)
	assert.Equal(t, 4, cfg.Orchestrator.MaxWorkers)
	assert.Equal(t, 10*time.Millisecond, cfg.Orchestrator.MinLatency)
	assert.Equal(t, 50*time.Millisecond, cfg.Orchestrator.MaxLatency)
	assert.Equal(t, 0.25, cfg.Orchestrator.FailureRate)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, 8081, cfg.Admin.Port)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BASICD_GRPC_PORT", "7000")
	t.Setenv("BASICD_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.GRPC.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad port", "grpc:\n  port: -1\n"},
		{"tls without certs", "grpc:\n  tls:\n    enabled: true\n"},
		{"zero workers", "orchestrator:\n  max_workers: 0\n"},
		{"inverted latency", "orchestrator:\n  min_latency: 5s\n  max_latency: 1s\n"},
		{"failure rate out of range", "orchestrator:\n  failure_rate: 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "basicd.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

const scriptDoc = `
rules:
  - keyword: cat
    rank: 5
    decomp:
      - pattern: ["*", "cat", "*"]
        templates: ["Tell me about {1}."]
farewell:
  keywords: [bye]
  templates: ["See you."]
fallback:
  - "Go on."
empty_prompt: "Say something."
`

func TestScriptWatcherDefault(t *testing.T) {
	sw, err := NewScriptWatcher("", zap.NewNop())
	require.NoError(t, err)
	defer sw.Stop()

	require.NoError(t, sw.Start())
	assert.NotNil(t, sw.Current())
}

func TestScriptWatcherLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scriptDoc), 0o644))

	sw, err := NewScriptWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer sw.Stop()

	_, ok := sw.Current().Rule("cat")
	assert.True(t, ok)
}

func TestScriptWatcherRejectsBrokenInitialScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o644))

	_, err := NewScriptWatcher(path, zap.NewNop())
	assert.Error(t, err)
}

func TestScriptWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scriptDoc), 0o644))

	sw, err := NewScriptWatcher(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sw.Start())
	defer sw.Stop()

	updated := []byte(scriptDoc + `synonyms:
  kitten: cat
`)
	require.NoError(t, os.WriteFile(path, updated, 0o644))

	assert.Eventually(t, func() bool {
		return sw.Current().Synonyms["kitten"] == "cat"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestScriptWatcherKeepsScriptOnBrokenReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scriptDoc), 0o644))

	sw, err := NewScriptWatcher(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sw.Start())
	defer sw.Stop()

	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o644))

	// Give the watcher time to see the bad write; the old script must stay.
	time.Sleep(300 * time.Millisecond)
	_, ok := sw.Current().Rule("cat")
	assert.True(t, ok)
}
