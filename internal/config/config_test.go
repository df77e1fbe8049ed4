package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"VECHAIN_NETWORK", "VECHAIN_CALL_URL", "GALAXY_CONTRACT", "LOOKUP_TIMEOUT", "SESSION_TTL", "RATE_LIMIT_PER_MINUTE", "HEALTH_CHECK_INTERVAL", "HEALTH_CHECK_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, DefaultNetwork, cfg.Network)
	assert.Equal(t, 15*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, 5*time.Minute, cfg.HealthCheckInterval)
	assert.Equal(t, "1", cfg.HealthCheckToken)

	cfg.ApplyNetwork(nil)
	assert.Equal(t, DefaultCallURL, cfg.CallURL)
	assert.Equal(t, DefaultContract, cfg.Contract)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOOKUP_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-3")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.LookupTimeout)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
}

func TestApplyNetwork(t *testing.T) {
	y := &YAMLConfig{Networks: []NetworkConfig{
		{Name: "main", CallURL: "https://main.example/call", Contract: "0xmain"},
		{Name: "test", CallURL: "https://test.example/call", Contract: "0xtest"},
	}}

	tests := []struct {
		name         string
		cfg          Config
		wantCallURL  string
		wantContract string
	}{
		{
			name:         "selected network fills both fields",
			cfg:          Config{Network: "test"},
			wantCallURL:  "https://test.example/call",
			wantContract: "0xtest",
		},
		{
			name:         "env override wins over network",
			cfg:          Config{Network: "test", Contract: "0xenv"},
			wantCallURL:  "https://test.example/call",
			wantContract: "0xenv",
		},
		{
			name:         "unknown network falls back to defaults",
			cfg:          Config{Network: "nope"},
			wantCallURL:  DefaultCallURL,
			wantContract: DefaultContract,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.ApplyNetwork(y)
			assert.Equal(t, tt.wantCallURL, cfg.CallURL)
			assert.Equal(t, tt.wantContract, cfg.Contract)
		})
	}
}

func TestLoadYAMLConfigFile(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadYAMLConfigFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	path := filepath.Join(dir, "config.yaml")
	content := `networks:
  - name: test
    call_url: https://api.vechain.energy/v1/call/test
    contract: "0xabc"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadYAMLConfigFile(path)
	require.NoError(t, err)
	n := cfg.GetNetwork("test")
	require.NotNil(t, n)
	assert.Equal(t, "https://api.vechain.energy/v1/call/test", n.CallURL)
	assert.Equal(t, "0xabc", n.Contract)
	assert.Nil(t, cfg.GetNetwork("main"))

	require.NoError(t, os.WriteFile(path, []byte("networks: [oops"), 0o600))
	_, err = LoadYAMLConfigFile(path)
	assert.Error(t, err)
}
