package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzerConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         AnalyzerConfig
		expectError bool
		check       func(t *testing.T, cfg *AnalyzerConfig)
	}{
		{
			name: "defaults applied to empty config",
			cfg:  AnalyzerConfig{},
			check: func(t *testing.T, cfg *AnalyzerConfig) {
				t.Helper()
				assert.Equal(t, ":8080", cfg.ListenAddr)
				assert.Equal(t, SourceStatic, cfg.DataSource)
				assert.Equal(t, PolicyLenient, cfg.RegionPolicy)
			},
		},
		{
			name: "file source defaults data_file",
			cfg:  AnalyzerConfig{DataSource: SourceFile},
			check: func(t *testing.T, cfg *AnalyzerConfig) {
				t.Helper()
				assert.Equal(t, "telemetry.json", cfg.DataFile)
			},
		},
		{
			name: "strict policy accepted",
			cfg:  AnalyzerConfig{RegionPolicy: PolicyStrict},
		},
		{
			name: "rate limit forces positive burst",
			cfg:  AnalyzerConfig{RateLimit: 5},
			check: func(t *testing.T, cfg *AnalyzerConfig) {
				t.Helper()
				assert.Equal(t, 1, cfg.RateBurst)
			},
		},
		{
			name:        "unknown data source rejected",
			cfg:         AnalyzerConfig{DataSource: "redis"},
			expectError: true,
		},
		{
			name:        "unknown region policy rejected",
			cfg:         AnalyzerConfig{RegionPolicy: "forgiving"},
			expectError: true,
		},
		{
			name:        "sqlite source requires db_path",
			cfg:         AnalyzerConfig{DataSource: SourceSQLite},
			expectError: true,
		},
		{
			name:        "negative rate limit rejected",
			cfg:         AnalyzerConfig{RateLimit: -1},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, &tt.cfg)
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyzer.json")
	content := `{
		"listen_addr": ":9090",
		"data_source": "file",
		"data_file": "/var/lib/regionpulse/telemetry.json",
		"region_policy": "strict"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg AnalyzerConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, SourceFile, cfg.DataSource)
	assert.Equal(t, "/var/lib/regionpulse/telemetry.json", cfg.DataFile)
	assert.Equal(t, PolicyStrict, cfg.RegionPolicy)
}

func TestLoadAndValidateErrors(t *testing.T) {
	var cfg AnalyzerConfig

	assert.Error(t, LoadAndValidate(filepath.Join(t.TempDir(), "missing.json"), &cfg))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_source": "redis"}`), 0o600))
	assert.Error(t, LoadAndValidate(path, &cfg))
}
