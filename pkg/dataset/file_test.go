package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `[
	{"region": "apac", "latency_ms": 120, "uptime_pct": 97.807, "service": "edge", "timestamp": "2026-08-01T12:00:00Z"},
	{"region": "apac", "latency_ms": 145, "uptime_pct": 100},
	{"region": "amer", "latency_ms": 95, "uptime_pct": 50},
	{"latency_ms": 999, "uptime_pct": 0},
	{"region": "amer", "latency_ms": 105, "uptime_pct": 99.5, "timestamp": "not-a-timestamp"}
]`

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "telemetry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFileProviderLoad(t *testing.T) {
	provider := NewFileProvider(writeFixture(t, fixtureJSON))

	ds, err := provider.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"amer", "apac"}, ds.Regions())

	apac := ds.Records("apac")
	require.Len(t, apac, 2)
	assert.InDelta(t, 0.97807, apac[0].Uptime, 1e-9)
	assert.Equal(t, 120.0, apac[0].LatencyMS)
	assert.Equal(t, "edge", apac[0].Service)
	assert.False(t, apac[0].Timestamp.IsZero())
	assert.InDelta(t, 1.0, apac[1].Uptime, 1e-9)

	amer := ds.Records("amer")
	require.Len(t, amer, 2)
	assert.InDelta(t, 0.5, amer[0].Uptime, 1e-9)
	// A malformed timestamp does not drop the row.
	assert.True(t, amer[1].Timestamp.IsZero())
	assert.Equal(t, 105.0, amer[1].LatencyMS)
}

func TestFileProviderDropsRowsWithoutRegion(t *testing.T) {
	provider := NewFileProvider(writeFixture(t, fixtureJSON))

	ds, err := provider.Load(context.Background())
	require.NoError(t, err)

	total := 0
	for _, region := range ds.Regions() {
		total += len(ds.Records(region))
	}

	assert.Equal(t, 4, total)
}

func TestFileProviderErrorsYieldEmptyDataset(t *testing.T) {
	tests := []struct {
		name     string
		provider *FileProvider
	}{
		{
			name:     "missing file",
			provider: NewFileProvider(filepath.Join(t.TempDir(), "does-not-exist.json")),
		},
		{
			name:     "corrupt json",
			provider: NewFileProvider(writeFixture(t, `{"not": "an array"`)),
		},
		{
			name:     "wrong top-level shape",
			provider: NewFileProvider(writeFixture(t, `{"region": "apac"}`)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := tt.provider.Load(context.Background())
			assert.NoError(t, err)
			assert.Empty(t, ds)
		})
	}
}
