package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderLoad(t *testing.T) {
	provider := NewStaticProvider()

	ds, err := provider.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"amer", "apac"}, ds.Regions())
	assert.True(t, ds.Has("apac"))
	assert.False(t, ds.Has("emea"))
	assert.Nil(t, ds.Records("emea"))

	for _, region := range ds.Regions() {
		records := ds.Records(region)
		assert.Len(t, records, 10)

		for _, record := range records {
			assert.GreaterOrEqual(t, record.Uptime, 0.0)
			assert.LessOrEqual(t, record.Uptime, 1.0)
			assert.Positive(t, record.LatencyMS)
		}
	}
}
