// Package analytics pkg/analytics/calculator.go computes per-region summary
// statistics over telemetry records.
package analytics

import (
	"math"
	"sort"

	"github.com/mfreeman451/regionpulse/pkg/models"
)

// Compute aggregates a record sequence against a latency threshold. An empty
// sequence returns the all-zero RegionMetrics sentinel regardless of the
// threshold.
//
// avg_latency and p95_latency are rounded to 2 decimals, avg_uptime to 3;
// rounding is half-to-even. A breach is a sample strictly greater than the
// threshold.
func Compute(records []models.TelemetryRecord, thresholdMS int) models.RegionMetrics {
	if len(records) == 0 {
		return models.RegionMetrics{}
	}

	latencies := make([]float64, len(records))

	var latencySum, uptimeSum float64

	breaches := 0

	for i, record := range records {
		latencies[i] = record.LatencyMS
		latencySum += record.LatencyMS
		uptimeSum += record.Uptime

		if record.LatencyMS > float64(thresholdMS) {
			breaches++
		}
	}

	n := float64(len(records))

	return models.RegionMetrics{
		AvgLatency: round(latencySum/n, 2),
		P95Latency: round(percentile(latencies, 95), 2),
		AvgUptime:  round(uptimeSum/n, 3),
		Breaches:   breaches,
	}
}

// percentile computes the pct-th percentile with linear interpolation between
// closest ranks: sort the values and interpolate at rank pct/100*(n-1).
func percentile(values []float64, pct float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := pct / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))

	if lo == hi {
		return sorted[lo]
	}

	frac := rank - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// round rounds half-to-even at the given number of decimal places.
func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.RoundToEven(v*shift) / shift
}
