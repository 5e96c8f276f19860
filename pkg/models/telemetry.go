// Package models pkg/models/telemetry.go contains the shared telemetry types.
package models

import "time"

// TelemetryRecord is a single telemetry sample for a region. Records are
// immutable once loaded; uptime is a 0..1 fraction.
type TelemetryRecord struct {
	LatencyMS float64   `json:"latency_ms"`
	Uptime    float64   `json:"uptime"`
	Service   string    `json:"service,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// AnalyzeRequest is the body of POST /analyze. Regions may be empty and may
// contain duplicates; duplicates collapse in the response.
type AnalyzeRequest struct {
	Regions     []string `json:"regions"`
	ThresholdMS int      `json:"threshold_ms"`
}

// RegionMetrics holds the aggregates computed for one region. The zero value
// is the "no data" sentinel returned for empty record sets.
type RegionMetrics struct {
	AvgLatency float64 `json:"avg_latency"`
	P95Latency float64 `json:"p95_latency"`
	AvgUptime  float64 `json:"avg_uptime"`
	Breaches   int     `json:"breaches"`
}
