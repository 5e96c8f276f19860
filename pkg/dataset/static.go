package dataset

import (
	"context"
)

// staticData is the compiled-in sample dataset.
var staticData = Dataset{
	"apac": {
		{LatencyMS: 120, Uptime: 1},
		{LatencyMS: 145, Uptime: 1},
		{LatencyMS: 200, Uptime: 1},
		{LatencyMS: 110, Uptime: 0},
		{LatencyMS: 180, Uptime: 1},
		{LatencyMS: 165, Uptime: 1},
		{LatencyMS: 190, Uptime: 1},
		{LatencyMS: 130, Uptime: 1},
		{LatencyMS: 175, Uptime: 1},
		{LatencyMS: 155, Uptime: 1},
	},
	"amer": {
		{LatencyMS: 95, Uptime: 1},
		{LatencyMS: 105, Uptime: 1},
		{LatencyMS: 170, Uptime: 1},
		{LatencyMS: 185, Uptime: 1},
		{LatencyMS: 90, Uptime: 0},
		{LatencyMS: 150, Uptime: 1},
		{LatencyMS: 160, Uptime: 1},
		{LatencyMS: 140, Uptime: 1},
		{LatencyMS: 125, Uptime: 1},
		{LatencyMS: 135, Uptime: 1},
	},
}

// StaticProvider serves the compiled-in dataset.
type StaticProvider struct{}

// NewStaticProvider creates a provider backed by the compiled-in dataset.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Load returns the compiled-in dataset. The map is shared; callers treat it
// as read-only.
func (*StaticProvider) Load(_ context.Context) (Dataset, error) {
	return staticData, nil
}
