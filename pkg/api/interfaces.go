package api

import (
	"context"

	"github.com/mfreeman451/regionpulse/pkg/models"
)

// AnalyzerService is what the HTTP layer needs from the analyzer.
type AnalyzerService interface {
	Analyze(ctx context.Context, req *models.AnalyzeRequest) (map[string]models.RegionMetrics, error)
}
