// Package analyzer pkg/analyzer/analyzer.go turns analyze requests into
// per-region metrics.
package analyzer

import (
	"context"
	"fmt"

	"github.com/mfreeman451/regionpulse/pkg/analytics"
	"github.com/mfreeman451/regionpulse/pkg/dataset"
	"github.com/mfreeman451/regionpulse/pkg/models"
)

// Service evaluates analyze requests against a dataset provider. The dataset
// is loaded per request; providers that cache make that a cheap map read.
type Service struct {
	provider dataset.Provider
	strict   bool
}

// NewService creates an analyzer over the given provider. With strict set,
// requests naming regions absent from the dataset fail as a whole; otherwise
// unknown regions yield the all-zero metrics sentinel.
func NewService(provider dataset.Provider, strict bool) *Service {
	return &Service{
		provider: provider,
		strict:   strict,
	}
}

// Analyze computes metrics for every requested region. Duplicate names in the
// request collapse to a single result key; regions are independent of each
// other, so the computation per region is deterministic.
func (s *Service) Analyze(ctx context.Context, req *models.AnalyzeRequest) (map[string]models.RegionMetrics, error) {
	ds, err := s.provider.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	if s.strict {
		if err := validateRegions(req.Regions, ds); err != nil {
			return nil, err
		}
	}

	results := make(map[string]models.RegionMetrics, len(req.Regions))

	for _, region := range req.Regions {
		results[region] = analytics.Compute(ds.Records(region), req.ThresholdMS)
	}

	return results, nil
}

func validateRegions(requested []string, ds dataset.Dataset) error {
	var unknown []string

	seen := make(map[string]bool, len(requested))

	for _, region := range requested {
		if seen[region] {
			continue
		}

		seen[region] = true

		if !ds.Has(region) {
			unknown = append(unknown, region)
		}
	}

	if len(unknown) > 0 {
		return &UnknownRegionsError{
			Unknown:   unknown,
			Available: ds.Regions(),
		}
	}

	return nil
}
