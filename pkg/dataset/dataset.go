// Package dataset pkg/dataset/dataset.go provides the region telemetry dataset
// and its providers.
package dataset

import (
	"sort"

	"github.com/mfreeman451/regionpulse/pkg/models"
)

// Dataset maps a region name to its ordered telemetry records. Built once per
// load; read-only afterward.
type Dataset map[string][]models.TelemetryRecord

// Records returns the record sequence for a region, nil if the region is
// unknown.
func (d Dataset) Records(region string) []models.TelemetryRecord {
	return d[region]
}

// Has reports whether the region exists in the dataset.
func (d Dataset) Has(region string) bool {
	_, ok := d[region]
	return ok
}

// Regions returns the sorted region names.
func (d Dataset) Regions() []string {
	regions := make([]string, 0, len(d))
	for region := range d {
		regions = append(regions, region)
	}

	sort.Strings(regions)

	return regions
}
