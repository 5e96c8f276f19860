package dataset

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/mfreeman451/regionpulse/pkg/models"
	"github.com/rs/zerolog/log"
)

// fileRow is one element of the on-disk JSON array. Uptime arrives as a
// 0..100 percentage and is normalized on load.
type fileRow struct {
	Region    string  `json:"region"`
	LatencyMS float64 `json:"latency_ms"`
	UptimePct float64 `json:"uptime_pct"`
	Service   string  `json:"service,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// FileProvider loads the dataset from a JSON file on every call, so edits to
// the file are picked up without a restart.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading from the given path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Load reads and groups the file's rows by region. A missing file, unreadable
// JSON or any other read error yields an empty dataset and a warn log; the
// error never reaches the caller. Rows without a region are dropped.
func (p *FileProvider) Load(_ context.Context) (Dataset, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		log.Warn().Err(err).Str("path", p.path).Msg("Failed to read telemetry file, serving empty dataset")
		return Dataset{}, nil
	}

	var rows []fileRow
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Warn().Err(err).Str("path", p.path).Msg("Failed to parse telemetry file, serving empty dataset")
		return Dataset{}, nil
	}

	ds := Dataset{}

	for _, row := range rows {
		if row.Region == "" {
			continue
		}

		record := models.TelemetryRecord{
			LatencyMS: row.LatencyMS,
			Uptime:    row.UptimePct / 100,
			Service:   row.Service,
		}

		if row.Timestamp != "" {
			// Best effort; a malformed timestamp does not drop the row.
			if ts, err := time.Parse(time.RFC3339, row.Timestamp); err == nil {
				record.Timestamp = ts
			}
		}

		ds[row.Region] = append(ds[row.Region], record)
	}

	return ds, nil
}
