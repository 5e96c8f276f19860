package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/mfreeman451/regionpulse/pkg/models"
	"github.com/rs/zerolog/log"
)

const selectTelemetrySQL = `
	SELECT region, latency_ms, uptime, service, timestamp
	FROM telemetry
	ORDER BY region, timestamp`

// SQLiteProvider loads the dataset from a read-only SQLite snapshot. The
// expected schema is a single telemetry table:
//
//	CREATE TABLE telemetry (
//		region     TEXT NOT NULL,
//		latency_ms REAL NOT NULL,
//		uptime     REAL NOT NULL,
//		service    TEXT,
//		timestamp  TIMESTAMP
//	);
type SQLiteProvider struct {
	dbPath string
}

// NewSQLiteProvider creates a provider reading from the given database file.
func NewSQLiteProvider(dbPath string) *SQLiteProvider {
	return &SQLiteProvider{dbPath: dbPath}
}

// Load queries the snapshot and groups rows by region. Like the file
// provider, any failure yields an empty dataset and a warn log rather than an
// error; rows without a region are dropped.
func (p *SQLiteProvider) Load(ctx context.Context) (Dataset, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", p.dbPath))
	if err != nil {
		log.Warn().Err(err).Str("db_path", p.dbPath).Msg("Failed to open telemetry snapshot, serving empty dataset")
		return Dataset{}, nil
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectTelemetrySQL)
	if err != nil {
		log.Warn().Err(err).Str("db_path", p.dbPath).Msg("Failed to query telemetry snapshot, serving empty dataset")
		return Dataset{}, nil
	}
	defer rows.Close()

	ds := Dataset{}

	for rows.Next() {
		var (
			region    string
			latencyMS float64
			uptime    float64
			service   sql.NullString
			ts        sql.NullTime
		)

		if err := rows.Scan(&region, &latencyMS, &uptime, &service, &ts); err != nil {
			log.Warn().Err(err).Msg("Failed to scan telemetry row, serving empty dataset")
			return Dataset{}, nil
		}

		if region == "" {
			continue
		}

		record := models.TelemetryRecord{
			LatencyMS: latencyMS,
			Uptime:    uptime,
			Service:   service.String,
		}
		if ts.Valid {
			record.Timestamp = ts.Time.UTC()
		}

		ds[region] = append(ds[region], record)
	}

	if err := rows.Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to iterate telemetry rows, serving empty dataset")
		return Dataset{}, nil
	}

	return ds, nil
}
