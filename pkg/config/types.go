package config

import "errors"

var (
	errUnknownDataSource   = errors.New("unknown data source")
	errUnknownRegionPolicy = errors.New("unknown region policy")
	errDBPathRequired      = errors.New("db_path is required for the sqlite data source")
	errNegativeRateLimit   = errors.New("rate_limit must not be negative")
)

// Data source selectors for AnalyzerConfig.
const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Region policies for unknown regions in an analyze request.
const (
	PolicyLenient = "lenient"
	PolicyStrict  = "strict"
)

const defaultDataFile = "telemetry.json"

// AnalyzerConfig represents the configuration for the analyzer service.
type AnalyzerConfig struct {
	ListenAddr   string  `json:"listen_addr"`   // e.g., :8080
	DataSource   string  `json:"data_source"`   // "static", "file" or "sqlite"
	DataFile     string  `json:"data_file"`     // path for the file source
	DBPath       string  `json:"db_path"`       // path for the sqlite source
	RegionPolicy string  `json:"region_policy"` // "lenient" or "strict"
	RateLimit    float64 `json:"rate_limit"`    // requests/sec, 0 disables limiting
	RateBurst    int     `json:"rate_burst"`
	LogLevel     string  `json:"log_level"`
	LogFormat    string  `json:"log_format"` // "json" or "console"
}

// Validate applies defaults and rejects unknown enum values.
func (c *AnalyzerConfig) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}

	if c.DataSource == "" {
		c.DataSource = SourceStatic
	}

	switch c.DataSource {
	case SourceStatic:
	case SourceFile:
		if c.DataFile == "" {
			c.DataFile = defaultDataFile
		}
	case SourceSQLite:
		if c.DBPath == "" {
			return errDBPathRequired
		}
	default:
		return errUnknownDataSource
	}

	if c.RegionPolicy == "" {
		c.RegionPolicy = PolicyLenient
	}

	if c.RegionPolicy != PolicyLenient && c.RegionPolicy != PolicyStrict {
		return errUnknownRegionPolicy
	}

	if c.RateLimit < 0 {
		return errNegativeRateLimit
	}

	if c.RateLimit > 0 && c.RateBurst <= 0 {
		c.RateBurst = 1
	}

	return nil
}
