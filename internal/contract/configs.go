package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/veljkom/venuerank/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultCommission  = 1

	// MinAssessmentYear is the first year the rulebook applies to.
	MinAssessmentYear = 1990
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for classification and scoring.
// This struct remains the "final, validated" config.
type Config struct {
	Year         int
	CommissionID int64
	Source       schema.Source
	Variant      schema.RulebookVariant

	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	Output      schema.OutputMode
	OutputFile  string
	ResultLimit int
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored code labels in table output
}

// Clone returns a shallow copy of the config, safe for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Year       int    `mapstructure:"year"`
	Commission int64  `mapstructure:"commission"`
	SourceStr  string `mapstructure:"source"`
	VariantStr string `mapstructure:"variant"`
	BackendStr string `mapstructure:"backend"`
	DBConnect  string `mapstructure:"db-connect"`
	OutputStr  string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	ColorStr   string `mapstructure:"color"`
	EmojiStr   string `mapstructure:"emoji"`
}

// ProcessAndValidate converts the raw input into the final validated config.
// It fails fast on the first invalid value so the CLI can report it directly.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// Year defaults to the previous calendar year, the usual assessment target.
	cfg.Year = input.Year
	if cfg.Year == 0 {
		cfg.Year = time.Now().Year() - 1
	}
	if cfg.Year < MinAssessmentYear || cfg.Year > time.Now().Year()+1 {
		return fmt.Errorf("year %d out of range [%d, %d]", cfg.Year, MinAssessmentYear, time.Now().Year()+1)
	}

	cfg.CommissionID = input.Commission
	if cfg.CommissionID == 0 {
		cfg.CommissionID = DefaultCommission
	}
	if cfg.CommissionID < 0 {
		return fmt.Errorf("commission id must be positive, got %d", cfg.CommissionID)
	}

	cfg.Source = schema.Source(strings.ToLower(input.SourceStr))
	if cfg.Source == "" {
		cfg.Source = schema.WOSSource
	}
	if _, ok := schema.ValidSources[cfg.Source]; !ok {
		return fmt.Errorf("invalid source %q. Must be wos, scimago, erihplus, or regional", input.SourceStr)
	}

	cfg.Variant = schema.RulebookVariant(strings.ToLower(input.VariantStr))
	if cfg.Variant == "" {
		cfg.Variant = schema.DefaultVariant
	}
	if _, ok := schema.ValidVariants[cfg.Variant]; !ok {
		return fmt.Errorf("invalid rulebook variant %q. Must be default or social", input.VariantStr)
	}

	cfg.Backend = schema.DatabaseBackend(strings.ToLower(input.BackendStr))
	if cfg.Backend == "" {
		cfg.Backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid backend %q. Must be sqlite, mysql, postgresql, or none", input.BackendStr)
	}
	cfg.DBConnect = input.DBConnect
	if err := ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect); err != nil {
		return err
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.OutputStr))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output %q. Must be text, csv, json, or parquet", input.OutputStr)
	}
	cfg.OutputFile = input.OutputFile

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	if cfg.ResultLimit > MaxResultLimit {
		cfg.ResultLimit = MaxResultLimit
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 6 {
		return fmt.Errorf("precision %d out of range [0, 6]", cfg.Precision)
	}
	if cfg.Precision == 0 {
		cfg.Precision = DefaultPrecision
	}

	cfg.Width = input.Width
	if cfg.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", cfg.Width)
	}

	cfg.UseColors = ParseBoolFlag(input.ColorStr, true)
	cfg.UseEmojis = ParseBoolFlag(input.EmojiStr, true)

	return nil
}

// ValidateDatabaseConnectionString checks that the connection string matches
// the shape the backend's driver expects. SQLite and none need no string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// URL form")
		}
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ParseBoolFlag interprets a human-friendly boolean flag string.
// Accepts yes/no, true/false, on/off, 1/0. Unknown values fall back to def.
func ParseBoolFlag(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "on", "1":
		return true
	case "no", "false", "off", "0":
		return false
	default:
		return def
	}
}
