package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veljkom/venuerank/schema"
)

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		input       *ConfigRawInput
		expectError string
		check       func(*testing.T, *Config)
	}{
		{
			name:  "empty input gets defaults",
			input: &ConfigRawInput{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, time.Now().Year()-1, cfg.Year)
				assert.Equal(t, int64(DefaultCommission), cfg.CommissionID)
				assert.Equal(t, schema.WOSSource, cfg.Source)
				assert.Equal(t, schema.DefaultVariant, cfg.Variant)
				assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
				assert.Equal(t, DefaultPrecision, cfg.Precision)
				assert.True(t, cfg.UseColors)
				assert.True(t, cfg.UseEmojis)
			},
		},
		{
			name: "explicit values pass through",
			input: &ConfigRawInput{
				Year:       2023,
				Commission: 5,
				SourceStr:  "Scimago",
				VariantStr: "SOCIAL",
				BackendStr: "none",
				OutputStr:  "json",
				Limit:      100,
				Precision:  3,
				Width:      40,
				ColorStr:   "no",
				EmojiStr:   "off",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2023, cfg.Year)
				assert.Equal(t, int64(5), cfg.CommissionID)
				assert.Equal(t, schema.ScimagoSource, cfg.Source)
				assert.Equal(t, schema.SocialVariant, cfg.Variant)
				assert.Equal(t, schema.NoneBackend, cfg.Backend)
				assert.Equal(t, schema.JSONOut, cfg.Output)
				assert.Equal(t, 100, cfg.ResultLimit)
				assert.Equal(t, 3, cfg.Precision)
				assert.Equal(t, 40, cfg.Width)
				assert.False(t, cfg.UseColors)
				assert.False(t, cfg.UseEmojis)
			},
		},
		{
			name:        "year before rulebook",
			input:       &ConfigRawInput{Year: 1980},
			expectError: "out of range",
		},
		{
			name:        "year too far in the future",
			input:       &ConfigRawInput{Year: time.Now().Year() + 2},
			expectError: "out of range",
		},
		{
			name:        "negative commission",
			input:       &ConfigRawInput{Commission: -1},
			expectError: "commission id must be positive",
		},
		{
			name:        "invalid source",
			input:       &ConfigRawInput{SourceStr: "scopus"},
			expectError: "invalid source",
		},
		{
			name:        "invalid variant",
			input:       &ConfigRawInput{VariantStr: "technical"},
			expectError: "invalid rulebook variant",
		},
		{
			name:        "invalid backend",
			input:       &ConfigRawInput{BackendStr: "oracle"},
			expectError: "invalid backend",
		},
		{
			name:        "invalid output",
			input:       &ConfigRawInput{OutputStr: "xml"},
			expectError: "invalid output",
		},
		{
			name:        "precision out of range",
			input:       &ConfigRawInput{Precision: 9},
			expectError: "precision",
		},
		{
			name:        "negative width",
			input:       &ConfigRawInput{Width: -5},
			expectError: "width must be non-negative",
		},
		{
			name:        "mysql backend requires connection string",
			input:       &ConfigRawInput{BackendStr: "mysql"},
			expectError: "db-connect is required",
		},
		{
			name:  "limit is clamped not rejected",
			input: &ConfigRawInput{Limit: MaxResultLimit + 1},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, MaxResultLimit, cfg.ResultLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := ProcessAndValidate(cfg, tt.input)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError string
	}{
		{"sqlite never needs a string", schema.SQLiteBackend, "", ""},
		{"none never needs a string", schema.NoneBackend, "", ""},
		{"valid mysql", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/venuerank", ""},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/venuerank", "@tcp("},
		{"mysql missing database", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", "database name"},
		{"mysql empty", schema.MySQLBackend, "", "db-connect is required"},
		{"valid postgres keyword form", schema.PostgreSQLBackend, "host=localhost user=postgres dbname=venuerank", ""},
		{"valid postgres url form", schema.PostgreSQLBackend, "postgres://postgres@localhost/venuerank", ""},
		{"postgres malformed", schema.PostgreSQLBackend, "localhost:5432", "host="},
		{"postgres empty", schema.PostgreSQLBackend, "", "db-connect is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseBoolFlag(t *testing.T) {
	assert.True(t, ParseBoolFlag("yes", false))
	assert.True(t, ParseBoolFlag("TRUE", false))
	assert.True(t, ParseBoolFlag(" on ", false))
	assert.True(t, ParseBoolFlag("1", false))
	assert.False(t, ParseBoolFlag("no", true))
	assert.False(t, ParseBoolFlag("False", true))
	assert.False(t, ParseBoolFlag("0", true))

	// Unknown values fall back to the default
	assert.True(t, ParseBoolFlag("", true))
	assert.False(t, ParseBoolFlag("maybe", false))
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)
	assert.Empty(t, profile.Prefix)

	require.NoError(t, ProcessProfilingConfig(profile, "venuerank"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "venuerank", profile.Prefix)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Year: 2024, Source: schema.WOSSource, ResultLimit: 10}
	clone := cfg.Clone()
	clone.Year = 2020
	clone.Source = schema.ScimagoSource

	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, schema.WOSSource, cfg.Source)
	assert.Equal(t, 2020, clone.Year)
}
