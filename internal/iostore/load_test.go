package iostore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/veljkom/venuerank/schema"
)

func writeLoadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "load.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVenuesCSV(t *testing.T) {
	store := new(MockStore)
	store.On("PutVenue", mock.Anything, mock.MatchedBy(func(v schema.Venue) bool {
		return v.Name != "" && !v.CreatedAt.IsZero()
	})).Return(int64(1), nil)

	path := writeLoadFile(t, "name,issn\nJournal of Testing,1234-5678\nRegional Review,\n")

	count, err := LoadVenuesCSV(context.Background(), store, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	store.AssertNumberOfCalls(t, "PutVenue", 2)
}

func TestLoadVenuesCSVErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError string
	}{
		{
			name:        "wrong header",
			content:     "title,issn\nJournal,1234-5678\n",
			expectError: `expected header column 1 to be "name"`,
		},
		{
			name:        "missing column",
			content:     "name\nJournal\n",
			expectError: "expected 2 header columns",
		},
		{
			name:        "empty name",
			content:     "name,issn\n,1234-5678\n",
			expectError: "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			path := writeLoadFile(t, tt.content)

			_, err := LoadVenuesCSV(context.Background(), store, path)
			assert.ErrorContains(t, err, tt.expectError)
			store.AssertNotCalled(t, "PutVenue")
		})
	}
}

func TestLoadVenuesCSVMissingFile(t *testing.T) {
	store := new(MockStore)
	_, err := LoadVenuesCSV(context.Background(), store, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open venue file")
}

func TestLoadIndicatorsCSV(t *testing.T) {
	store := new(MockStore)
	var seen []schema.Indicator
	store.On("PutIndicator", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		seen = append(seen, args.Get(1).(schema.Indicator))
	}).Return(int64(1), nil)

	content := indicatorHeaderLine + "\n" +
		"1,,jifRank2,wos,chemistry,2020,text,12/120\n" +
		"1,,jciPercentile,wos,chemistry,2020,numeric,92.5\n" +
		",1001,theoreticalWork,regional,,2020,boolean,true\n"
	path := writeLoadFile(t, content)

	count, err := LoadIndicatorsCSV(context.Background(), store, path)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, seen, 3)

	require.NotNil(t, seen[0].VenueID)
	assert.Equal(t, int64(1), *seen[0].VenueID)
	assert.Nil(t, seen[0].DocumentID)
	assert.Equal(t, "12/120", seen[0].TextValue)
	assert.Equal(t, 2020, seen[0].ValidFrom)

	assert.Equal(t, 92.5, seen[1].NumericValue)

	require.NotNil(t, seen[2].DocumentID)
	assert.Equal(t, int64(1001), *seen[2].DocumentID)
	assert.True(t, seen[2].BoolValue)
}

const indicatorHeaderLine = "venue_id,document_id,code,source,category_identifier,valid_from,kind,value"

func TestParseIndicatorRecord(t *testing.T) {
	tests := []struct {
		name        string
		record      []string
		expectError string
	}{
		{
			name:   "valid venue indicator",
			record: []string{"1", "", "jifRank2", "wos", "chemistry", "2020", "text", "12/120"},
		},
		{
			name:   "valid document indicator",
			record: []string{"", "1001", "authorCountRevised", "regional", "", "2020", "numeric", "4"},
		},
		{
			name:        "empty code",
			record:      []string{"1", "", "", "wos", "chemistry", "2020", "text", "x"},
			expectError: "indicator code is empty",
		},
		{
			name:        "unsupported source",
			record:      []string{"1", "", "jifRank2", "scopus", "chemistry", "2020", "text", "x"},
			expectError: "unsupported source",
		},
		{
			name:        "both subjects set",
			record:      []string{"1", "1001", "jifRank2", "wos", "chemistry", "2020", "text", "x"},
			expectError: "both venue_id and document_id",
		},
		{
			name:        "neither subject set",
			record:      []string{"", "", "jifRank2", "wos", "chemistry", "2020", "text", "x"},
			expectError: "neither venue_id nor document_id",
		},
		{
			name:        "bad venue id",
			record:      []string{"abc", "", "jifRank2", "wos", "chemistry", "2020", "text", "x"},
			expectError: "invalid venue_id",
		},
		{
			name:        "bad valid_from",
			record:      []string{"1", "", "jifRank2", "wos", "chemistry", "recent", "text", "x"},
			expectError: "invalid valid_from",
		},
		{
			name:        "bad numeric value",
			record:      []string{"1", "", "jciPercentile", "wos", "chemistry", "2020", "numeric", "high"},
			expectError: "invalid numeric value",
		},
		{
			name:        "bad boolean value",
			record:      []string{"", "1001", "theoreticalWork", "regional", "", "2020", "boolean", "maybe"},
			expectError: "invalid boolean value",
		},
		{
			name:        "unsupported kind",
			record:      []string{"1", "", "jifRank2", "wos", "chemistry", "2020", "blob", "x"},
			expectError: "unsupported value kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseIndicatorRecord(tt.record)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadIndicatorsCSVRowErrorStopsLoad(t *testing.T) {
	store := new(MockStore)
	store.On("PutIndicator", mock.Anything, mock.Anything).Return(int64(1), nil)

	content := indicatorHeaderLine + "\n" +
		"1,,jifRank2,wos,chemistry,2020,text,12/120\n" +
		"1,,jifRank5,scopus,chemistry,2020,text,5/50\n"
	path := writeLoadFile(t, content)

	count, err := LoadIndicatorsCSV(context.Background(), store, path)
	assert.ErrorContains(t, err, "indicator row 2")
	assert.Equal(t, 1, count)
}
