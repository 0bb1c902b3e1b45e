package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veljkom/venuerank/schema"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{
			name:      "precision 2",
			precision: 2,
			value:     8.3333,
			expected:  "8.33",
		},
		{
			name:      "precision 0",
			precision: 0,
			value:     8.3333,
			expected:  "8",
		},
		{
			name:      "precision 4",
			precision: 4,
			value:     7.14285,
			expected:  "7.1429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, intFmt := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "%d", intFmt)
		})
	}
}

func TestFirstReasonText(t *testing.T) {
	reasons := []schema.LocalizedText{
		{Lang: "en", Text: "Ranked in the top 15 percent"},
		{Lang: "sr", Text: "Rangiran u gornjih 15 procenata"},
	}

	assert.Equal(t, "Ranked in the top 15 percent", firstReasonText(reasons, "en"))
	assert.Equal(t, "Rangiran u gornjih 15 procenata", firstReasonText(reasons, "sr"))

	// Unknown language falls back to the first entry
	assert.Equal(t, "Ranked in the top 15 percent", firstReasonText(reasons, "de"))

	assert.Empty(t, firstReasonText(nil, "en"))
}

func TestVenueName(t *testing.T) {
	names := map[int64]string{
		1: "Journal of Applied Testing",
		2: "",
	}

	assert.Equal(t, "Journal of Applied Testing", venueName(names, 1))
	assert.Equal(t, "venue 2", venueName(names, 2))
	assert.Equal(t, "venue 99", venueName(names, 99))
}

func TestWriteWithFile(t *testing.T) {
	t.Run("writes to file and closes it", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := writeWithFile(path, func(w io.Writer) error {
			_, err := w.Write([]byte("hello"))
			return err
		}, "Wrote text")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := writeWithFile(path, func(w io.Writer) error {
			return assert.AnError
		}, "Wrote text")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("rejects unwritable paths", func(t *testing.T) {
		err := writeWithFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(w io.Writer) error {
			return nil
		}, "Wrote text")
		assert.Error(t, err)
	})
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, "1,2", lines[1])
}

func TestWriteJSONHelper(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"year": 2024})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"year\": 2024")
}
