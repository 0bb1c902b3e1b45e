package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veljkom/venuerank/schema"
)

// TestScaleWithinThreshold keeps full points at or below the threshold.
func TestScaleWithinThreshold(t *testing.T) {
	tests := []struct {
		name    string
		authors int
		flags   schema.WorkTypeFlags
	}{
		{"experimental at threshold", 7, schema.WorkTypeFlags{Code: "M23", Experimental: true}},
		{"theoretical at threshold", 3, schema.WorkTypeFlags{Code: "M23", Theoretical: true}},
		{"simulation at threshold", 5, schema.WorkTypeFlags{Code: "M23", Simulation: true}},
		{"unflagged defaults to experimental", 7, schema.WorkTypeFlags{Code: "M23"}},
		{"top journal at threshold", 10, schema.WorkTypeFlags{Code: "M21"}},
		{"single author", 1, schema.WorkTypeFlags{Code: "M23"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adjusted, _, err := Scale(3, tt.authors, tt.flags)
			require.NoError(t, err)
			assert.InDelta(t, 3.0, adjusted, 0.001)
		})
	}
}

// TestScaleBeyondThreshold applies the decay formula past the threshold.
func TestScaleBeyondThreshold(t *testing.T) {
	tests := []struct {
		name      string
		points    float64
		authors   int
		flags     schema.WorkTypeFlags
		expected  float64
		threshold int
	}{
		// 8 / (1 + 0.2*(12-10)) = 8 / 1.4
		{"top journal twelve authors", 8, 12, schema.WorkTypeFlags{Code: "M21"}, 8.0 / 1.4, 10},
		// 3 / (1 + 0.2*(10-7)) = 3 / 1.6
		{"experimental ten authors", 3, 10, schema.WorkTypeFlags{Code: "M23", Experimental: true}, 3.0 / 1.6, 7},
		// 3 / (1 + 0.2*(4-3)) = 3 / 1.2
		{"theoretical four authors", 3, 4, schema.WorkTypeFlags{Code: "M23", Theoretical: true}, 3.0 / 1.2, 3},
		// Software family scales like experimental work
		{"software twenty authors", 8, 20, schema.WorkTypeFlags{Code: "M81"}, 8.0 / (1 + 0.2*13), 7},
		// Patent family shares the top-journal threshold
		{"patent twelve authors", 12, 12, schema.WorkTypeFlags{Code: "M91"}, 12.0 / 1.4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adjusted, threshold, err := Scale(tt.points, tt.authors, tt.flags)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, adjusted, 0.001)
			assert.Equal(t, tt.threshold, threshold)
		})
	}
}

// TestScaleNeverReachesZero checks the decay is a smooth discount, not a cap.
func TestScaleNeverReachesZero(t *testing.T) {
	adjusted, _, err := Scale(8, 1000, schema.WorkTypeFlags{Code: "M21"})
	require.NoError(t, err)
	assert.Greater(t, adjusted, 0.0)
	assert.Less(t, adjusted, 0.1)
}

// TestScaleMonographFamilies never scales monograph and thesis codes.
func TestScaleMonographFamilies(t *testing.T) {
	for _, code := range []schema.CategoryCode{"M11", "M14", "M42", "M71"} {
		adjusted, threshold, err := Scale(15, 50, schema.WorkTypeFlags{Code: code})
		require.NoError(t, err)
		assert.InDelta(t, 15.0, adjusted, 0.001, "code %s", code)
		assert.Zero(t, threshold, "code %s", code)
	}
}

// TestScaleCritiqueCodes quarters the value before any author scaling.
func TestScaleCritiqueCodes(t *testing.T) {
	for _, code := range []schema.CategoryCode{"M26", "M56", "M66"} {
		adjusted, _, err := Scale(1, 2, schema.WorkTypeFlags{Code: code})
		require.NoError(t, err)
		assert.InDelta(t, 0.25, adjusted, 0.001, "code %s", code)
	}

	// Scaling applies on top of the critique reduction
	adjusted, _, err := Scale(1, 9, schema.WorkTypeFlags{Code: "M26"})
	require.NoError(t, err)
	assert.InDelta(t, 0.25/(1+0.2*2), adjusted, 0.001)
}

// TestScaleInvalidAuthorCount rejects missing or non-positive counts.
func TestScaleInvalidAuthorCount(t *testing.T) {
	for _, authors := range []int{0, -1} {
		_, _, err := Scale(8, authors, schema.WorkTypeFlags{Code: "M21"})
		assert.ErrorIs(t, err, ErrInvalidAuthorCount)
	}
}
