package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/veljkom/venuerank/internal/catalog"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/internal/iostore"
	"github.com/veljkom/venuerank/internal/locale"
	"github.com/veljkom/venuerank/schema"
)

func newWOSEngine(store contract.Store) *Engine {
	return NewEngine(NewWOSClassifier(), store, catalog.Default(), locale.Default())
}

// TestClassifyVenuesPersistsResults runs one venue through the WOS chain and
// checks the stored classification.
func TestClassifyVenuesPersistsResults(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1, Name: "Test Journal"}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return([]schema.Indicator{
		textIndicator(1, schema.IndicatorRank2, "chemistry", 2020, "12/120"),
	}, nil)
	store.On("ReplaceClassification", ctx, mock.MatchedBy(func(c schema.Classification) bool {
		return c.VenueID == 1 && c.CategoryIdentifier == "chemistry" &&
			c.Year == 2024 && c.CommissionID == 3 && c.Code == schema.CategoryCode("M21")
	})).Return(int64(77), nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyVenues(ctx, 2024, 3, []int64{1})
	require.NoError(t, err)

	assert.Equal(t, schema.WOSSource, summary.Source)
	assert.Equal(t, 1, summary.VenuesSeen)
	assert.Equal(t, 1, summary.Classified)
	assert.Zero(t, summary.Unclassified)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, int64(77), summary.Results[0].ID)
	require.NotEmpty(t, summary.Results[0].Reasoning)
	assert.Equal(t, "en", summary.Results[0].Reasoning[0].Lang)

	store.AssertExpectations(t)
}

// TestClassifyVenuesFirstMatchWins stops at the most prestigious matching
// tier even when a later handler would also match.
func TestClassifyVenuesFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	// 4/100 satisfies every tier; only the plus tier may be stored.
	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return([]schema.Indicator{
		textIndicator(1, schema.IndicatorRank2, "chemistry", 2020, "4/100"),
	}, nil)
	store.On("ReplaceClassification", ctx, mock.MatchedBy(func(c schema.Classification) bool {
		return c.Code == schema.CategoryCode("M21a")
	})).Return(int64(1), nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Classified)
	store.AssertExpectations(t)
}

// TestClassifyVenuesPerCategoryTracks classifies each category identifier
// independently.
func TestClassifyVenuesPerCategoryTracks(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return([]schema.Indicator{
		textIndicator(1, schema.IndicatorRank2, "chemistry", 2020, "10/100"),
		textIndicator(2, schema.IndicatorRank2, "physics", 2020, "50/100"),
	}, nil)
	store.On("ReplaceClassification", ctx, mock.MatchedBy(func(c schema.Classification) bool {
		return c.CategoryIdentifier == "chemistry" && c.Code == schema.CategoryCode("M21")
	})).Return(int64(1), nil)
	store.On("ReplaceClassification", ctx, mock.MatchedBy(func(c schema.Classification) bool {
		return c.CategoryIdentifier == "physics" && c.Code == schema.CategoryCode("M23")
	})).Return(int64(2), nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Classified)
	assert.Len(t, summary.Results, 2)
	store.AssertExpectations(t)
}

// TestClassifyVenuesUnclassified counts venues no handler matched without
// failing the run.
func TestClassifyVenuesUnclassified(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return([]schema.Indicator{
		textIndicator(1, schema.IndicatorRank2, "chemistry", 2020, "NR/100"),
	}, nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.VenuesSeen)
	assert.Zero(t, summary.Classified)
	assert.Equal(t, 1, summary.Unclassified)
	store.AssertExpectations(t)
}

// TestClassifyVenuesMalformedIndicator skips the broken evaluation and still
// matches a lower tier.
func TestClassifyVenuesMalformedIndicator(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	// The two-year rank is garbage; the five-year rank still places the venue.
	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return([]schema.Indicator{
		textIndicator(1, schema.IndicatorRank2, "chemistry", 2020, "garbage"),
		textIndicator(2, schema.IndicatorRank5, "chemistry", 2020, "40/100"),
	}, nil)
	store.On("ReplaceClassification", ctx, mock.MatchedBy(func(c schema.Classification) bool {
		return c.Code == schema.CategoryCode("M23")
	})).Return(int64(1), nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Classified)
	store.AssertExpectations(t)
}

// TestClassifyVenuesUnknownVenue fails the run on an unknown id.
func TestClassifyVenuesUnknownVenue(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}
	store.On("GetVenue", ctx, int64(99)).Return(schema.Venue{}, errors.New("venue not found"))

	engine := newWOSEngine(store)
	_, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{99})
	assert.ErrorContains(t, err, "failed to load venue 99")
	store.AssertExpectations(t)
}

// TestClassifyAllPagesInChunks enumerates venues in fixed-size pages and stops
// on the first short page.
func TestClassifyAllPagesInChunks(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	firstPage := make([]schema.Venue, contract.VenuePageSize)
	for i := range firstPage {
		firstPage[i] = schema.Venue{ID: int64(i + 1)}
	}
	store.On("ListVenuesAfter", ctx, int64(0), contract.VenuePageSize).Return(firstPage, nil)
	store.On("ListVenuesAfter", ctx, int64(contract.VenuePageSize), contract.VenuePageSize).Return([]schema.Venue{
		{ID: int64(contract.VenuePageSize + 1)},
	}, nil)
	store.On("ListVenueIndicators", ctx, mock.Anything, schema.WOSSource, 2024).Return(nil, nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyAll(ctx, 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, contract.VenuePageSize+1, summary.VenuesSeen)
	store.AssertExpectations(t)
}

// TestClassifyAllHonorsCancellation stops between venues when the context is
// cancelled.
func TestClassifyAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &iostore.MockStore{}
	engine := newWOSEngine(store)
	_, err := engine.ClassifyAll(ctx, 2024, 1)
	assert.ErrorIs(t, err, context.Canceled)
	store.AssertNotCalled(t, "ListVenuesAfter", mock.Anything, mock.Anything, mock.Anything)
}

// TestClassifyVenuesStoreWriteFailure is fatal for the run.
func TestClassifyVenuesStoreWriteFailure(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return([]schema.Indicator{
		textIndicator(1, schema.IndicatorRank2, "chemistry", 2020, "10/100"),
	}, nil)
	store.On("ReplaceClassification", ctx, mock.Anything).Return(int64(0), errors.New("disk full"))

	engine := newWOSEngine(store)
	_, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{1})
	assert.ErrorContains(t, err, "failed to persist classification")
	store.AssertExpectations(t)
}

// TestEmptyTrackUnclassified runs venues with no category-scoped indicators
// through the empty track without a match.
func TestEmptyTrackUnclassified(t *testing.T) {
	ctx := context.Background()
	store := &iostore.MockStore{}

	store.On("GetVenue", ctx, int64(1)).Return(schema.Venue{ID: 1}, nil)
	store.On("ListVenueIndicators", ctx, int64(1), schema.WOSSource, 2024).Return(nil, nil)

	engine := newWOSEngine(store)
	summary, err := engine.ClassifyVenues(ctx, 2024, 1, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unclassified)
	store.AssertExpectations(t)
}
