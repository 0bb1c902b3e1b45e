package iostore

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetStore implements the StoreManager interface.
func (m *MockStoreManager) GetStore() contract.Store {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.Store)
	return store
}

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.Store = &MockStore{} // Compile-time check

// GetVenue implements the Store interface.
func (m *MockStore) GetVenue(ctx context.Context, id int64) (schema.Venue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Venue), args.Error(1)
}

// ListVenuesAfter implements the Store interface.
func (m *MockStore) ListVenuesAfter(ctx context.Context, afterID int64, limit int) ([]schema.Venue, error) {
	args := m.Called(ctx, afterID, limit)
	venues, _ := args.Get(0).([]schema.Venue)
	return venues, args.Error(1)
}

// PutVenue implements the Store interface.
func (m *MockStore) PutVenue(ctx context.Context, v schema.Venue) (int64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(int64), args.Error(1)
}

// ListVenueIndicators implements the Store interface.
func (m *MockStore) ListVenueIndicators(ctx context.Context, venueID int64, source schema.Source, asOfYear int) ([]schema.Indicator, error) {
	args := m.Called(ctx, venueID, source, asOfYear)
	indicators, _ := args.Get(0).([]schema.Indicator)
	return indicators, args.Error(1)
}

// ListDocumentIndicators implements the Store interface.
func (m *MockStore) ListDocumentIndicators(ctx context.Context, documentID int64) ([]schema.Indicator, error) {
	args := m.Called(ctx, documentID)
	indicators, _ := args.Get(0).([]schema.Indicator)
	return indicators, args.Error(1)
}

// PutIndicator implements the Store interface.
func (m *MockStore) PutIndicator(ctx context.Context, ind schema.Indicator) (int64, error) {
	args := m.Called(ctx, ind)
	return args.Get(0).(int64), args.Error(1)
}

// ReplaceClassification implements the Store interface.
func (m *MockStore) ReplaceClassification(ctx context.Context, c schema.Classification) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

// ListClassifications implements the Store interface.
func (m *MockStore) ListClassifications(ctx context.Context, f contract.ClassificationFilter) ([]schema.Classification, error) {
	args := m.Called(ctx, f)
	classifications, _ := args.Get(0).([]schema.Classification)
	return classifications, args.Error(1)
}

// GetStatus implements the Store interface.
func (m *MockStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the Store interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
