// Package iostore is the SQL persistence layer for venues, indicators and
// classifications, with interchangeable SQLite, MySQL and PostgreSQL backends.
package iostore

import (
	"sync"

	"github.com/veljkom/venuerank/internal/contract"
)

// StoreManagerImpl manages the store instance behind the StoreManager contract.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.Store
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetStore returns the configured store.
func (mgr *StoreManagerImpl) GetStore() contract.Store {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}
