package schema

import "time"

// StoreStatus represents the status of the venuerank store.
type StoreStatus struct {
	Backend            string           `json:"backend"`
	Connected          bool             `json:"connected"`
	Venues             int              `json:"venues"`
	Indicators         int              `json:"indicators"`
	Classifications    int              `json:"classifications"`
	LastClassifiedTime time.Time        `json:"last_classified_time"`
	TableSizes         map[string]int64 `json:"table_sizes"`
}
