package iostore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/veljkom/venuerank/schema"
)

// GetStatus returns status information about the store.
func (s *SQLStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}

	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	counts := []struct {
		table string
		dest  *int
	}{
		{venuesTable, &status.Venues},
		{indicatorsTable, &status.Indicators},
		{classificationsTable, &status.Classifications},
	}

	status.TableSizes = make(map[string]int64, len(counts))
	for _, c := range counts {
		quotedTableName := quoteTableName(c.table, s.backend)
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
		row := s.db.QueryRowContext(ctx, countQuery)
		if err := row.Scan(c.dest); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", c.table, err)
		}
		status.TableSizes[c.table] = int64(*c.dest)
	}

	if status.Classifications > 0 {
		quotedTableName := quoteTableName(classificationsTable, s.backend)
		lastQuery := fmt.Sprintf("SELECT MAX(created_at) FROM %s", quotedTableName)
		var rawLast any
		row := s.db.QueryRowContext(ctx, lastQuery)
		if err := row.Scan(&rawLast); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return status, fmt.Errorf("failed to get last classification time: %w", err)
		}
		if rawLast != nil {
			last, err := scanTime(rawLast, s.backend)
			if err != nil {
				return status, fmt.Errorf("failed to parse last classification time: %w", err)
			}
			status.LastClassifiedTime = last
		}
	}

	return status, nil
}

// PrintStoreStatus prints store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Venues: %d\n", status.Venues)
	fmt.Printf("Indicators: %d\n", status.Indicators)
	fmt.Printf("Classifications: %d\n", status.Classifications)
	if status.Classifications > 0 {
		fmt.Printf("Last Classified: %s\n", status.LastClassifiedTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
