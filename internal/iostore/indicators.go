package iostore

import (
	"context"
	"fmt"

	"github.com/veljkom/venuerank/schema"
)

const indicatorColumns = "id, venue_id, document_id, code, source, category_identifier, valid_from, kind, numeric_value, bool_value, text_value, harvested_at"

// ListVenueIndicators returns all indicators of one source for a venue whose
// validity year is <= asOfYear, in ascending id order.
func (s *SQLStore) ListVenueIndicators(ctx context.Context, venueID int64, source schema.Source, asOfYear int) ([]schema.Indicator, error) {
	if s.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(indicatorsTable, s.backend)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE venue_id = %s AND source = %s AND valid_from <= %s ORDER BY id ASC`,
		indicatorColumns, quotedTableName,
		placeholder(s.backend, 1), placeholder(s.backend, 2), placeholder(s.backend, 3))

	rows, err := s.db.QueryContext(ctx, query, venueID, string(source), asOfYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list indicators for venue %d: %w", venueID, err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanIndicators(rows)
}

// ListDocumentIndicators returns all indicators scoped to a document, in
// ascending id order.
func (s *SQLStore) ListDocumentIndicators(ctx context.Context, documentID int64) ([]schema.Indicator, error) {
	if s.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(indicatorsTable, s.backend)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE document_id = %s ORDER BY id ASC`,
		indicatorColumns, quotedTableName, placeholder(s.backend, 1))

	rows, err := s.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list indicators for document %d: %w", documentID, err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanIndicators(rows)
}

// scanIndicators reads indicator rows into schema values.
func (s *SQLStore) scanIndicators(rows rowScanner) ([]schema.Indicator, error) {
	var indicators []schema.Indicator
	for rows.Next() {
		var ind schema.Indicator
		var sourceStr, kindStr string
		var textValue *string
		var rawHarvested any
		if err := rows.Scan(
			&ind.ID, &ind.VenueID, &ind.DocumentID, &ind.Code, &sourceStr,
			&ind.CategoryIdentifier, &ind.ValidFrom, &kindStr,
			&ind.NumericValue, &ind.BoolValue, &textValue, &rawHarvested,
		); err != nil {
			return nil, fmt.Errorf("failed to scan indicator row: %w", err)
		}
		ind.Source = schema.Source(sourceStr)
		ind.Kind = schema.ValueKind(kindStr)
		if textValue != nil {
			ind.TextValue = *textValue
		}
		harvested, err := scanTime(rawHarvested, s.backend)
		if err != nil {
			return nil, fmt.Errorf("failed to parse harvested_at for indicator %d: %w", ind.ID, err)
		}
		ind.HarvestedAt = harvested
		indicators = append(indicators, ind)
	}
	return indicators, rows.Err()
}

// rowScanner is the subset of sql.Rows used by scanIndicators.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// PutIndicator inserts an indicator and returns its id.
func (s *SQLStore) PutIndicator(ctx context.Context, ind schema.Indicator) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(indicatorsTable, s.backend)
	args := []any{
		ind.VenueID, ind.DocumentID, ind.Code, string(ind.Source),
		ind.CategoryIdentifier, ind.ValidFrom, string(ind.Kind),
		ind.NumericValue, ind.BoolValue, ind.TextValue,
		formatTime(ind.HarvestedAt, s.backend),
	}

	if s.backend == schema.PostgreSQLBackend {
		query := fmt.Sprintf(`INSERT INTO %s
			(venue_id, document_id, code, source, category_identifier, valid_from, kind, numeric_value, bool_value, text_value, harvested_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`, quotedTableName)
		var id int64
		row := s.db.QueryRowContext(ctx, query, args...)
		if err := row.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert indicator %q: %w", ind.Code, err)
		}
		return id, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s
		(venue_id, document_id, code, source, category_identifier, valid_from, kind, numeric_value, bool_value, text_value, harvested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, quotedTableName)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert indicator %q: %w", ind.Code, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted indicator id: %w", err)
	}
	return id, nil
}
