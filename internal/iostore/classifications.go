package iostore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/veljkom/venuerank/internal/contract"
	"github.com/veljkom/venuerank/schema"
)

// ReplaceClassification deletes any existing row for the exact
// (venue, identifier, year, commission) tuple and inserts the new one,
// in a single transaction. Re-running a classification is therefore
// idempotent: the store never accumulates duplicate rows for a tuple.
func (s *SQLStore) ReplaceClassification(ctx context.Context, c schema.Classification) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	reasoning, err := json.Marshal(c.Reasoning)
	if err != nil {
		return 0, fmt.Errorf("failed to encode reasoning for venue %d: %w", c.VenueID, err)
	}

	quotedTableName := quoteTableName(classificationsTable, s.backend)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin classification transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE venue_id = %s AND category_identifier = %s AND year = %s AND commission_id = %s`,
		quotedTableName,
		placeholder(s.backend, 1), placeholder(s.backend, 2),
		placeholder(s.backend, 3), placeholder(s.backend, 4))
	if _, err := tx.ExecContext(ctx, deleteQuery, c.VenueID, c.CategoryIdentifier, c.Year, c.CommissionID); err != nil {
		return 0, fmt.Errorf("failed to delete prior classification for venue %d: %w", c.VenueID, err)
	}

	insertArgs := []any{
		c.VenueID, c.CategoryIdentifier, c.Year, c.CommissionID,
		string(c.Code), string(reasoning), formatTime(c.CreatedAt, s.backend),
	}

	var id int64
	if s.backend == schema.PostgreSQLBackend {
		insertQuery := fmt.Sprintf(`INSERT INTO %s
			(venue_id, category_identifier, year, commission_id, category_code, reasoning, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`, quotedTableName)
		row := tx.QueryRowContext(ctx, insertQuery, insertArgs...)
		if err := row.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert classification for venue %d: %w", c.VenueID, err)
		}
	} else {
		insertQuery := fmt.Sprintf(`INSERT INTO %s
			(venue_id, category_identifier, year, commission_id, category_code, reasoning, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, quotedTableName)
		result, err := tx.ExecContext(ctx, insertQuery, insertArgs...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert classification for venue %d: %w", c.VenueID, err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get inserted classification id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit classification for venue %d: %w", c.VenueID, err)
	}
	return id, nil
}

// ListClassifications returns classifications matching the filter, in
// ascending (venue, identifier) order.
func (s *SQLStore) ListClassifications(ctx context.Context, f contract.ClassificationFilter) ([]schema.Classification, error) {
	if s.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(classificationsTable, s.backend)

	var conds []string
	var args []any
	addCond := func(column string, value any) {
		conds = append(conds, fmt.Sprintf("%s = %s", column, placeholder(s.backend, len(args)+1)))
		args = append(args, value)
	}
	if f.VenueID != nil {
		addCond("venue_id", *f.VenueID)
	}
	if f.Year != nil {
		addCond("year", *f.Year)
	}
	if f.CommissionID != nil {
		addCond("commission_id", *f.CommissionID)
	}
	if f.Code != nil {
		addCond("category_code", string(*f.Code))
	}

	query := fmt.Sprintf(`SELECT id, venue_id, category_identifier, year, commission_id, category_code, reasoning, created_at FROM %s`, quotedTableName)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY venue_id ASC, category_identifier ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var classifications []schema.Classification
	for rows.Next() {
		var c schema.Classification
		var codeStr, reasoningStr string
		var rawCreated any
		if err := rows.Scan(&c.ID, &c.VenueID, &c.CategoryIdentifier, &c.Year, &c.CommissionID, &codeStr, &reasoningStr, &rawCreated); err != nil {
			return nil, fmt.Errorf("failed to scan classification row: %w", err)
		}
		c.Code = schema.CategoryCode(codeStr)
		if err := json.Unmarshal([]byte(reasoningStr), &c.Reasoning); err != nil {
			return nil, fmt.Errorf("failed to decode reasoning for classification %d: %w", c.ID, err)
		}
		created, err := scanTime(rawCreated, s.backend)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for classification %d: %w", c.ID, err)
		}
		c.CreatedAt = created
		classifications = append(classifications, c)
	}
	return classifications, rows.Err()
}
