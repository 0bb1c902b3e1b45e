package iostore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/veljkom/venuerank/schema"
)

// ErrVenueNotFound is returned when a venue id has no row in the store.
var ErrVenueNotFound = errors.New("venue not found")

// GetVenue returns a single venue by id.
func (s *SQLStore) GetVenue(ctx context.Context, id int64) (schema.Venue, error) {
	if s.db == nil {
		return schema.Venue{}, ErrVenueNotFound
	}

	quotedTableName := quoteTableName(venuesTable, s.backend)
	query := fmt.Sprintf(`SELECT id, name, issn, created_at FROM %s WHERE id = %s`,
		quotedTableName, placeholder(s.backend, 1))

	var v schema.Venue
	var rawCreated any
	row := s.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&v.ID, &v.Name, &v.ISSN, &rawCreated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schema.Venue{}, fmt.Errorf("%w: id %d", ErrVenueNotFound, id)
		}
		return schema.Venue{}, fmt.Errorf("failed to get venue %d: %w", id, err)
	}

	created, err := scanTime(rawCreated, s.backend)
	if err != nil {
		return schema.Venue{}, fmt.Errorf("failed to parse created_at for venue %d: %w", id, err)
	}
	v.CreatedAt = created
	return v, nil
}

// ListVenuesAfter returns up to limit venues with id greater than afterID,
// in ascending id order.
func (s *SQLStore) ListVenuesAfter(ctx context.Context, afterID int64, limit int) ([]schema.Venue, error) {
	if s.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(venuesTable, s.backend)
	query := fmt.Sprintf(`SELECT id, name, issn, created_at FROM %s WHERE id > %s ORDER BY id ASC LIMIT %s`,
		quotedTableName, placeholder(s.backend, 1), placeholder(s.backend, 2))

	rows, err := s.db.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues after %d: %w", afterID, err)
	}
	defer func() { _ = rows.Close() }()

	var venues []schema.Venue
	for rows.Next() {
		var v schema.Venue
		var rawCreated any
		if err := rows.Scan(&v.ID, &v.Name, &v.ISSN, &rawCreated); err != nil {
			return nil, fmt.Errorf("failed to scan venue row: %w", err)
		}
		created, err := scanTime(rawCreated, s.backend)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for venue %d: %w", v.ID, err)
		}
		v.CreatedAt = created
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// PutVenue inserts a venue and returns its id.
func (s *SQLStore) PutVenue(ctx context.Context, v schema.Venue) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(venuesTable, s.backend)

	if s.backend == schema.PostgreSQLBackend {
		query := fmt.Sprintf(`INSERT INTO %s (name, issn, created_at) VALUES ($1, $2, $3) RETURNING id`, quotedTableName)
		var id int64
		row := s.db.QueryRowContext(ctx, query, v.Name, v.ISSN, formatTime(v.CreatedAt, s.backend))
		if err := row.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert venue %q: %w", v.Name, err)
		}
		return id, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (name, issn, created_at) VALUES (?, ?, ?)`, quotedTableName)
	result, err := s.db.ExecContext(ctx, query, v.Name, v.ISSN, formatTime(v.CreatedAt, s.backend))
	if err != nil {
		return 0, fmt.Errorf("failed to insert venue %q: %w", v.Name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted venue id: %w", err)
	}
	return id, nil
}
