package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/model"
)

// DefaultHistoryLimit is the number of queries RecentQueries returns when asked for zero.
const DefaultHistoryLimit = 10

// SaveQuery records a natural-language query and the filters it produced.
// It sets record.ID, and record.CreatedAt when zero.
func (s *SQLiteStorage) SaveQuery(ctx context.Context, record *model.QueryRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateQueryRecord(record); err != nil {
		return err
	}

	var filters sql.NullString
	if record.Filters != nil {
		data, err := json.Marshal(record.Filters)
		if err != nil {
			return fmt.Errorf("failed to marshal filters: %w", err)
		}
		filters = sql.NullString{String: string(data), Valid: true}
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO ai_queries (user_query, parsed_filters, result_count, created_at)
		VALUES (?, ?, ?, ?)`,
		record.Query, filters, record.ResultCount, record.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save query: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get query id: %w", err)
	}
	record.ID = id
	return nil
}

// RecentQueries returns up to limit queries, newest first.
func (s *SQLiteStorage) RecentQueries(ctx context.Context, limit int) ([]model.QueryRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, limit)
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_query, parsed_filters, result_count, created_at
		FROM ai_queries
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]model.QueryRecord, 0, limit)
	for rows.Next() {
		record, scanErr := scanQueryRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return records, nil
}

// GetQuery returns one history entry by id.
func (s *SQLiteStorage) GetQuery(ctx context.Context, id int64) (*model.QueryRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_query, parsed_filters, result_count, created_at
		FROM ai_queries
		WHERE id = ?`, id)

	record, err := scanQueryRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ClearQueries deletes the whole history and reports how many entries were removed.
func (s *SQLiteStorage) ClearQueries(ctx context.Context) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM ai_queries`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQueryRecord(row scanner) (model.QueryRecord, error) {
	var (
		record  model.QueryRecord
		filters sql.NullString
	)
	if err := row.Scan(&record.ID, &record.Query, &filters, &record.ResultCount, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.QueryRecord{}, err
		}
		return model.QueryRecord{}, fmt.Errorf("failed to scan query: %w", err)
	}

	if filters.Valid && filters.String != "" {
		var f model.Filters
		if err := json.Unmarshal([]byte(filters.String), &f); err != nil {
			return model.QueryRecord{}, fmt.Errorf("%w: query %d has unreadable filters: %w",
				common.ErrDatabaseCorrupted, record.ID, err)
		}
		record.Filters = &f
	}
	return record, nil
}
