// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/bio-mbti/models"
)

// SQLStore keeps records in the participation table (see db.CreateSchema).
// Queries use $N placeholders, understood by both lib/pq and modernc.org/sqlite.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Insert(ctx context.Context, rec *models.ParticipationRecord) error {
	rec.ID = NewID()
	rec.CreatedAt = rec.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO participation (id, type_code, fingerprint, created_at)
		VALUES ($1, $2, $3, $4)
	`, rec.ID, rec.TypeCode, rec.Fingerprint, rec.CreatedAt)
	if err != nil {
		rec.ID = ""
		return fmt.Errorf("failed to insert participation: %w", err)
	}

	return nil
}

func (s *SQLStore) LatestMatch(ctx context.Context, fingerprint, typeCode string) (*models.ParticipationRecord, error) {
	var rec models.ParticipationRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, type_code, fingerprint, created_at
		FROM participation
		WHERE fingerprint = $1 AND type_code = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, fingerprint, typeCode).Scan(&rec.ID, &rec.TypeCode, &rec.Fingerprint, &rec.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest participation: %w", err)
	}

	return &rec, nil
}

func (s *SQLStore) ListMatches(ctx context.Context, fingerprint, typeCode string) ([]models.ParticipationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type_code, fingerprint, created_at
		FROM participation
		WHERE fingerprint = $1 AND type_code = $2
	`, fingerprint, typeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query participations: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *SQLStore) ForEach(ctx context.Context, fn func(models.ParticipationRecord) error) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type_code, fingerprint, created_at
		FROM participation
	`)
	if err != nil {
		return fmt.Errorf("failed to scan participations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.ParticipationRecord
		if err := rows.Scan(&rec.ID, &rec.TypeCode, &rec.Fingerprint, &rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan participation: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted := 0
	for _, id := range ids {
		res, err := tx.ExecContext(ctx, `DELETE FROM participation WHERE id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete participation %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		deleted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit deletes: %w", err)
	}

	return deleted, nil
}

func (s *SQLStore) DeleteAll(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM participation`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete participations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return int(n), nil
}

func scanRecords(rows *sql.Rows) ([]models.ParticipationRecord, error) {
	records := []models.ParticipationRecord{}
	for rows.Next() {
		var rec models.ParticipationRecord
		if err := rows.Scan(&rec.ID, &rec.TypeCode, &rec.Fingerprint, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
