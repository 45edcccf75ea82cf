// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/danielhkuo/bio-mbti/models"
)

// Store persists participation records.
// Records are inserted and read, never updated.
type Store interface {
	// Insert assigns an ID to rec and writes it. CreatedAt must be set by the caller.
	Insert(ctx context.Context, rec *models.ParticipationRecord) error

	// LatestMatch returns the most recent record with the given fingerprint
	// and type code, or nil if there is none.
	LatestMatch(ctx context.Context, fingerprint, typeCode string) (*models.ParticipationRecord, error)

	// ListMatches returns every record with the given fingerprint and type
	// code, in no particular order.
	ListMatches(ctx context.Context, fingerprint, typeCode string) ([]models.ParticipationRecord, error)

	// ForEach calls fn for every stored record. Iteration stops at the first error.
	ForEach(ctx context.Context, fn func(models.ParticipationRecord) error) error

	// Delete removes the records with the given IDs and returns how many were removed.
	Delete(ctx context.Context, ids []string) (int, error)

	// DeleteAll removes every record and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}

// NewID generates a record identifier
func NewID() string {
	return uuid.NewString()
}
