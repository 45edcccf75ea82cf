// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/bio-mbti/models"
)

// MemoryStore keeps records in process memory. Used for local development
// (DATABASE_TYPE=memory) and tests; contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.ParticipationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Insert(ctx context.Context, rec *models.ParticipationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec.ID = NewID()
	rec.CreatedAt = rec.CreatedAt.UTC()

	m.mu.Lock()
	m.records = append(m.records, *rec)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) LatestMatch(ctx context.Context, fingerprint, typeCode string) (*models.ParticipationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *models.ParticipationRecord
	for i := range m.records {
		rec := &m.records[i]
		if rec.Fingerprint != fingerprint || rec.TypeCode != typeCode {
			continue
		}
		if latest == nil || rec.CreatedAt.After(latest.CreatedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}

	out := *latest
	return &out, nil
}

func (m *MemoryStore) ListMatches(ctx context.Context, fingerprint, typeCode string) ([]models.ParticipationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.ParticipationRecord{}
	for _, rec := range m.records {
		if rec.Fingerprint == fingerprint && rec.TypeCode == typeCode {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *MemoryStore) ForEach(ctx context.Context, fn func(models.ParticipationRecord) error) error {
	m.mu.RLock()
	snapshot := append([]models.ParticipationRecord(nil), m.records...)
	m.mu.RUnlock()

	for _, rec := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, ids []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[:0]
	deleted := 0
	for _, rec := range m.records {
		if remove[rec.ID] {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	m.records = kept
	return deleted, nil
}

func (m *MemoryStore) DeleteAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.records)
	m.records = nil
	return n, nil
}

// Len returns the number of stored records
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
