// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/store"
)

const (
	// DefaultWindow groups records saved within 10s of the kept record
	DefaultWindow = 10 * time.Second

	// BatchSize caps the number of IDs per Delete call
	BatchSize = 500
)

// Options controls CleanupDuplicates
type Options struct {
	Window time.Duration // zero means DefaultWindow
	DryRun bool
}

// CleanupReport summarises a cleanup run
type CleanupReport struct {
	Total        int      // records scanned
	Duplicates   int      // records identified as duplicates
	Deleted      int      // records actually removed (0 on dry run)
	Remaining    int      // Total - Deleted
	DuplicateIDs []string // in group order
}

type groupKey struct {
	fingerprint string
	typeCode    string
}

// CleanupDuplicates removes repeat records of the same fingerprint and type code
func CleanupDuplicates(ctx context.Context, s store.Store, opts Options) (CleanupReport, error) {
	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}

	groups := make(map[groupKey][]models.ParticipationRecord)
	var keys []groupKey
	total := 0

	err := s.ForEach(ctx, func(rec models.ParticipationRecord) error {
		total++
		key := groupKey{fingerprint: rec.Fingerprint, typeCode: rec.TypeCode}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], rec)
		return nil
	})
	if err != nil {
		return CleanupReport{}, fmt.Errorf("failed to scan records: %w", err)
	}

	report := CleanupReport{Total: total}
	for _, key := range keys {
		report.DuplicateIDs = append(report.DuplicateIDs, findDuplicates(groups[key], window)...)
	}
	report.Duplicates = len(report.DuplicateIDs)

	if opts.DryRun || report.Duplicates == 0 {
		report.Remaining = total
		return report, nil
	}

	for start := 0; start < len(report.DuplicateIDs); start += BatchSize {
		end := min(start+BatchSize, len(report.DuplicateIDs))

		n, err := s.Delete(ctx, report.DuplicateIDs[start:end])
		report.Deleted += n
		if err != nil {
			report.Remaining = total - report.Deleted
			return report, fmt.Errorf("failed to delete batch at %d: %w", start, err)
		}
		slog.Info("deleted duplicate batch", "from", start, "count", n)
	}

	report.Remaining = total - report.Deleted
	return report, nil
}

// findDuplicates returns the IDs to drop from one group
func findDuplicates(group []models.ParticipationRecord, window time.Duration) []string {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].CreatedAt.Before(group[j].CreatedAt)
	})

	var ids []string
	var kept time.Time
	for i, rec := range group {
		if i > 0 && rec.CreatedAt.Sub(kept) <= window {
			ids = append(ids, rec.ID)
			continue
		}
		kept = rec.CreatedAt
	}
	return ids
}

// ClearAll deletes every record and returns how many were removed
func ClearAll(ctx context.Context, s store.Store) (int, error) {
	n, err := s.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear records: %w", err)
	}
	slog.Info("cleared all records", "count", n)
	return n, nil
}
