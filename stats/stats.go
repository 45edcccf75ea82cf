// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/registry"
	"github.com/danielhkuo/bio-mbti/store"
)

// Result is an aggregate plus whether the store could be read
type Result struct {
	models.Stats
	Available bool
}

// Aggregator counts records per type code
type Aggregator struct {
	store    store.Store
	registry *registry.Registry
}

// NewAggregator creates an Aggregator. s may be nil.
func NewAggregator(s store.Store, reg *registry.Registry) *Aggregator {
	return &Aggregator{store: s, registry: reg}
}

// Compute scans every record. It never fails; see Result.Available.
func (a *Aggregator) Compute(ctx context.Context) Result {
	if a.store == nil {
		return a.empty()
	}

	counts := a.registry.ZeroCounts()
	total := 0
	err := a.store.ForEach(ctx, func(rec models.ParticipationRecord) error {
		total++
		if _, ok := counts[rec.TypeCode]; ok {
			counts[rec.TypeCode]++
		}
		return nil
	})
	if err != nil {
		slog.Error("stats scan failed", "error", err)
		return a.empty()
	}

	return Result{
		Stats: models.Stats{
			TotalCount: total,
			TypeCounts: counts,
		},
		Available: true,
	}
}

func (a *Aggregator) empty() Result {
	return Result{
		Stats: models.Stats{
			TotalCount: 0,
			TypeCounts: a.registry.ZeroCounts(),
		},
	}
}
