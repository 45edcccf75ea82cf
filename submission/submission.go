// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/bio-mbti/fingerprint"
	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/registry"
	"github.com/danielhkuo/bio-mbti/store"
)

// DefaultWindow is how long a repeat submission of the same fingerprint and
// type code is treated as a duplicate
const DefaultWindow = 30 * time.Second

// Outcome reports what Submit did
type Outcome struct {
	ID      string // set when a record was written
	Skipped bool   // true when the submission was a duplicate
}

// Deduplicator decides whether a submission is stored or skipped.
// Two near-simultaneous identical submissions can both be stored; there is
// no lock between the lookup and the insert.
type Deduplicator struct {
	store    store.Store
	registry *registry.Registry
	salt     string
	window   time.Duration
	now      func() time.Time
}

// Option customises a Deduplicator
type Option func(*Deduplicator)

// WithWindow sets the suppression window. Default: 30s.
func WithWindow(d time.Duration) Option { return func(dd *Deduplicator) { dd.window = d } }

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option { return func(dd *Deduplicator) { dd.now = now } }

// NewDeduplicator creates a Deduplicator. s may be nil when storage is not
// configured; Submit then fails with models.ErrStorageUnavailable.
func NewDeduplicator(s store.Store, reg *registry.Registry, salt string, opts ...Option) *Deduplicator {
	d := &Deduplicator{
		store:    s,
		registry: reg,
		salt:     salt,
		window:   DefaultWindow,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NormalizeTypeCode trims and upper-cases code and checks it against the
// registry. Returns a *models.ValidationError when it is not acceptable.
func NormalizeTypeCode(code string, reg *registry.Registry) (string, error) {
	if code == "" {
		return "", models.NewValidationError("typeCode is required.")
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !registry.IsCodeFormat(normalized) {
		return "", models.NewValidationError("Invalid typeCode format. Must be 4 uppercase letters.")
	}
	if !reg.IsValid(normalized) {
		return "", models.NewValidationError("Invalid typeCode. Must be a valid Bio-MBTI type code.")
	}
	return normalized, nil
}

// Submit validates typeCode, fingerprints clientAddr and writes a new record
// unless an identical one was stored within the window.
func (d *Deduplicator) Submit(ctx context.Context, typeCode, clientAddr string) (Outcome, error) {
	code, err := NormalizeTypeCode(typeCode, d.registry)
	if err != nil {
		return Outcome{}, err
	}

	if d.store == nil {
		return Outcome{}, fmt.Errorf("%w: store not configured", models.ErrStorageUnavailable)
	}

	fp := fingerprint.Hash(clientAddr, d.salt)
	now := d.now()

	if d.isDuplicate(ctx, fp, code, now) {
		return Outcome{Skipped: true}, nil
	}

	rec := models.ParticipationRecord{
		TypeCode:    code,
		Fingerprint: fp,
		CreatedAt:   now,
	}
	if err := d.store.Insert(ctx, &rec); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	slog.Debug("participation stored", "id", rec.ID, "type_code", code)
	return Outcome{ID: rec.ID}, nil
}

// isDuplicate looks for the newest record of the pair. If the indexed lookup
// fails it scans every record of the pair instead; if that fails too the
// submission is treated as new.
func (d *Deduplicator) isDuplicate(ctx context.Context, fp, code string, now time.Time) bool {
	latest, err := d.store.LatestMatch(ctx, fp, code)
	if err == nil {
		return latest != nil && d.withinWindow(latest.CreatedAt, now, fp, code)
	}

	slog.Warn("latest-match query failed, scanning instead", "error", err)

	records, err := d.store.ListMatches(ctx, fp, code)
	if err != nil {
		slog.Warn("fallback scan failed, storing submission", "error", err)
		return false
	}

	var newest time.Time
	for _, rec := range records {
		if rec.CreatedAt.After(newest) {
			newest = rec.CreatedAt
		}
	}
	return len(records) > 0 && d.withinWindow(newest, now, fp, code)
}

func (d *Deduplicator) withinWindow(last, now time.Time, fp, code string) bool {
	elapsed := now.Sub(last)
	if elapsed >= d.window {
		return false
	}

	slog.Info("duplicate submission skipped",
		"fingerprint", fp,
		"type_code", code,
		"seconds_ago", int(elapsed.Seconds()),
	)
	return true
}
