// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/bio-mbti/db"
	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/store"
)

// seedDB creates a SQLite file with the given records and returns its path
func seedDB(t *testing.T, offsets ...time.Duration) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "admin.db")
	s, closeStore, err := store.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	for _, off := range offsets {
		rec := models.ParticipationRecord{TypeCode: "ICLR", Fingerprint: "fp", CreatedAt: base.Add(off)}
		if err := s.Insert(context.Background(), &rec); err != nil {
			t.Fatalf("Failed to seed record: %v", err)
		}
	}
	return path
}

func countRecords(t *testing.T, path string) int {
	t.Helper()

	s, closeStore, err := store.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	n := 0
	s.ForEach(context.Background(), func(models.ParticipationRecord) error {
		n++
		return nil
	})
	return n
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCleanupDuplicatesCommand(t *testing.T) {
	path := seedDB(t, 0, 2*time.Second, 5*time.Second, time.Minute)

	out, err := run(t, "cleanup-duplicates", "--db-type", "sqlite", "--db-url", path)
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}

	if !strings.Contains(out, "duplicates found: 2") {
		t.Errorf("Expected 2 duplicates in output, got:\n%s", out)
	}
	if !strings.Contains(out, "remaining: 2") {
		t.Errorf("Expected 2 remaining in output, got:\n%s", out)
	}
	if n := countRecords(t, path); n != 2 {
		t.Errorf("Expected 2 records left, got %d", n)
	}
}

func TestCleanupDuplicatesDryRunCommand(t *testing.T) {
	path := seedDB(t, 0, time.Second)

	out, err := run(t, "cleanup-duplicates", "--dry-run", "--db-type", "sqlite", "--db-url", path)
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}

	if !strings.Contains(out, "would delete") {
		t.Errorf("Expected dry-run listing, got:\n%s", out)
	}
	if n := countRecords(t, path); n != 2 {
		t.Errorf("Dry run should keep all records, got %d", n)
	}
}

func TestClearResultsCommand(t *testing.T) {
	path := seedDB(t, 0, time.Hour, 2*time.Hour)

	// Without confirmation nothing happens
	if _, err := run(t, "clear-results", "--db-type", "sqlite", "--db-url", path); err == nil {
		t.Error("Expected error without --yes")
	}
	if n := countRecords(t, path); n != 3 {
		t.Errorf("Expected 3 records before confirmation, got %d", n)
	}

	out, err := run(t, "clear-results", "--yes", "--db-type", "sqlite", "--db-url", path)
	if err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "deleted: 3") {
		t.Errorf("Expected 'deleted: 3', got:\n%s", out)
	}
	if n := countRecords(t, path); n != 0 {
		t.Errorf("Expected empty store, got %d", n)
	}
}

func TestCommandsRequireDatabase(t *testing.T) {
	for _, args := range [][]string{
		{"cleanup-duplicates", "--db-type", ""},
		{"clear-results", "--yes", "--db-type", "memory"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}
