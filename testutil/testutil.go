// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/bio-mbti/cliparse"
	"github.com/danielhkuo/bio-mbti/db"
	"github.com/danielhkuo/bio-mbti/fingerprint"
	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/store"
)

// TestSalt is the fingerprint salt used by GetTestConfig
const TestSalt = "test-fingerprint-salt"

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a SQLStore over SetupTestDB
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	return store.NewSQLStore(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration: mock classifier
// without delay, in-memory storage
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3001,
		DatabaseType:    cliparse.DatabaseMemory,
		FingerprintSalt: TestSalt,
		UseMock:         true,
		ClassifyTimeout: 5 * time.Second,
		MockDelay:       0,
		LogLevel:        "error",
	}
}

// InsertTestRecord stores a participation record for addr and returns its ID
func InsertTestRecord(t *testing.T, s store.Store, typeCode, addr string, at time.Time) string {
	t.Helper()

	rec := models.ParticipationRecord{
		TypeCode:    typeCode,
		Fingerprint: fingerprint.Hash(addr, TestSalt),
		CreatedAt:   at,
	}
	if err := s.Insert(context.Background(), &rec); err != nil {
		t.Fatalf("Failed to insert test record: %v", err)
	}
	return rec.ID
}

// CountRecords returns the number of stored records
func CountRecords(t *testing.T, s store.Store) int {
	t.Helper()

	n := 0
	err := s.ForEach(context.Background(), func(models.ParticipationRecord) error {
		n++
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	return n
}

// Answers builds an answer set from answer values, one question each
func Answers(values ...string) []models.Answer {
	answers := make([]models.Answer, len(values))
	for i, v := range values {
		answers[i] = models.Answer{
			Question:    fmt.Sprintf("Question %d", i+1),
			AnswerValue: v,
		}
	}
	return answers
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
