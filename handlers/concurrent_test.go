// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/bio-mbti/classifier"
	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/registry"
	"github.com/danielhkuo/bio-mbti/stats"
	"github.com/danielhkuo/bio-mbti/store"
	"github.com/danielhkuo/bio-mbti/testutil"
)

// TestConcurrentSubmissions verifies that simultaneous submissions from
// different clients are all stored with distinct fingerprints
func TestConcurrentSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newSubmissionHandler(store.NewSQLStore(db))
	codes := registry.Default().Codes()

	numClients := 16
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/submit-result",
				models.SubmitResultRequest{TypeCode: codes[idx%len(codes)]},
				map[string]string{"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", idx+1)})
			w := httptest.NewRecorder()

			handler.SubmitResult(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numClients {
		t.Errorf("Expected %d successful submissions, got %d", numClients, successCount.Load())
	}

	var recordCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM participation").Scan(&recordCount); err != nil {
		t.Fatalf("Failed to count records: %v", err)
	}
	if recordCount != numClients {
		t.Errorf("Expected %d records in database, got %d", numClients, recordCount)
	}

	var uniqueClients int
	if err := db.QueryRow("SELECT COUNT(DISTINCT fingerprint) FROM participation").Scan(&uniqueClients); err != nil {
		t.Fatalf("Failed to count fingerprints: %v", err)
	}
	if uniqueClients != numClients {
		t.Errorf("Expected %d unique fingerprints, got %d", numClients, uniqueClients)
	}
}

// TestConcurrentDuplicateSubmissions sends the same submission from one
// client in parallel. The lookup and insert are not atomic, so more than one
// record may be stored, but every request must succeed.
func TestConcurrentDuplicateSubmissions(t *testing.T) {
	s := testutil.SetupTestStore(t)
	handler := newSubmissionHandler(s)

	numRequests := 8
	var okCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/submit-result",
				models.SubmitResultRequest{TypeCode: "ICGH"},
				map[string]string{"X-Forwarded-For": "198.51.100.77"})
			w := httptest.NewRecorder()

			handler.SubmitResult(w, req)

			if w.Code == http.StatusOK {
				okCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(okCount.Load()) != numRequests {
		t.Errorf("Expected %d OK responses, got %d", numRequests, okCount.Load())
	}
	if n := testutil.CountRecords(t, s); n < 1 || n > numRequests {
		t.Errorf("Expected between 1 and %d records, got %d", numRequests, n)
	}
}

// TestConcurrentClassifyAndStats mixes classification and stats reads
func TestConcurrentClassifyAndStats(t *testing.T) {
	s := testutil.SetupTestStore(t)
	resultHandler := newResultHandler(classifier.MockGenerator{})
	statsHandler := NewStatsHandler(stats.NewAggregator(s, registry.Default()))

	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/api/get-result",
				models.GetResultRequest{Answers: testutil.Answers("I", "A", "L", "H")}, nil)
			w := httptest.NewRecorder()
			resultHandler.GetResult(w, req)
			if w.Code != http.StatusOK {
				failures.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("GET", "/api/get-stats", nil, nil)
			w := httptest.NewRecorder()
			statsHandler.GetStats(w, req)
			if w.Code != http.StatusOK {
				failures.Add(1)
			}
		}()
	}

	wg.Wait()

	if failures.Load() != 0 {
		t.Errorf("Expected no failures, got %d", failures.Load())
	}
}
