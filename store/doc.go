// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists participation records.

# Contract

Store is the append/query/scan contract used by the submission deduplicator,
the statistics aggregator and the maintenance tools:

	Insert(ctx, rec)                        // assigns a UUID, writes the record
	LatestMatch(ctx, fingerprint, code)     // newest record of the pair, or nil
	ListMatches(ctx, fingerprint, code)     // every record of the pair
	ForEach(ctx, fn)                        // full scan
	Delete(ctx, ids) / DeleteAll(ctx)       // maintenance only

# Implementations

SQLStore runs on a *sql.DB opened by package db (PostgreSQL or SQLite):

	s := store.NewSQLStore(conn)

MemoryStore keeps records in a mutex-guarded slice:

	s := store.NewMemoryStore()

Record IDs are random UUIDs (github.com/google/uuid). Timestamps are stored
in UTC.
*/
package store
