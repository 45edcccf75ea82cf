// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Opening

	conn, err := db.Open(db.TypePostgres, "postgres://...")   // lib/pq
	conn, err := db.Open(db.TypeSQLite, "bio-mbti.db")        // modernc.org/sqlite

SQLite connections get WAL mode, a busy timeout and synchronous=NORMAL.
In-memory SQLite (":memory:") is limited to one connection so every query
sees the same database.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL runs unchanged on PostgreSQL and SQLite.

# Tables

  - participation: one row per stored quiz completion (id, type_code,
    fingerprint, created_at). Rows are never updated.

# Indexes

  - participation.(fingerprint, type_code, created_at): duplicate-window lookup
  - participation.type_code: statistics
*/
package db
