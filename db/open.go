// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

var ErrUnsupportedType = errors.New("unsupported database type")

// sqlitePragmas are applied to every SQLite connection we open
var sqlitePragmas = []string{
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Open connects to the database and verifies the connection with a ping.
// Caller must call Close when done.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
		return openAndPing("postgres", url)
	case TypeSQLite:
		return openSQLite(url)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
	}
}

func openSQLite(url string) (*sql.DB, error) {
	if url == "" {
		return nil, errors.New("sqlite path is empty")
	}

	conn, err := openAndPing("sqlite", url)
	if err != nil {
		return nil, err
	}

	// Each connection to :memory: is its own database
	if isMemoryDSN(url) {
		conn.SetMaxOpenConns(1)
	} else {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable WAL: %w", err)
		}
	}

	for _, pragma := range sqlitePragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return conn, nil
}

func openAndPing(driver, url string) (*sql.DB, error) {
	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}
	return conn, nil
}

func isMemoryDSN(url string) bool {
	return url == ":memory:" || strings.Contains(url, "mode=memory")
}
