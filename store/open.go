// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/bio-mbti/db"
)

// TypeMemory selects MemoryStore in Open
const TypeMemory = "memory"

// Open returns the Store for a database type. An empty type means storage is
// disabled: the Store is nil and close is a no-op. SQL backends get their
// schema created.
func Open(dbType, url string) (Store, func() error, error) {
	noop := func() error { return nil }

	switch dbType {
	case "":
		return nil, noop, nil
	case TypeMemory:
		return NewMemoryStore(), noop, nil
	}

	conn, err := db.Open(dbType, url)
	if err != nil {
		return nil, noop, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, noop, fmt.Errorf("failed to prepare %s store: %w", dbType, err)
	}

	return NewSQLStore(conn), conn.Close, nil
}
