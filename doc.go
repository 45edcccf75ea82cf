// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Bio-MBTI API server.

Bio-MBTI is a personality quiz that maps twelve answers to one of sixteen
Arctic-animal archetypes. Gemini writes the narrative; a local majority vote
decides the code.

# Starting the Server

With mock classification and in-memory storage:

	USE_MOCK=true DATABASE_TYPE=memory go run .

With PostgreSQL and Gemini:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... GEMINI_API_KEY=... go run .

Or with flags:

	go run . -p 3001 -t sqlite -d bio-mbti.db -mock

# Configuration

See package cliparse for every key. Values come from flags, then the
environment, then a .env file.

Storage is optional. Without DATABASE_TYPE the server still classifies;
submissions return 503 and statistics are empty.

# Architecture

  - registry: the sixteen type definitions (embedded YAML)
  - classifier: answer validation, majority vote, Gemini and mock generators
  - fingerprint: salted client address hashing
  - submission: duplicate suppression window
  - stats: per-type counts
  - store, db: participation records on PostgreSQL, SQLite or memory
  - maintenance: offline cleanup (see cmd/biombti-admin)
  - handlers, router, middleware: HTTP layer
  - cliparse: configuration parsing
  - models: request/response types and errors

See package documentation for each component.
*/
package main
