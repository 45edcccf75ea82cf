// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Precedence

CLI flags override environment variables. Environment variables override
values from the .env file (loaded with github.com/joho/godotenv; a missing
file is ignored). Anything still unset gets its default.

# Keys

	PORT              -p           Server port (default: 3001)
	DATABASE_TYPE     -t           postgres, sqlite, memory; empty disables storage
	DATABASE_URL      -d           Required for postgres and sqlite
	FINGERPRINT_SALT  -salt        HMAC key for client fingerprints
	USE_MOCK          -mock        "true" returns canned classifications
	GEMINI_API_KEY                 Environment only
	GEMINI_MODEL      -model       Default: gemini-2.5-flash-preview-09-2025
	CLASSIFY_TIMEOUT  -timeout     Default: 30s
	MOCK_DELAY        -mock-delay  Default: 300ms
	ALLOWED_ORIGINS   -origins     Comma-separated; empty allows any origin
	APP_ENV                        "production" switches logs to JSON
	LOG_LEVEL         -log-level   debug, info, warn, error (default: info)

The .env path itself is set with -env-file (default: .env).

# Validation

ParseFlags returns an error for a malformed port or duration, an unknown
DATABASE_TYPE, or a postgres/sqlite type without DATABASE_URL. A missing
GEMINI_API_KEY is not an error: the server starts and classification
requests fail until it is set.
*/
package cliparse
