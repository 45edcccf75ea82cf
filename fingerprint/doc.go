// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fingerprint derives the anonymized client identifier stored with each
participation record.

	fp := fingerprint.Hash(middleware.GetClientIP(r), cfg.FingerprintSalt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256(salt, address). Raw
addresses are never stored. An empty address hashes as "unknown".
*/
package fingerprint
