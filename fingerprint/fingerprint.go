// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Unknown is hashed when no client address can be determined
const Unknown = "unknown"

// Length is the number of hex characters in a fingerprint
const Length = 16

// Hash creates a one-way hash of a client address for privacy.
// Includes salt to prevent rainbow table attacks; an empty salt still hashes.
func Hash(addr, salt string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = Unknown
	}

	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(addr))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:Length/2])
}
