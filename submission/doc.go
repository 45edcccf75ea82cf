// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission stores participation records with duplicate suppression.

	d := submission.NewDeduplicator(s, registry.Default(), cfg.FingerprintSalt)
	outcome, err := d.Submit(ctx, "iclr", middleware.GetClientIP(r))

# Validation

The type code is trimmed and upper-cased, must be 4 letters and must be
registered. Invalid input returns *models.ValidationError before the store is
touched.

# Suppression Window

The newest record with the same fingerprint and type code is looked up. If it
is younger than the window (30s), the submission is skipped and
Outcome.Skipped is set. When the indexed lookup fails, every record of the
pair is scanned and the same rule applies.

The lookup and the insert are not atomic: two identical submissions arriving
together may both be stored. The window dampens repeated clicks; it is not a
uniqueness guarantee.

# Errors

  - *models.ValidationError: bad or unknown type code
  - models.ErrStorageUnavailable: no store configured, or the insert failed
*/
package submission
