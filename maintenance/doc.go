// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package maintenance holds offline operations on the participation store.

These run from cmd/biombti-admin, never from the HTTP server.

# Duplicate Cleanup

CleanupDuplicates groups records by fingerprint and type code and sorts each
group by time. The oldest record of a group is kept; every later record at
most Window (10s) after it is a duplicate. The next record outside the window
starts a new run.

	report, err := maintenance.CleanupDuplicates(ctx, s, maintenance.Options{})

Duplicates are deleted in batches of 500. With DryRun set nothing is deleted
and the report lists what would be removed.

# Reset

ClearAll deletes every record. There is no undo.
*/
package maintenance
