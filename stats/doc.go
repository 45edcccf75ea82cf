// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats aggregates participation records into per-type counts.

	agg := stats.NewAggregator(s, registry.Default())
	result := agg.Compute(ctx)

Every registered type code appears in the result, with 0 when no record
carries it. Records with codes outside the registry still count towards the
total.

When the store is nil or the scan fails, Compute returns the zero-filled
result with Available set to false. The handler turns that into a 200
response with an explanatory message.
*/
package stats
