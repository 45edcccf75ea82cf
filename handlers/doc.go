// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Bio-MBTI API.

# Handler Types

Each handler is a struct holding the domain service it fronts:

  - ResultHandler: classification (classifier.Gateway)
  - SubmissionHandler: participation records (submission.Deduplicator)
  - StatsHandler: aggregate counts (stats.Aggregator)

Handlers are created via constructor functions:

	resultHandler := handlers.NewResultHandler(gateway)

# Status Codes

	400  invalid JSON or *models.ValidationError (message from the error)
	413  body over 1 MiB
	500  classifier failure ("Server error while analyzing results.")
	503  models.ErrStorageUnavailable on submit

Error bodies are {"error": "..."}. Internal error text is logged, never
returned.

# Quiz Flow

	POST /api/get-result    → GetResult    {typeCode, title, description, keywords}
	POST /api/submit-result → SubmitResult {success, id} or {success, skipped, message}
	GET  /api/get-stats     → GetStats     {totalCount, typeCounts, message?}

GetStats never fails: without readable storage it returns zero counts and a
message.
*/
package handlers
