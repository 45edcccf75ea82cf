// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - GetResultRequest: answers ([]Answer with question, answerValue)
  - SubmitResultRequest: typeCode

# Response Types

Types for JSON responses:

  - ClassificationResult: typeCode, title, description, keywords
  - SubmitResultResponse: success, id, skipped, message
  - Stats: totalCount, typeCounts, message
  - ErrorResponse: error

# Domain Types

  - ParticipationRecord: one stored quiz completion (id, typeCode, fingerprint, createdAt)
  - TypeDefinition: registry entry (code, title, animal, defaultKeywords)

# Errors

The error taxonomy shared by all components:

  - ValidationError: caller input rejected, maps to 400
  - ErrUpstreamUnavailable: classifier failed, maps to 500
  - ErrStorageUnavailable: store missing or unreachable, maps to 503

# Constants

Answer values:

	AnswerE, AnswerI  // together / alone
	AnswerA, AnswerC  // active / cautious
	AnswerG, AnswerL  // global / local
	AnswerH, AnswerR  // heart / reason

Limits:

	MaxAnswers        = 20
	MaxQuestionLength = 500
*/
package models
