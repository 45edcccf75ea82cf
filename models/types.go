// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Valid answer values, one per pole of the four axes
const (
	AnswerE = "E" // together
	AnswerI = "I" // alone
	AnswerA = "A" // active
	AnswerC = "C" // cautious
	AnswerG = "G" // global
	AnswerL = "L" // local
	AnswerH = "H" // heart-driven
	AnswerR = "R" // reason-driven
)

// Input limits for POST /api/get-result
const (
	MaxAnswers        = 20
	MaxQuestionLength = 500
)

// Request types

type Answer struct {
	Question    string `json:"question"`
	AnswerValue string `json:"answerValue"`
}

type GetResultRequest struct {
	Answers []Answer `json:"answers"`
}

type SubmitResultRequest struct {
	TypeCode string `json:"typeCode"`
}

// Response types

// ClassificationResult is returned by POST /api/get-result
type ClassificationResult struct {
	TypeCode    string   `json:"typeCode"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type SubmitResultResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
	Message string `json:"message,omitempty"`
}

// Stats is returned by GET /api/get-stats
type Stats struct {
	TotalCount int            `json:"totalCount"`
	TypeCounts map[string]int `json:"typeCounts"`
	Message    string         `json:"message,omitempty"`
}

// Domain types

// ParticipationRecord is one stored quiz completion. Never updated once written.
type ParticipationRecord struct {
	ID          string    `json:"id"`
	TypeCode    string    `json:"typeCode"`
	Fingerprint string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"createdAt"`
}

// TypeDefinition describes one archetype in the registry
type TypeDefinition struct {
	Code            string   `json:"code" yaml:"code"`
	Title           string   `json:"title" yaml:"title"`
	Animal          string   `json:"animal" yaml:"animal"`
	DefaultKeywords []string `json:"defaultKeywords" yaml:"keywords"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
