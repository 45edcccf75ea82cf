// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Proposal is what the external generator suggests for an answer set
type Proposal struct {
	TypeCode    string   `json:"typeCode"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

var errEmptyResponse = errors.New("empty generator response")

// ParseProposal decodes the generator's JSON text. Markdown code fences
// around the object are tolerated.
func ParseProposal(text string) (Proposal, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return Proposal{}, errEmptyResponse
	}

	var p Proposal
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return Proposal{}, fmt.Errorf("failed to decode generator response: %w", err)
	}

	p.TypeCode = strings.ToUpper(strings.TrimSpace(p.TypeCode))
	return p, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// Drop a language tag such as ```json, with or without a newline after it
	if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.Contains(text[:nl], "{") {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
