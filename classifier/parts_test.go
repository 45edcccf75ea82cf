// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"strings"
	"testing"

	"github.com/danielhkuo/bio-mbti/models"
)

func TestLocalTypeCode(t *testing.T) {
	testCases := []struct {
		name   string
		values []string
		want   string
	}{
		{"scenario ICLR", []string{"I", "I", "C", "C", "L", "L", "R", "R"}, "ICLR"},
		{"all first letters", []string{"E", "A", "G", "H"}, "EAGH"},
		{"empty axes tie to first letter", []string{"I"}, "IAGH"},
		{"explicit ties", []string{"E", "I", "A", "C", "G", "L", "H", "R"}, "EAGH"},
		{"majority beats order", []string{"E", "I", "I", "C", "A", "C"}, "ICGH"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LocalTypeCode(answersFor(tc.values...)); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestValidateAnswersBoundaries(t *testing.T) {
	twenty := answersFor(strings.Split(strings.Repeat("H", 20), "")...)
	if err := ValidateAnswers(twenty); err != nil {
		t.Errorf("Expected 20 answers to be valid, got %v", err)
	}

	exact := []models.Answer{{Question: strings.Repeat("a", models.MaxQuestionLength), AnswerValue: "R"}}
	if err := ValidateAnswers(exact); err != nil {
		t.Errorf("Expected 500-character question to be valid, got %v", err)
	}

	// Multi-byte characters count once
	korean := []models.Answer{{Question: strings.Repeat("북", models.MaxQuestionLength), AnswerValue: "R"}}
	if err := ValidateAnswers(korean); err != nil {
		t.Errorf("Expected 500 Korean characters to be valid, got %v", err)
	}
}

func TestSanitizeForPrompt(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>x</script>", "scriptx/script"},
		{"a\nb\r\nc", "a b c"},
		{strings.Repeat("z", 250), strings.Repeat("z", 200)},
	}

	for _, tc := range testCases {
		if got := SanitizeForPrompt(tc.in); got != tc.want {
			t.Errorf("SanitizeForPrompt(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestParseProposal(t *testing.T) {
	p, err := ParseProposal("```json\n{\"typeCode\":\" eagh \",\"description\":\"d\",\"keywords\":[\"#a\"]}\n```")
	if err != nil {
		t.Fatalf("ParseProposal failed: %v", err)
	}
	if p.TypeCode != "EAGH" {
		t.Errorf("Expected normalized code EAGH, got %s", p.TypeCode)
	}
	if p.Description != "d" || len(p.Keywords) != 1 {
		t.Errorf("Unexpected proposal %+v", p)
	}

	oneLine := []string{
		"```json{\"typeCode\":\"iclr\",\"description\":\"d\"}```",
		"```{\"typeCode\":\"iclr\",\"description\":\"d\"}```",
		"```json {\"typeCode\":\"iclr\",\"description\":\"d\"} ```",
		"```{\"typeCode\":\"iclr\",\"description\":\"d\"}\n```",
	}
	for _, text := range oneLine {
		p, err := ParseProposal(text)
		if err != nil {
			t.Errorf("ParseProposal(%q) failed: %v", text, err)
			continue
		}
		if p.TypeCode != "ICLR" {
			t.Errorf("ParseProposal(%q): expected ICLR, got %s", text, p.TypeCode)
		}
	}

	if _, err := ParseProposal(`{"typeCode": 5}`); err == nil {
		t.Error("Expected error for wrong field type")
	}
	if _, err := ParseProposal(""); err == nil {
		t.Error("Expected error for empty text")
	}
}
