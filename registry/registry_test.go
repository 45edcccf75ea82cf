// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	if reg.Len() != 16 {
		t.Fatalf("Expected 16 types, got %d", reg.Len())
	}

	// Every combination of the four axes must be registered
	for _, a := range "EI" {
		for _, b := range "AC" {
			for _, c := range "GL" {
				for _, d := range "HR" {
					code := string([]rune{a, b, c, d})
					if !reg.IsValid(code) {
						t.Errorf("Expected %s to be registered", code)
					}
				}
			}
		}
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	def, ok := reg.Lookup("ICLR")
	if !ok {
		t.Fatal("Expected ICLR to be found")
	}
	if def.Animal != "하프물범" {
		t.Errorf("Expected animal '하프물범', got '%s'", def.Animal)
	}
	if len(def.DefaultKeywords) < 2 || def.DefaultKeywords[0] != "#ICLR" || def.DefaultKeywords[1] != "#하프물범" {
		t.Errorf("Expected keywords to start with code and animal, got %v", def.DefaultKeywords)
	}

	// Mutating the returned copy must not leak into the table
	def.DefaultKeywords[0] = "#MUTATED"
	again, _ := reg.Lookup("ICLR")
	if again.DefaultKeywords[0] != "#ICLR" {
		t.Error("Lookup returned a shared keyword slice")
	}

	if _, ok := reg.Lookup("ZZZZ"); ok {
		t.Error("Expected ZZZZ to be unknown")
	}
}

func TestTitleFallback(t *testing.T) {
	reg := Default()

	if reg.Title("ZZZZ") != "당신의 Bio-MBTI 결과" {
		t.Errorf("Expected default title, got '%s'", reg.Title("ZZZZ"))
	}
	if reg.Animal("ZZZZ") != "북극 동물" {
		t.Errorf("Expected default animal, got '%s'", reg.Animal("ZZZZ"))
	}
}

func TestCodesOrderAndZeroCounts(t *testing.T) {
	reg := Default()

	codes := reg.Codes()
	if codes[0] != "ICLR" || codes[len(codes)-1] != "EAGR" {
		t.Errorf("Expected table order ICLR..EAGR, got %s..%s", codes[0], codes[len(codes)-1])
	}

	mapping := reg.AnimalMapping()
	if len(mapping) != len(codes) {
		t.Fatalf("Expected %d mapping entries, got %d", len(codes), len(mapping))
	}
	for i, entry := range mapping {
		if entry.Code != codes[i] {
			t.Errorf("Mapping entry %d: expected %s, got %s", i, codes[i], entry.Code)
		}
	}

	counts := reg.ZeroCounts()
	if len(counts) != 16 {
		t.Errorf("Expected 16 zero counts, got %d", len(counts))
	}
	for code, n := range counts {
		if n != 0 {
			t.Errorf("Expected 0 for %s, got %d", code, n)
		}
	}
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty table",
			data:    "types: []",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "lowercase code",
			data:    "types:\n  - {code: iclr, title: t, animal: a}",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "five letters",
			data:    "types:\n  - {code: ICLRX, title: t, animal: a}",
			wantErr: ErrInvalidCode,
		},
		{
			name:    "duplicate",
			data:    "types:\n  - {code: ICLR, title: t, animal: a}\n  - {code: ICLR, title: t, animal: a}",
			wantErr: ErrDuplicateCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := Load([]byte("types:\n  - {code: ICLR, title: '', animal: a}")); err == nil {
		t.Error("Expected error for missing title")
	}
	if _, err := Load([]byte("types: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestIsCodeFormat(t *testing.T) {
	testCases := map[string]bool{
		"ICLR":  true,
		"ZZZZ":  true,
		"iclr":  false,
		"ICL":   false,
		"ICLRR": false,
		"IC1R":  false,
		"":      false,
	}
	for code, want := range testCases {
		if got := IsCodeFormat(code); got != want {
			t.Errorf("IsCodeFormat(%q): expected %v, got %v", code, want, got)
		}
	}
}
