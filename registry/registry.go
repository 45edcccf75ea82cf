// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/bio-mbti/models"
)

//go:embed types.yaml
var defaultTable []byte

var (
	ErrEmptyTable    = errors.New("registry: no types defined")
	ErrInvalidCode   = errors.New("registry: invalid type code")
	ErrDuplicateCode = errors.New("registry: duplicate type code")
)

type table struct {
	DefaultTitle  string                  `yaml:"default_title"`
	DefaultAnimal string                  `yaml:"default_animal"`
	Types         []models.TypeDefinition `yaml:"types"`
}

// Registry is an immutable lookup table of type definitions.
// Safe for concurrent use; nothing mutates it after Load returns.
type Registry struct {
	defs          map[string]models.TypeDefinition
	order         []string
	defaultTitle  string
	defaultAnimal string
}

// AnimalEntry pairs a type code with its animal, in registry order
type AnimalEntry struct {
	Code   string
	Animal string
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the canonical 16-type registry built from the embedded table.
// Panics if the embedded table is malformed, which is a build defect.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Load(defaultTable)
		if err != nil {
			panic(fmt.Sprintf("embedded registry table: %v", err))
		}
		defaultReg = reg
	})
	return defaultReg
}

// Load parses a YAML type table and validates every entry
func Load(data []byte) (*Registry, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("registry: failed to parse table: %w", err)
	}
	if len(t.Types) == 0 {
		return nil, ErrEmptyTable
	}

	reg := &Registry{
		defs:          make(map[string]models.TypeDefinition, len(t.Types)),
		order:         make([]string, 0, len(t.Types)),
		defaultTitle:  t.DefaultTitle,
		defaultAnimal: t.DefaultAnimal,
	}

	for _, def := range t.Types {
		if !IsCodeFormat(def.Code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, def.Code)
		}
		if _, exists := reg.defs[def.Code]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, def.Code)
		}
		if def.Title == "" || def.Animal == "" {
			return nil, fmt.Errorf("registry: type %s needs a title and an animal", def.Code)
		}

		// Every type carries its own code and animal as the first two tags
		keywords := make([]string, 0, len(def.DefaultKeywords)+2)
		keywords = append(keywords, "#"+def.Code, "#"+def.Animal)
		keywords = append(keywords, def.DefaultKeywords...)
		def.DefaultKeywords = keywords

		reg.defs[def.Code] = def
		reg.order = append(reg.order, def.Code)
	}

	return reg, nil
}

// IsCodeFormat reports whether code is exactly 4 uppercase ASCII letters
func IsCodeFormat(code string) bool {
	if len(code) != 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Lookup returns the definition for code
func (r *Registry) Lookup(code string) (models.TypeDefinition, bool) {
	def, ok := r.defs[code]
	if !ok {
		return models.TypeDefinition{}, false
	}
	// Copy so callers can't reach into the table
	def.DefaultKeywords = append([]string(nil), def.DefaultKeywords...)
	return def, true
}

// IsValid reports whether code is a registered type code
func (r *Registry) IsValid(code string) bool {
	_, ok := r.defs[code]
	return ok
}

// Title returns the display title for code, or the default title if unknown
func (r *Registry) Title(code string) string {
	if def, ok := r.defs[code]; ok {
		return def.Title
	}
	return r.defaultTitle
}

// Animal returns the animal for code, or the default animal if unknown
func (r *Registry) Animal(code string) string {
	if def, ok := r.defs[code]; ok {
		return def.Animal
	}
	return r.defaultAnimal
}

// Codes returns all registered codes in table order
func (r *Registry) Codes() []string {
	return append([]string(nil), r.order...)
}

// AnimalMapping returns code/animal pairs in table order
func (r *Registry) AnimalMapping() []AnimalEntry {
	out := make([]AnimalEntry, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, AnimalEntry{Code: code, Animal: r.defs[code].Animal})
	}
	return out
}

// ZeroCounts returns a map with every registered code mapped to 0
func (r *Registry) ZeroCounts() map[string]int {
	counts := make(map[string]int, len(r.order))
	for _, code := range r.order {
		counts[code] = 0
	}
	return counts
}

// Len returns the number of registered types
func (r *Registry) Len() int {
	return len(r.order)
}
