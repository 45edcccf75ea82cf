// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the static table of Bio-MBTI archetypes.

# Loading

The canonical table is embedded (types.yaml) and parsed once:

	reg := registry.Default()

Custom tables go through the same validation:

	reg, err := registry.Load(data)

Every code must be 4 uppercase ASCII letters, unique, with a title and an animal.

# Lookups

	def, ok := reg.Lookup("ICLR")
	reg.IsValid("ICLR")     // true
	reg.Title("ZZZZ")       // default title
	reg.AnimalMapping()     // ordered code/animal pairs for prompts
	reg.ZeroCounts()        // every code mapped to 0, for statistics

The registry is never mutated after loading and is shared by the classifier,
the submission deduplicator and the statistics aggregator.
*/
package registry
