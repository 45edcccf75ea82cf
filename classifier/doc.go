// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classifier maps a survey answer set to a Bio-MBTI result.

# Gateway

	gw := classifier.NewGateway(registry.Default(), gen, 30*time.Second)
	result, err := gw.Classify(ctx, answers)

Classify runs in four steps:

 1. ValidateAnswers: 1-20 answers, non-empty questions of at most 500
    characters, answer values in E/I/A/C/G/L/H/R. Failures are
    *models.ValidationError and nothing else runs.
 2. LocalTypeCode: majority vote per axis (E/I, A/C, G/L, H/R); ties go to
    the first letter.
 3. Generator call with BuildPrompt output, bounded by the gateway timeout.
 4. Reconciliation: the generator's code is replaced by the local code when it
    is unregistered or different. Description and keywords are kept; missing
    keywords become ["#" + code]. The title always comes from the registry.

Generator errors, timeouts and malformed JSON all surface as
models.ErrUpstreamUnavailable. No partial result is returned.

# Generators

GeminiGenerator uses google.golang.org/genai with a JSON response MIME type:

	gen, err := classifier.NewGeminiGenerator(ctx, apiKey, model)

MockGenerator returns a canned proposal after a short delay, for running
without credentials:

	gen := classifier.MockGenerator{Delay: 300 * time.Millisecond}
*/
package classifier
