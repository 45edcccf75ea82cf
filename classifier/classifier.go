// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/registry"
)

// DefaultTimeout bounds a single generator call
const DefaultTimeout = 30 * time.Second

// Gateway turns an answer set into a classification result.
// The locally computed code is authoritative; the generator only supplies text.
type Gateway struct {
	registry  *registry.Registry
	generator Generator
	timeout   time.Duration
}

// NewGateway creates a gateway. gen may be nil, in which case every
// classification fails with ErrUpstreamUnavailable.
func NewGateway(reg *registry.Registry, gen Generator, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{registry: reg, generator: gen, timeout: timeout}
}

// Classify validates answers, asks the generator for a proposal and reconciles
// it with the majority vote. Either a complete result or an error is returned.
func (g *Gateway) Classify(ctx context.Context, answers []models.Answer) (models.ClassificationResult, error) {
	if err := ValidateAnswers(answers); err != nil {
		return models.ClassificationResult{}, err
	}

	if g.generator == nil {
		return models.ClassificationResult{}, fmt.Errorf("%w: generator not configured", models.ErrUpstreamUnavailable)
	}

	local := LocalTypeCode(answers)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.generator.Generate(ctx, BuildPrompt(answers, g.registry))
	if err != nil {
		return models.ClassificationResult{}, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}

	proposal, err := ParseProposal(text)
	if err != nil {
		return models.ClassificationResult{}, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}

	return g.reconcile(local, proposal), nil
}

// reconcile keeps the generator's text but never its code
func (g *Gateway) reconcile(local string, p Proposal) models.ClassificationResult {
	code := p.TypeCode
	if !g.registry.IsValid(code) || code != local {
		slog.Warn("type code mismatch, using computed code",
			"proposed", p.TypeCode,
			"computed", local,
			"animal", g.registry.Animal(local),
		)
		code = local
	}

	keywords := p.Keywords
	if len(keywords) == 0 {
		keywords = []string{"#" + code}
	}

	return models.ClassificationResult{
		TypeCode:    code,
		Title:       g.registry.Title(code),
		Description: p.Description,
		Keywords:    keywords,
	}
}
