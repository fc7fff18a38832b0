// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface to the generative-text providers
// used for code generation (Gemini, OpenAI, Claude). Each provider handles
// its own HTTP communication and response parsing; the Registry selects the
// active one by name.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// Provider is implemented by every text-generation backend.
type Provider interface {
	// Generate sends a prompt to the model and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry holds the configured providers and the active selection.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry builds a registry from every config with a non-empty API key.
// Providers without keys are skipped. A registry whose active provider is
// unusable is a configuration error: generation credentials are required at
// startup, not discovered per call.
func NewRegistry(active string, configs map[string]ProviderConfig) (*Registry, error) {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "gemini":
			r.providers[name] = newGemini(cfg)
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		}
	}

	if len(r.providers) == 0 {
		return nil, fmt.Errorf("ai: no generation provider configured (set GEMINI_API_KEY or equivalent)")
	}
	if _, ok := r.providers[active]; !ok {
		return nil, fmt.Errorf("ai: active provider %q has no API key configured", active)
	}

	return r, nil
}

// Generate calls the active provider's Generate method.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	r.mu.RLock()
	p, ok := r.providers[r.active]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p.Generate(ctx, systemPrompt, userPrompt)
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider and makes it active. Used to inject
// custom providers, primarily in tests.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
	r.active = name
}
