package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/ScienHAC/ventspace/internal/analysis/sentiment"
	"github.com/ScienHAC/ventspace/internal/config"
	"github.com/ScienHAC/ventspace/internal/model/chat"
)

// GenerateRequest carries everything the external model needs for one reply.
type GenerateRequest struct {
	Message    string
	Assessment sentiment.Assessment
	History    []chat.Turn
}

// Generator produces a reply via an external text-generation service. A nil
// Generator is a supported configuration; callers fall back to canned
// dispatch on any error or empty output.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// NewFromConfig builds the configured provider, or returns nil when no
// credentials are present. The service stays fully functional without one.
func NewFromConfig(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		log.Printf("[ai] using openai provider, model=%s", cfg.OpenAIModel)
		return newOpenAIGenerator(cfg), nil
	case config.ProviderArk:
		log.Printf("[ai] using ark provider, model=%s", cfg.ArkModel)
		return newArkGenerator(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
