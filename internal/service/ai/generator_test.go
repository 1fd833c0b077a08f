package ai

import (
	"context"
	"testing"

	"github.com/ScienHAC/ventspace/internal/config"
)

func TestNewFromConfigWithoutCredentials(t *testing.T) {
	gen, err := NewFromConfig(context.Background(), config.AIConfig{})
	if err != nil {
		t.Fatalf("NewFromConfig err: %v", err)
	}
	if gen != nil {
		t.Fatal("expected nil generator without credentials")
	}
}

func TestNewFromConfigOpenAI(t *testing.T) {
	cfg := config.AIConfig{
		Provider:     config.ProviderOpenAI,
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-4.1-mini",
	}
	gen, err := NewFromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewFromConfig err: %v", err)
	}
	if gen == nil {
		t.Fatal("expected a generator for configured openai provider")
	}
}
