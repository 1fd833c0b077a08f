package config

import "testing"

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_MODEL",
		"AI_TEMPERATURE", "AI_MAX_TOKENS", "AI_TIMEOUT_SECONDS", "AI_HISTORY_LIMIT",
		"PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadServerConfigPortVariants(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("PORT", "9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("Addr = %q, want :9000", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q, want 127.0.0.1:9000", cfg.Server.Addr)
	}
}

func TestLoadServerConfigRejectsBadPort(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("PORT", "90 00")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}
}

func TestAIConfigDisabledWithoutCredentials(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Enabled() {
		t.Fatal("AI should be disabled without credentials")
	}
	if cfg.AI.TimeoutSeconds != 8 {
		t.Fatalf("TimeoutSeconds = %d, want default 8", cfg.AI.TimeoutSeconds)
	}
	if cfg.AI.HistoryLimit != 6 {
		t.Fatalf("HistoryLimit = %d, want default 6", cfg.AI.HistoryLimit)
	}
}

func TestAIConfigInfersOpenAIProvider(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderOpenAI {
		t.Fatalf("Provider = %q, want openai", cfg.AI.Provider)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected AI enabled with openai key and default model")
	}
}

func TestAIConfigInfersArkProvider(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("ARK_API_KEY", "ark-test")
	t.Setenv("ARK_MODEL", "doubao-lite")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderArk {
		t.Fatalf("Provider = %q, want ark", cfg.AI.Provider)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected AI enabled with ark key and model")
	}
}

func TestAIConfigRejectsUnknownProvider(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("AI_PROVIDER", "gemini")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestAIConfigOverrides(t *testing.T) {
	clearAIEnv(t)

	t.Setenv("AI_TIMEOUT_SECONDS", "15")
	t.Setenv("AI_HISTORY_LIMIT", "0")
	t.Setenv("AI_TEMPERATURE", "0.7")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.TimeoutSeconds != 15 {
		t.Fatalf("TimeoutSeconds = %d, want 15", cfg.AI.TimeoutSeconds)
	}
	if cfg.AI.HistoryLimit != 1 {
		t.Fatalf("HistoryLimit = %d, want floor of 1", cfg.AI.HistoryLimit)
	}
	if cfg.AI.Temperature == nil || *cfg.AI.Temperature != 0.7 {
		t.Fatalf("Temperature = %v, want 0.7", cfg.AI.Temperature)
	}
}
