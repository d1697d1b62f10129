package config

import (
	"testing"
	"time"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "local")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SESSION_ISSUER", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_FLASH_MODEL", "")
	t.Setenv("GEMINI_PRO_MODEL", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("AI_TIMEOUT", "")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setValidEnv(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.AI.FlashModel != defaultFlashModel || c.AI.ProModel != defaultProModel {
		t.Fatalf("model defaults not applied: %+v", c.AI)
	}
	if c.AI.Timeout != defaultAITimeout {
		t.Fatalf("expected default AI timeout, got %s", c.AI.Timeout)
	}
	if c.Session.TTL != defaultSessionTTL {
		t.Fatalf("expected default session TTL, got %s", c.Session.TTL)
	}
	if c.HTTPAddr() != ":8080" || c.RedisAddr() != "localhost:6379" {
		t.Fatalf("unexpected addrs: %q %q", c.HTTPAddr(), c.RedisAddr())
	}
}

func TestLoadRejectsMissingRequired(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing SESSION_SECRET")
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	setValidEnv(t)
	t.Setenv("APP_ENV", "qa")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown APP_ENV")
	}
}

func TestLoadRejectsTinyAITimeout(t *testing.T) {
	setValidEnv(t)
	t.Setenv("AI_TIMEOUT", "100ms")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for sub-second AI timeout")
	}
}

func TestLoadParsesAITimeout(t *testing.T) {
	setValidEnv(t)
	t.Setenv("AI_TIMEOUT", "30s")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.AI.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", c.AI.Timeout)
	}
}

func TestProductionRequiresIssuer(t *testing.T) {
	setValidEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing SESSION_ISSUER in production")
	}

	t.Setenv("SESSION_ISSUER", "crm-platform")
	if _, err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
}
