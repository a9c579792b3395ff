package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SOLANA_RPC_URL", "")
	t.Setenv("CACHE_TTL_MS", "")
	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("SOLANA_TX_LIMIT", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.SolanaRPCURL != "https://api.mainnet-beta.solana.com" {
		t.Fatalf("unexpected rpc url: %s", cfg.SolanaRPCURL)
	}
	if cfg.CacheTTL != 15*time.Second {
		t.Fatalf("expected default cache ttl 15s, got %v", cfg.CacheTTL)
	}
	if cfg.CacheBackend != "memory" {
		t.Fatalf("expected memory backend, got %s", cfg.CacheBackend)
	}
	if cfg.SolanaTxLimit != 10 {
		t.Fatalf("expected default tx limit 10, got %d", cfg.SolanaTxLimit)
	}
	if cfg.GroqModel != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected default model: %s", cfg.GroqModel)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL_MS", "500")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis:6379")
	t.Setenv("SOLANA_TX_LIMIT", "25")

	cfg := Load()
	if cfg.Port != "9090" || cfg.RedisURL != "redis:6379" || cfg.SolanaTxLimit != 25 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.CacheTTL != 500*time.Millisecond {
		t.Fatalf("expected 500ms ttl, got %v", cfg.CacheTTL)
	}
	if cfg.CacheBackend != "redis" {
		t.Fatalf("expected redis backend, got %s", cfg.CacheBackend)
	}

	t.Setenv("CACHE_TTL_MS", "bad")
	t.Setenv("CACHE_BACKEND", "memcached")
	cfg = Load()
	if cfg.CacheTTL != 15*time.Second {
		t.Fatalf("invalid ttl should fall back to default, got %v", cfg.CacheTTL)
	}
	if cfg.CacheBackend != "memory" {
		t.Fatalf("unsupported backend should fall back to memory, got %s", cfg.CacheBackend)
	}
}
