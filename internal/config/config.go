package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port      string
	StaticDir string
	APIKey    string

	SolanaRPCURL  string
	SolanaTxLimit int

	CacheTTL     time.Duration
	CacheBackend string
	RedisURL     string

	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string
}

func Load() *Config {
	cfg := &Config{
		APIKey:     os.Getenv("API_KEY"),
		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.StaticDir = strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if cfg.StaticDir == "" {
		cfg.StaticDir = "web"
	}

	cfg.SolanaRPCURL = strings.TrimSpace(os.Getenv("SOLANA_RPC_URL"))
	if cfg.SolanaRPCURL == "" {
		cfg.SolanaRPCURL = "https://api.mainnet-beta.solana.com"
	}

	cfg.SolanaTxLimit = 10
	if v := strings.TrimSpace(os.Getenv("SOLANA_TX_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			cfg.SolanaTxLimit = n
		}
	}

	cfg.CacheTTL = 15000 * time.Millisecond
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTL = time.Duration(n) * time.Millisecond
		}
	}

	cfg.CacheBackend = strings.ToLower(strings.TrimSpace(os.Getenv("CACHE_BACKEND")))
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = "memory"
	}
	if cfg.CacheBackend != "memory" && cfg.CacheBackend != "redis" {
		log.Printf("Warning: unsupported CACHE_BACKEND=%q, defaulting to memory", cfg.CacheBackend)
		cfg.CacheBackend = "memory"
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	if cfg.RedisURL == "" && cfg.CacheBackend == "redis" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set, agent analysis will use the fallback heuristic")
	}

	cfg.GroqModel = strings.TrimSpace(os.Getenv("GROQ_MODEL"))
	if cfg.GroqModel == "" {
		cfg.GroqModel = "llama-3.1-8b-instant"
	}

	cfg.GroqBaseURL = strings.TrimSpace(os.Getenv("GROQ_BASE_URL"))
	if cfg.GroqBaseURL == "" {
		cfg.GroqBaseURL = "https://api.groq.com/openai/v1"
	}

	return cfg
}
