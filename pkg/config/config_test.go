package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.Port != "5050" {
		t.Errorf("Port = %v, want 5050", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.BookTTL != 5*time.Minute {
		t.Errorf("BookTTL = %v, want 5m", cfg.Cache.BookTTL)
	}
	if cfg.Cache.ChallengeTTL != 30*time.Minute {
		t.Errorf("ChallengeTTL = %v, want 30m", cfg.Cache.ChallengeTTL)
	}
	if cfg.Sources.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.Sources.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv_ReadsEnvironment(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "3000")
	os.Setenv("FEED_URL", "https://example.com/rss")
	os.Setenv("PROFILE_URL", "https://example.com/user/show/1")
	os.Setenv("BOOK_CACHE_TTL_MINUTES", "10")
	os.Setenv("CHALLENGE_CACHE_TTL_MINUTES", "60")
	os.Setenv("HTTP_TIMEOUT_SECONDS", "30")
	os.Setenv("CACHE_TYPE", "redis")
	os.Setenv("REDIS_ADDRESS", "redis:6379")
	os.Setenv("REDIS_DB", "2")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Port = %v, want 3000", cfg.Server.Port)
	}
	if cfg.Sources.FeedURL != "https://example.com/rss" {
		t.Errorf("FeedURL = %v", cfg.Sources.FeedURL)
	}
	if cfg.Sources.ProfileURL != "https://example.com/user/show/1" {
		t.Errorf("ProfileURL = %v", cfg.Sources.ProfileURL)
	}
	if cfg.Cache.BookTTL != 10*time.Minute {
		t.Errorf("BookTTL = %v, want 10m", cfg.Cache.BookTTL)
	}
	if cfg.Cache.ChallengeTTL != 60*time.Minute {
		t.Errorf("ChallengeTTL = %v, want 60m", cfg.Cache.ChallengeTTL)
	}
	if cfg.Sources.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.Sources.HTTPTimeout)
	}
	if cfg.Cache.Type != "redis" {
		t.Errorf("Cache.Type = %v, want redis", cfg.Cache.Type)
	}
	if cfg.Cache.Redis.Address != "redis:6379" {
		t.Errorf("Redis.Address = %v", cfg.Cache.Redis.Address)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %v, want 2", cfg.Cache.Redis.DB)
	}
}

func TestLoadFromEnv_InvalidIntFallsBackToDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("BOOK_CACHE_TTL_MINUTES", "soon")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Cache.BookTTL != 5*time.Minute {
		t.Errorf("BookTTL = %v, want default 5m", cfg.Cache.BookTTL)
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "5050"},
		Sources: SourcesConfig{
			FeedURL:     "https://example.com/rss",
			HTTPTimeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			Type:         "memory",
			BookTTL:      5 * time.Minute,
			ChallengeTTL: 30 * time.Minute,
		},
		LogLevel: "info",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_EmptyPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject empty port")
	}
}

func TestValidate_EmptyFeedURL(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.FeedURL = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject empty feed URL")
	}
}

func TestValidate_TinyTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.BookTTL = 10 * time.Second

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject sub-minute book TTL")
	}
}

func TestValidate_UnknownCacheType(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Type = "sqlite"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject unknown cache type")
	}
}

func TestValidate_RedisWithoutAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Type = "redis"
	cfg.Cache.Redis.Address = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject redis cache without an address")
	}
}
