package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Crawl     CrawlConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls outbound HTTP behavior.
type FetchConfig struct {
	// Timeout is the deadline for the primary page fetch.
	Timeout time.Duration // default: 30s

	// ProbeTimeout is the deadline for auxiliary HEAD probes
	// (resource sizes, broken-link checks, HSTS).
	ProbeTimeout time.Duration // default: 15s

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64 // default: 10 MB

	// UserAgent is sent on every outbound request.
	UserAgent string
}

// CrawlConfig bounds the full-site crawl.
type CrawlConfig struct {
	// MaxPages is the hard cap on visited pages.
	MaxPages int // default: 50

	// MaxDepth is the maximum hop count from the start URL.
	MaxDepth int // default: 3

	// Delay is the minimum spacing between page fetches.
	Delay time.Duration // default: 100ms

	// PageTimeout is the per-page fetch deadline during a crawl.
	PageTimeout time.Duration // default: 10s
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per API key.
	Burst int // default: 10
}

// CacheConfig controls the report cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached reports.
	MaxEntries int // default: 500
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SEOAUDIT_HOST", "0.0.0.0"),
			Port: envIntOr("SEOAUDIT_PORT", 8080),
			Mode: envOr("SEOAUDIT_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout:      envDurationOr("SEOAUDIT_FETCH_TIMEOUT", 30*time.Second),
			ProbeTimeout: envDurationOr("SEOAUDIT_PROBE_TIMEOUT", 15*time.Second),
			MaxBodyBytes: int64(envIntOr("SEOAUDIT_MAX_BODY_BYTES", 10*1024*1024)),
			UserAgent:    envOr("SEOAUDIT_USER_AGENT", defaultUserAgent),
		},
		Crawl: CrawlConfig{
			MaxPages:    envIntOr("SEOAUDIT_CRAWL_MAX_PAGES", 50),
			MaxDepth:    envIntOr("SEOAUDIT_CRAWL_MAX_DEPTH", 3),
			Delay:       envDurationOr("SEOAUDIT_CRAWL_DELAY", 100*time.Millisecond),
			PageTimeout: envDurationOr("SEOAUDIT_CRAWL_PAGE_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("SEOAUDIT_AUTH_ENABLED", false),
			APIKeys: envSliceOr("SEOAUDIT_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("SEOAUDIT_RATE_RPS", 5.0),
			Burst:             envIntOr("SEOAUDIT_RATE_BURST", 10),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("SEOAUDIT_CACHE_MAX_ENTRIES", 500),
		},
		Log: LogConfig{
			Level:  envOr("SEOAUDIT_LOG_LEVEL", "info"),
			Format: envOr("SEOAUDIT_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
