package model

import "time"

// Config is the complete CultureBot configuration tree.
// Field tags are shared by viper (mapstructure) and the YAML renderer.
type Config struct {
	Server       ServerConfig      `mapstructure:"server" yaml:"server"`
	LLM          LLMConfig         `mapstructure:"llm" yaml:"llm"`
	Cache        CacheConfig       `mapstructure:"cache" yaml:"cache"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting" yaml:"rate_limiting"`
	Concurrency  ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Log          LogConfig         `mapstructure:"log" yaml:"log"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr             string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown" yaml:"graceful_shutdown"`
	AllowedOrigins   []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// LLMConfig configures the optional enrichment provider.
// An empty Provider disables enrichment entirely.
type LLMConfig struct {
	Provider    string  `mapstructure:"provider" yaml:"provider"`
	Model       string  `mapstructure:"model" yaml:"model"`
	APIKey      string  `mapstructure:"api_key" yaml:"api_key,omitempty"`
	BaseURL     string  `mapstructure:"base_url" yaml:"base_url,omitempty"`
	Timeout     int     `mapstructure:"timeout" yaml:"timeout"` // seconds
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`
	Temperature float32 `mapstructure:"temperature" yaml:"temperature"`
	HTTPProxy   string  `mapstructure:"http_proxy" yaml:"http_proxy,omitempty"`
	HTTPSProxy  string  `mapstructure:"https_proxy" yaml:"https_proxy,omitempty"`
}

// CacheConfig configures the enrichment cache
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	MemoryTTL time.Duration `mapstructure:"memory_ttl" yaml:"memory_ttl"`
	Dir       string        `mapstructure:"dir" yaml:"dir,omitempty"` // Empty keeps the cache in memory only
	DiskTTL   time.Duration `mapstructure:"disk_ttl" yaml:"disk_ttl"`
}

// RateLimitConfig bounds enrichment calls per user
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size" yaml:"burst_size"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // json or console
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:             "0.0.0.0:8000",
			ReadTimeout:      15 * time.Second,
			WriteTimeout:     60 * time.Second,
			IdleTimeout:      120 * time.Second,
			RequestTimeout:   45 * time.Second,
			GracefulShutdown: 10 * time.Second,
			AllowedOrigins:   []string{"*"},
		},
		LLM: LLMConfig{
			Provider:    "", // Disabled by default
			Timeout:     0,  // provider default: 30s, Ollama 60s
			MaxTokens:   500,
			Temperature: 0.7,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
