// Package cache stores enriched answers so repeated questions skip the
// LLM round trip.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/culturecoders/culturebot/internal/model"
)

const keyPrefix = "culturebot:v1:"

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Clear() error
}

// Key builds the cache key for an enriched answer. Questions differing only
// in case or surrounding whitespace share a key.
func Key(provider, modelName, query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	hash := sha256.Sum256([]byte(provider + "\x00" + modelName + "\x00" + normalized))
	return keyPrefix + hex.EncodeToString(hash[:])
}

// New builds the cache described by cfg. A disabled cache yields nil.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir == "" {
		return NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
	}
	return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}

// GetAnswer decodes a cached answer
func GetAnswer(c Cache, key string) (model.Answer, bool) {
	var answer model.Answer
	if c == nil {
		return answer, false
	}

	data, ok := c.Get(key)
	if !ok {
		return answer, false
	}
	if err := json.Unmarshal(data, &answer); err != nil {
		return model.Answer{}, false
	}
	return answer, true
}

// SetAnswer encodes and stores an answer
func SetAnswer(c Cache, key string, answer model.Answer, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}
	return c.Set(key, data, ttl)
}
