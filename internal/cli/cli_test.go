package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturecoders/culturebot/internal/cache"
	"github.com/culturecoders/culturebot/internal/model"
	"github.com/culturecoders/culturebot/internal/worker"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolveLLM(t *testing.T) {
	tests := []struct {
		name    string
		cfg     model.LLMConfig
		env     map[string]string
		want    model.LLMConfig
		wantErr string
	}{
		{
			name: "disabled",
			cfg:  model.LLMConfig{},
			want: model.LLMConfig{},
		},
		{
			name: "openai key from env",
			cfg:  model.LLMConfig{Provider: "OpenAI"},
			env:  map[string]string{"OPENAI_API_KEY": "sk-env"},
			want: model.LLMConfig{Provider: "openai", APIKey: "sk-env"},
		},
		{
			name: "configured key wins",
			cfg:  model.LLMConfig{Provider: "openai", APIKey: "sk-file"},
			env:  map[string]string{"OPENAI_API_KEY": "sk-env"},
			want: model.LLMConfig{Provider: "openai", APIKey: "sk-file"},
		},
		{
			name:    "openai without key",
			cfg:     model.LLMConfig{Provider: "openai"},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name: "claude alias",
			cfg:  model.LLMConfig{Provider: "claude"},
			env:  map[string]string{"ANTHROPIC_API_KEY": "sk-ant"},
			want: model.LLMConfig{Provider: "claude", APIKey: "sk-ant"},
		},
		{
			name:    "anthropic without key",
			cfg:     model.LLMConfig{Provider: "anthropic"},
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name: "ollama base url",
			cfg:  model.LLMConfig{Provider: "ollama", Model: "mistral"},
			env:  map[string]string{"OLLAMA_BASE_URL": "http://gpu:11434"},
			want: model.LLMConfig{Provider: "ollama", Model: "mistral", BaseURL: "http://gpu:11434"},
		},
		{
			name:    "unknown provider",
			cfg:     model.LLMConfig{Provider: "palm"},
			wantErr: "unknown LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := resolveLLM(&cfg, envMap(tt.env))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: 127.0.0.1:9000
  request_timeout: 5s
llm:
  provider: ollama
  model: llama3.1:8b
cache:
  enabled: false
rate_limiting:
  requests_per_second: 2.5
`), 0o644))

	t.Setenv("CULTUREBOT_CONCURRENCY_WORKERS", "9")
	t.Setenv("CULTUREBOT_LLM_MODEL", "mistral")
	t.Setenv("OLLAMA_BASE_URL", "http://gpu:11434")

	v := viper.New()
	require.NoError(t, configureViper(v, path))

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "mistral", cfg.LLM.Model, "env beats file")
	assert.Equal(t, "http://gpu:11434", cfg.LLM.BaseURL)
	assert.False(t, cfg.Cache.Enabled)
	assert.InDelta(t, 2.5, cfg.RateLimiting.RequestsPerSecond, 1e-9)
	assert.Equal(t, 9, cfg.Concurrency.Workers)
}

func TestConfigureViper_MissingExplicitFile(t *testing.T) {
	err := configureViper(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Verbose(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("verbose", true)

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRedact(t *testing.T) {
	cfg := *model.DefaultConfig()

	cfg.LLM.APIKey = "sk-1234567890abcdef"
	assert.Equal(t, "sk-1...cdef", redact(cfg).LLM.APIKey)
	assert.Equal(t, "sk-1234567890abcdef", cfg.LLM.APIKey, "input is not modified")

	cfg.LLM.APIKey = "short"
	assert.Equal(t, "***", redact(cfg).LLM.APIKey)
}

func TestInitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, initConfigFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# CultureBot configuration"))
	assert.Contains(t, string(data), "addr: 0.0.0.0:8000")
	assert.Contains(t, string(data), "memory_ttl: 30m0s")

	// The written file round-trips through viper
	v := viper.New()
	require.NoError(t, configureViper(v, path))
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)

	err = initConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestBuildApp(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Log.Level = "disabled"

	a, err := buildApp(cfg)
	require.NoError(t, err)

	assert.Equal(t, 24, a.catalog.Len())
	assert.False(t, a.enricher.IsEnabled())
	assert.False(t, a.chat.EnrichmentEnabled())
}

func TestBuildApp_EnrichmentEnabled(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Log.Level = "disabled"
	cfg.LLM.Provider = "ollama"
	cfg.LLM.Model = "mistral"
	cfg.Cache.Dir = t.TempDir()

	a, err := buildApp(cfg)
	require.NoError(t, err)

	assert.True(t, a.chat.EnrichmentEnabled())
	assert.Equal(t, "ollama", a.enricher.ProviderName())
	assert.Equal(t, 60*time.Second, a.enricher.Timeout(), "unset llm.timeout uses the Ollama default")
}

func TestWriteBatchResults(t *testing.T) {
	results := []*worker.QuestionResult{
		{
			Index:    0,
			Question: "greeting",
			Response: model.ChatResponse{
				Answer: model.Answer{Text: "Bow.", Confidence: 0.8, Sources: []string{"a"}, Category: "greeting"},
				Origin: model.OriginTemplate,
			},
		},
		{Index: 1, Question: "late", Error: errors.New("context deadline exceeded")},
	}

	var buf bytes.Buffer
	failures, err := writeBatchResults(&buf, results)
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first batchLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, batchLine{
		Question:   "greeting",
		Response:   "Bow.",
		Confidence: 0.8,
		Sources:    []string{"a"},
		Category:   "greeting",
		Origin:     "template",
	}, first)

	var second batchLine
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "late", second.Question)
	assert.Equal(t, "context deadline exceeded", second.Error)
}

func TestPrintFacts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printFacts(&buf, []model.Fact{
		{Country: "Japan", Text: "Bow.", Category: "greeting", Source: "a"},
	}))

	out := buf.String()
	assert.Contains(t, out, "COUNTRY")
	assert.Contains(t, out, "Japan")
	assert.Contains(t, out, "1 fact(s)")
}

func TestPrintAnswer(t *testing.T) {
	var buf bytes.Buffer
	printAnswer(&buf, model.ChatResponse{
		Answer: model.Answer{Text: "Bow.", Confidence: 0.8, Sources: []string{"a", "b"}, Category: "greeting"},
	})

	assert.Contains(t, buf.String(), "Bow.\n")
	assert.Contains(t, buf.String(), "Confidence: 80%")
	assert.Contains(t, buf.String(), "Sources: a; b")
}

func TestClearCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "answers")
	require.NoError(t, cache.NewDiskCache(dir, time.Hour).Set("k", []byte("v"), 0))

	var buf bytes.Buffer
	require.NoError(t, clearCache(&buf, model.CacheConfig{Dir: dir, MemoryTTL: time.Minute, DiskTTL: time.Hour}))

	assert.Contains(t, buf.String(), "Cleared cache")
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestClearCache_NoDiskCache(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, clearCache(&buf, model.CacheConfig{Enabled: true}))
	assert.Contains(t, buf.String(), "No disk cache configured")
}
