package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/culturecoders/culturebot/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one system+user exchange and returns the reply
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Ping checks that the provider is configured and reachable
	Ping(ctx context.Context) error
}

// CompletionRequest contains the input for one completion
type CompletionRequest struct {
	// System is the persona prompt (empty uses SystemPrompt)
	System string

	// Prompt is the user turn, including any fact context
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling (0 uses the provider config)
	Temperature float32
}

// CompletionResponse contains the provider's reply
type CompletionResponse struct {
	// Text is the generated reply
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests; 0 uses DefaultTimeout
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for response generation
	Temperature float32

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

const (
	defaultTimeout       = 30 * time.Second
	defaultOllamaTimeout = 60 * time.Second // local models are slower
)

// DefaultTimeout is the request timeout for provider when Config.Timeout is 0
func DefaultTimeout(provider string) time.Duration {
	if strings.EqualFold(provider, "ollama") {
		return defaultOllamaTimeout
	}
	return defaultTimeout
}

func (c Config) requestTimeout(provider string) time.Duration {
	if c.Timeout > 0 {
		return time.Duration(c.Timeout) * time.Second
	}
	return DefaultTimeout(provider)
}

// SystemPrompt is the CultureBot persona sent with every completion
const SystemPrompt = `You are CultureBot, an expert AI assistant specializing in cultural knowledge from around the world.
You provide accurate, respectful, and insightful information about:
- Cultural customs and traditions
- Social etiquette and norms
- Business practices across cultures
- Food customs and dining etiquette
- Religious and spiritual practices
- Language and communication styles
- Family structures and relationships
- Festivals and celebrations

Guidelines:
1. Always be respectful and avoid stereotypes
2. Acknowledge cultural diversity within countries
3. Provide context and explain the reasoning behind customs
4. Mention when practices may vary by region or generation
5. Be educational and engaging
6. If unsure, acknowledge limitations and suggest further research

Keep responses informative but conversational, and always maintain cultural sensitivity.`

// maxContextFacts bounds the facts quoted in a prompt
const maxContextFacts = 3

// BuildPrompt appends the best matching facts to the user's question
func BuildPrompt(query string, facts []model.Fact) string {
	var b strings.Builder
	b.WriteString(query)

	if len(facts) == 0 {
		return b.String()
	}

	b.WriteString("\n\nRelevant cultural information:\n")
	for i, f := range facts {
		if i >= maxContextFacts {
			break
		}
		fmt.Fprintf(&b, "- %s: %s (Category: %s)\n", f.Country, f.Text, f.Category)
	}

	return b.String()
}

// resolve fills request defaults from the provider config
func resolve(req CompletionRequest, cfg Config, defaultModel string) CompletionRequest {
	if req.System == "" {
		req.System = SystemPrompt
	}
	if req.Model == "" {
		req.Model = cfg.Model
	}
	if req.Model == "" {
		req.Model = defaultModel
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = cfg.MaxTokens
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = 500
	}
	if req.Temperature == 0 {
		req.Temperature = cfg.Temperature
	}
	return req
}
