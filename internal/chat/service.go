// Package chat answers user questions: it matches facts, then either asks the
// LLM enricher or composes a templated answer. Enrichment problems never reach
// the caller; the composed answer is always available.
package chat

import (
	"context"
	"time"

	"github.com/culturecoders/culturebot/internal/cache"
	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/compose"
	"github.com/culturecoders/culturebot/internal/llm"
	"github.com/culturecoders/culturebot/internal/match"
	"github.com/culturecoders/culturebot/internal/model"
	"github.com/culturecoders/culturebot/internal/observability"
	"github.com/culturecoders/culturebot/internal/worker"
)

// Enricher is the optional LLM path. *llm.Enricher satisfies it.
type Enricher interface {
	IsEnabled() bool
	ProviderName() string
	Model() string
	Enrich(ctx context.Context, query string, facts []model.Fact) (*llm.Enrichment, error)
	Ping(ctx context.Context) error
}

// Service answers chat requests
type Service struct {
	catalog  *catalog.Catalog
	composer *compose.Composer
	enricher Enricher
	limiter  *worker.Limiter
	waitTurn bool
	cache    cache.Cache
	cacheTTL time.Duration
	timeout  time.Duration
	logger   *observability.Logger
}

var _ worker.Answerer = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(logger *observability.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLimiter rate limits enrichment per user. Refused users get the
// composed answer.
func WithLimiter(limiter *worker.Limiter) Option {
	return func(s *Service) { s.limiter = limiter }
}

// WaitForLimiter makes over-limit users wait for a token instead of getting
// the composed answer. Batch runs use it; interactive chat does not.
func WaitForLimiter() Option {
	return func(s *Service) { s.waitTurn = true }
}

// WithCache stores enriched answers for ttl (0 uses the cache default)
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithEnrichTimeout bounds a single enrichment call
func WithEnrichTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a chat service. enricher may be nil.
func NewService(cat *catalog.Catalog, composer *compose.Composer, enricher Enricher, opts ...Option) *Service {
	s := &Service{
		catalog:  cat,
		composer: composer,
		enricher: enricher,
		logger:   observability.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnrichmentEnabled reports whether answers may come from an LLM
func (s *Service) EnrichmentEnabled() bool {
	return s.enricher != nil && s.enricher.IsEnabled()
}

// Respond answers one request. It never fails.
func (s *Service) Respond(ctx context.Context, req model.ChatRequest) model.ChatResponse {
	start := time.Now()
	log := s.logger.WithContext(ctx).WithOperation("chat")

	matches, tier := match.MatchTier(req.Message, s.catalog.Records())

	resp, ok := s.enrich(ctx, log, req, matches)
	if !ok {
		resp = model.ChatResponse{
			Answer: s.composer.Compose(req.Message, matches),
			Origin: model.OriginTemplate,
		}
		if len(matches) == 0 {
			resp.Origin = model.OriginFallback
		}
	}

	log.Debug().
		Str("user_id", req.User()).
		Str("tier", string(tier)).
		Int("matches", len(matches)).
		Str("origin", string(resp.Origin)).
		Float64("confidence", resp.Confidence).
		Dur("latency", time.Since(start)).
		Msg("answered")

	return resp
}

// PingEnricher checks the configured provider. It returns llm.ErrDisabled
// when enrichment is off.
func (s *Service) PingEnricher(ctx context.Context) error {
	if !s.EnrichmentEnabled() {
		return llm.ErrDisabled
	}
	return s.enricher.Ping(ctx)
}

// admit applies the per-user limiter
func (s *Service) admit(ctx context.Context, log *observability.Logger, user string) bool {
	if s.limiter == nil {
		return true
	}

	if s.waitTurn {
		if err := s.limiter.Wait(ctx, user); err != nil {
			log.Warn().Err(err).Str("user_id", user).Msg("gave up waiting for rate limiter, using composed answer")
			return false
		}
		return true
	}

	if !s.limiter.Allow(user) {
		log.Warn().Str("user_id", user).Msg("enrichment rate limited, using composed answer")
		return false
	}
	return true
}

// enrich tries the LLM path. ok is false whenever the composed answer should
// be used instead.
func (s *Service) enrich(ctx context.Context, log *observability.Logger, req model.ChatRequest, matches []model.Fact) (model.ChatResponse, bool) {
	if !s.EnrichmentEnabled() {
		return model.ChatResponse{}, false
	}

	provider := s.enricher.ProviderName()
	key := cache.Key(provider, s.enricher.Model(), req.Message)

	if answer, hit := cache.GetAnswer(s.cache, key); hit {
		return model.ChatResponse{Answer: answer, Origin: model.OriginCache, Provider: provider}, true
	}

	if !s.admit(ctx, log, req.User()) {
		return model.ChatResponse{}, false
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	enrichment, err := s.enricher.Enrich(ctx, req.Message, matches)
	if err != nil {
		log.Warn().Err(err).Str("provider", provider).Msg("enrichment failed, using composed answer")
		return model.ChatResponse{}, false
	}

	sources := make([]string, 0, len(matches))
	for _, f := range matches {
		sources = append(sources, f.Source)
	}

	answer := model.Answer{
		Text:       enrichment.Text,
		Confidence: enrichment.Confidence,
		Sources:    sources,
		Category:   compose.DetectTopic(req.Message),
	}

	if err := cache.SetAnswer(s.cache, key, answer, s.cacheTTL); err != nil {
		log.Warn().Err(err).Msg("cache enriched answer")
	}

	log.Info().
		Str("provider", enrichment.Provider).
		Str("model", enrichment.Model).
		Int("tokens", enrichment.TokensUsed).
		Msg("enriched answer")

	return model.ChatResponse{Answer: answer, Origin: model.OriginLLM, Provider: provider}, true
}
