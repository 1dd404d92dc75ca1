package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/culturecoders/culturebot/internal/cache"
	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/chat"
	"github.com/culturecoders/culturebot/internal/compose"
	"github.com/culturecoders/culturebot/internal/llm"
	"github.com/culturecoders/culturebot/internal/model"
	"github.com/culturecoders/culturebot/internal/observability"
	"github.com/culturecoders/culturebot/internal/worker"
)

// app is the wired object graph shared by the commands
type app struct {
	cfg      *model.Config
	logger   *observability.Logger
	catalog  *catalog.Catalog
	profiles *catalog.ProfileDirectory
	enricher *llm.Enricher
	chat     *chat.Service
}

// newApp loads configuration and builds the catalog, the optional enricher
// and the chat service. extra options are applied to the chat service last.
func newApp(extra ...chat.Option) (*app, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if noCache, _ := rootCmd.PersistentFlags().GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
	return buildApp(cfg, extra...)
}

func buildApp(cfg *model.Config, extra ...chat.Option) (*app, error) {
	logger := observability.NewLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	profiles, err := catalog.LoadProfiles()
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	enricher, err := llm.NewEnricher(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	opts := []chat.Option{
		chat.WithLogger(logger),
		chat.WithLimiter(worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)),
	}
	if c := cache.New(cfg.Cache); c != nil {
		opts = append(opts, chat.WithCache(c, 0))
	}
	if enricher.IsEnabled() {
		opts = append(opts, chat.WithEnrichTimeout(enricher.Timeout()))
	}

	opts = append(opts, extra...)

	svc := chat.NewService(cat, compose.New(cat, nil), enricher, opts...)

	if enricher.IsEnabled() {
		logger.Debug().
			Str("provider", enricher.ProviderName()).
			Str("model", enricher.Model()).
			Msg("LLM enrichment enabled")
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		catalog:  cat,
		profiles: profiles,
		enricher: enricher,
		chat:     svc,
	}, nil
}
