package main

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/llm"
	"clementus360/gal-bestfriend/persistence"
	"clementus360/gal-bestfriend/session"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// app is everything both commands share.
type app struct {
	cfg      config.Config
	store    persistence.Store
	sessions *session.Manager
	// upstream answers /api/chat; it never points at another proxy.
	upstream session.ExternalHandler
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg.LogLevel)

	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}

	upstream := newUpstream(cfg)
	external := upstream
	if cfg.ProxyURL != "" {
		external = llm.NewProxyClient(cfg.ProxyURL)
	}
	if external == nil {
		config.Logger.Info("No AI provider configured, replies will be written locally")
	}

	opts := session.Options{
		External:        external,
		ExternalTimeout: cfg.ExternalTimeout,
	}
	if cfg.TypingPace {
		opts.Pacer = session.SleepPacer
	}

	return &app{
		cfg:      cfg,
		store:    store,
		sessions: session.NewManager(store, opts),
		upstream: upstream,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func newStore(cfg config.Config) (persistence.Store, error) {
	driver := persistence.Driver(cfg.StoreDriver)
	opts := []persistence.Option{
		persistence.WithTTL(cfg.StateTTL),
		persistence.WithSQLitePath(cfg.SQLitePath),
		persistence.WithSupabase(cfg.SupabaseURL, cfg.SupabaseKey),
	}
	if driver == persistence.DriverRedis {
		opts = append(opts, persistence.WithRedisClient(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})))
	}
	return persistence.NewStore(driver, opts...)
}

// newUpstream returns nil when the selected provider has no key.
func newUpstream(cfg config.Config) session.ExternalHandler {
	pc := llm.ProviderConfig{Model: llm.Model(cfg.LLMProvider)}
	switch pc.Model {
	case llm.Gemini:
		pc.APIKey, pc.ModelName = cfg.GeminiAPIKey, cfg.GeminiModel
	default:
		pc.Model = llm.OpenAI
		pc.APIKey, pc.ModelName = cfg.OpenAIAPIKey, cfg.OpenAIModel
	}
	if pc.APIKey == "" {
		return nil
	}

	provider, err := llm.NewProvider(pc)
	if err != nil {
		config.Logger.Warn("Could not create AI provider: ", err)
		return nil
	}
	return llm.NewHandler(provider)
}
