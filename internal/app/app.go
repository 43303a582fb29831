package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/matchvision/external/apisports"
	"github.com/riskibarqy/matchvision/external/newsapi"
	"github.com/riskibarqy/matchvision/external/supabase"
	"github.com/riskibarqy/matchvision/internal/config"
	"github.com/riskibarqy/matchvision/internal/domain/user"
	accountmemory "github.com/riskibarqy/matchvision/internal/infrastructure/account/memory"
	"github.com/riskibarqy/matchvision/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchvision/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchvision/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	idgen "github.com/riskibarqy/matchvision/internal/platform/id"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/viewmodel"
)

// App owns the HTTP server and everything it needs to shut down cleanly.
type App struct {
	Server *http.Server

	logger  *logging.Logger
	queue   *dispatch.Queue
	session *viewmodel.Session
	db      *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	queue, err := dispatch.NewQueue(logger)
	if err != nil {
		return nil, fmt.Errorf("create main queue: %w", err)
	}
	a := &App{logger: logger, queue: queue}

	ids := idgen.NewUUIDGenerator()
	sports := apisports.NewClient(apisports.ClientConfig{
		BaseURL:        cfg.APISports.BaseURL,
		APIKey:         cfg.APISports.Key,
		Timeout:        cfg.APISports.Timeout,
		Logger:         logger,
		CircuitBreaker: cfg.APISports.Circuit.Breaker(),
		RateLimit:      cfg.APISports.RateLimit,
		RateBurst:      cfg.APISports.RateBurst,
	})
	headlines := newsapi.NewClient(newsapi.ClientConfig{
		BaseURL:        cfg.NewsAPI.BaseURL,
		APIKey:         cfg.NewsAPI.Key,
		Timeout:        cfg.NewsAPI.Timeout,
		Logger:         logger,
		CircuitBreaker: cfg.NewsAPI.Circuit.Breaker(),
		IDGenerator:    ids,
	})

	identity := newIdentity(cfg, ids, logger)
	profiles, err := a.newProfileStore(ctx, cfg)
	if err != nil {
		_ = a.Close(time.Second)
		return nil, err
	}

	a.session = viewmodel.NewSession(ctx, queue, identity, profiles, logger)
	handler := httpapi.NewHandler(httpapi.Dependencies{
		Queue:     queue,
		Leagues:   sports,
		Fixtures:  sports,
		Standings: sports,
		Players:   sports,
		News:      headlines,
		Identity:  identity,
		Profiles:  profiles,
		Session:   a.session,
		Logger:    logger,
	})

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return a, nil
}

func newIdentity(cfg config.Config, ids idgen.Generator, logger *logging.Logger) user.Identity {
	if cfg.IdentityProvider == config.IdentitySupabase {
		logger.Info("identity provider selected", "provider", config.IdentitySupabase)
		return supabase.NewClient(supabase.ClientConfig{
			BaseURL:        cfg.Supabase.URL,
			AnonKey:        cfg.Supabase.AnonKey,
			Timeout:        cfg.Supabase.Timeout,
			CircuitBreaker: cfg.Supabase.Circuit.Breaker(),
			Logger:         logger,
		})
	}
	logger.Info("identity provider selected", "provider", config.IdentityMemory)
	return accountmemory.NewIdentity(ids)
}

func (a *App) newProfileStore(ctx context.Context, cfg config.Config) (user.ProfileStore, error) {
	if cfg.DBURL == "" {
		a.logger.Info("profile store selected", "store", "memory")
		return memory.NewProfileRepository(), nil
	}

	db, err := openDB(ctx, cfg.DBURL, cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.logger.Info("profile store selected", "store", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
	return postgres.NewProfileRepository(db), nil
}

// Close stops the session, drains the main queue and closes the database.
// The HTTP server must already be shut down.
func (a *App) Close(timeout time.Duration) error {
	if a.session != nil {
		a.session.Close()
		a.session.Wait()
	}

	var errs []error
	if err := a.queue.Release(timeout); err != nil {
		errs = append(errs, fmt.Errorf("release main queue: %w", err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
