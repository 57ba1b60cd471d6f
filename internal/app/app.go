package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/brazilian-soccer/internal/config"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/teamname"
	"github.com/riskibarqy/brazilian-soccer/internal/infrastructure/csvsource"
	"github.com/riskibarqy/brazilian-soccer/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/brazilian-soccer/internal/interfaces/httpapi"
	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
	"github.com/riskibarqy/brazilian-soccer/internal/queryengine"
	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

// Sources is the record input selected by DATA_SOURCE.
type Sources struct {
	Matches match.Source
	Players player.Source
	db      *sqlx.DB
}

func (s Sources) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func NewSources(ctx context.Context, cfg config.Config, normalizer *teamname.Normalizer, logger *logging.Logger) (Sources, error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return Sources{}, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return Sources{
			Matches: postgres.NewMatchRepository(db),
			Players: postgres.NewPlayerRepository(db),
			db:      db,
		}, nil
	case config.DataSourceCSV, "":
		loader := csvsource.NewLoader(cfg.DataDir,
			csvsource.WithNormalizer(normalizer),
			csvsource.WithLogger(logger),
		)
		return Sources{Matches: loader, Players: loader}, nil
	default:
		return Sources{}, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}

// NewEngine loads every record from the configured source into memory.
func NewEngine(ctx context.Context, cfg config.Config, logger *logging.Logger) (*queryengine.Engine, error) {
	normalizer := teamname.NewNormalizer(nil)
	sources, err := NewSources(ctx, cfg, normalizer, logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sources.Close(); err != nil {
			logger.WarnContext(ctx, "close record source failed", "error", err)
		}
	}()

	return usecase.LoadEngine(ctx, sources.Matches, sources.Players, logger,
		queryengine.WithNormalizer(normalizer),
		queryengine.WithSimilarityCutoff(cfg.FuzzyCutoff),
	)
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	engine, err := NewEngine(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build query engine: %w", err)
	}

	querySvc := usecase.NewQueryService(engine, usecase.QueryConfig{
		MaxLimit:     cfg.QueryMaxLimit,
		CacheEnabled: cfg.CacheEnabled,
		CacheTTL:     cfg.CacheTTL,
	})
	handler := httpapi.NewHandler(querySvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// NewImporter wires the CSV loader as source and postgres as destination.
// The returned close func releases the database handle.
func NewImporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.ImportService, func() error, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}

	loader := csvsource.NewLoader(cfg.DataDir, csvsource.WithLogger(logger))
	svc := usecase.NewImportService(
		loader,
		loader,
		postgres.NewMatchRepository(db),
		postgres.NewPlayerRepository(db),
		cfg.ImportWorkers,
		logger,
	)
	return svc, db.Close, nil
}
