package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/amesa/housedraw/internal/carousel"
	"github.com/amesa/housedraw/internal/config"
	"github.com/amesa/housedraw/internal/postgres"
	"github.com/amesa/housedraw/internal/redis"
	"github.com/amesa/housedraw/internal/repository"
	"github.com/amesa/housedraw/internal/repository/memory"
	postgresrepo "github.com/amesa/housedraw/internal/repository/postgres"
	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
	"github.com/amesa/housedraw/internal/seed"
	"github.com/amesa/housedraw/internal/service"
	"github.com/amesa/housedraw/internal/service/i18n"
	"github.com/amesa/housedraw/internal/service/purchase"
	httpgin "github.com/amesa/housedraw/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	services   *service.Services
	inventory  *memory.HouseStore

	pool   *pgxpool.Pool
	store  *postgresrepo.Store
	rdb    *goredis.Client
	cache  *redisrepo.Cache
	pubsub *redisrepo.HousesPubSub
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	deps, err := a.initStorage(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	opts := httpgin.Options{
		IdemLockTTL: cfg.Idempotency.LockTTL,
		AdminSecret: cfg.Auth.AdminJWTSecret,
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	if cfg.Redis.Enabled() {
		rdb, err := redis.New(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}

		a.rdb = rdb
		a.cache = redisrepo.New(rdb)
		a.pubsub = redisrepo.NewHousesPubSub(rdb, uuid.NewString())

		opts.Limiter = redisrepo.NewSlidingWindowLimiter(rdb, "purchase", cfg.RateLimit.Limit, cfg.RateLimit.Window)
		opts.Idempotency = redisrepo.NewIdempotencyStore(rdb, cfg.Idempotency.TTL)
	} else {
		logger.Warn("redis not configured: caching, rate limiting and idempotency keys are off")
	}

	deps.Cache = a.cache
	deps.Publisher = a.pubsub

	carouselOpts := []carousel.Option{carousel.WithInterval(cfg.Carousel.Interval)}
	if cfg.Carousel.Prefetch {
		carouselOpts = append(carouselOpts, carousel.WithPrefetcher(carousel.NewHTTPPrefetcher(nil)))
	}

	a.services = service.NewServices(deps, service.Config{
		Purchase: purchase.Config{
			Timeout:    cfg.Purchase.Timeout,
			MaxRetries: cfg.Purchase.MaxRetries,
		},
		I18n:     i18n.Config{},
		Carousel: carouselOpts,
	}, logger)

	router := httpgin.NewRouter(a.services, opts, logger)

	a.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

// initStorage loads the house inventory either from PostgreSQL or from the
// built-in fixtures.
func (a *App) initStorage(ctx context.Context) (service.Deps, error) {
	a.inventory = memory.NewHouseStore()

	if !a.cfg.Postgres.Enabled() {
		a.logger.Warn("postgres not configured: state is kept in memory only")

		if !a.cfg.SeedOnStart {
			return service.Deps{
				Inventory:    a.inventory,
				Results:      memory.NewResultStore(),
				Translations: memory.NewTranslationStore(seed.Languages(), nil),
			}, nil
		}

		m, err := seed.NewMemory(ctx, time.Now())
		if err != nil {
			return service.Deps{}, fmt.Errorf("failed to seed memory store: %w", err)
		}

		a.inventory = m.Houses

		return service.Deps{
			Inventory:    m.Houses,
			Results:      m.Results,
			Translations: m.Translations,
		}, nil
	}

	pool, err := postgres.New(ctx, postgres.Config{
		DSN:      a.cfg.Postgres.ConnString(),
		MaxConns: a.cfg.Postgres.MaxConns,
	})
	if err != nil {
		return service.Deps{}, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	a.pool = pool

	if err := postgres.Migrate(ctx, pool); err != nil {
		return service.Deps{}, fmt.Errorf("failed to migrate postgres: %w", err)
	}

	a.store = postgresrepo.NewStore(pool)

	if a.cfg.SeedOnStart {
		if err := seed.Postgres(ctx, a.store, a.logger, time.Now()); err != nil {
			return service.Deps{}, fmt.Errorf("failed to seed postgres: %w", err)
		}
	}

	houses, err := a.store.Houses().LoadAll(ctx)
	if err != nil {
		return service.Deps{}, fmt.Errorf("failed to load houses: %w", err)
	}

	a.inventory.Load(houses)
	a.logger.Info("inventory loaded", "houses", len(houses))

	return service.Deps{
		Inventory:    a.inventory,
		Ledger:       a.store.Houses(),
		HouseWriter:  a.store.Houses(),
		Results:      a.store.Results(),
		Translations: a.store.Translations(),
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	defer a.close()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening", "addr", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	g.Go(func() error {
		return a.services.Admin.RunSweeper(gCtx, a.cfg.SweepInterval)
	})

	a.services.Carousel.Start()
	g.Go(func() error {
		<-gCtx.Done()
		a.services.Carousel.Close()
		return nil
	})

	if a.pubsub != nil {
		g.Go(func() error {
			err := a.pubsub.Subscribe(gCtx, a.onHouseChanged)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("house change subscription: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// onHouseChanged reloads a house another instance changed.
func (a *App) onHouseChanged(ctx context.Context, houseID string) {
	if err := a.cache.InvalidateHouse(ctx, houseID); err != nil {
		a.logger.Warn("invalidate results cache failed", "house_id", houseID, "error", err)
	}

	if a.store == nil {
		return
	}

	h, err := a.store.Houses().GetHouse(ctx, houseID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			a.logger.Warn("refresh house failed", "house_id", houseID, "error", err)
		}
		return
	}

	a.inventory.Replace(*h)
}

func (a *App) close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}

	if a.pool != nil {
		a.pool.Close()
	}
}
