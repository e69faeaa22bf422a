package service

import (
	"context"
	"log/slog"

	"github.com/amesa/housedraw/internal/carousel"
	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository/memory"
	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
	"github.com/amesa/housedraw/internal/service/admin"
	"github.com/amesa/housedraw/internal/service/i18n"
	"github.com/amesa/housedraw/internal/service/listing"
	"github.com/amesa/housedraw/internal/service/purchase"
	"github.com/amesa/housedraw/internal/service/results"
)

type Services struct {
	Listing  *listing.Service
	Purchase *purchase.Service
	Results  *results.Service
	I18n     *i18n.Service
	Admin    *admin.Service
	Carousel *carousel.Carousel
}

type Config struct {
	Purchase purchase.Config
	Results  results.Config
	I18n     i18n.Config
	Carousel []carousel.Option
}

// Deps are the stores behind the services. Ledger and HouseWriter stay nil
// when no database is configured.
type Deps struct {
	Inventory    *memory.HouseStore
	Ledger       purchase.Ledger
	HouseWriter  admin.HouseWriter
	Results      results.Repository
	Translations i18n.Repository
	Cache        *redisrepo.Cache
	Publisher    *redisrepo.HousesPubSub
}

func NewServices(deps Deps, cfg Config, logger *slog.Logger) *Services {
	listingSvc := listing.New(deps.Inventory)

	return &Services{
		Listing:  listingSvc,
		Purchase: purchase.New(deps.Inventory, deps.Ledger, deps.Publisher, logger, cfg.Purchase),
		Results:  results.New(deps.Inventory, deps.Results, deps.Cache, deps.Publisher, logger, cfg.Results),
		I18n:     i18n.New(deps.Translations, deps.Cache, logger, cfg.I18n),
		Admin:    admin.New(deps.Inventory, deps.HouseWriter, deps.Publisher, logger),
		Carousel: carousel.New(
			func() []domain.House { return listingSvc.Active(context.Background()) },
			append([]carousel.Option{carousel.WithLogger(logger)}, cfg.Carousel...)...,
		),
	}
}
