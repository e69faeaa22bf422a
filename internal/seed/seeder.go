package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository/memory"
	postgresrepo "github.com/amesa/housedraw/internal/repository/postgres"
	"github.com/amesa/housedraw/internal/uow"
)

// Memory holds stores filled with the built-in catalog.
type Memory struct {
	Houses       *memory.HouseStore
	Results      *memory.ResultStore
	Translations *memory.TranslationStore
}

// NewMemory builds in-memory stores from the fixtures.
func NewMemory(ctx context.Context, now time.Time) (*Memory, error) {
	const op = "seed.NewMemory"

	rows, err := Translations()
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	houses := Houses(now)

	m := &Memory{
		Houses:       memory.NewHouseStore(),
		Results:      memory.NewResultStore(),
		Translations: memory.NewTranslationStore(Languages(), rows),
	}
	m.Houses.Load(houses)

	if err := saveDraws(ctx, m.Results, Results(houses, now)); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return m, nil
}

type drawSaver interface {
	SaveDraw(ctx context.Context, results []domain.LotteryResult) error
}

// saveDraws stores results one draw at a time.
func saveDraws(ctx context.Context, repo drawSaver, results []domain.LotteryResult) error {
	for start := 0; start < len(results); {
		end := start
		for end < len(results) && results[end].DrawID == results[start].DrawID {
			end++
		}

		if err := repo.SaveDraw(ctx, results[start:end]); err != nil {
			return err
		}

		start = end
	}

	return nil
}

// Postgres fills empty tables with the built-in catalog in one transaction.
// Each table is seeded only if it has no rows yet.
func Postgres(ctx context.Context, store *postgresrepo.Store, logger *slog.Logger, now time.Time) error {
	const op = "seed.Postgres"

	rows, err := Translations()
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	houses := Houses(now)

	err = uow.NewUoW(store).Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		houseRepo := store.Houses().With(tx)
		resultRepo := store.Results().With(tx)
		i18nRepo := store.Translations().With(tx)

		n, err := houseRepo.CountHouses(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			if err := houseRepo.BatchCreateHouses(ctx, houses); err != nil {
				return err
			}
			after(func(context.Context) { logger.Info("seeded houses", "count", len(houses)) })
		}

		if err := i18nRepo.UpsertLanguages(ctx, Languages()); err != nil {
			return err
		}

		n, err = i18nRepo.CountTranslations(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			if _, err := i18nRepo.Upsert(ctx, rows); err != nil {
				return err
			}
			after(func(context.Context) { logger.Info("seeded translations", "count", len(rows)) })
		}

		n, err = resultRepo.CountResults(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			stored, err := houseRepo.LoadAll(ctx)
			if err != nil {
				return err
			}

			results := Results(stored, now)
			if err := saveDraws(ctx, resultRepo, results); err != nil {
				return err
			}
			after(func(context.Context) { logger.Info("seeded lottery results", "count", len(results)) })
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}
