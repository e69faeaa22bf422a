package results

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
)

type Inventory interface {
	GetByID(id string) (domain.House, bool)
}

type Repository interface {
	ListByHouse(ctx context.Context, houseID string) ([]domain.LotteryResult, error)
	ListAll(ctx context.Context) ([]domain.LotteryResult, error)
	SaveDraw(ctx context.Context, results []domain.LotteryResult) error
	Claim(ctx context.Context, id uuid.UUID, at time.Time) (domain.LotteryResult, error)
}

type Publisher interface {
	PublishHouseChanged(ctx context.Context, houseID string) error
}

type Config struct {
	ResultsTTL time.Duration
}

type Service struct {
	inventory Inventory
	repo      Repository
	cache     *redisrepo.Cache
	publisher Publisher
	logger    *slog.Logger
	cfg       Config

	now  func() time.Time
	intN func(n int) int
}

func New(
	inventory Inventory,
	repo Repository,
	cache *redisrepo.Cache,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.ResultsTTL <= 0 {
		cfg.ResultsTTL = 60 * time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		inventory: inventory,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
		intN:      rand.IntN,
	}
}

// List returns the results of one house ordered by prize position. Houses
// without a draw yield an empty slice.
func (s *Service) List(ctx context.Context, houseID string) ([]domain.LotteryResult, error) {
	const op = "service.results.List"

	if _, ok := s.inventory.GetByID(houseID); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrHouseNotFound)
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyHouseResults(houseID),
		s.cfg.ResultsTTL,
		func(ctx context.Context) ([]domain.LotteryResult, error) {
			return s.repo.ListByHouse(ctx, houseID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if out == nil {
		out = []domain.LotteryResult{}
	}

	return out, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.LotteryResult, error) {
	const op = "service.results.ListAll"

	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Draw picks the winners of an ended lottery. Up to domain.MaxPrizePositions
// distinct tickets are drawn uniformly from the tickets sold.
//
// Parameters:
//   - ctx: request-scoped context.
//   - houseID: ID of the house to draw.
//
// Returns:
//   - []domain.LotteryResult: the new results ordered by prize position.
//   - error: results.ErrHouseNotFound, results.ErrNotDrawable if the house is
//     not ended or sold nothing, results.ErrAlreadyDrawn on a second draw.
func (s *Service) Draw(ctx context.Context, houseID string) ([]domain.LotteryResult, error) {
	const op = "service.results.Draw"

	house, ok := s.inventory.GetByID(houseID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrHouseNotFound)
	}

	if house.Status != domain.HouseEnded || house.SoldTickets == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNotDrawable)
	}

	drawID := uuid.New()
	now := s.now().UTC()
	winners := pickDistinct(s.intN, house.SoldTickets, domain.MaxPrizePositions)

	out := make([]domain.LotteryResult, 0, len(winners))
	for i, seq := range winners {
		pos := i + 1
		out = append(out, domain.LotteryResult{
			ID:                 uuid.New(),
			HouseID:            house.ID,
			DrawID:             drawID,
			WinnerTicketNumber: domain.TicketNumber(house.ID, seq),
			PrizePosition:      pos,
			PrizeType:          domain.PrizeType(pos),
			PrizeValue:         domain.PrizeValue(pos, house.Price),
			PrizeDescription:   domain.PrizeDescription(pos, house.Title),
			IsVerified:         true,
			ResultDate:         now,
			CreatedAt:          now,
		})
	}

	if err := s.repo.SaveDraw(ctx, out); err != nil {
		if errors.Is(err, repository.ErrAlreadyDrawn) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyDrawn)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed(ctx, house.ID)

	s.logger.Info("lottery drawn", "house_id", house.ID, "draw_id", drawID, "winners", len(out))

	return out, nil
}

// Claim marks a prize as handed over.
//
// Returns:
//   - error: results.ErrResultNotFound or results.ErrAlreadyClaimed.
func (s *Service) Claim(ctx context.Context, id uuid.UUID) (*domain.LotteryResult, error) {
	const op = "service.results.Claim"

	res, err := s.repo.Claim(ctx, id, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrResultNotFound)
		case errors.Is(err, repository.ErrAlreadyClaimed):
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyClaimed)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed(ctx, res.HouseID)

	return &res, nil
}

func (s *Service) changed(ctx context.Context, houseID string) {
	if err := s.cache.InvalidateHouse(ctx, houseID); err != nil {
		s.logger.Warn("invalidate results cache failed", "house_id", houseID, "error", err)
	}

	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishHouseChanged(ctx, houseID); err != nil {
		s.logger.Warn("publish house change failed", "house_id", houseID, "error", err)
	}
}

// pickDistinct draws min(k, n) distinct values from 1..n.
func pickDistinct(intN func(int) int, n, k int) []int {
	k = min(k, n)

	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		v := intN(n) + 1
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
