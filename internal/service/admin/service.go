package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
)

type Inventory interface {
	GetAll() []domain.House
	Add(h domain.House) error
	SetStatus(id string, status domain.HouseStatus) (domain.House, error)
}

// HouseWriter persists catalog changes. Nil when running without a database.
type HouseWriter interface {
	CreateHouse(ctx context.Context, h domain.House) error
	SetStatus(ctx context.Context, id string, status domain.HouseStatus) error
}

type Publisher interface {
	PublishHouseChanged(ctx context.Context, houseID string) error
}

type Service struct {
	inventory Inventory
	writer    HouseWriter
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func New(inventory Inventory, writer HouseWriter, publisher Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		inventory: inventory,
		writer:    writer,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateHouse adds a house to the catalog. A missing ID is generated and a
// missing status defaults to upcoming.
//
// Parameters:
//   - ctx: request-scoped context.
//   - h: the house to create; SoldTickets must be within TotalTickets.
//
// Returns:
//   - *domain.House: the stored house.
//   - error: admin.ErrInvalidHouse, admin.ErrInvalidStatus or
//     admin.ErrHouseConflict if the ID is taken.
func (s *Service) CreateHouse(ctx context.Context, h domain.House) (*domain.House, error) {
	const op = "service.admin.CreateHouse"

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	if h.Status == "" {
		h.Status = domain.HouseUpcoming
	}

	if !h.Status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if h.Title == "" || h.TotalTickets <= 0 || h.SoldTickets < 0 || h.SoldTickets > h.TotalTickets {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidHouse)
	}

	if s.writer != nil {
		if err := s.writer.CreateHouse(ctx, h); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, fmt.Errorf("%s: %w", op, ErrHouseConflict)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := s.inventory.Add(h); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: %w", op, ErrHouseConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, h.ID)

	s.logger.Info("house created", "house_id", h.ID, "status", h.Status)

	return &h, nil
}

// SetStatus moves a house to another lottery phase. The stored record is
// updated before the in-memory one.
//
// Returns:
//   - error: admin.ErrInvalidStatus or admin.ErrHouseNotFound.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.HouseStatus) (*domain.House, error) {
	const op = "service.admin.SetStatus"

	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	if s.writer != nil {
		if err := s.writer.SetStatus(ctx, id, status); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrHouseNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	h, err := s.inventory.SetStatus(id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrHouseNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, id)

	return &h, nil
}

// CloseExpired ends every active lottery whose end date has passed.
//
// Returns:
//   - int: number of houses moved to ended.
//   - error: the first failure; houses before it stay closed.
func (s *Service) CloseExpired(ctx context.Context) (int, error) {
	const op = "service.admin.CloseExpired"

	now := s.now()
	closed := 0

	for _, h := range s.inventory.GetAll() {
		if h.Status != domain.HouseActive || h.LotteryEndsAt.IsZero() || h.LotteryEndsAt.After(now) {
			continue
		}

		if _, err := s.SetStatus(ctx, h.ID, domain.HouseEnded); err != nil {
			return closed, fmt.Errorf("%s: %w", op, err)
		}

		s.logger.Info("lottery closed", "house_id", h.ID, "ended_at", h.LotteryEndsAt)
		closed++
	}

	return closed, nil
}

// RunSweeper calls CloseExpired every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.CloseExpired(ctx); err != nil {
				s.logger.Error("close expired lotteries failed", "error", err)
			}
		}
	}
}

func (s *Service) publish(ctx context.Context, houseID string) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishHouseChanged(ctx, houseID); err != nil {
		s.logger.Warn("publish house change failed", "house_id", houseID, "error", err)
	}
}
