package purchase

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

// Inventory is the in-memory house store.
type Inventory interface {
	SellTicket(ctx context.Context, id string, commit repository.CommitFunc) (domain.House, error)
	Replace(h domain.House)
}

// Ledger is the durable record of sales. Nil when running without a database.
type Ledger interface {
	RecordSale(ctx context.Context, sale domain.TicketSale) error
	GetHouse(ctx context.Context, id string) (*domain.House, error)
}

type Publisher interface {
	PublishHouseChanged(ctx context.Context, houseID string) error
}

type Config struct {
	// Timeout bounds each ledger call.
	Timeout time.Duration
	// MaxRetries is how many times a sale raced by another instance is retried.
	MaxRetries int
}

type Service struct {
	inventory Inventory
	ledger    Ledger
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
	cfg       Config
}

func New(
	inventory Inventory,
	ledger Ledger,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		inventory: inventory,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
	}
}

// Purchase sells one ticket for a house.
//
// Validation failures are reported in the result with a nil error and leave
// the inventory untouched. Checks run in order: the house exists, its lottery
// is active, tickets remain.
//
// Parameters:
//   - ctx: request-scoped context; cancellation aborts the sale.
//   - houseID: ID of the house to buy a ticket for.
//
// Returns:
//   - *domain.PurchaseResult: always non-nil.
//   - error: purchase.ErrUnavailable when the sale could not be recorded,
//     together with an "unavailable" result.
func (s *Service) Purchase(ctx context.Context, houseID string) (*domain.PurchaseResult, error) {
	const op = "service.purchase.Purchase"

	var lastErr error

	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		var sale domain.TicketSale

		house, err := s.inventory.SellTicket(ctx, houseID, func(ctx context.Context, next domain.House) error {
			sale = domain.TicketSale{
				TicketID:     uuid.New(),
				HouseID:      next.ID,
				Sequence:     next.SoldTickets,
				TicketNumber: domain.TicketNumber(next.ID, next.SoldTickets),
				SoldAt:       s.now().UTC(),
			}
			return s.record(ctx, sale)
		})
		switch {
		case err == nil:
			s.publish(ctx, house.ID)
			return domain.PurchaseSucceeded(house.Remaining(), sale.TicketNumber), nil

		case errors.Is(err, repository.ErrNotFound):
			return domain.PurchaseFailed(domain.PurchaseNotFound), nil

		case errors.Is(err, repository.ErrLotteryInactive):
			return domain.PurchaseFailed(domain.PurchaseLotteryInactive), nil

		case errors.Is(err, repository.ErrSoldOut):
			return domain.PurchaseFailed(domain.PurchaseSoldOut), nil

		case errors.Is(err, repository.ErrConflict):
			lastErr = err
			s.logger.Warn("ticket sale raced, refreshing house",
				"house_id", houseID, "attempt", attempt+1)
			if rerr := s.refresh(ctx, houseID); rerr != nil {
				lastErr = rerr
				break
			}
			continue

		default:
			lastErr = err
		}

		break
	}

	s.logger.Error("ticket sale failed", "house_id", houseID, "error", lastErr)

	return domain.PurchaseFailed(domain.PurchaseUnavailable),
		fmt.Errorf("%s: %w", op, errors.Join(ErrUnavailable, lastErr))
}

func (s *Service) record(ctx context.Context, sale domain.TicketSale) error {
	if s.ledger == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	return s.ledger.RecordSale(ctx, sale)
}

// refresh reloads a house whose stored counter moved under us.
func (s *Service) refresh(ctx context.Context, houseID string) error {
	if s.ledger == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	h, err := s.ledger.GetHouse(ctx, houseID)
	if err != nil {
		return err
	}

	s.inventory.Replace(*h)

	return nil
}

func (s *Service) publish(ctx context.Context, houseID string) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishHouseChanged(ctx, houseID); err != nil {
		s.logger.Warn("publish house change failed", "house_id", houseID, "error", err)
	}
}
