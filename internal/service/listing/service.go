package listing

import (
	"context"
	"fmt"

	"github.com/amesa/housedraw/internal/domain"
)

type Inventory interface {
	GetAll() []domain.House
	GetByID(id string) (domain.House, bool)
}

// Service answers read-only questions about houses. Every call reads the
// live inventory, so results always reflect the latest sales.
type Service struct {
	inventory Inventory
}

func New(inventory Inventory) *Service {
	return &Service{inventory: inventory}
}

func (s *Service) All(_ context.Context) []domain.House {
	return s.inventory.GetAll()
}

// ByID returns one house.
//
// Returns:
//   - *domain.House: the house, or nil if not found.
//   - error: listing.ErrHouseNotFound if the house is unknown.
func (s *Service) ByID(_ context.Context, id string) (*domain.House, error) {
	const op = "service.listing.ByID"

	h, ok := s.inventory.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrHouseNotFound)
	}

	return &h, nil
}

func (s *Service) Active(ctx context.Context) []domain.House {
	return s.filter(domain.HouseActive)
}

func (s *Service) Upcoming(ctx context.Context) []domain.House {
	return s.filter(domain.HouseUpcoming)
}

func (s *Service) Ended(ctx context.Context) []domain.House {
	return s.filter(domain.HouseEnded)
}

// ByStatus filters houses by lottery phase. An empty status lists all houses.
//
// Returns:
//   - error: listing.ErrInvalidStatus for an unknown status.
func (s *Service) ByStatus(ctx context.Context, status domain.HouseStatus) ([]domain.House, error) {
	const op = "service.listing.ByStatus"

	if status == "" {
		return s.All(ctx), nil
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
	}

	return s.filter(status), nil
}

func (s *Service) filter(status domain.HouseStatus) []domain.House {
	all := s.inventory.GetAll()

	out := make([]domain.House, 0, len(all))
	for _, h := range all {
		if h.Status == status {
			out = append(out, h)
		}
	}

	return out
}
