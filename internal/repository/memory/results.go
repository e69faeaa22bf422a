package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
)

// ResultStore keeps lottery results when no database is configured.
type ResultStore struct {
	mu      sync.RWMutex
	results []domain.LotteryResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) ListByHouse(_ context.Context, houseID string) ([]domain.LotteryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LotteryResult, 0, domain.MaxPrizePositions)
	for _, r := range s.results {
		if r.HouseID == houseID {
			out = append(out, r)
		}
	}

	return out, nil
}

func (s *ResultStore) ListAll(_ context.Context) ([]domain.LotteryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LotteryResult, len(s.results))
	copy(out, s.results)

	return out, nil
}

// SaveDraw stores the results of one draw.
//
// Returns:
//   - error: repository.ErrAlreadyDrawn if the house already has results.
func (s *ResultStore) SaveDraw(_ context.Context, results []domain.LotteryResult) error {
	const op = "memory.ResultStore.SaveDraw"

	if len(results) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	houseID := results[0].HouseID
	for _, r := range s.results {
		if r.HouseID == houseID {
			return fmt.Errorf("%s:%w", op, repository.ErrAlreadyDrawn)
		}
	}

	s.results = append(s.results, results...)

	return nil
}

// Claim marks a result as claimed.
//
// Returns:
//   - error: repository.ErrNotFound or repository.ErrAlreadyClaimed.
func (s *ResultStore) Claim(_ context.Context, id uuid.UUID, at time.Time) (domain.LotteryResult, error) {
	const op = "memory.ResultStore.Claim"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.results {
		if s.results[i].ID != id {
			continue
		}
		if s.results[i].IsClaimed {
			return domain.LotteryResult{}, fmt.Errorf("%s:%w", op, repository.ErrAlreadyClaimed)
		}
		s.results[i].IsClaimed = true
		s.results[i].ClaimedAt = &at
		return s.results[i], nil
	}

	return domain.LotteryResult{}, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
}
