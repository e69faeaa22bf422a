package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
)

// houseEntry guards one house with two locks. sale serialises every writer,
// including the commit hook, while mu only covers copying the value in or out,
// so readers never wait on a ledger round trip.
type houseEntry struct {
	sale  sync.Mutex
	mu    sync.RWMutex
	house domain.House
}

func (e *houseEntry) load() domain.House {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.house.Clone()
}

func (e *houseEntry) store(h domain.House) {
	e.mu.Lock()
	e.house = h
	e.mu.Unlock()
}

// HouseStore is the in-memory house inventory. Reads take a snapshot, every
// mutation of a single house is serialised by that house's sale lock.
type HouseStore struct {
	mu     sync.RWMutex
	order  []string
	houses map[string]*houseEntry
}

func NewHouseStore() *HouseStore {
	return &HouseStore{houses: make(map[string]*houseEntry)}
}

// Load replaces the whole catalog, keeping the given order.
func (s *HouseStore) Load(houses []domain.House) {
	order := make([]string, 0, len(houses))
	idx := make(map[string]*houseEntry, len(houses))

	for _, h := range houses {
		if _, dup := idx[h.ID]; dup {
			continue
		}
		order = append(order, h.ID)
		idx[h.ID] = &houseEntry{house: h.Clone()}
	}

	s.mu.Lock()
	s.order = order
	s.houses = idx
	s.mu.Unlock()
}

func (s *HouseStore) GetAll() []domain.House {
	s.mu.RLock()
	entries := make([]*houseEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.houses[id])
	}
	s.mu.RUnlock()

	out := make([]domain.House, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.load())
	}

	return out
}

func (s *HouseStore) GetByID(id string) (domain.House, bool) {
	e, ok := s.entry(id)
	if !ok {
		return domain.House{}, false
	}

	return e.load(), true
}

// Add appends a new house to the catalog.
//
// Returns:
//   - error: repository.ErrConflict if a house with the same ID exists.
func (s *HouseStore) Add(h domain.House) error {
	const op = "memory.HouseStore.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.houses[h.ID]; ok {
		return fmt.Errorf("%s:%w", op, repository.ErrConflict)
	}

	s.order = append(s.order, h.ID)
	s.houses[h.ID] = &houseEntry{house: h.Clone()}

	return nil
}

// Replace overwrites a house with a fresher copy, e.g. one re-read from the
// database. Unknown houses are appended.
func (s *HouseStore) Replace(h domain.House) {
	s.mu.Lock()
	e, ok := s.houses[h.ID]
	if !ok {
		s.order = append(s.order, h.ID)
		s.houses[h.ID] = &houseEntry{house: h.Clone()}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	e.sale.Lock()
	defer e.sale.Unlock()

	e.store(h.Clone())
}

// SetStatus moves a house to another lottery phase.
//
// Returns:
//   - domain.House: the updated house.
//   - error: repository.ErrNotFound if the house is unknown.
func (s *HouseStore) SetStatus(id string, status domain.HouseStatus) (domain.House, error) {
	const op = "memory.HouseStore.SetStatus"

	e, ok := s.entry(id)
	if !ok {
		return domain.House{}, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	e.sale.Lock()
	defer e.sale.Unlock()

	next := e.load()
	next.Status = status
	e.store(next)

	return next.Clone(), nil
}

// SellTicket validates and applies one ticket sale as a single critical
// section. Checks run in order: existence, active status, remaining tickets.
// commit may be nil; when it fails the house is left untouched. Readers keep
// seeing the previous value until commit returns.
//
// Returns:
//   - domain.House: the house after the sale.
//   - error: repository.ErrNotFound, repository.ErrLotteryInactive,
//     repository.ErrSoldOut, or the error returned by commit.
func (s *HouseStore) SellTicket(ctx context.Context, id string, commit repository.CommitFunc) (domain.House, error) {
	const op = "memory.HouseStore.SellTicket"

	e, ok := s.entry(id)
	if !ok {
		return domain.House{}, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	e.sale.Lock()
	defer e.sale.Unlock()

	next := e.load()

	if next.Status != domain.HouseActive {
		return domain.House{}, fmt.Errorf("%s:%w", op, repository.ErrLotteryInactive)
	}

	if next.SoldTickets >= next.TotalTickets {
		return domain.House{}, fmt.Errorf("%s:%w", op, repository.ErrSoldOut)
	}

	if err := ctx.Err(); err != nil {
		return domain.House{}, fmt.Errorf("%s:%w", op, err)
	}

	next.SoldTickets++

	if commit != nil {
		if err := commit(ctx, next.Clone()); err != nil {
			return domain.House{}, fmt.Errorf("%s:%w", op, err)
		}
	}

	e.store(next.Clone())

	return next, nil
}

func (s *HouseStore) entry(id string) (*houseEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.houses[id]
	return e, ok
}
