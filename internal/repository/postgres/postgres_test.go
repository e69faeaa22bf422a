package postgres

import (
	"context"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amesa/housedraw/internal/domain"
	pgpool "github.com/amesa/housedraw/internal/postgres"
	"github.com/amesa/housedraw/internal/repository"
)

// newTestStore connects to TEST_POSTGRES_DSN and skips the test when it is
// not set.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := t.Context()

	pool, err := pgpool.New(ctx, pgpool.Config{DSN: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pgpool.Migrate(ctx, pool))

	return NewStore(pool)
}

func testHouse(t *testing.T, s *Store, total int) domain.House {
	t.Helper()

	h := domain.House{
		ID:            "it-" + uuid.NewString()[:8],
		Title:         "Integration House",
		Location:      "Testville",
		Images:        []domain.HouseImage{{URL: "https://example.com/a.jpg", Alt: "front"}},
		Price:         500000,
		TicketPrice:   50,
		TotalTickets:  total,
		LotteryEndsAt: time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second),
		Status:        domain.HouseActive,
	}

	require.NoError(t, s.Houses().CreateHouse(t.Context(), h))

	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = s.pool.Exec(ctx, `DELETE FROM lottery_results WHERE house_id = $1`, h.ID)
		_, _ = s.pool.Exec(ctx, `DELETE FROM tickets WHERE house_id = $1`, h.ID)
		_, _ = s.pool.Exec(ctx, `DELETE FROM houses WHERE id = $1`, h.ID)
	})

	return h
}

func sale(h domain.House, seq int) domain.TicketSale {
	return domain.TicketSale{
		TicketID:     uuid.New(),
		HouseID:      h.ID,
		Sequence:     seq,
		TicketNumber: domain.TicketNumber(h.ID, seq),
		SoldAt:       time.Now().UTC(),
	}
}

func TestHouseRepo_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	h := testHouse(t, s, 10)

	got, err := s.Houses().GetHouse(t.Context(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.Title, got.Title)
	assert.Equal(t, h.Images, got.Images)
	assert.Equal(t, domain.HouseActive, got.Status)

	err = s.Houses().CreateHouse(t.Context(), h)
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = s.Houses().GetHouse(t.Context(), "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHouseRepo_RecordSale(t *testing.T) {
	s := newTestStore(t)
	h := testHouse(t, s, 2)
	repo := s.Houses()

	require.NoError(t, repo.RecordSale(t.Context(), sale(h, 1)))

	// same sequence again: the stored counter already moved
	err := repo.RecordSale(t.Context(), sale(h, 1))
	assert.ErrorIs(t, err, repository.ErrConflict)

	require.NoError(t, repo.RecordSale(t.Context(), sale(h, 2)))

	err = repo.RecordSale(t.Context(), sale(h, 3))
	assert.ErrorIs(t, err, repository.ErrConflict)

	got, err := repo.GetHouse(t.Context(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SoldTickets)
}

func TestHouseRepo_RecordSaleInactive(t *testing.T) {
	s := newTestStore(t)
	h := testHouse(t, s, 5)
	repo := s.Houses()

	require.NoError(t, repo.SetStatus(t.Context(), h.ID, domain.HouseEnded))

	err := repo.RecordSale(t.Context(), sale(h, 1))
	assert.ErrorIs(t, err, repository.ErrConflict)

	err = repo.SetStatus(t.Context(), "missing-"+uuid.NewString(), domain.HouseEnded)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResultRepo_SaveDrawAndClaim(t *testing.T) {
	s := newTestStore(t)
	h := testHouse(t, s, 5)
	repo := s.Results()
	now := time.Now().UTC().Truncate(time.Second)
	drawID := uuid.New()

	res := domain.LotteryResult{
		ID:                 uuid.New(),
		HouseID:            h.ID,
		DrawID:             drawID,
		WinnerTicketNumber: domain.TicketNumber(h.ID, 3),
		PrizePosition:      1,
		PrizeType:          domain.PrizeType(1),
		PrizeValue:         domain.PrizeValue(1, h.Price),
		PrizeDescription:   domain.PrizeDescription(1, h.Title),
		IsVerified:         true,
		ResultDate:         now,
		CreatedAt:          now,
	}

	require.NoError(t, repo.SaveDraw(t.Context(), []domain.LotteryResult{res}))

	dup := res
	dup.ID = uuid.New()
	err := repo.SaveDraw(t.Context(), []domain.LotteryResult{dup})
	assert.ErrorIs(t, err, repository.ErrAlreadyDrawn)

	list, err := repo.ListByHouse(t.Context(), h.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.WinnerTicketNumber, list[0].WinnerTicketNumber)
	assert.False(t, list[0].IsClaimed)

	claimed, err := repo.Claim(t.Context(), res.ID, now)
	require.NoError(t, err)
	assert.True(t, claimed.IsClaimed)
	require.NotNil(t, claimed.ClaimedAt)

	_, err = repo.Claim(t.Context(), res.ID, now)
	assert.ErrorIs(t, err, repository.ErrAlreadyClaimed)

	_, err = repo.Claim(t.Context(), uuid.New(), now)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTranslationRepo_Upsert(t *testing.T) {
	s := newTestStore(t)
	repo := s.Translations()
	ctx := t.Context()

	require.NoError(t, repo.UpsertLanguages(ctx, []domain.Language{
		{Code: "zz", Name: "Test", NativeName: "Test", IsActive: true, DisplayOrder: 99},
	}))

	key := "it." + uuid.NewString()[:8]
	t.Cleanup(func() {
		_, _ = s.pool.Exec(context.Background(), `DELETE FROM translations WHERE language_code = 'zz'`)
		_, _ = s.pool.Exec(context.Background(), `DELETE FROM languages WHERE code = 'zz'`)
	})

	n, err := repo.Upsert(ctx, []domain.Translation{{Language: "zz", Key: key, Value: "one", Category: "it"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.Upsert(ctx, []domain.Translation{{Language: "zz", Key: key, Value: "two", Category: "it"}})
	require.NoError(t, err)

	cat, err := repo.Catalog(ctx, "zz")
	require.NoError(t, err)
	assert.Equal(t, "two", cat[key])

	langs, err := repo.Languages(ctx)
	require.NoError(t, err)
	assert.True(t, slices.ContainsFunc(langs, func(l domain.Language) bool { return l.Code == "zz" }))

	_, err = repo.Upsert(ctx, []domain.Translation{{Language: "zy", Key: key, Value: "x"}})
	assert.ErrorIs(t, err, repository.ErrMissingParent)
}
