package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amesa/housedraw/internal/domain"
)

var now = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func TestHouses(t *testing.T) {
	houses := Houses(now)
	require.Len(t, houses, 5)

	seen := make(map[string]bool)
	statuses := make(map[domain.HouseStatus]int)
	for _, h := range houses {
		assert.False(t, seen[h.ID], h.ID)
		seen[h.ID] = true
		statuses[h.Status]++

		assert.NotEmpty(t, h.Images, h.ID)
		assert.LessOrEqual(t, h.SoldTickets, h.TotalTickets, h.ID)
		if h.Status == domain.HouseActive {
			assert.True(t, h.LotteryEndsAt.After(now), h.ID)
		}
	}

	assert.Equal(t, 3, statuses[domain.HouseActive])
	assert.Equal(t, 1, statuses[domain.HouseUpcoming])
	assert.Equal(t, 1, statuses[domain.HouseEnded])
}

func TestTranslations(t *testing.T) {
	rows, err := Translations()
	require.NoError(t, err)

	perLang := make(map[string]map[string]string)
	for _, r := range rows {
		require.NotEmpty(t, r.Key)
		require.NotEmpty(t, r.Value, r.Key)
		if perLang[r.Language] == nil {
			perLang[r.Language] = make(map[string]string)
		}
		perLang[r.Language][r.Key] = r.Value
	}

	require.Contains(t, perLang, "en")
	require.Contains(t, perLang, "pl")

	for _, key := range []string{"purchase.success", "purchase.notFound", "purchase.inactive", "purchase.soldOut", "purchase.unavailable"} {
		assert.Contains(t, perLang["en"], key)
		assert.Contains(t, perLang["pl"], key)
	}
}

func TestResults(t *testing.T) {
	results := Results(Houses(now), now)
	require.Len(t, results, domain.MaxPrizePositions)

	for i, r := range results {
		assert.Equal(t, "5", r.HouseID)
		assert.Equal(t, i+1, r.PrizePosition)
		assert.Equal(t, results[0].DrawID, r.DrawID)
		assert.Equal(t, r.PrizePosition == 3, r.IsClaimed)
	}
	assert.Equal(t, "Grand Prize: Lakeside Cottage", results[0].PrizeDescription)
}

func TestNewMemory(t *testing.T) {
	m, err := NewMemory(context.Background(), now)
	require.NoError(t, err)

	assert.Len(t, m.Houses.GetAll(), 5)

	got, err := m.Results.ListByHouse(context.Background(), "5")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	langs, err := m.Translations.Languages(context.Background())
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.True(t, langs[0].IsDefault)
}
