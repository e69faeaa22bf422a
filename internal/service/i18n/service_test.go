package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
	"github.com/amesa/housedraw/internal/repository/memory"
)

func newService() *Service {
	repo := memory.NewTranslationStore(
		[]domain.Language{
			{Code: "en", IsActive: true, IsDefault: true, DisplayOrder: 1},
			{Code: "pl", IsActive: true, DisplayOrder: 2},
		},
		[]domain.Translation{
			{Language: "en", Key: "nav.faq", Value: "FAQ"},
			{Language: "en", Key: "hero.title", Value: "Win your dream home"},
			{Language: "pl", Key: "hero.title", Value: "Wygraj dom marzeń"},
			{Language: "pl", Key: "purchase.soldOut", Value: "Brak biletów"},
		},
	)
	return New(repo, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{})
}

func TestTranslateFallback(t *testing.T) {
	ctx := context.Background()
	s := newService()

	assert.Equal(t, "Wygraj dom marzeń", s.Translate(ctx, "pl", "hero.title"))
	assert.Equal(t, "FAQ", s.Translate(ctx, "pl", "nav.faq"))
	assert.Equal(t, "missing.key", s.Translate(ctx, "pl", "missing.key"))
	assert.Equal(t, "FAQ", s.Translate(ctx, "de", "nav.faq"))
}

func TestNegotiate(t *testing.T) {
	ctx := context.Background()
	s := newService()

	tests := []struct {
		header string
		want   string
	}{
		{"pl-PL,pl;q=0.9,en;q=0.8", "pl"},
		{"en-GB", "en"},
		{"de-DE", "en"},
		{"", "en"},
		{"not a header;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Negotiate(ctx, tt.header))
		})
	}
}

func TestPurchaseMessage(t *testing.T) {
	ctx := context.Background()
	s := newService()

	assert.Equal(t, "Brak biletów", s.PurchaseMessage(ctx, "pl", domain.PurchaseFailed(domain.PurchaseSoldOut)))

	// No translation anywhere: keep the built-in message.
	res := domain.PurchaseFailed(domain.PurchaseNotFound)
	assert.Equal(t, res.Message, s.PurchaseMessage(ctx, "pl", res))
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	s := newService()

	n, err := s.Upsert(ctx, []domain.Translation{{Language: "pl", Key: "nav.faq", Value: "Pytania"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Pytania", s.Translate(ctx, "pl", "nav.faq"))

	_, err = s.Upsert(ctx, []domain.Translation{{Language: "pl", Key: ""}})
	assert.ErrorIs(t, err, ErrInvalidTranslation)
}

func TestUpsertUnknownLanguage(t *testing.T) {
	ctx := context.Background()
	s := newService()

	_, err := s.Upsert(ctx, []domain.Translation{
		{Language: "pl", Key: "nav.faq", Value: "Pytania"},
		{Language: "de", Key: "nav.faq", Value: "Fragen"},
	})
	require.ErrorIs(t, err, ErrUnknownLanguage)

	// nothing from the batch is written
	assert.Equal(t, "FAQ", s.Translate(ctx, "pl", "nav.faq"))
}

type parentlessRepo struct {
	*memory.TranslationStore
}

func (parentlessRepo) Upsert(context.Context, []domain.Translation) (int, error) {
	return 0, fmt.Errorf("postgres.TranslationRepo.Upsert:%w", repository.ErrMissingParent)
}

func TestUpsertMissingParentRow(t *testing.T) {
	repo := parentlessRepo{memory.NewTranslationStore(
		[]domain.Language{{Code: "en", IsActive: true, IsDefault: true}}, nil,
	)}
	s := New(repo, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{})

	_, err := s.Upsert(context.Background(), []domain.Translation{{Language: "en", Key: "k", Value: "v"}})
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestCatalogUnknownLanguage(t *testing.T) {
	cat, err := newService().Catalog(context.Background(), "xx")
	require.NoError(t, err)
	assert.NotNil(t, cat)
	assert.Empty(t, cat)
}
