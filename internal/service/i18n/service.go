package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
)

const fallbackLanguage = "en"

type Repository interface {
	Languages(ctx context.Context) ([]domain.Language, error)
	Catalog(ctx context.Context, lang string) (map[string]string, error)
	Upsert(ctx context.Context, rows []domain.Translation) (int, error)
}

type Config struct {
	CatalogTTL time.Duration
}

type Service struct {
	repo   Repository
	cache  *redisrepo.Cache
	logger *slog.Logger
	cfg    Config
}

func New(repo Repository, cache *redisrepo.Cache, logger *slog.Logger, cfg Config) *Service {
	if cfg.CatalogTTL <= 0 {
		cfg.CatalogTTL = 10 * time.Minute
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// Languages lists the active languages by display order.
func (s *Service) Languages(ctx context.Context) ([]domain.Language, error) {
	const op = "service.i18n.Languages"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyLanguages(),
		s.cfg.CatalogTTL,
		s.repo.Languages,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// DefaultLanguage returns the code of the language flagged as default, or
// "en" when none is.
func (s *Service) DefaultLanguage(ctx context.Context) string {
	langs, err := s.Languages(ctx)
	if err != nil {
		s.logger.Warn("load languages failed", "error", err)
		return fallbackLanguage
	}

	for _, l := range langs {
		if l.IsDefault {
			return l.Code
		}
	}

	return fallbackLanguage
}

// Catalog returns every translation of one language as key -> value.
func (s *Service) Catalog(ctx context.Context, lang string) (map[string]string, error) {
	const op = "service.i18n.Catalog"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCatalog(lang),
		s.cfg.CatalogTTL,
		func(ctx context.Context) (map[string]string, error) {
			return s.repo.Catalog(ctx, lang)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if out == nil {
		out = map[string]string{}
	}

	return out, nil
}

// Translate resolves key in lang, then in the default language. A key with
// no translation at all is returned as is.
func (s *Service) Translate(ctx context.Context, lang, key string) string {
	if v, ok := s.lookup(ctx, lang, key); ok {
		return v
	}

	if def := s.DefaultLanguage(ctx); def != lang {
		if v, ok := s.lookup(ctx, def, key); ok {
			return v
		}
	}

	return key
}

func (s *Service) lookup(ctx context.Context, lang, key string) (string, bool) {
	cat, err := s.Catalog(ctx, lang)
	if err != nil {
		s.logger.Warn("load catalog failed", "lang", lang, "error", err)
		return "", false
	}

	v, ok := cat[key]
	return v, ok
}

// Negotiate picks the best supported language for an Accept-Language header.
// Anything unparseable or unmatched resolves to the default language.
func (s *Service) Negotiate(ctx context.Context, acceptLanguage string) string {
	def := s.DefaultLanguage(ctx)

	langs, err := s.Languages(ctx)
	if err != nil || len(langs) == 0 {
		return def
	}

	// The first supported tag is the matcher's fallback.
	codes := []string{def}
	for _, l := range langs {
		if l.Code != def {
			codes = append(codes, l.Code)
		}
	}

	supported := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		supported = append(supported, language.Make(c))
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return def
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return def
	}

	return codes[idx]
}

// PurchaseMessage localises the message of a purchase result.
func (s *Service) PurchaseMessage(ctx context.Context, lang string, res *domain.PurchaseResult) string {
	key := purchaseKey(res)
	if msg := s.Translate(ctx, lang, key); msg != key {
		return msg
	}

	return res.Message
}

func purchaseKey(res *domain.PurchaseResult) string {
	if res.Success {
		return "purchase.success"
	}

	switch res.Kind {
	case domain.PurchaseNotFound:
		return "purchase.notFound"
	case domain.PurchaseLotteryInactive:
		return "purchase.inactive"
	case domain.PurchaseSoldOut:
		return "purchase.soldOut"
	}

	return "purchase.unavailable"
}

// Upsert writes translation rows and drops the cached catalogs they touch.
//
// Returns:
//   - int: the number of rows written.
//   - error: i18n.ErrInvalidTranslation if a row is incomplete.
//   - error: i18n.ErrUnknownLanguage if a row names a language that is not
//     active.
func (s *Service) Upsert(ctx context.Context, rows []domain.Translation) (int, error) {
	const op = "service.i18n.Upsert"

	langs := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, r := range rows {
		if r.Language == "" || r.Key == "" || r.Value == "" {
			return 0, fmt.Errorf("%s: %w", op, ErrInvalidTranslation)
		}
		if !seen[r.Language] {
			seen[r.Language] = true
			langs = append(langs, r.Language)
		}
	}

	known, err := s.repo.Languages(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, l := range langs {
		if !slices.ContainsFunc(known, func(k domain.Language) bool { return k.Code == l }) {
			return 0, fmt.Errorf("%s: %w: %s", op, ErrUnknownLanguage, l)
		}
	}

	n, err := s.repo.Upsert(ctx, rows)
	if err != nil {
		if errors.Is(err, repository.ErrMissingParent) {
			return 0, fmt.Errorf("%s: %w", op, ErrUnknownLanguage)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.InvalidateTranslations(ctx, langs...); err != nil {
		s.logger.Warn("invalidate translations cache failed", "error", err)
	}

	return n, nil
}
