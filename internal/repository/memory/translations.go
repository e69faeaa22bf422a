package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/amesa/housedraw/internal/domain"
)

type TranslationStore struct {
	mu        sync.RWMutex
	languages []domain.Language
	values    map[string]map[string]domain.Translation // lang -> key -> row
}

func NewTranslationStore(languages []domain.Language, rows []domain.Translation) *TranslationStore {
	s := &TranslationStore{
		values: make(map[string]map[string]domain.Translation),
	}

	s.languages = append(s.languages, languages...)
	sort.SliceStable(s.languages, func(i, j int) bool {
		return s.languages[i].DisplayOrder < s.languages[j].DisplayOrder
	})

	s.put(rows)

	return s
}

func (s *TranslationStore) Languages(_ context.Context) ([]domain.Language, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Language, 0, len(s.languages))
	for _, l := range s.languages {
		if l.IsActive {
			out = append(out, l)
		}
	}

	return out, nil
}

// Catalog returns key -> value for one language. Unknown languages yield an
// empty map.
func (s *TranslationStore) Catalog(_ context.Context, lang string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values[lang]))
	for k, t := range s.values[lang] {
		out[k] = t.Value
	}

	return out, nil
}

func (s *TranslationStore) Upsert(_ context.Context, rows []domain.Translation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(rows)

	return len(rows), nil
}

func (s *TranslationStore) put(rows []domain.Translation) {
	for _, r := range rows {
		m, ok := s.values[r.Language]
		if !ok {
			m = make(map[string]domain.Translation)
			s.values[r.Language] = m
		}
		m[r.Key] = r
	}
}
