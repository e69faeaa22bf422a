package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amesa/housedraw/internal/domain"
)

type TranslationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *TranslationRepo) With(db DB) *TranslationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *TranslationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Languages lists active languages by display order.
func (r *TranslationRepo) Languages(ctx context.Context) ([]domain.Language, error) {
	const op = "postgres.TranslationRepo.Languages"

	rows, err := r.handle().Query(ctx,
		`SELECT code, name, native_name, flag_url, is_active, is_default, display_order
		 FROM languages
		 WHERE is_active
		 ORDER BY display_order, code`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(
			&l.Code,
			&l.Name,
			&l.NativeName,
			&l.FlagURL,
			&l.IsActive,
			&l.IsDefault,
			&l.DisplayOrder,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Catalog returns key -> value for one language.
func (r *TranslationRepo) Catalog(ctx context.Context, lang string) (map[string]string, error) {
	const op = "postgres.TranslationRepo.Catalog"

	rows, err := r.handle().Query(ctx,
		`SELECT key, value FROM translations WHERE language_code = $1`,
		lang,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// CountTranslations returns the number of stored translation rows.
func (r *TranslationRepo) CountTranslations(ctx context.Context) (int64, error) {
	const op = "postgres.TranslationRepo.CountTranslations"

	var n int64
	if err := r.handle().QueryRow(ctx, `SELECT count(*) FROM translations`).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}

// UpsertLanguages inserts or updates languages.
func (r *TranslationRepo) UpsertLanguages(ctx context.Context, langs []domain.Language) error {
	const op = "postgres.TranslationRepo.UpsertLanguages"

	batch := &pgx.Batch{}
	for _, l := range langs {
		batch.Queue(
			`INSERT INTO languages(code, name, native_name, flag_url, is_active, is_default, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (code) DO UPDATE
			   SET name = EXCLUDED.name,
			       native_name = EXCLUDED.native_name,
			       flag_url = EXCLUDED.flag_url,
			       is_active = EXCLUDED.is_active,
			       is_default = EXCLUDED.is_default,
			       display_order = EXCLUDED.display_order`,
			l.Code, l.Name, l.NativeName, l.FlagURL, l.IsActive, l.IsDefault, l.DisplayOrder,
		)
	}
	if err := r.handle().SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Upsert inserts or updates translation rows.
//
// Returns:
//   - int: the number of rows written.
func (r *TranslationRepo) Upsert(ctx context.Context, rows []domain.Translation) (int, error) {
	const op = "postgres.TranslationRepo.Upsert"

	batch := &pgx.Batch{}
	for _, t := range rows {
		batch.Queue(
			`INSERT INTO translations(language_code, key, value, category)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (language_code, key) DO UPDATE
			   SET value = EXCLUDED.value, category = EXCLUDED.category, updated_at = now()`,
			t.Language, t.Key, t.Value, t.Category,
		)
	}
	if err := r.handle().SendBatch(ctx, batch).Close(); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return len(rows), nil
}
