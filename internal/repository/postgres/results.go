package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
)

const resultColumns = `id, house_id, draw_id, winner_ticket_number, prize_position, prize_type,
	prize_value, prize_description, is_verified, is_claimed, claimed_at, result_date, created_at`

type ResultRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ResultRepo) With(db DB) *ResultRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ResultRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ResultRepo) ListByHouse(ctx context.Context, houseID string) ([]domain.LotteryResult, error) {
	const op = "postgres.ResultRepo.ListByHouse"

	rows, err := r.handle().Query(ctx,
		`SELECT `+resultColumns+`
		 FROM lottery_results
		 WHERE house_id = $1
		 ORDER BY prize_position`,
		houseID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	out, err := collectResults(rows)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *ResultRepo) ListAll(ctx context.Context) ([]domain.LotteryResult, error) {
	const op = "postgres.ResultRepo.ListAll"

	rows, err := r.handle().Query(ctx,
		`SELECT `+resultColumns+`
		 FROM lottery_results
		 ORDER BY result_date, house_id, prize_position`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	out, err := collectResults(rows)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// CountResults returns the number of stored results.
func (r *ResultRepo) CountResults(ctx context.Context) (int64, error) {
	const op = "postgres.ResultRepo.CountResults"

	var n int64
	if err := r.handle().QueryRow(ctx, `SELECT count(*) FROM lottery_results`).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}

// SaveDraw inserts the results of one draw.
//
// Returns:
//   - error: repository.ErrAlreadyDrawn if a result for the same house and
//     prize position exists.
func (r *ResultRepo) SaveDraw(ctx context.Context, results []domain.LotteryResult) error {
	const op = "postgres.ResultRepo.SaveDraw"

	batch := &pgx.Batch{}
	for _, res := range results {
		batch.Queue(
			`INSERT INTO lottery_results(`+resultColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			res.ID, res.HouseID, res.DrawID, res.WinnerTicketNumber, res.PrizePosition, res.PrizeType,
			res.PrizeValue, res.PrizeDescription, res.IsVerified, res.IsClaimed, res.ClaimedAt,
			res.ResultDate, res.CreatedAt,
		)
	}

	if err := r.handle().SendBatch(ctx, batch).Close(); err != nil {
		err = translateDBErr(err)
		if errors.Is(err, repository.ErrConflict) {
			return fmt.Errorf("%s:%w", op, repository.ErrAlreadyDrawn)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// Claim marks a result as claimed.
//
// Returns:
//   - error: repository.ErrNotFound if the result does not exist.
//   - error: repository.ErrAlreadyClaimed if it was claimed before.
func (r *ResultRepo) Claim(ctx context.Context, id uuid.UUID, at time.Time) (domain.LotteryResult, error) {
	const op = "postgres.ResultRepo.Claim"

	db := r.handle()

	res, err := scanResult(db.QueryRow(ctx,
		`UPDATE lottery_results
		    SET is_claimed = true, claimed_at = $2
		  WHERE id = $1 AND NOT is_claimed
		 RETURNING `+resultColumns,
		id, at,
	))
	if err == nil {
		return res, nil
	}

	if !errors.Is(translateDBErr(err), repository.ErrNotFound) {
		return domain.LotteryResult{}, wrapDBErr(op, err)
	}

	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM lottery_results WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return domain.LotteryResult{}, wrapDBErr(op, err)
	}

	if exists {
		return domain.LotteryResult{}, fmt.Errorf("%s:%w", op, repository.ErrAlreadyClaimed)
	}

	return domain.LotteryResult{}, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
}

func collectResults(rows pgx.Rows) ([]domain.LotteryResult, error) {
	defer rows.Close()

	var out []domain.LotteryResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, rows.Err()
}

func scanResult(row pgx.Row) (domain.LotteryResult, error) {
	var res domain.LotteryResult

	err := row.Scan(
		&res.ID,
		&res.HouseID,
		&res.DrawID,
		&res.WinnerTicketNumber,
		&res.PrizePosition,
		&res.PrizeType,
		&res.PrizeValue,
		&res.PrizeDescription,
		&res.IsVerified,
		&res.IsClaimed,
		&res.ClaimedAt,
		&res.ResultDate,
		&res.CreatedAt,
	)

	return res, err
}
