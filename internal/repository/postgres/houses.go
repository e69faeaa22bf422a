package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
)

const houseColumns = `id, title, description, location, images, bedrooms, bathrooms, sqft,
	price, ticket_price, total_tickets, sold_tickets, lottery_ends_at, status`

type HouseRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *HouseRepo) With(db DB) *HouseRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *HouseRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// LoadAll reads every house in insertion order. It is the startup loader of
// the in-memory inventory.
//
// Returns:
//   - []domain.House: all houses, possibly empty.
//   - error: any database error.
func (r *HouseRepo) LoadAll(ctx context.Context) ([]domain.House, error) {
	const op = "postgres.HouseRepo.LoadAll"

	db := r.handle()

	rows, err := db.Query(ctx, `SELECT `+houseColumns+` FROM houses ORDER BY position`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.House
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetHouse retrieves a house by its ID.
//
// Returns:
//   - *domain.House: the house when found.
//   - error: repository.ErrNotFound if the house is not found.
func (r *HouseRepo) GetHouse(ctx context.Context, id string) (*domain.House, error) {
	const op = "postgres.HouseRepo.GetHouse"

	db := r.handle()

	h, err := scanHouse(db.QueryRow(ctx, `SELECT `+houseColumns+` FROM houses WHERE id = $1`, id))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &h, nil
}

// CreateHouse inserts a house.
//
// Returns:
//   - error: repository.ErrConflict if the ID is taken.
func (r *HouseRepo) CreateHouse(ctx context.Context, h domain.House) error {
	const op = "postgres.HouseRepo.CreateHouse"

	db := r.handle()

	images, err := json.Marshal(h.Images)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO houses(id, title, description, location, images, bedrooms, bathrooms, sqft,
		                    price, ticket_price, total_tickets, sold_tickets, lottery_ends_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		h.ID, h.Title, h.Description, h.Location, images, h.Bedrooms, h.Bathrooms, h.SquareFeet,
		h.Price, h.TicketPrice, h.TotalTickets, h.SoldTickets, h.LotteryEndsAt, string(h.Status),
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// BatchCreateHouses inserts houses that do not exist yet.
func (r *HouseRepo) BatchCreateHouses(ctx context.Context, houses []domain.House) error {
	const op = "postgres.HouseRepo.BatchCreateHouses"

	db := r.handle()

	batch := &pgx.Batch{}
	for _, h := range houses {
		images, err := json.Marshal(h.Images)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
		batch.Queue(
			`INSERT INTO houses(id, title, description, location, images, bedrooms, bathrooms, sqft,
			                    price, ticket_price, total_tickets, sold_tickets, lottery_ends_at, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			 ON CONFLICT (id) DO NOTHING`,
			h.ID, h.Title, h.Description, h.Location, images, h.Bedrooms, h.Bathrooms, h.SquareFeet,
			h.Price, h.TicketPrice, h.TotalTickets, h.SoldTickets, h.LotteryEndsAt, string(h.Status),
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// CountHouses returns the number of stored houses.
func (r *HouseRepo) CountHouses(ctx context.Context) (int64, error) {
	const op = "postgres.HouseRepo.CountHouses"

	db := r.handle()

	var n int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM houses`).Scan(&n); err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}

// SetStatus changes the lottery phase of a house.
//
// Returns:
//   - error: repository.ErrNotFound if the house is not found.
func (r *HouseRepo) SetStatus(ctx context.Context, id string, status domain.HouseStatus) error {
	const op = "postgres.HouseRepo.SetStatus"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE houses SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// RecordSale persists one ticket sale. The counter only moves when the stored
// sold count is exactly sale.Sequence-1, so a sale raced by another instance
// is rejected instead of overselling.
//
// Returns:
//   - error: repository.ErrConflict if the stored counter moved or the house
//     is no longer on sale.
func (r *HouseRepo) RecordSale(ctx context.Context, sale domain.TicketSale) error {
	const op = "postgres.HouseRepo.RecordSale"

	if r.db != nil {
		if err := r.recordSaleCore(ctx, r.db, sale); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return wrapDBErr(op, err)
	}

	defer tx.Rollback(ctx)

	if err := r.recordSaleCore(ctx, tx, sale); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		if IsRetryable(err) {
			return fmt.Errorf("%s:%w", op, repository.ErrConflict)
		}
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *HouseRepo) recordSaleCore(ctx context.Context, db DB, sale domain.TicketSale) error {
	const op = "postgres.HouseRepo.recordSaleCore"

	tag, err := db.Exec(ctx,
		`UPDATE houses
		    SET sold_tickets = $3, updated_at = now()
		  WHERE id = $1
		    AND sold_tickets = $2
		    AND status = 'active'
		    AND $3 <= total_tickets`,
		sale.HouseID, sale.Sequence-1, sale.Sequence,
	)
	if err != nil {
		if IsRetryable(err) {
			return fmt.Errorf("%s:%w", op, repository.ErrConflict)
		}
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%s:%w", op, repository.ErrConflict)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO tickets(id, house_id, sequence, ticket_number, sold_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sale.TicketID, sale.HouseID, sale.Sequence, sale.TicketNumber, sale.SoldAt,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func scanHouse(row pgx.Row) (domain.House, error) {
	var h domain.House
	var images []byte
	var status string

	if err := row.Scan(
		&h.ID,
		&h.Title,
		&h.Description,
		&h.Location,
		&images,
		&h.Bedrooms,
		&h.Bathrooms,
		&h.SquareFeet,
		&h.Price,
		&h.TicketPrice,
		&h.TotalTickets,
		&h.SoldTickets,
		&h.LotteryEndsAt,
		&status,
	); err != nil {
		return domain.House{}, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &h.Images); err != nil {
			return domain.House{}, err
		}
	}

	h.Status = domain.HouseStatus(status)

	return h, nil
}
