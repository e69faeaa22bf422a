package repository

import (
	"context"

	"github.com/amesa/housedraw/internal/domain"
)

// CommitFunc persists a ticket sale before it becomes visible in memory. It
// receives the house as it will look after the sale.
type CommitFunc func(ctx context.Context, next domain.House) error
