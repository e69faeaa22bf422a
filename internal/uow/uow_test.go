package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/amesa/housedraw/internal/repository/postgres"
)

type fakeRunner struct {
	commitErr error
	opts      *pgx.TxOptions
}

func (f *fakeRunner) RunTx(ctx context.Context, opts *pgx.TxOptions, fn func(ctx context.Context, tx postgres.DB) error) error {
	f.opts = opts
	if err := fn(ctx, nil); err != nil {
		return err
	}
	return f.commitErr
}

func TestUoW_HooksRunAfterCommit(t *testing.T) {
	runner := &fakeRunner{}
	u := NewUoW(runner)

	var calls []string
	err := u.Do(context.Background(), func(ctx context.Context, _ postgres.DB, after func(AfterCommit)) error {
		after(func(context.Context) { calls = append(calls, "first") })
		after(func(context.Context) { calls = append(calls, "second") })
		calls = append(calls, "body")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"body", "first", "second"}, calls)
	assert.Nil(t, runner.opts)
}

func TestUoW_HooksSkippedOnFailure(t *testing.T) {
	boom := errors.New("boom")

	t.Run("body fails", func(t *testing.T) {
		u := NewUoW(&fakeRunner{})
		ran := false

		err := u.Do(context.Background(), func(ctx context.Context, _ postgres.DB, after func(AfterCommit)) error {
			after(func(context.Context) { ran = true })
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.False(t, ran)
	})

	t.Run("commit fails", func(t *testing.T) {
		u := NewUoW(&fakeRunner{commitErr: boom})
		ran := false

		err := u.DoWithOpts(context.Background(), &pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
			func(ctx context.Context, _ postgres.DB, after func(AfterCommit)) error {
				after(func(context.Context) { ran = true })
				return nil
			})

		assert.ErrorIs(t, err, boom)
		assert.False(t, ran)
	})
}
