package httpgin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amesa/housedraw/internal/domain"
	"github.com/amesa/housedraw/internal/repository"
	redisrepo "github.com/amesa/housedraw/internal/repository/redis"
	"github.com/amesa/housedraw/internal/seed"
	"github.com/amesa/housedraw/internal/service"
)

// scriptedLedger fails the next calls with the queued errors and can hold a
// sale open until gate is closed.
type scriptedLedger struct {
	mu      sync.Mutex
	fail    []error
	gate    chan struct{}
	entered chan struct{}
	sales   int
}

func (l *scriptedLedger) RecordSale(ctx context.Context, _ domain.TicketSale) error {
	l.mu.Lock()
	if len(l.fail) > 0 {
		err := l.fail[0]
		l.fail = l.fail[1:]
		l.mu.Unlock()
		return err
	}
	gate, entered := l.gate, l.entered
	l.mu.Unlock()

	if gate != nil {
		select {
		case entered <- struct{}{}:
		default:
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	l.mu.Lock()
	l.sales++
	l.mu.Unlock()

	return nil
}

func (l *scriptedLedger) GetHouse(context.Context, string) (*domain.House, error) {
	return nil, repository.ErrNotFound
}

func (l *scriptedLedger) recorded() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sales
}

// newRedisRouter serves purchases with idempotency keys backed by an
// in-process Redis. limit > 0 also enables the per-IP limiter.
func newRedisRouter(t *testing.T, ledger *scriptedLedger, limit int) (*gin.Engine, *redisrepo.IdempotencyStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	m, err := seed.NewMemory(context.Background(), time.Now())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svcs := service.NewServices(service.Deps{
		Inventory:    m.Houses,
		Ledger:       ledger,
		Results:      m.Results,
		Translations: m.Translations,
	}, service.Config{}, logger)
	t.Cleanup(svcs.Carousel.Close)

	idem := redisrepo.NewIdempotencyStore(rdb, time.Hour)
	opts := Options{Idempotency: idem, IdemLockTTL: time.Minute}
	if limit > 0 {
		opts.Limiter = redisrepo.NewSlidingWindowLimiter(rdb, "purchase", limit, time.Minute)
	}

	return NewRouter(svcs, opts, logger), idem
}

func soldTickets(t *testing.T, r http.Handler, id string) int {
	t.Helper()

	w := do(r, http.MethodGet, "/houses/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return decode[domain.House](t, w).SoldTickets
}

func TestPurchaseIdempotencyReplay(t *testing.T) {
	r, _ := newRedisRouter(t, &scriptedLedger{}, 0)

	first := do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "order-1")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "order-1", first.Header().Get("Idempotency-Key"))
	assert.Empty(t, first.Header().Get("Idempotent-Replayed"))
	res := decode[domain.PurchaseResult](t, first)

	again := do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "order-1")
	require.Equal(t, http.StatusCreated, again.Code)
	assert.Equal(t, "true", again.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, res.TicketNumber, decode[domain.PurchaseResult](t, again).TicketNumber)

	assert.Equal(t, 1246, soldTickets(t, r, "3"))

	// another key is another purchase
	other := do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "order-2")
	require.Equal(t, http.StatusCreated, other.Code)
	assert.NotEqual(t, res.TicketNumber, decode[domain.PurchaseResult](t, other).TicketNumber)
	assert.Equal(t, 1247, soldTickets(t, r, "3"))
}

func TestPurchaseIdempotencyCachesRejections(t *testing.T) {
	r, _ := newRedisRouter(t, &scriptedLedger{}, 0)

	w := do(r, http.MethodPost, "/houses/4/tickets", nil, "Idempotency-Key", "k")
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/houses/4/tickets", nil, "Idempotency-Key", "k")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, domain.PurchaseLotteryInactive, decode[domain.PurchaseResult](t, w).Kind)
}

func TestPurchaseIdempotencyKeyInProgress(t *testing.T) {
	t.Run("held lock", func(t *testing.T) {
		r, idem := newRedisRouter(t, &scriptedLedger{}, 0)

		ok, err := idem.AcquireLock(context.Background(), redisrepo.KeyIdemPurchase("3", "busy"), time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		w := do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "busy")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Equal(t, "idempotency key in progress", decode[ErrorResponse](t, w).Error)
		assert.Equal(t, 1245, soldTickets(t, r, "3"))
	})

	t.Run("concurrent duplicate", func(t *testing.T) {
		ledger := &scriptedLedger{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
		r, _ := newRedisRouter(t, ledger, 0)

		first := make(chan *httptest.ResponseRecorder, 1)
		go func() {
			first <- do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "dup")
		}()

		select {
		case <-ledger.entered:
		case <-time.After(2 * time.Second):
			t.Fatal("first purchase never reached the ledger")
		}

		w := do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "dup")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))

		close(ledger.gate)
		done := <-first
		require.Equal(t, http.StatusCreated, done.Code)

		w = do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "dup")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t,
			decode[domain.PurchaseResult](t, done).TicketNumber,
			decode[domain.PurchaseResult](t, w).TicketNumber,
		)

		assert.Equal(t, 1, ledger.recorded())
		assert.Equal(t, 1246, soldTickets(t, r, "3"))
	})
}

func TestPurchaseUnavailableReleasesKey(t *testing.T) {
	ledger := &scriptedLedger{fail: []error{errors.New("connection refused")}}
	r, _ := newRedisRouter(t, ledger, 0)

	w := do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "retry-me")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, domain.PurchaseUnavailable, decode[domain.PurchaseResult](t, w).Kind)
	assert.Equal(t, 1245, soldTickets(t, r, "3"))

	// the key was released, so the retry runs for real
	w = do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "retry-me")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, 1246, soldTickets(t, r, "3"))

	w = do(r, http.MethodPost, "/houses/3/tickets", nil, "Idempotency-Key", "retry-me")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, 1, ledger.recorded())
}

func TestPurchaseRateLimit(t *testing.T) {
	const limit = 3
	r, _ := newRedisRouter(t, &scriptedLedger{}, limit)

	for i := range limit {
		w := do(r, http.MethodPost, "/houses/3/tickets", nil)
		require.Equal(t, http.StatusCreated, w.Code, "purchase %d", i+1)
	}

	w := do(r, http.MethodPost, "/houses/3/tickets", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate limited", decode[ErrorResponse](t, w).Error)

	retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Positive(t, retry)
	assert.LessOrEqual(t, retry, 60)

	assert.Equal(t, 1245+limit, soldTickets(t, r, "3"))

	// the window is per client address
	w = do(r, http.MethodPost, "/houses/3/tickets", nil, "X-Forwarded-For", "198.51.100.7")
	assert.Equal(t, http.StatusCreated, w.Code)
}
