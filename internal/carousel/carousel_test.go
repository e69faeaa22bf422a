package carousel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amesa/housedraw/internal/domain"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) after(d time.Duration, f func()) timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

func (c *fakeClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

type fakePrefetcher struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (p *fakePrefetcher) Prefetch(_ context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.urls = append(p.urls, url)
	return p.err
}

func house(id string, sold, total int, images ...string) domain.House {
	h := domain.House{ID: id, SoldTickets: sold, TotalTickets: total, Status: domain.HouseActive}
	for _, u := range images {
		h.Images = append(h.Images, domain.HouseImage{URL: u})
	}
	return h
}

func fixture() []domain.House {
	return []domain.House{
		house("1", 650, 1000, "a1", "a2", "a3", "a4"),
		house("2", 890, 1500, "b1", "b2", "b3"),
		house("3", 1245, 2000, "c1", "c2"),
	}
}

func newCarousel(houses []domain.House, opts ...Option) (*Carousel, *fakeClock) {
	clock := &fakeClock{}
	c := New(func() []domain.House { return houses }, opts...)
	c.after = clock.after
	return c, clock
}

func TestNextCyclesBackToStart(t *testing.T) {
	houses := fixture()
	c, _ := newCarousel(houses)

	for i := 0; i < len(houses); i++ {
		c.Next()
	}
	assert.Equal(t, 0, c.Current().ListingIndex)

	c.Prev()
	assert.Equal(t, 2, c.Current().ListingIndex)
}

func TestNavigationResetsImage(t *testing.T) {
	c, _ := newCarousel(fixture())

	c.NextImage()
	c.NextImage()
	assert.Equal(t, 2, c.Current().ImageIndex)

	c.Next()
	assert.Equal(t, 0, c.Current().ImageIndex)
}

func TestGoToListingOutOfRange(t *testing.T) {
	c, _ := newCarousel(fixture())

	c.GoToListing(1)
	c.NextImage()

	c.GoToListing(-1)
	c.GoToListing(3)

	s := c.Current()
	assert.Equal(t, 1, s.ListingIndex)
	assert.Equal(t, 1, s.ImageIndex)
}

func TestGoToImage(t *testing.T) {
	c, _ := newCarousel(fixture())

	c.GoToImage(3)
	assert.Equal(t, 3, c.Current().ImageIndex)

	c.GoToImage(4)
	c.GoToImage(-1)
	assert.Equal(t, 3, c.Current().ImageIndex)
}

func TestImageWraps(t *testing.T) {
	c, _ := newCarousel(fixture())

	c.PrevImage()
	assert.Equal(t, 3, c.Current().ImageIndex)

	c.NextImage()
	assert.Equal(t, 0, c.Current().ImageIndex)
}

func TestEmptyIsNoop(t *testing.T) {
	c, _ := newCarousel(nil)

	c.Start()
	c.Next()
	c.Prev()
	c.GoToListing(0)
	c.GoToImage(0)
	c.NextImage()

	s := c.Current()
	assert.Zero(t, s.ListingIndex)
	assert.Nil(t, s.House)
	assert.Zero(t, s.Listings)
}

func TestAutoplay(t *testing.T) {
	c, clock := newCarousel(fixture(), WithInterval(2*time.Second))

	c.Start()
	require.Equal(t, 1, clock.count())
	assert.Equal(t, 2*time.Second, clock.last().d)

	clock.last().f()
	assert.Equal(t, 1, c.Current().ListingIndex)
	assert.Equal(t, 2, clock.count())

	c.Stop()
	assert.True(t, clock.last().stopped)
	assert.False(t, c.Current().Autoplay)
}

func TestManualNavigationResetsTimer(t *testing.T) {
	c, clock := newCarousel(fixture())

	c.Start()
	first := clock.last()

	c.NextImage()
	assert.True(t, first.stopped)
	assert.Equal(t, 2, clock.count())

	// The replaced timer firing late must not advance the listing.
	first.f()
	assert.Equal(t, 0, c.Current().ListingIndex)

	clock.last().f()
	assert.Equal(t, 1, c.Current().ListingIndex)
}

func TestNavigationWithoutAutoplaySchedulesNothing(t *testing.T) {
	c, clock := newCarousel(fixture())

	c.Next()
	c.NextImage()
	assert.Zero(t, clock.count())
}

func TestPrefetchNeighbours(t *testing.T) {
	p := &fakePrefetcher{}
	c, _ := newCarousel(fixture(), WithPrefetcher(p))

	c.Start()
	c.Wait()

	assert.ElementsMatch(t, []string{"a2", "a4"}, p.urls)
	assert.True(t, c.IsLoaded("a1"))
	assert.True(t, c.IsLoaded("a2"))
	assert.True(t, c.IsLoaded("a4"))
	assert.False(t, c.IsLoaded("a3"))
	assert.True(t, c.Current().ImageLoaded)

	c.Close()
}

func TestPrefetchFailureLeavesImageUnloaded(t *testing.T) {
	p := &fakePrefetcher{err: errors.New("boom")}
	c, _ := newCarousel(fixture(), WithPrefetcher(p))

	c.GoToListing(2)
	c.Wait()

	assert.True(t, c.IsLoaded("c1"))
	assert.False(t, c.IsLoaded("c2"))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 65, Progress(house("1", 650, 1000)))
	assert.Equal(t, 59, Progress(house("2", 890, 1500)))
	assert.Equal(t, 62, Progress(house("3", 1245, 2000)))
	assert.Equal(t, 0, Progress(house("4", 0, 0)))
}

func TestSourceShrinks(t *testing.T) {
	houses := fixture()
	c := New(func() []domain.House { return houses })

	c.GoToListing(2)
	houses = houses[:1]

	s := c.Current()
	assert.Equal(t, 0, s.ListingIndex)
	assert.Equal(t, "1", s.House.ID)
}

func TestHTTPPrefetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/missing.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewHTTPPrefetcher(srv.Client())

	require.NoError(t, p.Prefetch(context.Background(), srv.URL+"/photo.jpg"))
	assert.Error(t, p.Prefetch(context.Background(), srv.URL+"/missing.jpg"))
}
