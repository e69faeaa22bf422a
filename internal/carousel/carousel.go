// Package carousel keeps the navigation state of a rotating house showcase:
// which listing and which of its images are shown, which images are already
// loaded, and the autoplay timer that advances the listing.
package carousel

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amesa/housedraw/internal/domain"
)

const DefaultInterval = 5 * time.Second

// Source returns the listings to rotate through, in display order.
type Source func() []domain.House

// Prefetcher warms an image before it is shown.
type Prefetcher interface {
	Prefetch(ctx context.Context, url string) error
}

type timer interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) timer

// Snapshot is the state shown to a viewer.
type Snapshot struct {
	ListingIndex int                `json:"listing_index"`
	ImageIndex   int                `json:"image_index"`
	Listings     int                `json:"listings"`
	House        *domain.House      `json:"house,omitempty"`
	Image        *domain.HouseImage `json:"image,omitempty"`
	ImageLoaded  bool               `json:"image_loaded"`
	Progress     int                `json:"progress"`
	Autoplay     bool               `json:"autoplay"`
}

type Option func(*Carousel)

func WithInterval(d time.Duration) Option {
	return func(c *Carousel) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithPrefetcher(p Prefetcher) Option {
	return func(c *Carousel) { c.prefetcher = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Carousel) {
		if l != nil {
			c.logger = l
		}
	}
}

type Carousel struct {
	source     Source
	prefetcher Prefetcher
	logger     *slog.Logger
	interval   time.Duration
	after      afterFunc

	mu      sync.Mutex
	listing int
	image   int
	loaded  map[string]bool
	timer   timer
	gen     uint64
	running bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(source Source, opts ...Option) *Carousel {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Carousel{
		source:   source,
		logger:   slog.Default(),
		interval: DefaultInterval,
		after: func(d time.Duration, f func()) timer {
			return time.AfterFunc(d, f)
		},
		loaded: make(map[string]bool),
		ctx:    ctx,
		cancel: cancel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start loads the current listing and begins autoplay. Calling Start on a
// running carousel only restarts the timer.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = true
	c.loadCurrentLocked(c.houses())
	c.restartLocked()
}

// Stop halts autoplay. Navigation keeps working.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
	c.stopTimerLocked()
}

// Close stops autoplay and waits for in-flight prefetches to end.
func (c *Carousel) Close() {
	c.Stop()
	c.cancel()
	c.wg.Wait()
}

// Wait blocks until all prefetches started so far have finished.
func (c *Carousel) Wait() {
	c.wg.Wait()
}

func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	houses := c.houses()
	if len(houses) == 0 {
		return
	}

	c.show(houses, (c.listing+1)%len(houses))
}

func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()

	houses := c.houses()
	if len(houses) == 0 {
		return
	}

	c.show(houses, (c.listing-1+len(houses))%len(houses))
}

// GoToListing jumps to listing i. Out-of-range indexes are ignored.
func (c *Carousel) GoToListing(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	houses := c.houses()
	if i < 0 || i >= len(houses) {
		return
	}

	c.show(houses, i)
}

// GoToImage shows image i of the current listing. Out-of-range indexes are
// ignored.
func (c *Carousel) GoToImage(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	houses := c.houses()
	if len(houses) == 0 {
		return
	}

	if i < 0 || i >= len(houses[c.listing].Images) {
		return
	}

	c.image = i
	c.restartLocked()
	c.loadCurrentLocked(houses)
}

func (c *Carousel) NextImage() {
	c.stepImage(1)
}

func (c *Carousel) PrevImage() {
	c.stepImage(-1)
}

func (c *Carousel) stepImage(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	houses := c.houses()
	if len(houses) == 0 {
		return
	}

	n := len(houses[c.listing].Images)
	if n == 0 {
		return
	}

	c.image = ((c.image+delta)%n + n) % n
	c.restartLocked()
	c.loadCurrentLocked(houses)
}

// Current returns what is on screen now.
func (c *Carousel) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	houses := c.houses()

	s := Snapshot{
		ListingIndex: c.listing,
		ImageIndex:   c.image,
		Listings:     len(houses),
		Autoplay:     c.running,
	}
	if len(houses) == 0 {
		return s
	}

	h := houses[c.listing]
	s.House = &h
	s.Progress = Progress(h)

	if c.image < len(h.Images) {
		img := h.Images[c.image]
		s.Image = &img
		s.ImageLoaded = c.loaded[img.URL]
	}

	return s
}

// IsLoaded reports whether url was loaded or prefetched.
func (c *Carousel) IsLoaded(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loaded[url]
}

// Progress is the share of tickets sold, in whole percent.
func Progress(h domain.House) int {
	if h.TotalTickets <= 0 {
		return 0
	}

	return int(math.Round(float64(h.SoldTickets) / float64(h.TotalTickets) * 100))
}

// houses reads the source and clamps the indexes to it. Callers hold c.mu.
func (c *Carousel) houses() []domain.House {
	houses := c.source()

	if c.listing >= len(houses) {
		c.listing, c.image = 0, 0
	}

	if len(houses) > 0 && c.image >= len(houses[c.listing].Images) {
		c.image = 0
	}

	return houses
}

func (c *Carousel) show(houses []domain.House, i int) {
	c.listing = i
	c.image = 0
	c.restartLocked()
	c.loadCurrentLocked(houses)
}

func (c *Carousel) restartLocked() {
	c.stopTimerLocked()

	if !c.running {
		return
	}

	gen := c.gen
	c.timer = c.after(c.interval, func() { c.tick(gen) })
}

func (c *Carousel) stopTimerLocked() {
	c.gen++

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// tick advances the listing unless the timer it belongs to was replaced.
func (c *Carousel) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || gen != c.gen {
		return
	}

	houses := c.houses()
	if len(houses) == 0 {
		c.restartLocked()
		return
	}

	c.show(houses, (c.listing+1)%len(houses))
}

// loadCurrentLocked marks the shown image loaded and prefetches its
// neighbours.
func (c *Carousel) loadCurrentLocked(houses []domain.House) {
	if len(houses) == 0 {
		return
	}

	images := houses[c.listing].Images
	n := len(images)
	if n == 0 {
		return
	}

	c.loaded[images[c.image].URL] = true

	var pending []string
	for _, idx := range []int{(c.image + 1) % n, (c.image - 1 + n) % n} {
		url := images[idx].URL
		if c.loaded[url] || slices.Contains(pending, url) {
			continue
		}
		if c.prefetcher == nil {
			c.loaded[url] = true
			continue
		}
		pending = append(pending, url)
	}

	if len(pending) == 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.prefetch(pending)
	}()
}

func (c *Carousel) prefetch(urls []string) {
	g, ctx := errgroup.WithContext(c.ctx)

	for _, url := range urls {
		g.Go(func() error {
			if err := c.prefetcher.Prefetch(ctx, url); err != nil {
				return err
			}

			c.mu.Lock()
			c.loaded[url] = true
			c.mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Debug("image prefetch failed", "error", err)
	}
}
