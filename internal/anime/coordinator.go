package anime

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/cache"
	"golang.org/x/sync/singleflight"
)

// ErrEmptyResult is returned when the API answers successfully without data
var ErrEmptyResult = errors.New("api returned no data")

const flightKey = "home"

// Coordinator resolves one cached aggregate with at most one operation in
// flight. Callers arriving while an operation is pending share its outcome.
type Coordinator[T any] struct {
	log     zerolog.Logger
	cache   *cache.Cache[T]
	fetch   func(ctx context.Context) (T, error)
	isEmpty func(T) bool
	now     func() time.Time

	group   singleflight.Group
	mu      sync.Mutex
	waiting int
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption[T any] func(*Coordinator[T])

// WithClock replaces time.Now, mainly for tests
func WithClock[T any](now func() time.Time) CoordinatorOption[T] {
	return func(c *Coordinator[T]) { c.now = now }
}

// WithEmptyCheck sets the predicate that classifies a fetched value as empty
func WithEmptyCheck[T any](isEmpty func(T) bool) CoordinatorOption[T] {
	return func(c *Coordinator[T]) { c.isEmpty = isEmpty }
}

// NewCoordinator creates a coordinator serving c and falling back to fetch
func NewCoordinator[T any](log zerolog.Logger, c *cache.Cache[T], fetch func(ctx context.Context) (T, error), opts ...CoordinatorOption[T]) *Coordinator[T] {
	co := &Coordinator[T]{
		log:     log.With().Str("module", "coordinator").Logger(),
		cache:   c,
		fetch:   fetch,
		isEmpty: isZero[T],
		now:     time.Now,
	}
	for _, o := range opts {
		o(co)
	}
	return co
}

// Get returns the cached value or fetches a fresh one. The shared operation
// is detached from the caller's cancellation and always runs to completion;
// a caller whose ctx ends stops waiting and gets ctx.Err().
func (c *Coordinator[T]) Get(ctx context.Context) (T, error) {
	var zero T

	c.mu.Lock()
	if c.waiting > 0 {
		c.log.Debug().Int("waiting", c.waiting).Msg("home request already in flight, waiting for result")
	}
	c.waiting++
	ch := c.group.DoChan(flightKey, func() (any, error) {
		return c.resolve(context.WithoutCancel(ctx))
	})
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.waiting--
		c.mu.Unlock()
	}()

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(T)
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// InFlight returns the number of callers currently waiting on the shared operation
func (c *Coordinator[T]) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

func (c *Coordinator[T]) resolve(ctx context.Context) (T, error) {
	var zero T

	if data, ok := c.cache.Load(ctx, c.now()); ok {
		c.log.Info().Str("key", c.cache.Key()).Msg("serving home data from cache")
		return data, nil
	}

	c.log.Info().Msg("fetching home data from api")
	data, err := c.fetch(ctx)
	if err != nil {
		return zero, err
	}

	if c.isEmpty(data) {
		c.log.Error().Err(ErrEmptyResult).Msg("home data from api is empty")
		return zero, ErrEmptyResult
	}

	if err := c.cache.Save(ctx, data, c.now()); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist home data")
	}

	return data, nil
}
