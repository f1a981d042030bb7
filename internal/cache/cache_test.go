package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollection(fetch Fetch[string]) (*Collection[string], *clock) {
	clk := &clock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	c := New("test", fetch, DefaultRefreshInterval, DefaultInactivityTimeout)
	c.now = clk.now
	return c, clk
}

func TestGetFetchesOnceWhileFresh(t *testing.T) {
	calls := 0
	c, clk := newTestCollection(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	})

	first, err := c.Get(context.Background())
	assert.NoError(t, err)
	clk.advance(5 * time.Minute)
	second, err := c.Get(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 1, calls, "second read within the freshness window must not refetch")
	assert.Equal(t, first, second)
}

func TestGetRefetchesAfterRefreshInterval(t *testing.T) {
	calls := 0
	c, clk := newTestCollection(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	})

	_, _ = c.Get(context.Background())
	clk.advance(DefaultRefreshInterval + time.Second)
	_, _ = c.Get(context.Background())

	assert.Equal(t, 2, calls)
}

func TestGetEvictsIdleEntry(t *testing.T) {
	calls := 0
	c, clk := newTestCollection(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	})
	c.refreshInterval = time.Hour

	_, _ = c.Get(context.Background())
	clk.advance(DefaultInactivityTimeout + time.Second)
	_, _ = c.Get(context.Background())

	assert.Equal(t, 2, calls, "an entry idle past the inactivity timeout must be refetched even if still fresh")
}

func TestInvalidateForcesRefetch(t *testing.T) {
	calls := 0
	c, _ := newTestCollection(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	})

	_, _ = c.Get(context.Background())
	c.Invalidate()
	_, _ = c.Get(context.Background())
	_, _ = c.Get(context.Background())

	assert.Equal(t, 2, calls, "invalidate must trigger exactly one refetch on the next read")
}

func TestGetServesStaleOnRefetchFailure(t *testing.T) {
	calls := 0
	c, clk := newTestCollection(nil)
	c.fetch = func(ctx context.Context) ([]string, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("store down")
		}
		return []string{"old"}, nil
	}

	_, err := c.Get(context.Background())
	assert.NoError(t, err)

	clk.advance(DefaultRefreshInterval + time.Minute)
	records, err := c.Get(context.Background())
	assert.NoError(t, err, "a prior entry must absorb the refetch failure")
	assert.Equal(t, []string{"old"}, records)
}

func TestGetColdCacheFailurePropagates(t *testing.T) {
	wantErr := errors.New("store down")
	c, _ := newTestCollection(func(ctx context.Context) ([]string, error) {
		return nil, wantErr
	})

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidateDiscardsStaleFallback(t *testing.T) {
	calls := 0
	c, _ := newTestCollection(nil)
	c.fetch = func(ctx context.Context) ([]string, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("store down")
		}
		return []string{"old"}, nil
	}

	_, _ = c.Get(context.Background())
	c.Invalidate()

	_, err := c.Get(context.Background())
	assert.Error(t, err, "invalidation discards the entry, so there is nothing stale to serve")
}
