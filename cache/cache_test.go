package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_FetchCaches(t *testing.T) {
	c := NewCache[[]byte](context.Background(), time.Minute, time.Minute)
	defer c.Close()

	var calls atomic.Int32
	fetch := func() ([]byte, error) {
		calls.Add(1)
		return []byte("body"), nil
	}

	for range 3 {
		value, err := c.Fetch("https://example.test/a", fetch)
		require.NoError(t, err)
		assert.Equal(t, []byte("body"), value)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_FetchErrorIsNotCached(t *testing.T) {
	c := NewCache[int](context.Background(), time.Minute, time.Minute)
	defer c.Close()

	boom := errors.New("boom")
	_, err := c.Fetch("k", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	value, err := c.Fetch("k", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestCache_ConcurrentFetchSingleFlight(t *testing.T) {
	c := NewCache[int](context.Background(), time.Minute, time.Minute)
	defer c.Close()

	release := make(chan struct{})
	var calls atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := c.Fetch("shared", func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, value)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.LessOrEqual(t, calls.Load(), int32(2))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestCache_ExpiryAndSweep(t *testing.T) {
	c := NewCache[string](context.Background(), time.Millisecond, time.Hour)
	defer c.Close()

	c.Set("k", "v")
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok, "expired entries are not served")
	assert.Equal(t, 1, c.Len())

	c.sweep(time.Now())
	assert.Equal(t, 0, c.Len())
}

func TestCache_CloseTwice(t *testing.T) {
	c := NewCache[string](context.Background(), time.Minute, time.Minute)
	c.Close()
	assert.NotPanics(t, c.Close)
}
