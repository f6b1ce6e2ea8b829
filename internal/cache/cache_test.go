package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheLoadsOnce(t *testing.T) {
	var calls int32

	c := NewWithTTL[int](time.Minute, func(key string) int {
		return int(atomic.AddInt32(&calls, 1))
	})

	wg := new(sync.WaitGroup)

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			require.Equal(t, 1, c.Load("a"))
		}()
	}

	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
	require.Equal(t, 1, c.Len())
}

func TestCacheExpires(t *testing.T) {
	var calls int32

	c := NewWithTTL[int](time.Millisecond, func(key string) int {
		return int(atomic.AddInt32(&calls, 1))
	})

	require.Equal(t, 1, c.Load("a"))
	time.Sleep(time.Millisecond * 5)
	require.Equal(t, 2, c.Load("a"))
}

func TestCacheClean(t *testing.T) {
	c := NewWithTTL[string](time.Millisecond, func(key string) string {
		return key
	})

	c.Load("a")
	c.Load("b")
	require.Equal(t, 2, c.Len())

	time.Sleep(time.Millisecond * 20)
	c.Clean()
	require.Equal(t, 0, c.Len())
}
