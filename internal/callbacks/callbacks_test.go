package callbacks

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCallback(t *testing.T) {
	cb := New[int]()

	var got int32

	cb.Subscribe("a", func(msg int) bool {
		atomic.AddInt32(&got, int32(msg))
		return true
	})

	cb.Subscribe("once", func(msg int) bool {
		atomic.AddInt32(&got, int32(msg))
		return false
	})

	cb.Broadcast(2)
	time.Sleep(time.Millisecond * 50)
	require.EqualValues(t, 4, atomic.LoadInt32(&got))

	// "once" unsubscribed itself
	cb.Broadcast(2)
	time.Sleep(time.Millisecond * 50)
	require.EqualValues(t, 6, atomic.LoadInt32(&got))

	require.True(t, cb.Unsubscribe("a"))
	require.False(t, cb.Unsubscribe("a"))
}
