package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type client struct {
	name string
}

func (c *client) Name() string {
	return c.name
}

func TestHolder(t *testing.T) {
	h := NewHolder[*client]()

	h.Add(&client{name: "a"})
	h.Add(&client{name: "b"})

	require.Equal(t, 2, h.Len())

	c, ok := h.Get("a")
	require.True(t, ok)
	require.Equal(t, "a", c.Name())

	_, ok = h.Get("c")
	require.False(t, ok)

	var removed string

	h.RemoveExec("b", func(c *client) {
		removed = c.Name()
	})

	require.Equal(t, "b", removed)
	require.Equal(t, 1, h.Len())

	h.Remove("a")
	require.Equal(t, 0, h.Len())
}

func TestStringSet(t *testing.T) {
	s := NewStringSet()

	s.Add("a")
	s.Add("a")
	s.Add("b")

	require.True(t, s.Has("a"))
	require.False(t, s.Has("c"))
	require.Len(t, s.List(), 2)

	s.Remove("a")
	require.False(t, s.Has("a"))
}
