package util

import "sync"

type Named interface {
	Name() string
}

// Holder is a registry of named items, safe for concurrent use.
type Holder[T Named] struct {
	data sync.Map
}

func NewHolder[T Named]() *Holder[T] {
	return &Holder[T]{
		data: sync.Map{},
	}
}

func (h *Holder[T]) Get(name string) (T, bool) {
	if v, ok := h.data.Load(name); ok {
		if n, ok1 := v.(T); ok1 {
			return n, true
		}
	}

	var zero T

	return zero, false
}

func (h *Holder[T]) Add(c T) {
	h.data.Store(c.Name(), c)
}

func (h *Holder[T]) Remove(name string) {
	h.data.Delete(name)
}

func (h *Holder[T]) RemoveExec(name string, f func(c T)) {
	if v, ok := h.data.LoadAndDelete(name); ok {
		if c, ok1 := v.(T); ok1 {
			f(c)
		}
	}
}

func (h *Holder[T]) All(f func(c T) bool) {
	h.data.Range(func(_, value any) bool {
		if c, ok := value.(T); ok {
			return f(c)
		}

		return true
	})
}

func (h *Holder[T]) Len() int {
	n := 0

	h.data.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}
