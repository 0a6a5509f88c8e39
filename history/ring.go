package history

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrEmpty      = errors.New("history is empty")
	ErrOutOfRange = errors.New("history index out of range")
)

// Ring keeps the last size entries, dropping the oldest once full.
type Ring[T any] struct {
	mux   sync.RWMutex
	head  int
	size  int
	count int
	buf   []T
}

func NewRing[T any](size int) *Ring[T] {
	if size < 1 {
		size = 1
	}

	return &Ring[T]{
		buf:  make([]T, size),
		size: size,
	}
}

func (r *Ring[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.count
}

func (r *Ring[T]) IsEmpty() bool {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.count == 0
}

// Push appends item, overwriting the oldest entry when the ring is full.
func (r *Ring[T]) Push(item T) {
	r.mux.Lock()
	defer r.mux.Unlock()

	r.buf[r.head] = item
	if r.head == r.size-1 {
		r.head = 0
	} else {
		r.head++
	}

	if r.count < r.size {
		r.count++
	}
}

// At returns the i-th entry, 0 being the oldest one kept.
func (r *Ring[T]) At(i int) (T, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	var zero T
	if r.count == 0 {
		return zero, ErrEmpty
	}
	if i < 0 || i >= r.count {
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, r.count)
	}

	return r.buf[r.index(i)], nil
}

func (r *Ring[T]) Last() (T, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	if r.count == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return r.buf[r.index(r.count-1)], nil
}

// Items returns the entries from the oldest to the newest.
func (r *Ring[T]) Items() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()

	items := make([]T, 0, r.count)
	for i := 0; i < r.count; i++ {
		items = append(items, r.buf[r.index(i)])
	}
	return items
}

func (r *Ring[T]) index(i int) int {
	oldest := r.head - r.count
	if oldest < 0 {
		oldest += r.size
	}
	return (oldest + i) % r.size
}
