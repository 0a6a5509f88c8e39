package set

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const emptySetText = "Set is empty!"

// SortedSet is a set of unique integers kept in ascending order.
// The zero value is an empty set.
type SortedSet struct {
	nodes    []node
	free     []int
	counter  int
	capacity int
	nc       *NodeCounter
}

func newSortedSet(cfg setConfig) *SortedSet {
	s := &SortedSet{
		capacity: cfg.capacity,
		nc:       cfg.counter,
	}
	s.ensure()
	return s
}

func New(options ...Option) *SortedSet {
	return newSortedSet(buildConfig(options))
}

// Of returns a set holding the single value v.
func Of(v int, options ...Option) *SortedSet {
	s := New(options...)
	s.insertAfter(head, v)
	return s
}

// FromSorted builds a set from strictly ascending values.
// Any other input is rejected with ErrUnsorted.
func FromSorted(values []int, options ...Option) (*SortedSet, error) {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return nil, errors.Wrapf(ErrUnsorted, "value %d at index %d follows %d", values[i], i, values[i-1])
		}
	}

	cfg := buildConfig(options)
	if cfg.capacity < len(values) {
		cfg.capacity = len(values)
	}

	s := newSortedSet(cfg)
	for i := len(values) - 1; i >= 0; i-- {
		s.insertAfter(head, values[i])
	}

	return s, nil
}

func MustFromSorted(values []int, options ...Option) *SortedSet {
	s, err := FromSorted(values, options...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromValues builds a set from values in any order, dropping duplicates.
func FromValues(values []int, options ...Option) *SortedSet {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return MustFromSorted(sorted, options...)
}

// Clone returns an independent copy. The copy shares the node counter of s
// unless options say otherwise.
func (s *SortedSet) Clone(options ...Option) *SortedSet {
	cfg := setConfig{counter: s.nc, capacity: s.counter}
	for _, o := range options {
		o(&cfg)
	}

	c := newSortedSet(cfg)
	cursor := head
	for p := s.first(); p != tail; p = s.next(p) {
		cursor = c.insertAfter(cursor, s.value(p))
	}

	return c
}

// Swap exchanges the contents of s and other.
func (s *SortedSet) Swap(other *SortedSet) {
	s.nodes, other.nodes = other.nodes, s.nodes
	s.free, other.free = other.free, s.free
	s.counter, other.counter = other.counter, s.counter
	s.capacity, other.capacity = other.capacity, s.capacity
	s.nc, other.nc = other.nc, s.nc
}

// Assign replaces the contents of s with a copy of src.
// The copy is built first, so s is untouched until the swap.
// s keeps its own node counter.
func (s *SortedSet) Assign(src *SortedSet) *SortedSet {
	replacement := src.Clone(WithNodeCounter(s.nc))
	s.Swap(replacement)
	replacement.Destroy()
	return s
}

// MakeEmpty releases every element, keeping the sentinels.
func (s *SortedSet) MakeEmpty() {
	s.ensure()

	for p := s.first(); p != tail; {
		next := s.next(p)
		s.remove(p)
		p = next
	}

	s.nodes = s.nodes[:2]
	s.free = s.free[:0]
}

// Destroy releases every node including the sentinels. Using s afterwards
// starts over from an empty set.
func (s *SortedSet) Destroy() {
	if s.nodes == nil {
		return
	}

	s.MakeEmpty()
	s.nc.add(-2)
	s.nodes = nil
	s.free = nil
	s.counter = 0
}

// Insert adds v at its sorted position.
func (s *SortedSet) Insert(v int) (modified bool) {
	s.ensure()

	p := head
	n := s.first()
	for n != tail && s.value(n) < v {
		p = n
		n = s.next(n)
	}

	if n != tail && s.value(n) == v {
		return false
	}

	s.insertAfter(p, v)
	return true
}

func (s *SortedSet) Remove(v int) bool {
	s.ensure()

	for p := s.first(); p != tail && s.value(p) <= v; p = s.next(p) {
		if s.value(p) == v {
			s.remove(p)
			return true
		}
	}

	return false
}

func (s *SortedSet) String() string {
	if s.IsEmpty() {
		return emptySetText
	}

	var b strings.Builder
	b.WriteString("{ ")
	for p := s.first(); p != tail; p = s.next(p) {
		b.WriteString(strconv.Itoa(s.value(p)))
		b.WriteByte(' ')
	}
	b.WriteByte('}')

	return b.String()
}
