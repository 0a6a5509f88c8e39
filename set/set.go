// Package set implements a set of integers kept as a strictly ascending,
// sentinel-bounded doubly-linked chain.
package set

type Set interface {
	Insert(v int) (modified bool)
	Remove(v int) bool
	MakeEmpty()
	IsMember(v int) bool
	IsEmpty() bool
	Cardinality() int
	String() string
}

var _ Set = (*SortedSet)(nil)
