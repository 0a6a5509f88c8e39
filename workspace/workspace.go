package workspace

import (
	"slices"

	"github.com/denismitr/intset/set"
)

type (
	// Workspace binds names to sets and remembers the order of definition.
	// It owns every bound set.
	Workspace struct {
		sets  map[string]*set.SortedSet
		order []string
		nc    *set.NodeCounter
	}

	ForEachFn func(name string, s *set.SortedSet, order int)
)

func New() *Workspace {
	return &Workspace{
		sets: make(map[string]*set.SortedSet),
		nc:   set.NewNodeCounter(),
	}
}

// Counter returns the node counter shared by every set of the workspace.
func (w *Workspace) Counter() *set.NodeCounter {
	return w.nc
}

// Options returns the set options for building sets accounted to w.
func (w *Workspace) Options() []set.Option {
	return []set.Option{set.WithNodeCounter(w.nc)}
}

// Set binds name to a copy of s. An existing binding is assigned in place.
func (w *Workspace) Set(name string, s *set.SortedSet) (added bool) {
	if existing, found := w.sets[name]; found {
		existing.Assign(s)
		return false
	}

	w.sets[name] = s.Clone(w.Options()...)
	w.order = append(w.order, name)
	return true
}

func (w *Workspace) Get(name string) (*set.SortedSet, bool) {
	s, found := w.sets[name]
	return s, found
}

func (w *Workspace) Has(name string) bool {
	_, found := w.sets[name]
	return found
}

// Remove unbinds name and releases its set.
func (w *Workspace) Remove(name string) bool {
	s, found := w.sets[name]
	if !found {
		return false
	}

	s.Destroy()
	delete(w.sets, name)
	if i := slices.Index(w.order, name); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}

	return true
}

func (w *Workspace) Len() int {
	return len(w.sets)
}

// Names returns the bound names in definition order.
func (w *Workspace) Names() []string {
	return slices.Clone(w.order)
}

func (w *Workspace) ForEach(f ForEachFn) {
	for i, name := range w.order {
		f(name, w.sets[name], i)
	}
}

// Destroy releases every bound set.
func (w *Workspace) Destroy() {
	for _, name := range w.order {
		w.sets[name].Destroy()
	}
	w.sets = make(map[string]*set.SortedSet)
	w.order = nil
}
