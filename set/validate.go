package set

import (
	"github.com/pkg/errors"
)

// Validate walks the chain and reports the first broken invariant:
// ascending unique values, back links matching forward links and the
// element counter matching the chain length.
func (s *SortedSet) Validate() error {
	if s.nodes == nil {
		if s.counter != 0 {
			return errors.Wrapf(ErrCorrupted, "set without sentinels counts %d elements", s.counter)
		}
		return nil
	}

	if len(s.nodes) < 2 {
		return errors.Wrap(ErrCorrupted, "sentinels are missing")
	}

	count := 0
	prev := head
	for p := s.first(); p != tail; p = s.next(p) {
		if p <= tail || p >= len(s.nodes) {
			return errors.Wrapf(ErrCorrupted, "node %d links to invalid index %d", prev, p)
		}
		if s.nodes[p].prev != prev {
			return errors.Wrapf(ErrCorrupted, "node %d links back to %d instead of %d", p, s.nodes[p].prev, prev)
		}
		if prev != head && s.value(p) <= s.value(prev) {
			return errors.Wrapf(ErrCorrupted, "value %d at position %d does not exceed %d", s.value(p), count, s.value(prev))
		}

		count++
		if count > s.counter || count > len(s.nodes) {
			return errors.Wrapf(ErrCorrupted, "chain is longer than the %d counted elements", s.counter)
		}
		prev = p
	}

	if s.nodes[tail].prev != prev {
		return errors.Wrapf(ErrCorrupted, "tail links back to %d instead of %d", s.nodes[tail].prev, prev)
	}
	if count != s.counter {
		return errors.Wrapf(ErrCorrupted, "chain holds %d elements, counter says %d", count, s.counter)
	}

	return nil
}
