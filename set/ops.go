package set

func (s *SortedSet) IsEmpty() bool {
	return s.counter == 0
}

func (s *SortedSet) Cardinality() int {
	return s.counter
}

// IsMember reports whether v is in the set.
func (s *SortedSet) IsMember(v int) bool {
	for p := s.first(); p != tail; p = s.next(p) {
		switch x := s.value(p); {
		case x == v:
			return true
		case x > v:
			return false
		}
	}

	return false
}

// LessThan reports whether s is a subset of other.
func (s *SortedSet) LessThan(other *SortedSet) bool {
	if s == other {
		return true
	}

	p, q := s.first(), other.first()
	for p != tail {
		if q == tail {
			return false
		}

		a, b := s.value(p), other.value(q)
		switch {
		case a < b:
			return false
		case a > b:
			q = other.next(q)
		default:
			p = s.next(p)
			q = other.next(q)
		}
	}

	return true
}

// Equal reports whether s and other hold the same values.
func (s *SortedSet) Equal(other *SortedSet) bool {
	if s == other {
		return true
	}
	if s.counter != other.counter {
		return false
	}

	for p, q := s.first(), other.first(); p != tail; p, q = s.next(p), other.next(q) {
		if s.value(p) != other.value(q) {
			return false
		}
	}

	return true
}

// Union adds to s every value of other (s += other).
func (s *SortedSet) Union(other *SortedSet) *SortedSet {
	s.ensure()
	if s == other {
		return s
	}

	p := head
	for q := other.first(); q != tail; {
		v := other.value(q)
		n := s.next(p)

		switch {
		case n == tail || s.value(n) > v:
			s.insertAfter(p, v)
			q = other.next(q)
		case s.value(n) == v:
			q = other.next(q)
		default:
			p = n
		}
	}

	return s
}

// Intersect keeps in s only the values also present in other (s *= other).
func (s *SortedSet) Intersect(other *SortedSet) *SortedSet {
	s.ensure()
	if s == other {
		return s
	}

	p, q := head, head
	for s.next(p) != tail && other.next(q) != tail {
		a, b := s.value(s.next(p)), other.value(other.next(q))
		switch {
		case a == b:
			p = s.next(p)
			q = other.next(q)
		case a < b:
			s.remove(s.next(p))
		default:
			q = other.next(q)
		}
	}

	// other is exhausted, nothing left in s can match
	for s.next(p) != tail {
		s.remove(s.next(p))
	}

	return s
}

// Difference removes from s every value present in other (s -= other).
func (s *SortedSet) Difference(other *SortedSet) *SortedSet {
	s.ensure()
	if s == other {
		s.MakeEmpty()
		return s
	}

	p, q := head, head
	for s.next(p) != tail && other.next(q) != tail {
		a, b := s.value(s.next(p)), other.value(other.next(q))
		switch {
		case a < b:
			p = s.next(p)
		case a == b:
			s.remove(s.next(p))
		default:
			q = other.next(q)
		}
	}

	return s
}

// Union returns a new set holding a ∪ b.
func Union(a, b *SortedSet) *SortedSet {
	return a.Clone().Union(b)
}

// Intersection returns a new set holding a ∩ b.
func Intersection(a, b *SortedSet) *SortedSet {
	return a.Clone().Intersect(b)
}

// Difference returns a new set holding a \ b.
func Difference(a, b *SortedSet) *SortedSet {
	return a.Clone().Difference(b)
}
