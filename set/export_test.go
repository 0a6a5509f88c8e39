package set

// Values exposes the chain in order for tests.
func Values(s *SortedSet) []int {
	if s.nodes == nil {
		return []int{}
	}

	values := make([]int, 0, s.counter)
	for p := s.first(); p != tail; p = s.next(p) {
		values = append(values, s.value(p))
	}
	return values
}
