package set

const (
	head = 0
	tail = 1

	nilIndex = -1
)

type node struct {
	value int
	prev  int
	next  int
}

// NodeCounter tracks the number of live nodes, sentinels included, across
// every set it is attached to. It is meant for tests and debugging and is
// not safe for concurrent use.
type NodeCounter struct {
	live int
}

func NewNodeCounter() *NodeCounter {
	return &NodeCounter{}
}

// Live returns the number of nodes allocated and not yet released.
func (c *NodeCounter) Live() int {
	if c == nil {
		return 0
	}
	return c.live
}

func (c *NodeCounter) add(n int) {
	if c != nil {
		c.live += n
	}
}

// ensure creates the sentinels of a zero value or destroyed set.
func (s *SortedSet) ensure() {
	if s.nodes != nil {
		return
	}

	s.nodes = make([]node, 2, 2+s.capacity)
	s.nodes[head] = node{prev: nilIndex, next: tail}
	s.nodes[tail] = node{prev: head, next: nilIndex}
	s.counter = 0
	s.nc.add(2)
}

func (s *SortedSet) alloc(value, prev, next int) int {
	n := node{value: value, prev: prev, next: next}
	s.nc.add(1)

	if last := len(s.free) - 1; last >= 0 {
		idx := s.free[last]
		s.free = s.free[:last]
		s.nodes[idx] = n
		return idx
	}

	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

func (s *SortedSet) release(idx int) {
	s.nodes[idx] = node{prev: nilIndex, next: nilIndex}
	s.free = append(s.free, idx)
	s.nc.add(-1)
}

// insertAfter links a new node holding value right after p and returns its
// index. The caller picks p so that the chain stays sorted.
func (s *SortedSet) insertAfter(p, value int) int {
	next := s.nodes[p].next
	idx := s.alloc(value, p, next)
	s.nodes[p].next = idx
	s.nodes[next].prev = idx
	s.counter++
	return idx
}

// remove unlinks and releases the real node p.
func (s *SortedSet) remove(p int) {
	if s.counter == 0 || p == head || p == tail {
		return
	}

	n := s.nodes[p]
	s.nodes[n.prev].next = n.next
	s.nodes[n.next].prev = n.prev
	s.release(p)
	s.counter--
}

// first and next see a set without sentinels as an empty chain, so reading
// a zero value or destroyed set allocates nothing.
func (s *SortedSet) first() int {
	return s.next(head)
}

func (s *SortedSet) next(p int) int {
	if s.nodes == nil {
		return tail
	}
	return s.nodes[p].next
}

func (s *SortedSet) value(p int) int {
	return s.nodes[p].value
}
