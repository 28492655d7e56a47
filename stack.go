package forth

// stack is the single data stack: a LIFO of host sized ints, topped at the
// end of the slice.
type stack struct {
	values []int
	limit  int
}

func (s *stack) len() int { return len(s.values) }

func (s *stack) push(val int) error {
	if s.limit != 0 && len(s.values) >= s.limit {
		return ErrStackOverflow
	}
	s.values = append(s.values, val)
	return nil
}

func (s *stack) pop() (int, error) {
	i := len(s.values) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val := s.values[i]
	s.values = s.values[:i]
	return val, nil
}

// peek returns the value n places below the top, so peek(0) is the top.
func (s *stack) peek(n int) (int, error) {
	i := len(s.values) - 1 - n
	if n < 0 || i < 0 {
		return 0, ErrStackUnderflow
	}
	return s.values[i], nil
}

// need fails unless at least n values are on the stack, letting an operation
// check its arity before it consumes anything.
func (s *stack) need(n int) error {
	if len(s.values) < n {
		return ErrStackUnderflow
	}
	return nil
}

func (s *stack) snapshot() []int {
	return append([]int(nil), s.values...)
}

func (s *stack) restore(snap []int) {
	s.values = append(s.values[:0], snap...)
}
