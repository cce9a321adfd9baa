package cpu

const (
	STACK_LIMIT = 16 // Stack entries, entry 0 is the empty sentinel.
)

// Stack is the return-address stack.
//
// Push advances Sp then stores, Pop reads then retreats, so Sp == 0 is
// empty and at most STACK_LIMIT-1 addresses are held.
type Stack struct {
	Data [STACK_LIMIT]uint16
	Sp   byte
}

// Push stores a return address. ok is false, and the stack unchanged,
// if the stack is full.
func (s *Stack) Push(value uint16) (ok bool) {
	if s.Full() {
		return
	}

	s.Sp++
	s.Data[s.Sp] = value
	return true
}

// Pop removes the most recent return address. ok is false if the stack
// is empty.
func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Sp--
	}
	return
}

func (s *Stack) Empty() bool {
	return s.Sp == 0
}

func (s *Stack) Full() bool {
	return s.Sp == STACK_LIMIT-1
}

// Depth returns the number of held return addresses.
func (s *Stack) Depth() int {
	return int(s.Sp)
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[s.Sp], true
}

func (s *Stack) Reset() {
	clear(s.Data[:])
	s.Sp = 0
}
