package cpu

import "github.com/hexaflex/chip8/arch"

// Stack holds subroutine return addresses.
type Stack struct {
	data [arch.StackDepth]uint16
	sp   int
}

// Len returns the number of stored return addresses.
func (s *Stack) Len() int { return s.sp }

// Empty returns true if the stack holds no addresses.
func (s *Stack) Empty() bool { return s.sp == 0 }

// Full returns true if no more addresses can be pushed.
func (s *Stack) Full() bool { return s.sp == len(s.data) }

// Push stores a return address.
// Returns ErrStackOverflow if the stack is full.
func (s *Stack) Push(addr uint16) error {
	if s.Full() {
		return ErrStackOverflow
	}
	s.data[s.sp] = addr
	s.sp++
	return nil
}

// Pop removes and returns the most recent return address.
// Returns ErrStackUnderflow if the stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.Empty() {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.data[s.sp], nil
}

// Peek returns the most recent return address without removing it.
func (s *Stack) Peek() (uint16, bool) {
	if s.Empty() {
		return 0, false
	}
	return s.data[s.sp-1], true
}

// Reset empties the stack.
func (s *Stack) Reset() {
	*s = Stack{}
}
