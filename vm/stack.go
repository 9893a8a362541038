// Copyright 2018 The zipper team Authors
// This file is part of the z0 library.
//
// The z0 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The z0 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the z0 library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"errors"

	"github.com/luozexuan/miden-base/types"
)

// ErrStackUnderflow is returned when an instruction needs more operands
// than the stack holds.
var ErrStackUnderflow = errors.New("operand stack underflow")

// Stack is the operand stack of the machine. The last element of items is
// the top of the stack.
type Stack struct {
	items []types.Felt
}

// NewStack returns a stack holding values, the first value ending on top.
func NewStack(values ...types.Felt) *Stack {
	s := &Stack{items: make([]types.Felt, len(values))}
	for i, v := range values {
		s.items[len(values)-1-i] = v
	}
	return s
}

// Depth returns the number of operands on the stack.
func (s *Stack) Depth() int { return len(s.items) }

// Push places v on top of the stack.
func (s *Stack) Push(v types.Felt) { s.items = append(s.items, v) }

// Pop removes and returns the top operand.
func (s *Stack) Pop() (types.Felt, error) {
	if len(s.items) == 0 {
		return 0, ErrStackUnderflow
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the operand n positions below the top without removing it.
func (s *Stack) Peek(n int) (types.Felt, error) {
	if n < 0 || n >= len(s.items) {
		return 0, ErrStackUnderflow
	}
	return s.items[len(s.items)-1-n], nil
}

// PushWord pushes w element 0 first, leaving element 3 on top.
func (s *Stack) PushWord(w types.Word) {
	for _, v := range w {
		s.Push(v)
	}
}

// PopWord is the inverse of PushWord.
func (s *Stack) PopWord() (types.Word, error) {
	var w types.Word
	if len(s.items) < len(w) {
		return w, ErrStackUnderflow
	}
	for i := len(w) - 1; i >= 0; i-- {
		w[i], _ = s.Pop()
	}
	return w, nil
}

// PeekWord returns the word whose top element sits n positions below the top.
func (s *Stack) PeekWord(n int) (types.Word, error) {
	var w types.Word
	if n < 0 || n+len(w) > len(s.items) {
		return w, ErrStackUnderflow
	}
	for i := range w {
		w[len(w)-1-i] = s.items[len(s.items)-1-n-i]
	}
	return w, nil
}

// PopN removes the top n operands and returns them top-first.
func (s *Stack) PopN(n int) ([]types.Felt, error) {
	if n < 0 || n > len(s.items) {
		return nil, ErrStackUnderflow
	}
	out := make([]types.Felt, n)
	for i := range out {
		out[i] = s.items[len(s.items)-1-i]
	}
	s.items = s.items[:len(s.items)-n]
	return out, nil
}

// PushN pushes values given top-first, so values[0] ends on top.
func (s *Stack) PushN(values []types.Felt) {
	for i := len(values) - 1; i >= 0; i-- {
		s.Push(values[i])
	}
}

// Swap exchanges the top operand with the one n positions below it.
func (s *Stack) Swap(n int) error {
	if n <= 0 || n >= len(s.items) {
		return ErrStackUnderflow
	}
	top := len(s.items) - 1
	s.items[top], s.items[top-n] = s.items[top-n], s.items[top]
	return nil
}

// Items returns a copy of the stack content, top first.
func (s *Stack) Items() []types.Felt {
	out := make([]types.Felt, len(s.items))
	for i := range out {
		out[i] = s.items[len(s.items)-1-i]
	}
	return out
}

// Copy returns an independent copy of s.
func (s *Stack) Copy() *Stack {
	return &Stack{items: append([]types.Felt(nil), s.items...)}
}
