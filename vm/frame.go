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
	"fmt"

	"github.com/luozexuan/miden-base/params"
	"github.com/luozexuan/miden-base/types"
)

// FrameWidth is the number of slots a kernel procedure sees.
const FrameWidth = params.FrameWidth

// Frame is the fixed-width operand window handed across the privilege
// boundary. Slot 0 is the top of the stack.
type Frame [FrameWidth]types.Felt

// Word reads the word whose top element is at slot.
func (f *Frame) Word(slot int) types.Word {
	var w types.Word
	for i := range w {
		w[len(w)-1-i] = f[slot+i]
	}
	return w
}

// SetWord writes w so that its top element lands at slot.
func (f *Frame) SetWord(slot int, w types.Word) {
	for i := range w {
		f[slot+i] = w[len(w)-1-i]
	}
}

// KernelGateway is the privilege switch. Invoke runs the kernel procedure
// at offset synchronously over frame. A returned error aborts the
// enclosing transaction.
type KernelGateway interface {
	Invoke(offset uint64, frame *Frame) error
}

// Invoke builds the call frame for offset from inputs (top-first), crosses
// into the kernel and returns the outputs (top-first) with the padding
// trimmed away.
//
// Frame layout on entry:
//
//	[inputs[0] .. inputs[n-1], offset, 0 .. 0]
//
// On return slots [0, outputs) hold the results and every other slot must
// be zero. Arity and layout violations are programming errors and panic.
func Invoke(gw KernelGateway, offset uint64, inputs []types.Felt, outputs int) ([]types.Felt, error) {
	if len(inputs)+1 > FrameWidth || outputs < 0 || outputs > FrameWidth {
		panic(fmt.Sprintf("vm: bad syscall arity: %d inputs, %d outputs", len(inputs), outputs))
	}
	var frame Frame
	copy(frame[:], inputs)
	frame[len(inputs)] = types.Felt(offset)

	if err := gw.Invoke(offset, &frame); err != nil {
		return nil, err
	}
	for i := outputs; i < FrameWidth; i++ {
		if frame[i] != 0 {
			panic(fmt.Sprintf("vm: misaligned frame after syscall %d: slot %d = %d", offset, i, frame[i]))
		}
	}
	result := make([]types.Felt, outputs)
	copy(result, frame[:outputs])
	return result, nil
}

// Syscall runs Invoke against the operand stack: the top inputs operands
// are consumed and replaced by the outputs results. Operands below the
// inputs are left untouched and the depth changes by exactly
// outputs - inputs. On a kernel abort the inputs stay consumed.
func Syscall(gw KernelGateway, s *Stack, offset uint64, inputs, outputs int) error {
	args, err := s.PopN(inputs)
	if err != nil {
		return err
	}
	base := s.Depth()
	results, err := Invoke(gw, offset, args, outputs)
	if err != nil {
		return err
	}
	s.PushN(results)
	if s.Depth() != base+outputs {
		panic(fmt.Sprintf("vm: stack depth %d after syscall %d, want %d", s.Depth(), offset, base+outputs))
	}
	return nil
}
