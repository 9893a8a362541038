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

// Package processor assembles and runs account programs on the operand
// stack. Privileged work is requested through syscall instructions, which
// cross into the kernel via the gateway.
package processor

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/params"
	"github.com/luozexuan/miden-base/vm"
)

var (
	ErrRunLimitExceeded = errors.New("run limit exceeded")
	ErrAssertionFailed  = errors.New("assertion failed")
)

type virtualMachine struct {
	program  Program
	pc       int
	stack    *vm.Stack
	gw       vm.KernelGateway
	runLimit int64
}

func (m *virtualMachine) applyCost(n int64) error {
	if n > m.runLimit {
		m.runLimit = 0
		return ErrRunLimitExceeded
	}
	m.runLimit -= n
	return nil
}

func (m *virtualMachine) run() error {
	for m.pc = 0; m.pc < len(m.program); m.pc++ {
		inst := m.program[m.pc]
		if err := ops[inst.Op].fn(m, inst); err != nil {
			return &ExecError{PC: m.pc, Inst: inst, Err: err}
		}
	}
	return nil
}

// ExecError locates the instruction a run stopped at.
type ExecError struct {
	PC   int
	Inst Instruction
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("instruction %d (%s): %v", e.PC, e.Inst, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Result is the outcome of a completed or aborted run.
type Result struct {
	Stack      *vm.Stack
	CyclesUsed uint64
}

// Run executes prog over stack with gw serving its syscalls. A runLimit
// of zero selects params.DefaultRunLimit. The returned result is valid
// even when err is not nil.
func Run(prog Program, gw vm.KernelGateway, stack *vm.Stack, runLimit int64) (*Result, error) {
	if runLimit <= 0 {
		runLimit = params.DefaultRunLimit
	}
	if stack == nil {
		stack = vm.NewStack()
	}
	m := &virtualMachine{
		program:  prog,
		stack:    stack,
		gw:       gw,
		runLimit: runLimit,
	}
	err := m.run()
	res := &Result{Stack: stack, CyclesUsed: uint64(runLimit - m.runLimit)}
	if err != nil {
		log.Debug("Program stopped", "pc", m.pc, "cycles", res.CyclesUsed, "err", err)
		return res, err
	}
	log.Trace("Program finished", "instructions", len(prog), "cycles", res.CyclesUsed, "depth", stack.Depth())
	return res, nil
}
