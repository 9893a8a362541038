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

package processor

import (
	"fmt"

	"github.com/luozexuan/miden-base/gateway"
	"github.com/luozexuan/miden-base/kernel"
	"github.com/luozexuan/miden-base/params"
	"github.com/luozexuan/miden-base/types"
	"github.com/luozexuan/miden-base/vm"
)

// Opcode identifies an instruction.
type Opcode uint8

const (
	OpPush Opcode = iota
	OpDrop
	OpDropW
	OpDup
	OpDupW
	OpSwap
	OpSwapW
	OpEq
	OpAssert
	OpAssertEq
	OpAssertEqW
	OpSyscall
)

type opInfo struct {
	name string
	// maxArg bounds the optional numeric argument; -1 disallows it.
	minArg, maxArg int
	defArg         int
	fn             func(*virtualMachine, Instruction) error
}

var ops = [...]opInfo{
	OpPush:      {"push", 0, 0, 0, opPush},
	OpDrop:      {"drop", 0, -1, 0, opDrop},
	OpDropW:     {"dropw", 0, -1, 0, opDropW},
	OpDup:       {"dup", 0, params.FrameWidth - 1, 0, opDup},
	OpDupW:      {"dupw", 0, 3, 0, opDupW},
	OpSwap:      {"swap", 1, params.FrameWidth - 1, 1, opSwap},
	OpSwapW:     {"swapw", 1, 3, 1, opSwapW},
	OpEq:        {"eq", 0, -1, 0, opEq},
	OpAssert:    {"assert", 0, -1, 0, opAssert},
	OpAssertEq:  {"assert_eq", 0, -1, 0, opAssertEq},
	OpAssertEqW: {"assert_eqw", 0, -1, 0, opAssertEqW},
	OpSyscall:   {"syscall", 0, 0, 0, opSyscall},
}

var opsByName = make(map[string]Opcode)

func init() {
	for op, info := range ops {
		opsByName[info.name] = Opcode(op)
	}
}

func (op Opcode) String() string {
	if int(op) < len(ops) {
		return ops[op].name
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// syscalls binds kernel procedure names to their gateway entry points.
var syscalls = map[string]func(vm.KernelGateway, *vm.Stack) error{
	kernel.MintAsset:                gateway.Mint,
	kernel.BurnAsset:                gateway.Burn,
	kernel.GetTotalFungibleIssuance: gateway.GetTotalIssuance,
	kernel.IsNonFungibleIssued:      gateway.IsNonFungibleIssued,
}

func opPush(m *virtualMachine, inst Instruction) error {
	if err := m.applyCost(params.StepCost * int64(len(inst.Values))); err != nil {
		return err
	}
	for _, v := range inst.Values {
		m.stack.Push(v)
	}
	return nil
}

func opDrop(m *virtualMachine, _ Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	_, err := m.stack.Pop()
	return err
}

func opDropW(m *virtualMachine, _ Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	_, err := m.stack.PopWord()
	return err
}

func opDup(m *virtualMachine, inst Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	v, err := m.stack.Peek(inst.Arg)
	if err != nil {
		return err
	}
	m.stack.Push(v)
	return nil
}

func opDupW(m *virtualMachine, inst Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	w, err := m.stack.PeekWord(inst.Arg * params.WordSize)
	if err != nil {
		return err
	}
	m.stack.PushWord(w)
	return nil
}

func opSwap(m *virtualMachine, inst Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	return m.stack.Swap(inst.Arg)
}

func opSwapW(m *virtualMachine, inst Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	n := inst.Arg * params.WordSize
	items, err := m.stack.PopN(n + params.WordSize)
	if err != nil {
		return err
	}
	swapped := make([]types.Felt, 0, len(items))
	swapped = append(swapped, items[n:]...)
	swapped = append(swapped, items[params.WordSize:n]...)
	swapped = append(swapped, items[:params.WordSize]...)
	m.stack.PushN(swapped)
	return nil
}

func opEq(m *virtualMachine, _ Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	b, err := m.stack.Pop()
	if err != nil {
		return err
	}
	a, err := m.stack.Pop()
	if err != nil {
		return err
	}
	if a == b {
		m.stack.Push(1)
	} else {
		m.stack.Push(0)
	}
	return nil
}

func opAssert(m *virtualMachine, _ Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	v, err := m.stack.Pop()
	if err != nil {
		return err
	}
	if v != 1 {
		return fmt.Errorf("%w: top is %d", ErrAssertionFailed, v)
	}
	return nil
}

func opAssertEq(m *virtualMachine, _ Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	b, err := m.stack.Pop()
	if err != nil {
		return err
	}
	a, err := m.stack.Pop()
	if err != nil {
		return err
	}
	if a != b {
		return fmt.Errorf("%w: %d != %d", ErrAssertionFailed, a, b)
	}
	return nil
}

func opAssertEqW(m *virtualMachine, _ Instruction) error {
	if err := m.applyCost(params.StepCost); err != nil {
		return err
	}
	b, err := m.stack.PopWord()
	if err != nil {
		return err
	}
	a, err := m.stack.PopWord()
	if err != nil {
		return err
	}
	if a != b {
		return fmt.Errorf("%w: %s != %s", ErrAssertionFailed, a, b)
	}
	return nil
}

func opSyscall(m *virtualMachine, inst Instruction) error {
	if err := m.applyCost(params.SyscallCost); err != nil {
		return err
	}
	return syscalls[inst.Proc](m.gw, m.stack)
}
