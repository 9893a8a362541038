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

// Package kernel implements the trusted side of the privilege boundary:
// the procedure offset table, the dispatch of syscalls and the faucet
// procedures that enforce the issuance rules.
package kernel

import (
	"fmt"

	"github.com/luozexuan/miden-base/types"
	"github.com/luozexuan/miden-base/vm"
)

type procedure struct {
	name    string
	inputs  int
	outputs int
	run     func(ctx *Context, frame *vm.Frame) error
}

var procedures = map[string]procedure{
	MintAsset:                {MintAsset, 4, 4, mintAsset},
	BurnAsset:                {BurnAsset, 4, 4, burnAsset},
	GetTotalFungibleIssuance: {GetTotalFungibleIssuance, 0, 1, getTotalFungibleIssuance},
	IsNonFungibleIssued:      {IsNonFungibleIssued, 4, 1, isNonFungibleIssued},
}

var dispatchTable = make(map[uint64]procedure)

func init() {
	for name, offset := range procOffsets {
		proc, ok := procedures[name]
		if !ok {
			panic(fmt.Sprintf("kernel: no procedure for %q", name))
		}
		dispatchTable[offset] = proc
	}
}

// ProcArity returns the input and output operand counts of the named
// procedure.
func ProcArity(name string) (inputs, outputs int) {
	proc, ok := procedures[name]
	if !ok {
		panic(fmt.Sprintf("kernel: unknown procedure %q", name))
	}
	return proc.inputs, proc.outputs
}

// Kernel dispatches syscalls of one transaction. It implements
// vm.KernelGateway.
type Kernel struct {
	ctx    *Context
	active bool
}

// New creates a kernel serving ctx.
func New(ctx *Context) *Kernel {
	return &Kernel{ctx: ctx}
}

// Context returns the execution context the kernel serves.
func (k *Kernel) Context() *Context { return k.ctx }

// Invoke runs the procedure at offset over frame. The frame must carry the
// procedure inputs in its top slots, the offset right below them and zero
// padding after that. On success the outputs occupy the top slots and the
// rest of the frame is zero. Re-entry and malformed frames panic; failed
// preconditions are returned as *AbortError.
func (k *Kernel) Invoke(offset uint64, frame *vm.Frame) error {
	if k.active {
		panic("kernel: re-entrant syscall")
	}
	proc, ok := dispatchTable[offset]
	if !ok {
		panic(fmt.Sprintf("kernel: no procedure at offset %d", offset))
	}
	if frame[proc.inputs] != types.Felt(offset) {
		panic(fmt.Sprintf("kernel: misaligned frame for %s: slot %d = %d", proc.name, proc.inputs, frame[proc.inputs]))
	}
	for i := proc.inputs + 1; i < vm.FrameWidth; i++ {
		if frame[i] != 0 {
			panic(fmt.Sprintf("kernel: padding slot %d of %s frame is %d", i, proc.name, frame[i]))
		}
	}
	k.active = true
	defer func() { k.active = false }()

	frame[proc.inputs] = 0
	if err := proc.run(k.ctx, frame); err != nil {
		k.ctx.log.Debug("Kernel procedure aborted", "proc", proc.name, "err", err)
		return err
	}
	k.ctx.log.Trace("Kernel procedure done", "proc", proc.name, "outputs", frame[:proc.outputs])
	return nil
}
