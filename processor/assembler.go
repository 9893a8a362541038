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
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/luozexuan/miden-base/kernel"
	"github.com/luozexuan/miden-base/types"
)

var (
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrBadArgument        = errors.New("bad instruction argument")
	ErrUnknownProcedure   = errors.New("unknown kernel procedure")
)

// Instruction is one assembled operation.
type Instruction struct {
	Op     Opcode
	Arg    int          // index argument of dup, dupw, swap, swapw
	Values []types.Felt // immediates of push
	Proc   string       // kernel procedure of syscall
}

func (inst Instruction) String() string {
	switch inst.Op {
	case OpPush:
		parts := make([]string, len(inst.Values))
		for i, v := range inst.Values {
			parts[i] = strconv.FormatUint(uint64(v), 10)
		}
		return "push." + strings.Join(parts, ".")
	case OpSyscall:
		return "syscall." + inst.Proc
	}
	if info := ops[inst.Op]; info.maxArg >= 0 && inst.Arg != info.defArg {
		return fmt.Sprintf("%s.%d", info.name, inst.Arg)
	}
	return inst.Op.String()
}

// Program is an assembled instruction sequence.
type Program []Instruction

func (p Program) String() string {
	lines := make([]string, len(p))
	for i, inst := range p {
		lines[i] = inst.String()
	}
	return strings.Join(lines, "\n")
}

// Assemble translates program text into a Program. Instructions are
// separated by white space; '#' starts a comment running to the end of
// the line.
func Assemble(src string) (Program, error) {
	var prog Program
	scanner := bufio.NewScanner(strings.NewReader(src))
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range strings.Fields(text) {
			inst, err := parseInstruction(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			prog = append(prog, inst)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

func parseInstruction(tok string) (Instruction, error) {
	name, arg := tok, ""
	if i := strings.IndexByte(tok, '.'); i >= 0 {
		name, arg = tok[:i], tok[i+1:]
	}
	op, ok := opsByName[name]
	if !ok {
		return Instruction{}, fmt.Errorf("%w %q", ErrUnknownInstruction, tok)
	}
	inst := Instruction{Op: op}
	switch op {
	case OpPush:
		if arg == "" {
			return inst, fmt.Errorf("%w: push without value", ErrBadArgument)
		}
		for _, s := range strings.Split(arg, ".") {
			v, err := strconv.ParseUint(s, 0, 64)
			if err != nil || !types.Felt(v).Valid() {
				return inst, fmt.Errorf("%w: %q is not a field element", ErrBadArgument, s)
			}
			inst.Values = append(inst.Values, types.Felt(v))
		}
		return inst, nil
	case OpSyscall:
		if _, ok := kernel.LookupProcOffset(arg); !ok {
			return inst, fmt.Errorf("%w %q", ErrUnknownProcedure, arg)
		}
		inst.Proc = arg
		return inst, nil
	}
	info := ops[op]
	inst.Arg = info.defArg
	if arg == "" {
		return inst, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || info.maxArg < 0 || n < info.minArg || n > info.maxArg {
		return inst, fmt.Errorf("%w: %q", ErrBadArgument, tok)
	}
	inst.Arg = n
	return inst, nil
}
