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

package params

const (
	// FrameWidth Number of operand stack slots visible to a kernel procedure.
	FrameWidth = 16
	// WordSize Number of field elements in a word.
	WordSize = 4
	// FieldModulus Order of the field every stack element lives in (2^64 - 2^32 + 1).
	FieldModulus uint64 = 0xFFFFFFFF00000001
	// MaxFungibleAmount Largest amount a single fungible asset or a faucet supply may carry.
	MaxFungibleAmount uint64 = 1<<63 - 1
)

const (
	// DefaultRunLimit Cycle budget of a transaction program when none is configured.
	DefaultRunLimit int64 = 1 << 16
	// SyscallCost Cycles charged for a single privilege switch.
	SyscallCost int64 = 32
	// StepCost Cycles charged for an ordinary stack instruction.
	StepCost int64 = 1
)
