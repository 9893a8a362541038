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

import "fmt"

const (
	// ClientIdentifier Client name reported by the command line tool.
	ClientIdentifier = "faucet"
	// KernelVersion Version of the kernel procedure table. Procedure offsets are
	// only stable within one kernel version.
	KernelVersion uint64 = 1

	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 0
)

// Version holds the textual version string.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)

// gitCommit is set at build time via -ldflags "-X".
var gitCommit = ""

// GitCommit returns the commit the binary was built from, if known.
func GitCommit() string {
	return gitCommit
}
