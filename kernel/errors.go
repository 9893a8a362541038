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

package kernel

import (
	"errors"
	"fmt"
)

// AbortKind classifies why the kernel aborted a transaction.
type AbortKind uint8

const (
	// ContextViolation wrong kind of executing account for the procedure
	ContextViolation AbortKind = iota + 1
	// IdentityMismatch asset issued by another faucet than the executing one
	IdentityMismatch
	// MalformedAsset asset failed structural checks
	MalformedAsset
	// SupplyViolation issuance would leave [0, max supply]
	SupplyViolation
	// DuplicateIssuance non-fungible asset already issued
	DuplicateIssuance
	// UnavailableBurnTarget burned asset not supplied as transaction input
	UnavailableBurnTarget
)

var abortKindNames = map[AbortKind]string{
	ContextViolation:      "context violation",
	IdentityMismatch:      "identity mismatch",
	MalformedAsset:        "malformed asset",
	SupplyViolation:       "supply violation",
	DuplicateIssuance:     "duplicate issuance",
	UnavailableBurnTarget: "unavailable burn target",
}

func (k AbortKind) String() string {
	if name, ok := abortKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("abort(%d)", uint8(k))
}

// Sentinels usable with errors.Is against any *AbortError of the same kind.
var (
	ErrContextViolation      = errors.New(ContextViolation.String())
	ErrIdentityMismatch      = errors.New(IdentityMismatch.String())
	ErrMalformedAsset        = errors.New(MalformedAsset.String())
	ErrSupplyViolation       = errors.New(SupplyViolation.String())
	ErrDuplicateIssuance     = errors.New(DuplicateIssuance.String())
	ErrUnavailableBurnTarget = errors.New(UnavailableBurnTarget.String())
)

var abortSentinels = map[AbortKind]error{
	ContextViolation:      ErrContextViolation,
	IdentityMismatch:      ErrIdentityMismatch,
	MalformedAsset:        ErrMalformedAsset,
	SupplyViolation:       ErrSupplyViolation,
	DuplicateIssuance:     ErrDuplicateIssuance,
	UnavailableBurnTarget: ErrUnavailableBurnTarget,
}

// AbortError is returned by a kernel procedure whose precondition failed.
// It terminates the enclosing transaction.
type AbortError struct {
	Kind   AbortKind
	Proc   string
	Reason string
}

func abort(kind AbortKind, proc string, format string, args ...interface{}) *AbortError {
	return &AbortError{Kind: kind, Proc: proc, Reason: fmt.Sprintf(format, args...)}
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("kernel abort in %s: %s: %s", e.Proc, e.Kind, e.Reason)
}

// Is matches the sentinel of e's kind.
func (e *AbortError) Is(target error) bool {
	return abortSentinels[e.Kind] == target
}

// AsAbort returns the *AbortError in err's chain, if any.
func AsAbort(err error) (*AbortError, bool) {
	var abortErr *AbortError
	if errors.As(err, &abortErr) {
		return abortErr, true
	}
	return nil, false
}
