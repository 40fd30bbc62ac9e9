// Copyright 2025 The petra Authors
// This file is part of the petra library.
//
// The petra library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The petra library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the petra library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"errors"
	"fmt"
)

// List evm execution errors
var (
	ErrOutOfGas           = errors.New("out of gas")
	ErrStackUnderflowBase = errors.New("stack underflow")
	ErrStackOverflowBase  = errors.New("stack overflow")
	ErrGasUintOverflow    = errors.New("gas uint64 overflow")
)

// HaltReason classifies why the execution of an operation terminated the
// current call context exceptionally. It is a closed set: operations never
// report anything outside of it. The zero value means the operation
// succeeded.
type HaltReason byte

const (
	HaltNone HaltReason = iota
	HaltInsufficientStackItems
	HaltTooManyStackItems
	HaltInsufficientGas
	HaltInvalidOperation
)

// Halted reports whether the reason denotes an exceptional halt.
func (r HaltReason) Halted() bool { return r != HaltNone }

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "none"
	case HaltInsufficientStackItems:
		return "insufficient stack items"
	case HaltTooManyStackItems:
		return "too many stack items"
	case HaltInsufficientGas:
		return "insufficient gas"
	case HaltInvalidOperation:
		return "invalid operation"
	default:
		return fmt.Sprintf("unknown halt reason %d", byte(r))
	}
}

// Err converts the halt reason into the error surfaced to the caller of the
// interpreter loop. Halt reasons are values, not exceptions: they travel up
// through OperationResult and only become errors at the loop boundary.
func (r HaltReason) Err() error {
	switch r {
	case HaltNone:
		return nil
	case HaltInsufficientStackItems:
		return ErrStackUnderflowBase
	case HaltTooManyStackItems:
		return ErrStackOverflowBase
	case HaltInsufficientGas:
		return ErrOutOfGas
	default:
		return fmt.Errorf("exceptional halt: %s", r)
	}
}

// ErrStackUnderflow wraps an evm error when the items on the stack less
// than the minimal requirement.
type ErrStackUnderflow struct {
	stackLen int
	required int
}

func (e ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.stackLen, e.required)
}

func (e ErrStackUnderflow) Unwrap() error { return ErrStackUnderflowBase }

// ErrStackOverflow wraps an evm error when the items on the stack exceeds
// the maximum allowance.
type ErrStackOverflow struct {
	stackLen int
	limit    int
}

func (e ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.stackLen, e.limit)
}

func (e ErrStackOverflow) Unwrap() error { return ErrStackOverflowBase }

// ErrInvalidOpCode wraps an evm error when an invalid opcode is encountered.
type ErrInvalidOpCode struct {
	opcode OpCode
}

func (e *ErrInvalidOpCode) Error() string { return fmt.Sprintf("invalid opcode: %s", e.opcode) }
