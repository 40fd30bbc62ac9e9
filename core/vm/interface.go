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
	"github.com/holiman/uint256"
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/core/types"
)

//go:generate mockgen -source=interface.go -destination=interface_mock.go -package=vm

// WorldState is the read view of the persistent account state consumed by
// operations. Mutation happens through other opcodes not covered by this
// core.
type WorldState interface {
	// GetAccount returns the account at the given address. The second return
	// value reports whether the account exists at all; an existing account
	// may still be empty, which is a distinct condition callers must handle
	// separately.
	GetAccount(addr common.Address) (*types.Account, bool)
}

// GasCalculator prices operations for one protocol version. The execution
// core treats it as an opaque oracle; all returned costs are non-negative.
type GasCalculator interface {
	// ExtCodeHashGasCost returns the cost of an EXTCODEHASH on target. The
	// target is nil when the operand could not be resolved (stack underflow),
	// in which case implementations charge their best conservative estimate.
	ExtCodeHashGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64

	// ExtCodeSizeGasCost returns the cost of an EXTCODESIZE on target.
	ExtCodeSizeGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64

	// BalanceGasCost returns the cost of a BALANCE on target.
	BalanceGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64

	// DelegatedCodeResolutionGasCost returns the surcharge for resolving the
	// target of a delegated-code account.
	DelegatedCodeResolutionGasCost(frame Frame, targetIsWarm bool) uint64

	// IsPrecompile reports whether the address is a builtin contract.
	// Precompiles are always warm and never charged the cold-access
	// surcharge.
	IsPrecompile(addr common.Address) bool
}

// Frame is the contract operations require of an execution frame. The frame
// owns the operand stack, the gas meter, the executed code and a handle to
// the world state; it lives for exactly one call and is owned by the
// interpreter loop.
type Frame interface {
	// PopStackItem removes and returns the top stack item. It returns an
	// ErrStackUnderflow when the stack is empty.
	PopStackItem() (uint256.Int, error)

	// PushStackItem pushes a value, returning an ErrStackOverflow when the
	// stack is already at the 1024 item limit.
	PushStackItem(value uint256.Int) error

	// RemainingGas returns the gas still available to the frame.
	RemainingGas() uint64

	// DecrementRemainingGas burns the given amount without any checks; the
	// caller must have verified availability beforehand.
	DecrementRemainingGas(amount uint64)

	// WarmUpAddress marks the address warm for the remainder of the
	// transaction and reports whether it was already warm. The marking is
	// durable even when the current operation halts afterwards.
	WarmUpAddress(addr common.Address) bool

	// WorldState returns the state read view of the frame.
	WorldState() WorldState

	// Code returns the bytecode under execution.
	Code() []byte

	// PC returns the current program counter.
	PC() uint64
}
