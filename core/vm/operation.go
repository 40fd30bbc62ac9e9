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

// OperationResult is what every operation hands back to the interpreter loop:
// the gas to charge and an optional exceptional halt. The cost is charged
// even when the operation halted; metering is never rolled back.
type OperationResult struct {
	GasCost uint64
	Halt    HaltReason
}

// executionFunc implements one opcode. Operations validate their own
// preconditions (stack arity, gas); the loop assumes nothing on their behalf.
type executionFunc func(frame Frame, evm *EVM) OperationResult

// operation is one variant of the closed opcode set: the opcode byte, its
// stack arity and the function implementing the execute contract. Dispatch is
// a table lookup on the opcode byte, there is no dynamic dispatch.
type operation struct {
	code       OpCode
	name       string
	numPops    int
	numPushes  int
	immediates int // bytes of immediate data following the opcode
	execute    executionFunc
}

// JumpTable contains the operations for every opcode byte; holes are invalid
// operations.
type JumpTable [256]*operation

// Config selects the optional protocol behaviors of the execution core.
type Config struct {
	// EnableEOF masks the code hash of EOF containers behind
	// EOFReplacementHash (EIP-3540 backward compatibility).
	EnableEOF bool

	// GasCalculator prices the operations. Defaults to the Prague schedule.
	GasCalculator GasCalculator
}

// EVM bundles the pieces shared by all frames of one execution: the jump
// table, the gas schedule and the configuration. It is the second argument of
// every execute call.
type EVM struct {
	cfg     Config
	gasCalc GasCalculator
	table   JumpTable
}

// NewEVM creates an execution environment with the given configuration.
func NewEVM(cfg Config) *EVM {
	if cfg.GasCalculator == nil {
		cfg.GasCalculator = NewPragueGasCalculator()
	}
	return &EVM{
		cfg:     cfg,
		gasCalc: cfg.GasCalculator,
		table:   newInstructionSet(),
	}
}

// GasCalculator returns the gas schedule in use.
func (evm *EVM) GasCalculator() GasCalculator { return evm.gasCalc }

// newInstructionSet returns the jump table of the account inspection core.
func newInstructionSet() JumpTable {
	var tbl JumpTable
	tbl[STOP] = &operation{code: STOP, name: "STOP", execute: opStop}
	tbl[POP] = &operation{code: POP, name: "POP", numPops: 1, execute: opPop}
	tbl[BALANCE] = &operation{
		code: BALANCE, name: "BALANCE",
		numPops: 1, numPushes: 1,
		execute: opBalance,
	}
	tbl[EXTCODESIZE] = &operation{
		code: EXTCODESIZE, name: "EXTCODESIZE",
		numPops: 1, numPushes: 1,
		execute: opExtCodeSize,
	}
	tbl[EXTCODEHASH] = &operation{
		code: EXTCODEHASH, name: "EXTCODEHASH",
		numPops: 1, numPushes: 1,
		execute: opExtCodeHash,
	}
	for i := 0; i < 32; i++ {
		op := PUSH1 + OpCode(i)
		tbl[op] = &operation{
			code: op, name: op.String(),
			numPushes:  1,
			immediates: i + 1,
			execute:    makePush(uint64(i + 1)),
		}
	}
	return tbl
}
