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

// Interpreter runs bytecode against a frame, one opcode at a time. Execution
// of a frame is strictly sequential: a single goroutine, no suspension
// points, each opcode completing atomically or halting exceptionally.
type Interpreter struct {
	evm *EVM
}

// NewInterpreter returns an interpreter dispatching over the environment's
// jump table.
func NewInterpreter(evm *EVM) *Interpreter {
	return &Interpreter{evm: evm}
}

// Run executes the frame's code until it runs off the end, hits STOP, or an
// operation halts exceptionally. The dispatch contract is: fetch the opcode
// byte, look up the table, execute, charge the returned cost (the charge
// applies on failure too), then act on the halt reason.
func (in *Interpreter) Run(frame *MessageFrame) error {
	for frame.pc < uint64(len(frame.code)) {
		op := OpCode(frame.code[frame.pc])
		operation := in.evm.table[op]
		if operation == nil {
			return &ErrInvalidOpCode{opcode: op}
		}
		result := operation.execute(frame, in.evm)

		// Gas already committed is never refunded, even on exceptional halt.
		frame.DecrementRemainingGas(result.GasCost)
		if result.Halt.Halted() {
			return result.Halt.Err()
		}
		if op == STOP {
			return nil
		}
		frame.pc += 1 + uint64(operation.immediates)
	}
	return nil
}
