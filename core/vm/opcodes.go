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

import "fmt"

// OpCode is an EVM opcode
type OpCode byte

// Opcodes covered by the account inspection core. The full table of an
// Ethereum VM is much larger; the interpreter treats every hole in the jump
// table as an invalid operation.
const (
	STOP OpCode = 0x00

	BALANCE     OpCode = 0x31
	EXTCODESIZE OpCode = 0x3b
	EXTCODEHASH OpCode = 0x3f

	POP    OpCode = 0x50
	PUSH1  OpCode = 0x60
	PUSH32 OpCode = 0x7f
)

var opCodeToString = map[OpCode]string{
	STOP:        "STOP",
	BALANCE:     "BALANCE",
	EXTCODESIZE: "EXTCODESIZE",
	EXTCODEHASH: "EXTCODEHASH",
	POP:         "POP",
}

func (op OpCode) String() string {
	if op >= PUSH1 && op <= PUSH32 {
		return fmt.Sprintf("PUSH%d", int(op-PUSH1)+1)
	}
	if name, ok := opCodeToString[op]; ok {
		return name
	}
	return fmt.Sprintf("opcode %#x not defined", int(op))
}
