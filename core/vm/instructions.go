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
)

// Static costs of the auxiliary opcodes.
const (
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
)

// opExtCodeHash returns the code hash of a specified account.
//
// The execution path is strictly linear; every step is a potential exit to an
// exceptional halt:
//
//	fetch operand -> resolve warm/cold -> compute cost -> gas check ->
//	read account -> delegation surcharge -> produce & push result
//
// Warming the target address is an eager, transaction-scoped side effect: it
// happens before the gas check and is not rolled back when the operation
// fails afterwards.
func opExtCodeHash(frame Frame, evm *EVM) OperationResult {
	gasCalc := evm.GasCalculator()

	slot, err := frame.PopStackItem()
	if err != nil {
		// The true operand is unknown here, so the charge assumes an already
		// warm access. Conservative by policy, not an optimization; kept
		// as-is for protocol conformance.
		return OperationResult{
			GasCost: gasCalc.ExtCodeHashGasCost(frame, true, nil),
			Halt:    HaltInsufficientStackItems,
		}
	}
	address := common.Address(slot.Bytes20())

	accountIsWarm := frame.WarmUpAddress(address) || gasCalc.IsPrecompile(address)
	cost := gasCalc.ExtCodeHashGasCost(frame, accountIsWarm, &address)
	if frame.RemainingGas() < cost {
		return OperationResult{GasCost: cost, Halt: HaltInsufficientGas}
	}

	account, exists := frame.WorldState().GetAccount(address)
	if exists {
		// On surcharge failure the helper's own cost replaces the base cost
		// of this result; it does not add to it.
		if surcharge, paid := DeductDelegatedCodeGasCost(frame, gasCalc, account); !paid {
			return OperationResult{GasCost: surcharge, Halt: HaltInsufficientGas}
		}
	}

	var value uint256.Int
	if exists && !account.Empty() {
		if evm.cfg.EnableEOF && hasEOFMagic(account.Code) {
			value.SetBytes(EOFReplacementHash.Bytes())
		} else {
			value.SetBytes(account.CodeHash.Bytes())
		}
	}
	if err := frame.PushStackItem(value); err != nil {
		// The operand is resolved by now, so the charge reuses it together
		// with the warm assumption rather than recomputing from scratch.
		return OperationResult{
			GasCost: gasCalc.ExtCodeHashGasCost(frame, true, &address),
			Halt:    HaltTooManyStackItems,
		}
	}
	return OperationResult{GasCost: cost}
}

// opExtCodeSize returns the code size of a specified account. Delegated code
// and EOF containers are both reported with the two byte length of their
// respective prefixes, never with the raw designator or container length.
func opExtCodeSize(frame Frame, evm *EVM) OperationResult {
	gasCalc := evm.GasCalculator()

	slot, err := frame.PopStackItem()
	if err != nil {
		return OperationResult{
			GasCost: gasCalc.ExtCodeSizeGasCost(frame, true, nil),
			Halt:    HaltInsufficientStackItems,
		}
	}
	address := common.Address(slot.Bytes20())

	accountIsWarm := frame.WarmUpAddress(address) || gasCalc.IsPrecompile(address)
	cost := gasCalc.ExtCodeSizeGasCost(frame, accountIsWarm, &address)
	if frame.RemainingGas() < cost {
		return OperationResult{GasCost: cost, Halt: HaltInsufficientGas}
	}

	account, exists := frame.WorldState().GetAccount(address)
	if exists {
		if surcharge, paid := DeductDelegatedCodeGasCost(frame, gasCalc, account); !paid {
			return OperationResult{GasCost: surcharge, Halt: HaltInsufficientGas}
		}
	}

	var value uint256.Int
	if exists && !account.Empty() {
		switch {
		case account.HasDelegatedCode():
			value.SetUint64(uint64(len(EOFReplacementCode)))
		case evm.cfg.EnableEOF && hasEOFMagic(account.Code):
			value.SetUint64(uint64(len(EOFReplacementCode)))
		default:
			value.SetUint64(uint64(len(account.Code)))
		}
	}
	if err := frame.PushStackItem(value); err != nil {
		return OperationResult{
			GasCost: gasCalc.ExtCodeSizeGasCost(frame, true, &address),
			Halt:    HaltTooManyStackItems,
		}
	}
	return OperationResult{GasCost: cost}
}

// opBalance returns the balance of a specified account. Balance reads do not
// resolve code, so no delegation surcharge applies.
func opBalance(frame Frame, evm *EVM) OperationResult {
	gasCalc := evm.GasCalculator()

	slot, err := frame.PopStackItem()
	if err != nil {
		return OperationResult{
			GasCost: gasCalc.BalanceGasCost(frame, true, nil),
			Halt:    HaltInsufficientStackItems,
		}
	}
	address := common.Address(slot.Bytes20())

	accountIsWarm := frame.WarmUpAddress(address) || gasCalc.IsPrecompile(address)
	cost := gasCalc.BalanceGasCost(frame, accountIsWarm, &address)
	if frame.RemainingGas() < cost {
		return OperationResult{GasCost: cost, Halt: HaltInsufficientGas}
	}

	var value uint256.Int
	if account, exists := frame.WorldState().GetAccount(address); exists && account.Balance != nil {
		value.Set(account.Balance)
	}
	if err := frame.PushStackItem(value); err != nil {
		return OperationResult{
			GasCost: gasCalc.BalanceGasCost(frame, true, &address),
			Halt:    HaltTooManyStackItems,
		}
	}
	return OperationResult{GasCost: cost}
}

// opStop halts execution cleanly. The loop recognizes the opcode itself; the
// operation only exists so STOP is not a hole in the table.
func opStop(frame Frame, evm *EVM) OperationResult {
	return OperationResult{}
}

// opPop discards the top stack item.
func opPop(frame Frame, evm *EVM) OperationResult {
	if _, err := frame.PopStackItem(); err != nil {
		return OperationResult{GasCost: GasQuickStep, Halt: HaltInsufficientStackItems}
	}
	return OperationResult{GasCost: GasQuickStep}
}

// makePush builds the handler for PUSH1..PUSH32. Immediate bytes running past
// the end of the code are zero padded, as if the code were infinitely
// extended with zero bytes.
func makePush(size uint64) executionFunc {
	return func(frame Frame, evm *EVM) OperationResult {
		var (
			code  = frame.Code()
			start = frame.PC() + 1
			end   = start + size
		)
		if start > uint64(len(code)) {
			start = uint64(len(code))
		}
		if end > uint64(len(code)) {
			end = uint64(len(code))
		}
		var padded [32]byte
		copy(padded[32-size:32-size+end-start], code[start:end])

		var value uint256.Int
		value.SetBytes(padded[32-size:])
		if err := frame.PushStackItem(value); err != nil {
			return OperationResult{GasCost: GasFastestStep, Halt: HaltTooManyStackItems}
		}
		return OperationResult{GasCost: GasFastestStep}
	}
}
