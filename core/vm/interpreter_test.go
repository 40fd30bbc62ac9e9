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
	"testing"

	"github.com/petravm/petra/common"
	"github.com/petravm/petra/core/types"
	"github.com/petravm/petra/crypto"
	"github.com/petravm/petra/params"
	"github.com/stretchr/testify/require"
)

// push20 is the opcode placing a full address immediate on the stack.
const push20 = PUSH1 + 19

// hashProgram assembles PUSH20 <addr> EXTCODEHASH STOP.
func hashProgram(addr common.Address) []byte {
	code := []byte{byte(push20)}
	code = append(code, addr.Bytes()...)
	return append(code, byte(EXTCODEHASH), byte(STOP))
}

func TestRunExtCodeHashColdAbsent(t *testing.T) {
	var (
		evm   = NewEVM(Config{})
		addr  = common.HexToAddress("0xdeadbeef00000000000000000000000000000000")
		frame = NewMessageFrame(stubWorld{}, hashProgram(addr), 5000, nil)
	)
	defer frame.Release()

	require.NoError(t, NewInterpreter(evm).Run(frame))
	require.Equal(t, 1, frame.StackDepth())
	require.True(t, popValue(t, frame).IsZero())

	used := GasFastestStep + params.ColdAccountAccessCostEIP2929
	require.Equal(t, 5000-used, frame.RemainingGas())
}

func TestRunExtCodeHashWarmEOF(t *testing.T) {
	var (
		evm  = NewEVM(Config{EnableEOF: true})
		addr = common.HexToAddress("0xc0ffee")
		code = []byte{0xef, 0x00, 0x01}
	)
	world := stubWorld{addr: {
		Address:  addr,
		Nonce:    1,
		CodeHash: crypto.Keccak256Hash(code),
		Code:     code,
	}}
	warm := NewAccessList()
	warm.AddAddress(addr)
	frame := NewMessageFrame(world, hashProgram(addr), 5000, warm)
	defer frame.Release()

	require.NoError(t, NewInterpreter(evm).Run(frame))
	require.Equal(t, 1, frame.StackDepth())
	require.Equal(t, EOFReplacementHash.Bytes(), popValue(t, frame).Bytes())

	used := GasFastestStep + params.WarmStorageReadCostEIP2929
	require.Equal(t, 5000-used, frame.RemainingGas())
}

func TestRunInvalidOpcode(t *testing.T) {
	evm := NewEVM(Config{})
	frame := NewMessageFrame(stubWorld{}, []byte{0xfe}, 100, nil)
	defer frame.Release()

	err := NewInterpreter(evm).Run(frame)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid opcode")
}

func TestRunOutOfGasChargesFullCost(t *testing.T) {
	var (
		evm   = NewEVM(Config{})
		addr  = common.HexToAddress("0xc0ffee")
		frame = NewMessageFrame(stubWorld{}, hashProgram(addr), 1000, nil)
	)
	defer frame.Release()

	err := NewInterpreter(evm).Run(frame)
	require.ErrorIs(t, err, ErrOutOfGas)
	// The full computed cost is charged on the way out; 997 remaining cannot
	// cover 2600, so the meter clamps at zero.
	require.Zero(t, frame.RemainingGas())
	require.True(t, frame.AccessList().ContainsAddress(addr), "warmth is not rolled back")
}

func TestRunStackUnderflow(t *testing.T) {
	evm := NewEVM(Config{})
	frame := NewMessageFrame(stubWorld{}, []byte{byte(EXTCODEHASH)}, 1000, nil)
	defer frame.Release()

	err := NewInterpreter(evm).Run(frame)
	require.ErrorIs(t, err, ErrStackUnderflowBase)
	// The conservative warm-assumption charge still applies.
	require.Equal(t, 1000-params.WarmStorageReadCostEIP2929, frame.RemainingGas())
}

func TestRunStopEndsExecution(t *testing.T) {
	evm := NewEVM(Config{})
	frame := NewMessageFrame(stubWorld{}, []byte{byte(STOP), byte(PUSH1), 0x01}, 100, nil)
	defer frame.Release()

	require.NoError(t, NewInterpreter(evm).Run(frame))
	require.Zero(t, frame.StackDepth(), "code after STOP must not run")
	require.Equal(t, uint64(100), frame.RemainingGas())
}

func TestRunFallsOffCodeEnd(t *testing.T) {
	evm := NewEVM(Config{})
	frame := NewMessageFrame(stubWorld{}, []byte{byte(PUSH1), 0x01}, 100, nil)
	defer frame.Release()

	require.NoError(t, NewInterpreter(evm).Run(frame))
	require.Equal(t, 1, frame.StackDepth())
	require.Equal(t, uint64(1), popValue(t, frame).Uint64())
}

func TestRunWarmthPersistsAcrossOperations(t *testing.T) {
	var (
		evm  = NewEVM(Config{})
		addr = common.HexToAddress("0xc0ffee")
	)
	// Touch the same account twice: the second access must be warm.
	code := []byte{byte(push20)}
	code = append(code, addr.Bytes()...)
	code = append(code, byte(EXTCODEHASH), byte(POP), byte(push20))
	code = append(code, addr.Bytes()...)
	code = append(code, byte(EXTCODEHASH), byte(STOP))

	world := stubWorld{addr: {
		Address:  addr,
		Nonce:    1,
		CodeHash: crypto.Keccak256Hash([]byte{0x00}),
		Code:     []byte{0x00},
	}}
	frame := NewMessageFrame(world, code, 10000, nil)
	defer frame.Release()

	require.NoError(t, NewInterpreter(evm).Run(frame))
	used := 2*GasFastestStep + GasQuickStep +
		params.ColdAccountAccessCostEIP2929 + params.WarmStorageReadCostEIP2929
	require.Equal(t, 10000-used, frame.RemainingGas())
}

func TestRunDelegatedExtCodeSize(t *testing.T) {
	var (
		evm    = NewEVM(Config{})
		addr   = common.HexToAddress("0xc0ffee")
		target = common.HexToAddress("0xf00d")
		dcode  = types.AddressToDelegation(target)
	)
	world := stubWorld{addr: {
		Address:  addr,
		Nonce:    1,
		CodeHash: crypto.Keccak256Hash(dcode),
		Code:     dcode,
	}}
	code := []byte{byte(push20)}
	code = append(code, addr.Bytes()...)
	code = append(code, byte(EXTCODESIZE), byte(STOP))

	frame := NewMessageFrame(world, code, 10000, nil)
	defer frame.Release()

	require.NoError(t, NewInterpreter(evm).Run(frame))
	require.Equal(t, uint64(2), popValue(t, frame).Uint64())

	// PUSH20 + cold account + cold delegation target resolution.
	used := GasFastestStep + 2*params.ColdAccountAccessCostEIP2929
	require.Equal(t, 10000-used, frame.RemainingGas())
}
