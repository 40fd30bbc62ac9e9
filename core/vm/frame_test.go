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
	"testing"

	"github.com/holiman/uint256"
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/params"
	"github.com/stretchr/testify/require"
)

func TestFramePopEmptyStack(t *testing.T) {
	frame := NewMessageFrame(stubWorld{}, nil, 100, nil)
	defer frame.Release()

	_, err := frame.PopStackItem()
	require.ErrorIs(t, err, ErrStackUnderflowBase)
}

func TestFramePushPopRoundTrip(t *testing.T) {
	frame := NewMessageFrame(stubWorld{}, nil, 100, nil)
	defer frame.Release()

	require.NoError(t, frame.PushStackItem(*uint256.NewInt(42)))
	require.Equal(t, 1, frame.StackDepth())

	value, err := frame.PopStackItem()
	require.NoError(t, err)
	require.Equal(t, uint64(42), value.Uint64())
	require.Zero(t, frame.StackDepth())
}

func TestFramePushLimit(t *testing.T) {
	frame := NewMessageFrame(stubWorld{}, nil, 100, nil)
	defer frame.Release()

	for i := uint64(0); i < params.StackLimit; i++ {
		require.NoError(t, frame.PushStackItem(*uint256.NewInt(i)))
	}
	err := frame.PushStackItem(*uint256.NewInt(0))
	require.ErrorIs(t, err, ErrStackOverflowBase)

	var overflow ErrStackOverflow
	require.True(t, errors.As(err, &overflow))
	require.Equal(t, int(params.StackLimit), frame.StackDepth())
}

func TestFrameGasClamp(t *testing.T) {
	frame := NewMessageFrame(stubWorld{}, nil, 100, nil)
	defer frame.Release()

	frame.DecrementRemainingGas(60)
	require.Equal(t, uint64(40), frame.RemainingGas())

	frame.DecrementRemainingGas(1000)
	require.Zero(t, frame.RemainingGas())
}

func TestFrameWarmUpAddress(t *testing.T) {
	frame := NewMessageFrame(stubWorld{}, nil, 100, nil)
	defer frame.Release()
	addr := common.HexToAddress("0xc0ffee")

	require.False(t, frame.WarmUpAddress(addr), "first touch is cold")
	require.True(t, frame.WarmUpAddress(addr), "second touch is warm")
	require.True(t, frame.WarmUpAddress(addr), "warmth is durable")
}

func TestFrameSharedAccessList(t *testing.T) {
	var (
		warm = NewAccessList()
		addr = common.HexToAddress("0xc0ffee")
	)
	first := NewMessageFrame(stubWorld{}, nil, 100, warm)
	require.False(t, first.WarmUpAddress(addr))
	first.Release()

	// A follow-up frame of the same transaction inherits the warmth.
	second := NewMessageFrame(stubWorld{}, nil, 100, warm)
	defer second.Release()
	require.True(t, second.WarmUpAddress(addr))
}
