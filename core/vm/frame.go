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
	"github.com/petravm/petra/params"
)

// MessageFrame is the canonical Frame implementation. One frame executes one
// call; it is created by the interpreter, mutated by exactly one goroutine
// and released when the call returns. The access list outlives the frame: it
// is scoped to the transaction so warmth survives failed sub-calls.
type MessageFrame struct {
	stack      *Stack
	gas        uint64
	pc         uint64
	code       []byte
	world      WorldState
	accessList *AccessList
}

// NewMessageFrame assembles a frame for executing code with the given gas
// budget. The access list may be shared across the frames of one transaction;
// passing nil creates a fresh one.
func NewMessageFrame(world WorldState, code []byte, gas uint64, warm *AccessList) *MessageFrame {
	if warm == nil {
		warm = NewAccessList()
	}
	return &MessageFrame{
		stack:      newstack(),
		gas:        gas,
		code:       code,
		world:      world,
		accessList: warm,
	}
}

// Release returns pooled resources. The frame must not be used afterwards.
func (f *MessageFrame) Release() {
	returnStack(f.stack)
	f.stack = nil
}

// PopStackItem implements Frame.
func (f *MessageFrame) PopStackItem() (uint256.Int, error) {
	if f.stack.len() == 0 {
		return uint256.Int{}, ErrStackUnderflow{stackLen: 0, required: 1}
	}
	return f.stack.pop(), nil
}

// PushStackItem implements Frame.
func (f *MessageFrame) PushStackItem(value uint256.Int) error {
	if uint64(f.stack.len()) >= params.StackLimit {
		return ErrStackOverflow{stackLen: f.stack.len(), limit: int(params.StackLimit)}
	}
	f.stack.push(&value)
	return nil
}

// StackDepth returns the number of items currently on the operand stack.
func (f *MessageFrame) StackDepth() int { return f.stack.len() }

// RemainingGas implements Frame.
func (f *MessageFrame) RemainingGas() uint64 { return f.gas }

// DecrementRemainingGas implements Frame.
func (f *MessageFrame) DecrementRemainingGas(amount uint64) {
	if amount > f.gas {
		// Callers verify availability first; clamping keeps the meter sane if
		// they did not.
		f.gas = 0
		return
	}
	f.gas -= amount
}

// WarmUpAddress implements Frame. It returns whether the address was already
// warm and marks it warm as a side effect.
func (f *MessageFrame) WarmUpAddress(addr common.Address) bool {
	return !f.accessList.AddAddress(addr)
}

// AccessList exposes the transaction-scoped warm set, mainly so a follow-up
// frame of the same transaction can inherit it.
func (f *MessageFrame) AccessList() *AccessList { return f.accessList }

// WorldState implements Frame.
func (f *MessageFrame) WorldState() WorldState { return f.world }

// Code implements Frame.
func (f *MessageFrame) Code() []byte { return f.code }

// PC implements Frame.
func (f *MessageFrame) PC() uint64 { return f.pc }
