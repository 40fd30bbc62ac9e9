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

// Package types contains the account model consumed by the execution core.
package types

import (
	"github.com/holiman/uint256"
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/crypto"
)

// EmptyCodeHash is the known hash of the empty EVM bytecode.
var EmptyCodeHash = crypto.Keccak256Hash(nil)

// Account is a read-only view over one account of the world state. Instances
// are created by the state layer; the interpreter never mutates them.
//
// Absence of an account is a distinct condition from an account that exists
// but is empty, and is modeled by the comma-ok result of
// vm.WorldState.GetAccount rather than by a sentinel Account value.
type Account struct {
	Address  common.Address
	Nonce    uint64
	Balance  *uint256.Int
	CodeHash common.Hash
	Code     []byte
}

// Empty reports whether the account is empty per EIP-161: no balance, no
// nonce and no code.
func (acc *Account) Empty() bool {
	return acc.Nonce == 0 &&
		(acc.Balance == nil || acc.Balance.IsZero()) &&
		len(acc.Code) == 0
}
