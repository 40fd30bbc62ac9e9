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

package types

import (
	"bytes"

	"github.com/petravm/petra/common"
)

// DelegationPrefix is used by code to denote the account is delegating to
// another account.
var DelegationPrefix = []byte{0xef, 0x01, 0x00}

// AddressToDelegation adds the delegation prefix to the specified address.
func AddressToDelegation(addr common.Address) []byte {
	return append(DelegationPrefix, addr.Bytes()...)
}

// ParseDelegation tries to parse the address from a delegation slice.
func ParseDelegation(b []byte) (common.Address, bool) {
	if len(b) != 23 || !bytes.HasPrefix(b, DelegationPrefix) {
		return common.Address{}, false
	}
	return common.BytesToAddress(b[len(DelegationPrefix):]), true
}

// HasDelegatedCode reports whether the account's code is a delegation
// designation.
func (acc *Account) HasDelegatedCode() bool {
	_, ok := ParseDelegation(acc.Code)
	return ok
}

// DelegatedCodeTarget returns the account the code delegates to, if any.
func (acc *Account) DelegatedCodeTarget() (common.Address, bool) {
	return ParseDelegation(acc.Code)
}
