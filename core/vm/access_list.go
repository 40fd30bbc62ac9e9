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
	"maps"
	"slices"

	"github.com/petravm/petra/common"
)

// AccessList is the per-transaction set of addresses and storage slots that
// have already been touched, used for the EIP-2929 cold/warm gas distinction.
//
// Warmth is monotone: once an address has been added it stays warm for the
// remainder of the transaction, even when the operation that added it later
// halts exceptionally. The set is created at transaction start and discarded
// at transaction end; it is owned by the single execution thread and must not
// be shared.
type AccessList struct {
	addresses map[common.Address]int
	slots     []map[common.Hash]struct{}
}

// NewAccessList creates a new accessList.
func NewAccessList() *AccessList {
	return &AccessList{
		addresses: make(map[common.Address]int),
	}
}

// ContainsAddress returns true if the address is in the access list.
func (al *AccessList) ContainsAddress(address common.Address) bool {
	_, ok := al.addresses[address]
	return ok
}

// Contains checks if a slot within an account is present in the access list,
// returning separate flags for the presence of the account and the slot
// respectively.
func (al *AccessList) Contains(address common.Address, slot common.Hash) (addressPresent bool, slotPresent bool) {
	idx, ok := al.addresses[address]
	if !ok {
		// no such address (and hence zero slots)
		return false, false
	}
	if idx == -1 {
		// address yes, but no slots
		return true, false
	}
	_, slotPresent = al.slots[idx][slot]
	return true, slotPresent
}

// AddAddress adds an address to the access list, and returns 'true' if the
// operation caused a change (addr was not previously in the list).
func (al *AccessList) AddAddress(address common.Address) bool {
	if _, present := al.addresses[address]; present {
		return false
	}
	al.addresses[address] = -1
	return true
}

// AddSlot adds the specified (addr, slot) combo to the access list.
// Return values are:
// - address added
// - slot added
func (al *AccessList) AddSlot(address common.Address, slot common.Hash) (addrChange bool, slotChange bool) {
	idx, addrPresent := al.addresses[address]
	if !addrPresent || idx == -1 {
		al.addresses[address] = len(al.slots)
		slotmap := map[common.Hash]struct{}{slot: {}}
		al.slots = append(al.slots, slotmap)
		return !addrPresent, true
	}
	slotmap := al.slots[idx]
	if _, ok := slotmap[slot]; !ok {
		slotmap[slot] = struct{}{}
		return false, true
	}
	// No changes required
	return false, false
}

// Copy creates an independent copy of an accessList.
func (al *AccessList) Copy() *AccessList {
	cp := &AccessList{
		addresses: maps.Clone(al.addresses),
		slots:     make([]map[common.Hash]struct{}, len(al.slots)),
	}
	for i, slotMap := range al.slots {
		cp.slots[i] = maps.Clone(slotMap)
	}
	return cp
}

// Addresses returns the warmed addresses in deterministic order, mainly for
// tests and tracing.
func (al *AccessList) Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(al.addresses))
	for addr := range al.addresses {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, func(a, b common.Address) int {
		return slices.Compare(a[:], b[:])
	})
	return addrs
}
