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
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/core/state"
	"github.com/petravm/petra/params"
)

// maxPrecompileAddress is the last builtin address of the supported fork
// (EIP-2537 BLS precompiles end at 0x11).
const maxPrecompileAddress = 0x11

// pragueGasCalculator prices account accesses with the EIP-2929 cold/warm
// schedule.
type pragueGasCalculator struct{}

// NewPragueGasCalculator returns the gas schedule for the Prague fork.
func NewPragueGasCalculator() GasCalculator {
	return pragueGasCalculator{}
}

func (pragueGasCalculator) accountAccessGasCost(accountIsWarm bool) uint64 {
	if accountIsWarm {
		return params.WarmStorageReadCostEIP2929
	}
	return params.ColdAccountAccessCostEIP2929
}

func (g pragueGasCalculator) ExtCodeHashGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64 {
	return g.accountAccessGasCost(accountIsWarm)
}

func (g pragueGasCalculator) ExtCodeSizeGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64 {
	return g.accountAccessGasCost(accountIsWarm)
}

func (g pragueGasCalculator) BalanceGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64 {
	return g.accountAccessGasCost(accountIsWarm)
}

func (g pragueGasCalculator) DelegatedCodeResolutionGasCost(frame Frame, targetIsWarm bool) uint64 {
	return g.accountAccessGasCost(targetIsWarm)
}

func (pragueGasCalculator) IsPrecompile(addr common.Address) bool {
	for _, b := range addr[:common.AddressLength-1] {
		if b != 0 {
			return false
		}
	}
	last := addr[common.AddressLength-1]
	return last >= 1 && last <= maxPrecompileAddress
}

// verkleGasCalculator prices account accesses with the EIP-4762 witness
// schedule: the cost of an access is the cost of the verkle tree branches and
// chunks it adds to the block witness. Repeated accesses within one block are
// free on the witness side, so the schedule falls back to the EIP-2929 warm
// read cost to keep every access non-zero.
type verkleGasCalculator struct {
	pragueGasCalculator // delegation surcharge and precompile set are unchanged

	events *state.AccessEvents
}

// NewVerkleGasCalculator returns a gas schedule charging witness costs
// against the given per-block access tracker.
func NewVerkleGasCalculator(events *state.AccessEvents) GasCalculator {
	return verkleGasCalculator{events: events}
}

func (g verkleGasCalculator) witnessOrWarm(gas uint64) uint64 {
	if gas == 0 {
		return params.WarmStorageReadCostEIP2929
	}
	return gas
}

func (g verkleGasCalculator) ExtCodeHashGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64 {
	if target == nil {
		return params.WarmStorageReadCostEIP2929
	}
	if g.IsPrecompile(*target) {
		return 0
	}
	return g.witnessOrWarm(g.events.CodeHashGas(*target, false))
}

func (g verkleGasCalculator) ExtCodeSizeGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64 {
	if target == nil {
		return params.WarmStorageReadCostEIP2929
	}
	if g.IsPrecompile(*target) {
		return 0
	}
	return g.witnessOrWarm(g.events.BasicDataGas(*target, false))
}

func (g verkleGasCalculator) BalanceGasCost(frame Frame, accountIsWarm bool, target *common.Address) uint64 {
	if target == nil {
		return params.WarmStorageReadCostEIP2929
	}
	return g.witnessOrWarm(g.events.BasicDataGas(*target, false))
}
