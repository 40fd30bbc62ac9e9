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

import "github.com/petravm/petra/core/types"

// DeductDelegatedCodeGasCost charges the extra gas required to resolve the
// code target when the account's code is a delegation designation. The
// delegation target is warmed eagerly, before the affordability check, so the
// warmth sticks even when the charge fails.
//
// For non-delegating accounts the cost is zero and ok is true. When ok is
// false nothing has been deducted; the caller reports the returned cost in
// place of its own base cost.
func DeductDelegatedCodeGasCost(frame Frame, gasCalc GasCalculator, account *types.Account) (cost uint64, ok bool) {
	target, isDelegated := account.DelegatedCodeTarget()
	if !isDelegated {
		return 0, true
	}
	targetIsWarm := frame.WarmUpAddress(target) || gasCalc.IsPrecompile(target)
	cost = gasCalc.DelegatedCodeResolutionGasCost(frame, targetIsWarm)
	if frame.RemainingGas() < cost {
		return cost, false
	}
	frame.DecrementRemainingGas(cost)
	return cost, true
}
