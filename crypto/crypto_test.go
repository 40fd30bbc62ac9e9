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

package crypto

import (
	"testing"

	"github.com/petravm/petra/common"
	"github.com/stretchr/testify/require"
)

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	want := common.HexToHash("0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")

	require.Equal(t, want, Keccak256Hash(msg))
	require.Equal(t, want.Bytes(), Keccak256(msg))

	// Multi-part input hashes as the concatenation.
	require.Equal(t, want, Keccak256Hash([]byte("a"), []byte("bc")))
}

func TestKeccak256EmptyInput(t *testing.T) {
	want := common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.Equal(t, want, Keccak256Hash())
	require.Equal(t, want, Keccak256Hash(nil))
}
