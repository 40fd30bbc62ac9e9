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
	"github.com/stretchr/testify/require"
)

func TestHasEOFMagic(t *testing.T) {
	tests := []struct {
		code []byte
		want bool
	}{
		{nil, false},
		{[]byte{0xef}, false},
		{[]byte{0xef, 0x00}, true},
		{[]byte{0xef, 0x00, 0x01, 0xff}, true},
		{[]byte{0xef, 0x01, 0x00}, false}, // delegation prefix, not a container
		{[]byte{0x60, 0x00}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, hasEOFMagic(tt.code), "code %x", tt.code)
	}
}

func TestEOFReplacementHashValue(t *testing.T) {
	want := common.HexToHash("0x9dbf3648db8210552e9c4f75c6a1c3057c0ca432043bd648be15fe7be05646f5")
	require.Equal(t, want, EOFReplacementHash)
}
