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
	"bytes"

	"github.com/petravm/petra/crypto"
)

var eofMagic = []byte{0xef, 0x00}

// hasEOFMagic returns true if code starts with magic defined by EIP-3540
func hasEOFMagic(code []byte) bool {
	return len(eofMagic) <= len(code) && bytes.Equal(eofMagic, code[0:len(eofMagic)])
}

// EOFReplacementCode is what code-introspecting opcodes pretend an EOF
// container's code is, so that raw container bytes never leak to legacy
// callers.
var EOFReplacementCode = []byte{0xef, 0x00}

// EOFReplacementHash is the sentinel code hash reported for EOF containers:
// keccak256 of EOFReplacementCode,
// 0x9dbf3648db8210552e9c4f75c6a1c3057c0ca432043bd648be15fe7be05646f5.
var EOFReplacementHash = crypto.Keccak256Hash(EOFReplacementCode)
