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

package verkle

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/trie/utils"
	"github.com/stretchr/testify/require"
)

var testAddr = common.HexToAddress("0x6177843db3138ae69679a54b95cf345ed759450d")

func TestAccountKeyID(t *testing.T) {
	p := NewTrieKeyPreloader()
	require.Equal(t, common.Hash{}, p.AccountKeyID())
	require.Equal(t, p.AccountKeyID(), p.AccountKeyID())
}

func TestCodeChunkKeyIDs(t *testing.T) {
	p := NewTrieKeyPreloader()
	tests := []struct {
		codeLen int
		chunks  int
	}{
		{0, 0},
		{1, 1},
		{30, 1},
		{31, 1},
		{32, 2},
		{62, 2},
		{63, 3},
		{31 * 100, 100},
	}
	for _, tt := range tests {
		ids := p.CodeChunkKeyIDs(make([]byte, tt.codeLen))
		require.Len(t, ids, tt.chunks, "code length %d", tt.codeLen)
	}

	// The identifiers are the chunk ordinals, big-endian encoded.
	ids := p.CodeChunkKeyIDs(make([]byte, 3*CodeChunkSize))
	for i, id := range ids {
		var ordinal uint256.Int
		ordinal.SetBytes(id.Bytes())
		require.Equal(t, uint64(i), ordinal.Uint64())
	}
}

func TestStorageKeyIDs(t *testing.T) {
	p := NewTrieKeyPreloader()
	slots := map[common.Hash]struct{}{
		common.HexToHash("0x01"): {},
		common.HexToHash("0x02"): {},
	}
	ids := p.StorageKeyIDs(slots)
	require.Len(t, ids, 2)
	for _, id := range ids {
		_, ok := slots[id]
		require.True(t, ok)
	}
	require.Empty(t, p.StorageKeyIDs(nil))
}

func TestPreloadedHasherDeterminism(t *testing.T) {
	var (
		p        = NewTrieKeyPreloader()
		account  = []common.Hash{p.AccountKeyID()}
		storage  = p.StorageKeyIDs(map[common.Hash]struct{}{common.HexToHash("0x01"): {}})
		code     = p.CodeChunkKeyIDs(make([]byte, 4*CodeChunkSize))
		indexOne = uint256.NewInt(1)
	)
	first := p.PreloadedHasher(testAddr, account, storage, code)
	second := p.PreloadedHasher(testAddr, account, storage, code)

	for _, probe := range []struct {
		treeIndex *uint256.Int
		subIndex  byte
	}{
		{&uint256.Int{}, utils.BasicDataLeafKey},
		{&uint256.Int{}, utils.CodeHashLeafKey},
		{&uint256.Int{}, 65},  // header storage slot
		{&uint256.Int{}, 130}, // code chunk 2
		{indexOne, 0},         // outside the batch, served by the fallback
	} {
		one := first.Hasher.TrieKeyHash(testAddr, probe.treeIndex, probe.subIndex)
		two := second.Hasher.TrieKeyHash(testAddr, probe.treeIndex, probe.subIndex)
		require.Equal(t, one, two, "sub index %d", probe.subIndex)
	}
}

func TestCachedHasherMatchesDirectDerivation(t *testing.T) {
	var (
		p    = NewTrieKeyPreloader()
		code = p.CodeChunkKeyIDs(make([]byte, 10*CodeChunkSize))
	)
	hctx := p.PreloadedHasher(testAddr, []common.Hash{p.AccountKeyID()}, nil, code)

	// Keys served from the batch must be bit-identical to from-scratch
	// derivation.
	require.Equal(t,
		common.BytesToHash(utils.BasicDataKey(testAddr.Bytes())),
		hctx.Hasher.TrieKeyHash(testAddr, &uint256.Int{}, utils.BasicDataLeafKey))
	require.Equal(t,
		common.BytesToHash(utils.CodeHashKey(testAddr.Bytes())),
		hctx.Hasher.TrieKeyHash(testAddr, &uint256.Int{}, utils.CodeHashLeafKey))

	for chunk := uint64(0); chunk < 10; chunk++ {
		treeIndex, subIndex := utils.CodeChunkIndex(uint256.NewInt(chunk))
		require.Equal(t,
			common.BytesToHash(utils.CodeChunkKey(testAddr.Bytes(), uint256.NewInt(chunk))),
			hctx.Hasher.TrieKeyHash(testAddr, treeIndex, subIndex),
			"chunk %d", chunk)
	}
}

func TestCachedHasherFallback(t *testing.T) {
	p := NewTrieKeyPreloader()
	// Batch only the account header; everything else goes via the fallback.
	hctx := p.PreloadedHasher(testAddr, []common.Hash{p.AccountKeyID()}, nil, nil)

	farIndex := new(uint256.Int).Lsh(uint256.NewInt(1), 240)
	require.Equal(t,
		common.BytesToHash(utils.GetTreeKey(testAddr.Bytes(), farIndex, 9)),
		hctx.Hasher.TrieKeyHash(testAddr, farIndex, 9))
}

func TestHasherContextFlags(t *testing.T) {
	var (
		p       = NewTrieKeyPreloader()
		storage = p.StorageKeyIDs(map[common.Hash]struct{}{common.HexToHash("0x01"): {}})
		code    = p.CodeChunkKeyIDs(make([]byte, 1))
	)
	tests := []struct {
		name        string
		storageIDs  []common.Hash
		codeIDs     []common.Hash
		hasStorage  bool
		hasCode     bool
	}{
		{"neither", nil, nil, false, false},
		{"storage only", storage, nil, true, false},
		{"code only", nil, code, false, true},
		{"both", storage, code, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hctx := p.PreloadedHasher(testAddr, nil, tt.storageIDs, tt.codeIDs)
			require.Equal(t, tt.hasStorage, hctx.HasStorageTrieKeys)
			require.Equal(t, tt.hasCode, hctx.HasCodeTrieKeys)
		})
	}
}

func TestPreloadHasherContexts(t *testing.T) {
	var (
		p     = NewTrieKeyPreloader()
		addr2 = common.HexToAddress("0x8c8a9c6d1e1f2b3a4d5e6f708192a3b4c5d6e7f8")
	)
	intents := map[common.Address]AccessIntent{
		testAddr: {
			Account: true,
			Code:    make([]byte, 2*CodeChunkSize),
		},
		addr2: {
			StorageSlots: map[common.Hash]struct{}{common.HexToHash("0x05"): {}},
		},
	}
	contexts := p.PreloadHasherContexts(intents)
	require.Len(t, contexts, 2)

	require.True(t, contexts[testAddr].HasCodeTrieKeys)
	require.False(t, contexts[testAddr].HasStorageTrieKeys)
	require.True(t, contexts[addr2].HasStorageTrieKeys)
	require.False(t, contexts[addr2].HasCodeTrieKeys)

	// Concurrently preloaded contexts agree with sequential derivation.
	require.Equal(t,
		common.BytesToHash(utils.BasicDataKey(testAddr.Bytes())),
		contexts[testAddr].Hasher.TrieKeyHash(testAddr, &uint256.Int{}, utils.BasicDataLeafKey))
	treeIndex, subIndex := utils.StorageIndex(common.HexToHash("0x05").Bytes())
	require.Equal(t,
		common.BytesToHash(utils.StorageSlotKey(addr2.Bytes(), common.HexToHash("0x05").Bytes())),
		contexts[addr2].Hasher.TrieKeyHash(addr2, treeIndex, subIndex))
}

func TestPedersenHasherMatchesCached(t *testing.T) {
	var (
		p       = NewTrieKeyPreloader()
		plain   = &PedersenHasher{pointCache: utils.NewPointCache(4)}
		indexes = []*uint256.Int{uint256.NewInt(0), uint256.NewInt(1)}
	)
	hctx := p.PreloadedHasher(testAddr, []common.Hash{p.AccountKeyID()}, nil,
		p.CodeChunkKeyIDs(make([]byte, 129*CodeChunkSize)))

	for _, index := range indexes {
		for _, subIndex := range []byte{0, 1, 128, 255} {
			require.Equal(t,
				plain.TrieKeyHash(testAddr, index, subIndex),
				hctx.Hasher.TrieKeyHash(testAddr, index, subIndex),
				"tree index %s sub index %d", index, subIndex)
		}
	}
}
