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

// Package verkle translates semantic state-access intents (account header,
// storage slots, code chunks) into the leaf keys a verkle-tree state backend
// requires, batching the underlying Pedersen hashing so its cost amortizes
// across all keys of one address.
package verkle

import (
	"encoding/binary"
	"sync"

	"github.com/holiman/uint256"
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/trie/utils"
)

// CodeChunkSize is the number of code bytes stored per verkle leaf.
const CodeChunkSize = 31

// pointCacheSize bounds the evaluated address commitments kept around
// between batches.
const pointCacheSize = 4096

// Hasher derives the verkle leaf key for one tree location of an account.
// Implementations are safe for concurrent readers.
type Hasher interface {
	TrieKeyHash(addr common.Address, treeIndex *uint256.Int, subIndex byte) common.Hash
}

// HasherContext is the result of preloading one address: a hasher whose batch
// is already computed, plus cheap flags consumers use to skip storage or code
// lookups that were never part of the batch. The context is immutable after
// construction and may be shared across goroutines.
type HasherContext struct {
	Hasher             Hasher
	HasStorageTrieKeys bool
	HasCodeTrieKeys    bool
}

// TrieKeyPreloader produces the semantic key identifiers of an address's
// state accesses and drives the batched hasher over them. One preloading call
// should cover a whole logical unit of work (a block, or a transaction), not
// one individual key: the multi-scalar commitment underneath is expensive per
// call but amortizes well across many identifiers for the same address.
type TrieKeyPreloader struct {
	pointCache *utils.PointCache
}

// NewTrieKeyPreloader creates a preloader with a fresh point cache.
func NewTrieKeyPreloader() *TrieKeyPreloader {
	return &TrieKeyPreloader{
		pointCache: utils.NewPointCache(pointCacheSize),
	}
}

// AccountKeyID returns the identifier of the account header leaf. It is the
// same protocol-wide constant for every account; the address is mixed in at
// the hashing stage, not here.
func (p *TrieKeyPreloader) AccountKeyID() common.Hash {
	return common.Hash{} // BasicData leaf, sub index 0
}

// CodeChunkKeyIDs returns one identifier per fixed-size chunk of the code,
// the chunk ordinals encoded as 32-byte big-endian values. Empty code yields
// an empty slice. The result is stable and deterministic for a given code
// length.
func (p *TrieKeyPreloader) CodeChunkKeyIDs(code []byte) []common.Hash {
	n := (len(code) + CodeChunkSize - 1) / CodeChunkSize
	ids := make([]common.Hash, n)
	for i := range ids {
		binary.BigEndian.PutUint64(ids[i][common.HashLength-8:], uint64(i))
	}
	return ids
}

// StorageKeyIDs re-wraps the pre-encoded 32-byte slot keys of the input set.
// The order of the result is not significant.
func (p *TrieKeyPreloader) StorageKeyIDs(slots map[common.Hash]struct{}) []common.Hash {
	ids := make([]common.Hash, 0, len(slots))
	for slot := range slots {
		ids = append(ids, slot)
	}
	return ids
}

// PreloadedHasher derives every leaf key the given identifiers of one address
// can resolve to, in a single batch: the address commitment is evaluated
// once and every distinct tree index is hashed against it. Calling it again
// with the same address and identical identifier sets yields bit-identical
// keys.
func (p *TrieKeyPreloader) PreloadedHasher(addr common.Address, accountKeyIDs, storageKeyIDs, codeChunkKeyIDs []common.Hash) HasherContext {
	indexes := make(map[uint256.Int]struct{})
	if len(accountKeyIDs) > 0 {
		indexes[uint256.Int{}] = struct{}{} // account header lives at tree index 0
	}
	for _, id := range storageKeyIDs {
		treeIndex, _ := utils.StorageIndex(id.Bytes())
		indexes[*treeIndex] = struct{}{}
	}
	for _, id := range codeChunkKeyIDs {
		var ordinal uint256.Int
		ordinal.SetBytes(id.Bytes())
		treeIndex, _ := utils.CodeChunkIndex(&ordinal)
		indexes[*treeIndex] = struct{}{}
	}

	point := p.pointCache.Get(addr.Bytes())
	stems := make(map[uint256.Int]common.Hash, len(indexes))
	for index := range indexes {
		stems[index] = common.BytesToHash(utils.GetTreeKeyWithEvaluatedAddress(point, &index, 0))
	}
	return HasherContext{
		Hasher: &CachedPedersenHasher{
			stems:    stems,
			fallback: &PedersenHasher{pointCache: p.pointCache},
		},
		HasStorageTrieKeys: len(storageKeyIDs) > 0,
		HasCodeTrieKeys:    len(codeChunkKeyIDs) > 0,
	}
}

// AccessIntent describes the keys one address needs derived ahead of
// execution.
type AccessIntent struct {
	Account      bool
	StorageSlots map[common.Hash]struct{}
	Code         []byte
}

// PreloadHasherContexts derives the hasher contexts of many independent
// addresses concurrently. This runs in the preparation phase, ahead of the
// sequential interpretation; the returned contexts are read-only.
func (p *TrieKeyPreloader) PreloadHasherContexts(intents map[common.Address]AccessIntent) map[common.Address]HasherContext {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[common.Address]HasherContext, len(intents))
	)
	for addr, intent := range intents {
		wg.Add(1)
		go func(addr common.Address, intent AccessIntent) {
			defer wg.Done()
			var accountIDs []common.Hash
			if intent.Account {
				accountIDs = []common.Hash{p.AccountKeyID()}
			}
			ctx := p.PreloadedHasher(addr, accountIDs, p.StorageKeyIDs(intent.StorageSlots), p.CodeChunkKeyIDs(intent.Code))
			mu.Lock()
			out[addr] = ctx
			mu.Unlock()
		}(addr, intent)
	}
	wg.Wait()
	return out
}

// PedersenHasher computes leaf keys from scratch, going through the shared
// point cache for the address commitment.
type PedersenHasher struct {
	pointCache *utils.PointCache
}

// TrieKeyHash implements Hasher.
func (h *PedersenHasher) TrieKeyHash(addr common.Address, treeIndex *uint256.Int, subIndex byte) common.Hash {
	point := h.pointCache.Get(addr.Bytes())
	return common.BytesToHash(utils.GetTreeKeyWithEvaluatedAddress(point, treeIndex, subIndex))
}

// CachedPedersenHasher serves the stems computed by a preloading batch and
// falls back to fresh hashing for tree indexes outside the batch. The stem
// map is never mutated after construction, so lookups need no locking.
type CachedPedersenHasher struct {
	stems    map[uint256.Int]common.Hash
	fallback Hasher
}

// TrieKeyHash implements Hasher. The last byte of a leaf key is the sub
// index, so a cached stem resolves any sub index under its tree index.
func (h *CachedPedersenHasher) TrieKeyHash(addr common.Address, treeIndex *uint256.Int, subIndex byte) common.Hash {
	if stem, ok := h.stems[*treeIndex]; ok {
		stem[common.HashLength-1] = subIndex
		return stem
	}
	return h.fallback.TrieKeyHash(addr, treeIndex, subIndex)
}
