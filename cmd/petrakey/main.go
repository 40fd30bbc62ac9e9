// Copyright 2025 The petra Authors
// This file is part of petra.
//
// petra is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// petra is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with petra. If not, see <http://www.gnu.org/licenses/>.

// petrakey derives verkle state tree keys for offline inspection of the
// state layout.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/holiman/uint256"
	"github.com/petravm/petra/common"
	"github.com/petravm/petra/trie/utils"
	"github.com/petravm/petra/trie/verkle"
	"github.com/urfave/cli/v2"
)

var (
	addressFlag = &cli.StringFlag{
		Name:     "address",
		Usage:    "account address (hex, 20 bytes)",
		Required: true,
	}
	slotFlag = &cli.StringSliceFlag{
		Name:  "slot",
		Usage: "storage slot key (hex, 32 bytes), repeatable",
	}
	codeSizeFlag = &cli.Uint64Flag{
		Name:  "code-size",
		Usage: "derive keys for all chunks of a code blob of this many bytes",
	}
)

var app = &cli.App{
	Name:  "petrakey",
	Usage: "derive verkle state tree keys",
	Commands: []*cli.Command{
		{
			Name:   "account",
			Usage:  "print the account header keys of an address",
			Flags:  []cli.Flag{addressFlag},
			Action: accountKeys,
		},
		{
			Name:   "storage",
			Usage:  "print the tree keys of the given storage slots",
			Flags:  []cli.Flag{addressFlag, slotFlag},
			Action: storageKeys,
		},
		{
			Name:   "code",
			Usage:  "print the tree keys of all code chunks",
			Flags:  []cli.Flag{addressFlag, codeSizeFlag},
			Action: codeKeys,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseAddress(ctx *cli.Context) (common.Address, error) {
	s := strings.TrimPrefix(ctx.String(addressFlag.Name), "0x")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("invalid address %q", ctx.String(addressFlag.Name))
	}
	return common.BytesToAddress(b), nil
}

func accountKeys(ctx *cli.Context) error {
	addr, err := parseAddress(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("basicdata %x\n", utils.BasicDataKey(addr.Bytes()))
	fmt.Printf("codehash  %x\n", utils.CodeHashKey(addr.Bytes()))
	return nil
}

func storageKeys(ctx *cli.Context) error {
	addr, err := parseAddress(ctx)
	if err != nil {
		return err
	}
	slots := make(map[common.Hash]struct{})
	for _, s := range ctx.StringSlice(slotFlag.Name) {
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil || len(b) != common.HashLength {
			return fmt.Errorf("invalid slot %q", s)
		}
		slots[common.BytesToHash(b)] = struct{}{}
	}
	preloader := verkle.NewTrieKeyPreloader()
	hctx := preloader.PreloadedHasher(addr, nil, preloader.StorageKeyIDs(slots), nil)
	for slot := range slots {
		treeIndex, subIndex := utils.StorageIndex(slot.Bytes())
		key := hctx.Hasher.TrieKeyHash(addr, treeIndex, subIndex)
		fmt.Printf("%x %x\n", slot, key)
	}
	return nil
}

func codeKeys(ctx *cli.Context) error {
	addr, err := parseAddress(ctx)
	if err != nil {
		return err
	}
	code := make([]byte, ctx.Uint64(codeSizeFlag.Name))
	preloader := verkle.NewTrieKeyPreloader()
	ids := preloader.CodeChunkKeyIDs(code)
	hctx := preloader.PreloadedHasher(addr, nil, nil, ids)
	for i, id := range ids {
		var ordinal uint256.Int
		ordinal.SetBytes(id.Bytes())
		treeIndex, subIndex := utils.CodeChunkIndex(&ordinal)
		key := hctx.Hasher.TrieKeyHash(addr, treeIndex, subIndex)
		fmt.Printf("chunk %d %x\n", i, key)
	}
	return nil
}
