// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

// Command hamtdemo exercises rowcol, cutpool, and diag end to end: it
// interns a handful of row/column symbols, pools a few cuts, and
// prints a CBOR-encoded structural snapshot of each container.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/kristofferNorr/highs/cutpool"
	"github.com/kristofferNorr/highs/diag"
	"github.com/kristofferNorr/highs/rowcol"
)

func main() {
	dict := rowcol.New()
	for _, name := range []string{"x1", "x2", "c_supply_1", "c_demand_1"} {
		idx, err := dict.Intern(name)
		check(err)
		fmt.Printf("%s -> %d\n", name, idx)
	}

	pool := cutpool.New()
	for id := uint64(1); id <= 5; id++ {
		c := cutpool.Cut{ID: id, Coefficients: []float64{1, -1, 2}, RHS: float64(id)}
		added, err := pool.Add(c)
		check(err)
		fmt.Printf("cut %d added=%v\n", id, added)
	}

	printSnapshot("rowcol", diag.Build(dict.Trie()))
	printSnapshot("cutpool", diag.Build(pool.Trie()))
}

func printSnapshot(name string, snap diag.Snapshot) {
	data, err := snap.Encode()
	check(err)
	fmt.Printf("%s snapshot (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
