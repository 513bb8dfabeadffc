// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

// Package diag exports aggregate structural statistics about an
// internal/hamt trie for the solver's logging pipeline: size-class
// occupancy, leaf-depth histogram, branch fan-out. It never encodes
// the trie's keys or values, or anything that would let a reader
// reconstruct its contents, so it does not reintroduce a persistence
// path for the container.
package diag

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/kristofferNorr/highs/internal/hamt"
)

// Snapshot is the CBOR-encodable shape of hamt.Stats.
type Snapshot struct {
	LeafClassCounts [4]int `cbor:"leaf_class_counts"`
	ListLeafCount   int    `cbor:"list_leaf_count"`
	BranchCount     int    `cbor:"branch_count"`
	MaxDepth        int    `cbor:"max_depth"`
	DepthCounts     []int  `cbor:"depth_counts"`
	BranchFanout    []int  `cbor:"branch_fanout"`
	Entries         int    `cbor:"entries"`
}

// Build takes a structural snapshot of t.
func Build[K hamt.Key[K], V any](t *hamt.Trie[K, V]) Snapshot {
	s := t.Stats()
	return Snapshot{
		LeafClassCounts: s.LeafClassCounts,
		ListLeafCount:   s.ListLeafCount,
		BranchCount:     s.BranchCount,
		MaxDepth:        s.MaxDepth,
		DepthCounts:     s.DepthCounts,
		BranchFanout:    s.BranchFanout,
		Entries:         s.Entries,
	}
}

var encMode = func() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("diag: building cbor encode mode: %v", err))
	}
	return mode
}()

// Encode renders the snapshot as canonical CBOR, ready to hand to the
// solver's external logging pipeline.
func (s Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := encMode.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("diag: encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a CBOR-encoded snapshot, the inverse of Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("diag: decoding snapshot: %w", err)
	}
	return s, nil
}
