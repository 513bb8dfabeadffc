// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

// Package hamt implements a hash-array-mapped trie with size-classed leaf
// buckets: a cache-friendly associative container keyed by a 64-bit hash
// of a totally-ordered, equality-comparable key.
//
// The trie partitions a key's 64-bit hash into eleven 6-bit chunks and
// descends one chunk per level. Small buckets of entries are kept in
// sorted inner leaves that grow through four fixed capacities (6, 14, 22,
// 30) before bursting into a branch node; branch children are packed
// densely and addressed by the rank of their occupation bit. Genuine hash
// collisions, once all eleven chunks are exhausted, fall back to a
// singly-linked list leaf.
//
// A Trie is not safe for concurrent mutation. Concurrent reads of a trie
// that nobody is mutating are fine, because the structure never changes
// without an exclusive call touching it.
package hamt
