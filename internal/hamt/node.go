// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

// node is the abstract node of a trie. The reference implementation this
// package is modeled on tags six node variants (empty, list leaf, inner
// leaf at one of four size classes, branch) into the low bits of a
// machine pointer word. Go gives us no portable way to steal bits from a
// pointer, but its interface values are already a (type tag, pointer)
// pair under the hood, so a node[K,V] interface implemented by the
// concrete node types below is the direct, idiomatic translation: the
// "empty" variant is simply a nil node[K,V]. kind() exposes the
// equivalent of the tag; the trie's own algorithms (insert, erase, find,
// findCommon) branch on node shape with type switches and assertions.
type node[K Key[K], V any] interface {
	kind() nodeKind
}

type nodeKind uint8

const (
	kindList nodeKind = iota
	kindLeaf1
	kindLeaf2
	kindLeaf3
	kindLeaf4
	kindBranch
)
