// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

package hamt

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashString mixes s into a 64-bit value suitable for a Key's Hash
// method. It is exported so consumer packages can build Key
// implementations without each reaching for their own hash import.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashUint64 mixes v into a 64-bit value suitable for a Key's Hash
// method. Used for keys that are themselves small integers, where
// using v directly would concentrate entries in the low hash chunks.
func HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}
