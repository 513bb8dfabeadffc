package hamt

import "github.com/cespare/xxhash/v2"

// fixedKey lets tests pin a key's hash independently of its ordering, so
// exact chunk collisions and size-class transitions can be constructed
// deterministically instead of hoping a real hash happens to collide.
type fixedKey struct {
	id   int
	hash uint64
}

func (k fixedKey) Hash() uint64 { return k.hash }

func (k fixedKey) Less(other fixedKey) bool { return k.id < other.id }

// strKey is an ordinary key backed by a real hash, used where tests don't
// need to engineer specific chunk patterns.
type strKey string

func (k strKey) Hash() uint64 { return xxhash.Sum64String(string(k)) }

func (k strKey) Less(other strKey) bool { return k < other }
