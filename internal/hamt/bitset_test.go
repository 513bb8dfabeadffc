package hamt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOccupationTestSetClear(t *testing.T) {
	r := require.New(t)
	var o occupation

	r.False(o.test(0))
	r.False(o.test(63))

	o.set(5)
	o.set(63)
	r.True(o.test(5))
	r.True(o.test(63))
	r.False(o.test(4))

	o.clear(5)
	r.False(o.test(5))
	r.True(o.test(63))
}

func TestOccupationRank(t *testing.T) {
	r := require.New(t)
	var o occupation
	o.set(2)
	o.set(5)
	o.set(9)

	// numSetUntil counts the bit itself and everything above it.
	r.Equal(3, o.numSetUntil(2))
	r.Equal(2, o.numSetUntil(5))
	r.Equal(1, o.numSetUntil(9))
	r.Equal(0, o.numSetUntil(10))

	r.Equal(2, o.numSetAfter(2))
	r.Equal(1, o.numSetAfter(5))
	r.Equal(0, o.numSetAfter(9))

	r.Equal(3, o.numSet())
}

func TestOccupationEmpty(t *testing.T) {
	r := require.New(t)
	var o occupation
	r.Equal(0, o.numSet())
	r.Equal(0, o.numSetUntil(0))
	r.Equal(0, o.numSetAfter(63))
}
