package rowcol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionaryInternIsStable(t *testing.T) {
	r := require.New(t)
	d := New()

	idx1, err := d.Intern("x1")
	r.NoError(err)
	idx2, err := d.Intern("x1")
	r.NoError(err)
	r.Equal(idx1, idx2)

	idx3, err := d.Intern("x2")
	r.NoError(err)
	r.NotEqual(idx1, idx3)
	r.Equal(2, d.Len())

	name, ok := d.Name(idx1)
	r.True(ok)
	r.Equal("x1", name)
}

func TestDictionaryInternRejectsBlank(t *testing.T) {
	r := require.New(t)
	d := New()

	_, err := d.Intern("")
	r.Error(err)
	r.Equal(0, d.Len())
}

func TestDictionaryForget(t *testing.T) {
	r := require.New(t)
	d := New()
	_, err := d.Intern("x1")
	r.NoError(err)

	r.True(d.Forget("x1"))
	r.False(d.Forget("x1"))
	_, ok := d.Index("x1")
	r.False(ok)
}

func TestDictionarySharedSymbol(t *testing.T) {
	r := require.New(t)
	a := New()
	b := New()
	for _, n := range []string{"x1", "x2", "x3"} {
		_, err := a.Intern(n)
		r.NoError(err)
	}
	for _, n := range []string{"x3", "x4"} {
		_, err := b.Intern(n)
		r.NoError(err)
	}

	name, ok := a.SharedSymbol(b)
	r.True(ok)
	r.Equal("x3", name)
}
