// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

// Package rowcol is a symbolic row/column dictionary: the mapping a
// solver keeps from a human- or model-facing name ("x1", "c_supply_3")
// to the dense integer index the simplex matrix actually uses. It is
// one of the two named use cases for the hash-array-mapped trie in
// internal/hamt.
package rowcol

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/kristofferNorr/highs/internal/hamt"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// Symbol is a validated row or column name. Names are non-empty and
// capped well below the container's practical limits; the solver never
// needs arbitrarily long symbolic names and rejecting them early keeps
// pathological input from reaching the trie at all.
type Symbol struct {
	Name string `validate:"required,notblank,max=256"`
}

// Validate reports whether s satisfies its struct tags.
func (s Symbol) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("rowcol: invalid symbol: %w", err)
	}
	return nil
}

func (s Symbol) Hash() uint64 { return hamt.HashString(s.Name) }

func (s Symbol) Less(other Symbol) bool { return s.Name < other.Name }

// Dictionary maps symbolic names to dense matrix indices, and back.
type Dictionary struct {
	byName  *hamt.Trie[Symbol, int]
	byIndex map[int]Symbol
	next    int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		byName:  hamt.New[Symbol, int](),
		byIndex: make(map[int]Symbol),
	}
}

// Intern returns the dense index assigned to name, assigning the next
// free index and registering name if it has not been seen before.
// Intern returns an error only if name fails validation; a name already
// present is never re-validated.
func (d *Dictionary) Intern(name string) (int, error) {
	sym := Symbol{Name: name}
	if idx, ok := d.byName.Find(sym); ok {
		return idx, nil
	}
	if err := sym.Validate(); err != nil {
		return 0, err
	}
	idx := d.next
	d.next++
	d.byName.Insert(sym, idx)
	d.byIndex[idx] = sym
	return idx, nil
}

// Index looks up the index already assigned to name, if any.
func (d *Dictionary) Index(name string) (int, bool) {
	return d.byName.Find(Symbol{Name: name})
}

// Name looks up the symbolic name assigned to idx, if any.
func (d *Dictionary) Name(idx int) (string, bool) {
	sym, ok := d.byIndex[idx]
	return sym.Name, ok
}

// Len returns the number of interned symbols.
func (d *Dictionary) Len() int { return d.byName.Len() }

// Trie exposes the underlying hash-array-mapped trie, for diag.Build.
func (d *Dictionary) Trie() *hamt.Trie[Symbol, int] { return d.byName }

// Forget removes name and its index from the dictionary. It does not
// reclaim or reuse the index.
func (d *Dictionary) Forget(name string) bool {
	sym := Symbol{Name: name}
	idx, ok := d.byName.Find(sym)
	if !ok {
		return false
	}
	d.byName.Erase(sym)
	delete(d.byIndex, idx)
	return true
}

// SharedSymbol reports the first symbol present in both d and other,
// useful for detecting name collisions when merging two dictionaries
// built independently (e.g. from two model fragments).
func (d *Dictionary) SharedSymbol(other *Dictionary) (string, bool) {
	sym, _, ok := d.byName.FindCommon(other.byName)
	return sym.Name, ok
}
