// SPDX-FileCopyrightText: 2024 - 2025 Mass Labs
//
// SPDX-License-Identifier: MIT

// Package cutpool is a cut-pool / nogood-table consumer of
// internal/hamt: the branch-and-cut solver's working set of generated
// cutting planes (and, for a MIP's no-good table, of already-explored
// branching decisions), keyed by the cut's ID so the same cut is never
// pooled twice and so two pools can be checked for overlap
// before either is merged into the node's working relaxation.
package cutpool

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kristofferNorr/highs/internal/hamt"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// cutKey is the key a Cut is pooled under: its ID, not the Cut itself.
// Two cuts with the same ID are the same pool entry, whatever their
// coefficients or RHS; Add keeps the first and reports the second as
// not new.
type cutKey uint64

func (k cutKey) Hash() uint64 { return hamt.HashUint64(uint64(k)) }

func (k cutKey) Less(other cutKey) bool { return k < other }

// Cut is a single cutting plane: a row coefficient vector and a
// right-hand side, admitted into a pool once validated.
type Cut struct {
	ID           uint64    `validate:"required"`
	Coefficients []float64 `validate:"required,gt=0"`
	RHS          float64
}

// Validate reports whether c satisfies its struct tags.
func (c Cut) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("cutpool: invalid cut: %w", err)
	}
	return nil
}

func (c Cut) key() cutKey { return cutKey(c.ID) }

// Pool is a deduplicated working set of cuts.
type Pool struct {
	trie *hamt.Trie[cutKey, Cut]
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{trie: hamt.New[cutKey, Cut]()}
}

// Add admits c into the pool, reporting whether it was new. Add
// returns an error only if c fails validation; an already-pooled cut
// is never re-validated, matching internal/hamt's own "duplicate key
// is a plain bool, not an error" contract.
func (p *Pool) Add(c Cut) (bool, error) {
	if _, present := p.trie.Find(c.key()); present {
		return false, nil
	}
	if err := c.Validate(); err != nil {
		return false, err
	}
	return p.trie.Insert(c.key(), c), nil
}

// Contains reports whether a cut with the given ID is already pooled.
func (p *Pool) Contains(id uint64) bool {
	return p.trie.Contains(cutKey(id))
}

// Len returns the number of pooled cuts.
func (p *Pool) Len() int { return p.trie.Len() }

// Trie exposes the underlying hash-array-mapped trie, for diag.Build.
func (p *Pool) Trie() *hamt.Trie[cutKey, Cut] { return p.trie }

// Remove drops the cut with the given ID, reporting whether it was
// present.
func (p *Pool) Remove(id uint64) bool {
	return p.trie.Erase(cutKey(id))
}

// ForEach visits every pooled cut in an order governed by the trie's
// physical layout. Iteration halts as soon as f returns true.
func (p *Pool) ForEach(f func(Cut) bool) bool {
	return p.trie.ForEach(func(_ cutKey, c Cut) bool { return f(c) })
}

// Clone returns a deep, mutation-independent copy of the pool, useful
// when branching explores two child nodes from the same parent cut
// set.
func (p *Pool) Clone() *Pool {
	return &Pool{trie: p.trie.Copy()}
}

// Conflict reports the first cut ID pooled in both p and other, the
// duplicate/conflict check a branch-and-bound node runs before
// merging a sibling's cut pool into its own.
func (p *Pool) Conflict(other *Pool) (uint64, bool) {
	_, c, ok := p.trie.FindCommon(other.trie)
	return c.ID, ok
}
