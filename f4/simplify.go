// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package f4 holds the pieces of the F4 computation owned by the symbolic
// engine. The pair scheduler and the linear-algebra reducer are external.
package f4

import (
	"sync"
	"sync/atomic"

	"github.com/consensys/groebner/logger"
	"github.com/consensys/groebner/poly"
	"github.com/consensys/groebner/term"
)

// Simplify memoises prior row reductions, keyed by (source polynomial,
// multiplier term). During symbolic preprocessing, instead of multiplying a
// basis polynomial f by a term t and reducing from scratch, Search rewrites
// (t, f) to an equivalent pair with a smaller multiplier whenever a previous
// reduction of (f, t') with t' dividing t is on record.
//
// The table is a two-level concurrent map: the outer level keyed by
// polynomial identity, the inner by term handle. Inner maps are created
// lazily with LoadOrStore publication. Lookups are wait-free; an insert that
// completed before a search is visible to it. Polynomials are treated as
// immutable once inserted.
//
// The table is created empty at the start of a run, never shrunk, and
// discarded at run end.
type Simplify struct {
	entries  sync.Map // *poly.Polynomial -> *sync.Map (*term.Term -> *poly.Polynomial)
	searches atomic.Uint64
	hits     atomic.Uint64
}

// NewSimplify returns an empty table.
func NewSimplify() *Simplify {
	return &Simplify{}
}

// Insert records that multiplying f by t reduced to p. A later insert for
// the same (f, t) overwrites; the reducer only inserts stronger results.
func (s *Simplify) Insert(t *term.Term, f, p *poly.Polynomial) {
	inner, ok := s.entries.Load(f)
	if !ok {
		inner, _ = s.entries.LoadOrStore(f, &sync.Map{})
	}
	inner.(*sync.Map).Store(t, p)
}

// Search looks up the pair (t, f). If the table holds reductions of f, the
// entry whose key t' divides t and maximises t/t' is selected and the pair
// is rewritten to (t/t', stored polynomial); ties are broken
// deterministically by term hash. Without a usable entry the pair is
// returned unchanged. In all cases the product of the returned pair equals
// t*f up to a scalar.
func (s *Simplify) Search(t *term.Term, f *poly.Polynomial) (*term.Term, *poly.Polynomial) {
	s.searches.Add(1)
	v, ok := s.entries.Load(f)
	if !ok {
		return t, f
	}
	inner := v.(*sync.Map)

	// the smallest divisor key maximises the residual multiplier t/t'
	var best *term.Term
	var bestPoly *poly.Polynomial
	inner.Range(func(k, v any) bool {
		cand := k.(*term.Term)
		if !t.Divisible(cand) {
			return true
		}
		if best == nil || cand.Deg() < best.Deg() ||
			(cand.Deg() == best.Deg() && cand.Hash() < best.Hash()) {
			best = cand
			bestPoly = v.(*poly.Polynomial)
		}
		return true
	})
	if best == nil {
		return t, f
	}
	s.hits.Add(1)
	return t.Div(best), bestPoly
}

// Len returns the number of source polynomials with recorded reductions.
func (s *Simplify) Len() int {
	var n int
	s.entries.Range(func(_, _ any) bool { n++; return true })
	return n
}

// Stats returns the search and hit counters and logs them at debug level.
func (s *Simplify) Stats() (searches, hits uint64) {
	searches, hits = s.searches.Load(), s.hits.Load()
	log := logger.Logger()
	log.Debug().Uint64("searches", searches).Uint64("hits", hits).
		Int("entries", s.Len()).Msg("simplify table")
	return searches, hits
}
