// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package poly implements the polynomial data model of the engine.
//
// A Polynomial is a pair of parallel slices: coefficients and interned term
// handles, plus the sugar degree used by the F4 selection strategy. The
// polynomial knows nothing about the coefficient field or the term ordering;
// BringIn and Order put it into a given field and ordering, which allows
// switching both at runtime. The monoid, i.e. the number of indeterminates,
// is fixed.
//
// Coefficients are stored as uint32. Before BringIn they are interpreted as
// signed 32-bit values, so a parsed "-3" survives until the field reduces
// it; after BringIn every coefficient is a canonical representative in
// [0, p) and the support never stores a zero leading coefficient.
package poly

import (
	"fmt"
	"sort"

	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/internal/algoutils"
	"github.com/consensys/groebner/term"
	"github.com/consensys/groebner/utils/parallel"
)

// Monomial is a coefficient together with a term, e.g. 3*(x[1]^2*x[2]^3).
type Monomial struct {
	Coeff uint32
	Term  *term.Term
}

// Polynomial is a finite ordered sequence of monomials. The zero value is
// the zero polynomial.
type Polynomial struct {
	coeffs []uint32
	terms  []*term.Term
	sugar  int
}

// New returns the zero polynomial.
func New() *Polynomial {
	return &Polynomial{}
}

// FromPairs builds a polynomial from parallel coefficient and term slices.
// Both slices are copied.
func FromPairs(coeffs []uint32, terms []*term.Term) (*Polynomial, error) {
	if len(coeffs) != len(terms) {
		return nil, fmt.Errorf("poly: %d coefficients for %d terms", len(coeffs), len(terms))
	}
	p := &Polynomial{
		coeffs: append([]uint32(nil), coeffs...),
		terms:  append([]*term.Term(nil), terms...),
	}
	return p, nil
}

// FromTerm builds the polynomial 1*t.
func FromTerm(t *term.Term) *Polynomial {
	return &Polynomial{coeffs: []uint32{1}, terms: []*term.Term{t}}
}

// FromMonomials decomposes ms into parallel slices. With purify set,
// duplicate terms are folded by summing their coefficients in f and zero
// coefficients are dropped; f may be nil when purify is false.
func FromMonomials(ms []Monomial, purify bool, f *field.Field) *Polynomial {
	p := &Polynomial{
		coeffs: make([]uint32, 0, len(ms)),
		terms:  make([]*term.Term, 0, len(ms)),
	}
	if !purify {
		for _, m := range ms {
			p.coeffs = append(p.coeffs, m.Coeff)
			p.terms = append(p.terms, m.Term)
		}
		return p
	}
	pos := make(map[*term.Term]int, len(ms))
	for _, m := range ms {
		if i, ok := pos[m.Term]; ok {
			p.coeffs[i] = f.Add(p.coeffs[i], f.Reduce(uint64(m.Coeff)))
			continue
		}
		pos[m.Term] = len(p.coeffs)
		p.coeffs = append(p.coeffs, f.Reduce(uint64(m.Coeff)))
		p.terms = append(p.terms, m.Term)
	}
	p.dropZeros()
	return p
}

// Len returns the support size.
func (p *Polynomial) Len() int { return len(p.coeffs) }

// IsZero reports whether the support is empty. Purify and BringIn drop zero
// coefficients, so after either this is the zero test; FromPairs, unpurified
// FromMonomials, PushBack and Parse store coefficients as given.
func (p *Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Coeff returns the coefficient at position i.
func (p *Polynomial) Coeff(i int) uint32 { return p.coeffs[i] }

// Term returns the term at position i.
func (p *Polynomial) Term(i int) *term.Term { return p.terms[i] }

// Monomial returns the monomial at position i.
func (p *Polynomial) Monomial(i int) Monomial {
	return Monomial{Coeff: p.coeffs[i], Term: p.terms[i]}
}

// LT returns the leading term. Undefined on the zero polynomial.
func (p *Polynomial) LT() *term.Term { return p.terms[0] }

// LC returns the leading coefficient. Undefined on the zero polynomial.
func (p *Polynomial) LC() uint32 { return p.coeffs[0] }

// LcmLT returns the least common multiple of the leading terms of p and o.
func (p *Polynomial) LcmLT(o *Polynomial) *term.Term {
	return p.LT().Lcm(o.LT())
}

// Deg returns the maximal total degree over the support; zero on the zero
// polynomial.
func (p *Polynomial) Deg() uint32 {
	var d uint32
	for _, t := range p.terms {
		if t.Deg() > d {
			d = t.Deg()
		}
	}
	return d
}

// Sugar returns the sugar degree.
func (p *Polynomial) Sugar() int { return p.sugar }

// SetSugar sets the sugar degree.
func (p *Polynomial) SetSugar(s int) { p.sugar = s }

// PushBack appends a monomial without reordering.
func (p *Polynomial) PushBack(c uint32, t *term.Term) {
	p.coeffs = append(p.coeffs, c)
	p.terms = append(p.terms, t)
}

// Support returns a copy of the term sequence.
func (p *Polynomial) Support() []*term.Term {
	return append([]*term.Term(nil), p.terms...)
}

// Clone returns a deep copy sharing only the interned handles.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{
		coeffs: append([]uint32(nil), p.coeffs...),
		terms:  append([]*term.Term(nil), p.terms...),
		sugar:  p.sugar,
	}
}

// Mul returns p*t. Multiplication by a term preserves any valid ordering of
// the support.
func (p *Polynomial) Mul(t *term.Term) *Polynomial {
	q := p.Clone()
	q.MulBy(t)
	return q
}

// MulBy multiplies every term of the support by t in place.
func (p *Polynomial) MulBy(t *term.Term) {
	for i, s := range p.terms {
		p.terms[i] = s.Mul(t)
	}
}

// MulAll is MulBy across worker goroutines, for the large rows produced by
// symbolic preprocessing. The result is a new polynomial; nbTasks caps the
// worker count.
func (p *Polynomial) MulAll(t *term.Term, nbTasks ...int) *Polynomial {
	q := &Polynomial{
		coeffs: append([]uint32(nil), p.coeffs...),
		terms:  make([]*term.Term, len(p.terms)),
		sugar:  p.sugar,
	}
	parallel.Execute(0, len(p.terms), func(start, end int) {
		for i := start; i < end; i++ {
			q.terms[i] = p.terms[i].Mul(t)
		}
	}, nbTasks...)
	return q
}

// Normalize scales the polynomial so that the leading coefficient is 1 in
// f. Coefficients must be canonical, see BringIn. No-op on zero.
func (p *Polynomial) Normalize(f *field.Field) {
	if p.IsZero() || p.coeffs[0] == f.One() {
		return
	}
	inv, err := f.Inv(p.coeffs[0])
	if err != nil {
		// unreachable for canonical coefficients: BringIn drops zeros
		panic(err)
	}
	p.MulByScalar(inv, f)
}

// MulByScalar multiplies every coefficient by l in f. Coefficients must be
// canonical.
func (p *Polynomial) MulByScalar(l uint32, f *field.Field) {
	for i, c := range p.coeffs {
		p.coeffs[i] = f.Mul(c, l)
	}
}

// BringIn reduces every coefficient to its canonical representative in f,
// interpreting stored values as signed 32-bit integers. Terms whose
// coefficient reduces to zero are dropped. With normalize set the result is
// normalized afterwards.
func (p *Polynomial) BringIn(f *field.Field, normalize bool) {
	for i, c := range p.coeffs {
		p.coeffs[i] = f.BringIn(int64(int32(c)))
	}
	p.dropZeros()
	if normalize {
		p.Normalize(f)
	}
}

func (p *Polynomial) dropZeros() {
	k := 0
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		p.coeffs[k] = c
		p.terms[k] = p.terms[i]
		k++
	}
	p.coeffs = p.coeffs[:k]
	p.terms = p.terms[:k]
}

// Order rearranges the support into strictly decreasing order under o, the
// leading term first. The permutation is stable. Duplicate terms are not
// expected here; polynomials built with purify have none.
func (p *Polynomial) Order(o term.Ordering) {
	n := len(p.terms)
	if n < 2 {
		return
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return o.Cmp(p.terms[idx[a]], p.terms[idx[b]]) > 0
	})
	// idx maps destination to source; Permute wants source to destination
	perm := make([]int, n)
	for dest, src := range idx {
		perm[src] = dest
	}
	algoutils.Permute(p.coeffs, perm)
	algoutils.Permute(p.terms, perm)
}

// Equal reports positional support identity: same coefficient and same
// handle at every position. Semantic equality additionally requires both
// sides to be canonical under the same field and ordering.
func (p *Polynomial) Equal(o *Polynomial) bool {
	if len(p.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != o.coeffs[i] || p.terms[i] != o.terms[i] {
			return false
		}
	}
	return true
}

// Hash combines coefficients and term hashes, position independent. Used as
// a content fingerprint; the simplify table keys on pointer identity
// instead.
func (p *Polynomial) Hash() uint64 {
	var h uint64
	for i := range p.coeffs {
		h ^= uint64(p.coeffs[i]) + p.terms[i].Hash()
	}
	return h
}

// Comparator returns a comparison function ordering polynomials by their
// leading terms under o, for use with sort.Slice and friends. With gt set
// the order is reversed (greatest first). The order is partial: two
// polynomials sharing a leading term compare equal.
func Comparator(o term.Ordering, gt bool) func(a, b *Polynomial) int {
	if gt {
		return func(a, b *Polynomial) int { return o.Cmp(b.LT(), a.LT()) }
	}
	return func(a, b *Polynomial) int { return o.Cmp(a.LT(), b.LT()) }
}
