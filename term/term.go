// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package term

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/groebner/debug"
)

// Term is an interned power product. The zero value is invalid; terms are
// produced by a Monoid and compared by pointer.
type Term struct {
	owner   *Monoid
	exps    []uint32
	degree  uint32
	hash    uint64
	support *bitset.BitSet
}

// Monoid returns the owner of the handle.
func (t *Term) Monoid() *Monoid { return t.owner }

// Deg returns the total degree, precomputed at interning.
func (t *Term) Deg() uint32 { return t.degree }

// Hash returns the degree-packed hash: exps[0] shifted left by the monoid's
// bit budget for each subsequent exponent. Deterministic across runs.
func (t *Term) Hash() uint64 { return t.hash }

// Exp returns the exponent of indeterminate i.
func (t *Term) Exp(i int) uint32 { return t.exps[i] }

// Exps returns a copy of the exponent vector.
func (t *Term) Exps() []uint32 {
	cp := make([]uint32, len(t.exps))
	copy(cp, t.exps)
	return cp
}

// IsOne reports whether t is the unit term.
func (t *Term) IsOne() bool { return t.degree == 0 }

// Equal reports whether two handles denote the same exponent vector. Handles
// of a common monoid are equal iff they are the same pointer; the vector
// comparison only matters across monoids.
func (t *Term) Equal(o *Term) bool {
	if t == o {
		return true
	}
	if len(t.exps) != len(o.exps) {
		return false
	}
	return equalExps(t.exps, o.exps)
}

// Mul returns the product t*o, interned in t's monoid.
func (t *Term) Mul(o *Term) *Term {
	if debug.Debug && t.owner != o.owner {
		panic(ErrMixedMonoids)
	}
	if o.degree == 0 {
		return t
	}
	if t.degree == 0 {
		return o
	}
	exps := make([]uint32, len(t.exps))
	for i := range exps {
		exps[i] = t.exps[i] + o.exps[i]
	}
	return t.owner.intern(newTerm(t.owner, exps))
}

// Div returns t/o. Precondition: t is divisible by o; underflow is not
// checked here, callers gate with Divisible.
func (t *Term) Div(o *Term) *Term {
	if debug.Debug && !t.Divisible(o) {
		panic("term: Div on non-divisible pair")
	}
	if o.degree == 0 {
		return t
	}
	exps := make([]uint32, len(t.exps))
	for i := range exps {
		exps[i] = t.exps[i] - o.exps[i]
	}
	return t.owner.intern(newTerm(t.owner, exps))
}

// Lcm returns the least common multiple, the coordinatewise maximum.
func (t *Term) Lcm(o *Term) *Term {
	if debug.Debug && t.owner != o.owner {
		panic(ErrMixedMonoids)
	}
	exps := make([]uint32, len(t.exps))
	for i := range exps {
		if t.exps[i] >= o.exps[i] {
			exps[i] = t.exps[i]
		} else {
			exps[i] = o.exps[i]
		}
	}
	return t.owner.intern(newTerm(t.owner, exps))
}

// Divisible reports whether t is divisible by o, i.e. every exponent of o is
// at most the matching exponent of t. The support bitsets give a cheap
// necessary condition before the coordinate scan.
func (t *Term) Divisible(o *Term) bool {
	if o.degree == 0 {
		return true
	}
	if o.degree > t.degree {
		return false
	}
	if !t.support.IsSuperSet(o.support) {
		return false
	}
	for i := range t.exps {
		if t.exps[i] < o.exps[i] {
			return false
		}
	}
	return true
}

// String renders the term in the surface syntax, x[i]^e factors joined by
// '*', exponent 1 omitted. The unit term prints as "1".
func (t *Term) String() string {
	if t.degree == 0 {
		return "1"
	}
	var sb strings.Builder
	first := true
	for i, e := range t.exps {
		if e == 0 {
			continue
		}
		if !first {
			sb.WriteByte('*')
		}
		first = false
		sb.WriteString("x[")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteByte(']')
		if e > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatUint(uint64(e), 10))
		}
	}
	return sb.String()
}
