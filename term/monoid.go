// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package term implements the interned monoid of power products in N
// indeterminates.
//
// A *Term is a handle: the monoid guarantees that two Make calls with equal
// exponent vectors return the same pointer, so term equality in hot loops is
// a pointer comparison. Handles carry their exponent vector, total degree,
// hash and a support bitset, all precomputed at interning time. Handles are
// immutable and freely shareable across goroutines for the lifetime of their
// monoid.
package term

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrMixedMonoids  = errors.New("term: handles belong to different monoids")
	ErrExponentRange = errors.New("term: exponent exceeds monoid capacity")
	ErrBadVector     = errors.New("term: exponent vector has wrong length")
)

// nbShards of the intern store. Interning contends only within a shard.
const nbShards = 32

type shard struct {
	mu sync.RWMutex
	m  map[uint64][]*Term
}

// Monoid owns the intern store for terms in n indeterminates. d is the
// per-exponent bit budget of the degree-packed hash; n*d must not exceed 64
// so that the packed hash stays injective as long as every exponent is below
// 2^d. The design target is d=8 with n up to 32.
//
// The monoid must outlive every handle it produced. Handles from different
// monoids must not be mixed.
type Monoid struct {
	n, d   int
	cap    uint32
	one    *Term
	shards [nbShards]shard
}

// NewMonoid constructs a monoid for n indeterminates with a per-exponent bit
// budget of d.
func NewMonoid(n, d int) (*Monoid, error) {
	if n < 1 {
		return nil, fmt.Errorf("term: need at least one indeterminate, got %d", n)
	}
	if d < 1 || n*d > 64 {
		return nil, fmt.Errorf("term: bit budget d=%d out of range for n=%d (need n*d <= 64)", d, n)
	}
	m := &Monoid{n: n, d: d, cap: uint32(1)<<d - 1}
	for i := range m.shards {
		m.shards[i].m = make(map[uint64][]*Term)
	}
	m.one = m.intern(newTerm(m, make([]uint32, n)))
	return m, nil
}

// N returns the number of indeterminates.
func (m *Monoid) N() int { return m.n }

// D returns the per-exponent bit budget.
func (m *Monoid) D() int { return m.d }

// Cap returns the largest exponent Make accepts.
func (m *Monoid) Cap() uint32 { return m.cap }

// One returns the unit term, with all exponents zero.
func (m *Monoid) One() *Term { return m.one }

// Make returns the unique handle for the given exponent vector. It is
// idempotent: equal vectors yield the same pointer. The vector is copied.
func (m *Monoid) Make(exps []uint32) (*Term, error) {
	if len(exps) != m.n {
		return nil, ErrBadVector
	}
	for _, e := range exps {
		if e > m.cap {
			return nil, ErrExponentRange
		}
	}
	cp := make([]uint32, m.n)
	copy(cp, exps)
	return m.intern(newTerm(m, cp)), nil
}

// MustMake is Make, panicking on invalid input. Convenient for fixed vectors
// in drivers and tests.
func (m *Monoid) MustMake(exps ...uint32) *Term {
	t, err := m.Make(exps)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of interned terms.
func (m *Monoid) Len() int {
	var total int
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		for _, chain := range s.m {
			total += len(chain)
		}
		s.mu.RUnlock()
	}
	return total
}

// intern inserts the candidate into the store, or discards it and returns
// the handle already present for the same exponent vector. Two goroutines
// interning equal vectors converge to one handle.
func (m *Monoid) intern(cand *Term) *Term {
	s := &m.shards[shardIndex(cand.hash)]

	s.mu.RLock()
	if t := chainFind(s.m[cand.hash], cand.exps); t != nil {
		s.mu.RUnlock()
		return t
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if t := chainFind(s.m[cand.hash], cand.exps); t != nil {
		return t
	}
	s.m[cand.hash] = append(s.m[cand.hash], cand)
	return cand
}

func shardIndex(hash uint64) uint64 {
	// The low bits of the packed hash are the last exponent; spread with a
	// Fibonacci multiplier before taking the shard.
	return (hash * 0x9e3779b97f4a7c15) >> 59 % nbShards
}

func chainFind(chain []*Term, exps []uint32) *Term {
	for _, t := range chain {
		if equalExps(t.exps, exps) {
			return t
		}
	}
	return nil
}

func equalExps(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// newTerm builds an un-interned candidate, precomputing degree, hash and
// support mask. The caller passes ownership of exps.
func newTerm(m *Monoid, exps []uint32) *Term {
	t := &Term{owner: m, exps: exps}
	t.degree = exps[0]
	t.hash = uint64(exps[0])
	for i := 1; i < len(exps); i++ {
		t.degree += exps[i]
		t.hash = t.hash<<m.d + uint64(exps[i])
	}
	t.support = bitset.New(uint(m.n))
	for i, e := range exps {
		if e != 0 {
			t.support.Set(uint(i))
		}
	}
	return t
}
