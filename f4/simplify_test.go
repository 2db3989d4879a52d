// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package f4_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/groebner/f4"
	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/poly"
	"github.com/consensys/groebner/term"
)

func newEnv(t *testing.T, n int) (*term.Monoid, *field.Field, term.Ordering) {
	t.Helper()
	m, err := term.NewMonoid(n, 8)
	require.NoError(t, err)
	f, err := field.New(32003)
	require.NoError(t, err)
	return m, f, term.DegRevLex(n)
}

func canonical(t *testing.T, s string, m *term.Monoid, f *field.Field, o term.Ordering) *poly.Polynomial {
	t.Helper()
	p := poly.MustParse(s, m, 1)
	p.BringIn(f, true)
	p.Order(o)
	return p
}

// the concrete scenario: insert (x[1], x[1]^2+1 -> x[1]^3+x[1]), then
// searching (x[1]^2, x[1]^2+1) rewrites to (x[1], x[1]^3+x[1]).
func TestSearchRewrites(t *testing.T) {
	require := require.New(t)
	m, fld, o := newEnv(t, 1)

	f := canonical(t, "x[1]^2+1", m, fld, o)
	p := canonical(t, "x[1]^3+x[1]", m, fld, o)

	s := f4.NewSimplify()
	s.Insert(m.MustParse("x[1]", 1), f, p)

	gotT, gotF := s.Search(m.MustParse("x[1]^2", 1), f)
	require.Same(m.MustParse("x[1]", 1), gotT)
	require.Same(p, gotF)

	// the rewritten pair multiplies out to the original product
	want := f.Mul(m.MustParse("x[1]^2", 1))
	got := gotF.Mul(gotT)
	want.Order(o)
	got.Order(o)
	require.True(want.Equal(got))
}

func TestSearchExactHit(t *testing.T) {
	require := require.New(t)
	m, fld, o := newEnv(t, 2)

	f := canonical(t, "x[1]*x[2]+x[2]", m, fld, o)
	p := canonical(t, "x[1]^2*x[2]+x[1]*x[2]", m, fld, o)
	tm := m.MustParse("x[1]", 1)

	s := f4.NewSimplify()
	s.Insert(tm, f, p)

	gotT, gotF := s.Search(tm, f)
	require.Same(m.One(), gotT)
	require.Same(p, gotF)
}

func TestSearchMiss(t *testing.T) {
	require := require.New(t)
	m, fld, o := newEnv(t, 2)

	f := canonical(t, "x[1]+x[2]", m, fld, o)
	g := canonical(t, "x[1]-x[2]", m, fld, o)
	tm := m.MustParse("x[1]", 1)

	s := f4.NewSimplify()
	require.Equal(0, s.Len())

	// no table for f at all
	gotT, gotF := s.Search(tm, f)
	require.Same(tm, gotT)
	require.Same(f, gotF)

	// table for f, but no divisor of the query
	s.Insert(m.MustParse("x[2]", 1), f, g)
	gotT, gotF = s.Search(tm, f)
	require.Same(tm, gotT)
	require.Same(f, gotF)
	require.Equal(1, s.Len())
}

func TestSearchPicksMaximalResidual(t *testing.T) {
	require := require.New(t)
	m, fld, o := newEnv(t, 2)

	f := canonical(t, "x[1]+1", m, fld, o)
	p1 := canonical(t, "x[1]^2+x[1]", m, fld, o)
	p2 := canonical(t, "x[1]^2*x[2]+x[1]*x[2]", m, fld, o)

	s := f4.NewSimplify()
	s.Insert(m.MustParse("x[1]", 1), f, p1)
	s.Insert(m.MustParse("x[1]*x[2]", 1), f, p2)

	// both keys divide the query; the smaller key maximises t/t'
	query := m.MustParse("x[1]^2*x[2]", 1)
	gotT, gotF := s.Search(query, f)
	require.Same(m.MustParse("x[1]*x[2]", 1), gotT)
	require.Same(p1, gotF)

	// the invariant t'*p' == t*f holds up to the field
	want := f.Mul(query)
	got := gotF.Mul(gotT)
	want.Order(o)
	got.Order(o)
	require.True(want.Equal(got))
}

func TestInsertOverwrites(t *testing.T) {
	require := require.New(t)
	m, fld, o := newEnv(t, 2)

	f := canonical(t, "x[1]+x[2]", m, fld, o)
	p1 := canonical(t, "x[1]^2+x[1]*x[2]", m, fld, o)
	p2 := canonical(t, "x[1]^2+x[1]*x[2]+x[2]", m, fld, o)
	tm := m.MustParse("x[1]", 1)

	s := f4.NewSimplify()
	s.Insert(tm, f, p1)
	s.Insert(tm, f, p2)

	_, gotF := s.Search(tm, f)
	require.Same(p2, gotF)
	require.Equal(1, s.Len())
}

func TestConcurrentInsertSearch(t *testing.T) {
	require := require.New(t)
	m, fld, o := newEnv(t, 2)

	f := canonical(t, "x[1]+x[2]", m, fld, o)
	s := f4.NewSimplify()

	const nbWriters = 8
	const nbPerWriter = 50

	mults := make([]*term.Term, nbWriters*nbPerWriter)
	reduced := make([]*poly.Polynomial, len(mults))
	for i := range mults {
		mults[i] = m.MustMake(uint32(i%13), uint32(i%11))
		reduced[i] = f.Mul(mults[i])
	}

	var wg sync.WaitGroup
	for w := 0; w < nbWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w * nbPerWriter; i < (w+1)*nbPerWriter; i++ {
				s.Insert(mults[i], f, reduced[i])
			}
		}(w)
	}
	// readers run concurrently with the writers; any hit must satisfy the
	// product invariant
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range mults {
				gotT, gotF := s.Search(mults[i], f)
				want := f.Mul(mults[i])
				got := gotF.Mul(gotT)
				want.Order(o)
				got.Order(o)
				if !want.Equal(got) {
					t.Errorf("product invariant violated for multiplier %v", mults[i])
				}
			}
		}()
	}
	wg.Wait()

	// after all inserts completed, every search hits a recorded entry
	for i := range mults {
		if mults[i].IsOne() {
			continue
		}
		gotT, gotF := s.Search(mults[i], f)
		require.True(gotT.Deg() < mults[i].Deg() || gotF != f, "entry %d not visible", i)
	}
	searches, hits := s.Stats()
	require.Positive(searches)
	require.Positive(hits)
}
