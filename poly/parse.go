// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import (
	"fmt"
	"strings"

	"github.com/consensys/groebner/term"
)

// ParseError reports a malformed polynomial string, an indeterminate index
// out of range, or an exponent beyond the monoid's capacity.
type ParseError struct {
	Src string
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("poly: parse error at offset %d of %q: %s", e.Pos, e.Src, e.Msg)
}

// Parse builds a polynomial from its textual form, e.g.
// "5*x[1]^3*x[2]^4+8*x[3]^4-4*x[1]+1". min is the smallest accepted
// indeterminate index: x[k] maps to coordinate k-min. The result is raw:
// terms are in input order and coefficients are not reduced; callers BringIn
// and Order before algebraic use.
func Parse(s string, m *term.Monoid, min int) (*Polynomial, error) {
	sc := &scanner{src: s, min: min, m: m}
	p := New()

	sc.skipSpace()
	neg := false
	if !sc.eof() && (sc.peek() == '-' || sc.peek() == '+') {
		neg = sc.peek() == '-'
		sc.pos++
	}
	for {
		c, t, err := sc.monomial()
		if err != nil {
			return nil, err
		}
		if neg {
			c = uint32(-int32(c))
		}
		p.PushBack(c, t)

		sc.skipSpace()
		if sc.eof() {
			return p, nil
		}
		switch sc.peek() {
		case '+':
			neg = false
		case '-':
			neg = true
		default:
			return nil, sc.errorf("expected '+' or '-', got %q", sc.peek())
		}
		sc.pos++
	}
}

// MustParse is Parse, panicking on error.
func MustParse(s string, m *term.Monoid, min int) *Polynomial {
	p, err := Parse(s, m, min)
	if err != nil {
		panic(err)
	}
	return p
}

// List is an ordered collection of polynomials, e.g. the generators of an
// ideal.
type List []*Polynomial

// ParseList parses polynomials separated by ',', e.g. "x[1]+x[2], x[2]^2".
func ParseList(s string, m *term.Monoid, min int) (List, error) {
	items := strings.Split(s, ",")
	l := make(List, 0, len(items))
	for _, item := range items {
		p, err := Parse(strings.TrimSpace(item), m, min)
		if err != nil {
			return nil, err
		}
		l = append(l, p)
	}
	return l, nil
}

type scanner struct {
	src string
	pos int
	min int
	m   *term.Monoid
}

func (sc *scanner) eof() bool  { return sc.pos >= len(sc.src) }
func (sc *scanner) peek() byte { return sc.src[sc.pos] }

func (sc *scanner) errorf(format string, args ...any) error {
	return &ParseError{Src: sc.src, Pos: sc.pos, Msg: fmt.Sprintf(format, args...)}
}

func (sc *scanner) skipSpace() {
	for !sc.eof() && (sc.src[sc.pos] == ' ' || sc.src[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *scanner) number() (uint64, error) {
	start := sc.pos
	for !sc.eof() && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos == start {
		return 0, &ParseError{Src: sc.src, Pos: start, Msg: "expected number"}
	}
	var v uint64
	for _, c := range sc.src[start:sc.pos] {
		v = v*10 + uint64(c-'0')
		if v > 1<<31-1 {
			return 0, &ParseError{Src: sc.src, Pos: start, Msg: "number out of range"}
		}
	}
	return v, nil
}

// monomial parses coeff ('*' factor)* | factor ('*' factor)*.
func (sc *scanner) monomial() (uint32, *term.Term, error) {
	sc.skipSpace()
	if sc.eof() {
		return 0, nil, sc.errorf("expected term")
	}

	coeff := uint64(1)
	sawCoeff := false
	if c := sc.peek(); c >= '0' && c <= '9' {
		var err error
		coeff, err = sc.number()
		if err != nil {
			return 0, nil, err
		}
		sawCoeff = true
	}

	exps := make([]uint32, sc.m.N())
	sawFactor := false
	for {
		sc.skipSpace()
		if sawCoeff || sawFactor {
			if sc.eof() || sc.peek() != '*' {
				break
			}
			sc.pos++
			sc.skipSpace()
		}
		if err := sc.factor(exps); err != nil {
			return 0, nil, err
		}
		sawFactor = true
	}
	if !sawCoeff && !sawFactor {
		return 0, nil, sc.errorf("expected coefficient or indeterminate")
	}

	t, err := sc.m.Make(exps)
	if err != nil {
		return 0, nil, &ParseError{Src: sc.src, Pos: sc.pos, Msg: err.Error()}
	}
	return uint32(coeff), t, nil
}

// factor parses x[i] or x[i]^e and accumulates into exps.
func (sc *scanner) factor(exps []uint32) error {
	if sc.eof() || sc.peek() != 'x' {
		return sc.errorf("expected indeterminate")
	}
	sc.pos++
	if sc.eof() || sc.peek() != '[' {
		return sc.errorf("expected '['")
	}
	sc.pos++
	sc.skipSpace()
	idx, err := sc.number()
	if err != nil {
		return err
	}
	sc.skipSpace()
	if sc.eof() || sc.peek() != ']' {
		return sc.errorf("expected ']'")
	}
	sc.pos++
	i := int(idx) - sc.min
	if i < 0 || i >= sc.m.N() {
		return sc.errorf("index x[%d] out of range [%d, %d)", idx, sc.min, sc.min+sc.m.N())
	}
	e := uint64(1)
	sc.skipSpace()
	if !sc.eof() && sc.peek() == '^' {
		sc.pos++
		sc.skipSpace()
		e, err = sc.number()
		if err != nil {
			return err
		}
	}
	if uint64(exps[i])+e > uint64(sc.m.Cap()) {
		return sc.errorf("exponent %d of x[%d] exceeds capacity %d", e, idx, sc.m.Cap())
	}
	exps[i] += uint32(e)
	return nil
}
