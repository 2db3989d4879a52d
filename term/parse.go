// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package term

import (
	"fmt"
	"strings"
)

// Parse interns the single term denoted by s, e.g. "x[1]^2*x[2]". min is the
// smallest accepted indeterminate index: x[k] maps to coordinate k-min.
// Indeterminates absent from s get exponent zero; repeated factors
// accumulate. The string "1" denotes the unit term.
func (m *Monoid) Parse(s string, min int) (*Term, error) {
	if strings.TrimSpace(s) == "1" {
		return m.one, nil
	}
	p := termScanner{src: s, min: min, m: m}
	exps := make([]uint32, m.n)
	p.skipSpace()
	for {
		if err := p.factor(exps); err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.eof() {
			break
		}
		if p.peek() != '*' {
			return nil, fmt.Errorf("term: unexpected %q at offset %d in %q", p.peek(), p.pos, s)
		}
		p.pos++
		p.skipSpace()
	}
	return m.Make(exps)
}

type termScanner struct {
	src string
	pos int
	min int
	m   *Monoid
}

func (p *termScanner) eof() bool  { return p.pos >= len(p.src) }
func (p *termScanner) peek() byte { return p.src[p.pos] }

func (p *termScanner) skipSpace() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *termScanner) number() (uint64, error) {
	start := p.pos
	for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("term: expected number at offset %d in %q", start, p.src)
	}
	var v uint64
	for _, c := range p.src[start:p.pos] {
		v = v*10 + uint64(c-'0')
		if v > 1<<32 {
			return 0, fmt.Errorf("term: number too large at offset %d in %q", start, p.src)
		}
	}
	return v, nil
}

// factor parses x[i] or x[i]^e and accumulates into exps.
func (p *termScanner) factor(exps []uint32) error {
	if p.eof() || p.peek() != 'x' {
		return fmt.Errorf("term: expected indeterminate at offset %d in %q", p.pos, p.src)
	}
	p.pos++
	if p.eof() || p.peek() != '[' {
		return fmt.Errorf("term: expected '[' at offset %d in %q", p.pos, p.src)
	}
	p.pos++
	p.skipSpace()
	idx, err := p.number()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.eof() || p.peek() != ']' {
		return fmt.Errorf("term: expected ']' at offset %d in %q", p.pos, p.src)
	}
	p.pos++
	i := int(idx) - p.min
	if i < 0 || i >= p.m.n {
		return fmt.Errorf("term: index x[%d] out of range [%d, %d)", idx, p.min, p.min+p.m.n)
	}
	e := uint64(1)
	p.skipSpace()
	if !p.eof() && p.peek() == '^' {
		p.pos++
		p.skipSpace()
		e, err = p.number()
		if err != nil {
			return err
		}
	}
	if uint64(exps[i])+e > uint64(p.m.cap) {
		return fmt.Errorf("term: exponent %d of x[%d] exceeds capacity %d: %w", e, idx, p.m.cap, ErrExponentRange)
	}
	exps[i] += uint32(e)
	return nil
}

// MustParse is Parse, panicking on error.
func (m *Monoid) MustParse(s string, min int) *Term {
	t, err := m.Parse(s, min)
	if err != nil {
		panic(err)
	}
	return t
}
