// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package term

// Ordering is a total order on terms of a common monoid, compatible with
// multiplication: Cmp(a, b) == Cmp(a.Mul(c), b.Mul(c)). Cmp returns a
// negative value if a < b, zero if a == b and a positive value if a > b.
//
// Lex, DegLex and DegRevLex are the provided variants; callers may supply
// further implementations.
type Ordering interface {
	Cmp(a, b *Term) int
	Name() string
}

type lexOrdering struct{ n int }

// Lex returns the lexicographic ordering on n indeterminates: the first
// coordinate where the exponents differ decides, larger exponent wins.
func Lex(n int) Ordering { return lexOrdering{n} }

func (o lexOrdering) Cmp(a, b *Term) int {
	if a == b {
		return 0
	}
	for i := 0; i < o.n; i++ {
		if a.exps[i] != b.exps[i] {
			if a.exps[i] > b.exps[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (o lexOrdering) Name() string { return "Lex" }

type degLexOrdering struct{ lex lexOrdering }

// DegLex returns the degree lexicographic ordering: total degree first, ties
// broken lexicographically.
func DegLex(n int) Ordering { return degLexOrdering{lexOrdering{n}} }

func (o degLexOrdering) Cmp(a, b *Term) int {
	if a == b {
		return 0
	}
	if a.degree != b.degree {
		if a.degree > b.degree {
			return 1
		}
		return -1
	}
	return o.lex.Cmp(a, b)
}

func (o degLexOrdering) Name() string { return "DegLex" }

type degRevLexOrdering struct{ n int }

// DegRevLex returns the degree reverse lexicographic ordering: total degree
// first; on ties the last coordinate where the exponents differ decides, and
// the term with the smaller exponent there is the larger one.
func DegRevLex(n int) Ordering { return degRevLexOrdering{n} }

func (o degRevLexOrdering) Cmp(a, b *Term) int {
	if a == b {
		return 0
	}
	if a.degree != b.degree {
		if a.degree > b.degree {
			return 1
		}
		return -1
	}
	for i := o.n - 1; i >= 0; i-- {
		if a.exps[i] != b.exps[i] {
			if b.exps[i] > a.exps[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (o degRevLexOrdering) Name() string { return "DegRevLex" }
