// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import (
	"strconv"
	"strings"
)

// String renders the polynomial in its current order: monomials joined by
// '+', coefficient 1 omitted on non-constant monomials, exponent 1 omitted.
// The zero polynomial prints as "0". For canonical polynomials the output
// parses back to an equal polynomial.
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := range p.coeffs {
		if i > 0 {
			sb.WriteByte('+')
		}
		c, t := p.coeffs[i], p.terms[i]
		if t.IsOne() {
			sb.WriteString(strconv.FormatUint(uint64(c), 10))
			continue
		}
		if c != 1 {
			sb.WriteString(strconv.FormatUint(uint64(c), 10))
			sb.WriteByte('*')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// String renders the list, items separated by ", ".
func (l List) String() string {
	items := make([]string, len(l))
	for i, p := range l {
		items[i] = p.String()
	}
	return strings.Join(items, ", ")
}
