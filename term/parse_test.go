// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package term_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/groebner/term"
)

func TestParseTerm(t *testing.T) {
	require := require.New(t)
	m, err := term.NewMonoid(3, 8)
	require.NoError(err)

	cases := []struct {
		in   string
		exps []uint32
	}{
		{"x[1]", []uint32{1, 0, 0}},
		{"x[1]^2", []uint32{2, 0, 0}},
		{"x[1]^2*x[2]", []uint32{2, 1, 0}},
		{"x[1] * x[3]^4", []uint32{1, 0, 4}},
		{"x[2]*x[2]", []uint32{0, 2, 0}},
		{" x[1]^2 ", []uint32{2, 0, 0}},
		{"1", []uint32{0, 0, 0}},
	}
	for _, tc := range cases {
		tm, err := m.Parse(tc.in, 1)
		require.NoError(err, tc.in)
		require.Equal(tc.exps, tm.Exps(), tc.in)
		want, err := m.Make(tc.exps)
		require.NoError(err)
		require.Same(want, tm, tc.in)
	}
}

func TestParseTermMin(t *testing.T) {
	require := require.New(t)
	m, err := term.NewMonoid(2, 8)
	require.NoError(err)

	tm, err := m.Parse("x[0]*x[1]^3", 0)
	require.NoError(err)
	require.Equal([]uint32{1, 3}, tm.Exps())
}

func TestParseTermErrors(t *testing.T) {
	require := require.New(t)
	m, err := term.NewMonoid(2, 8)
	require.NoError(err)

	for _, in := range []string{
		"",
		"y[1]",
		"x[1",
		"x[]",
		"x[1]^",
		"x[1]**x[2]",
		"x[1]x[2]",
		"x[3]", // out of range for min=1, n=2
		"x[0]",
		"x[1]^256", // exceeds capacity for d=8
	} {
		_, err := m.Parse(in, 1)
		require.Error(err, "input %q", in)
	}
}
