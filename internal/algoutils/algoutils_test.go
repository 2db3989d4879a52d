// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package algoutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermute(t *testing.T) {
	require := require.New(t)

	slice := []string{"a", "b", "c", "d", "e"}
	perm := []int{2, 0, 4, 1, 3}
	Permute(slice, perm)
	require.Equal([]string{"b", "d", "a", "e", "c"}, slice)
	// the permutation is restored for reuse on a parallel slice
	require.Equal([]int{2, 0, 4, 1, 3}, perm)

	nums := []int{10, 20, 30, 40, 50}
	Permute(nums, perm)
	require.Equal([]int{20, 40, 10, 50, 30}, nums)
}

func TestPermuteIdentity(t *testing.T) {
	require := require.New(t)
	slice := []int{1, 2, 3}
	Permute(slice, []int{0, 1, 2})
	require.Equal([]int{1, 2, 3}, slice)
}

func TestMap(t *testing.T) {
	require := require.New(t)
	require.Equal([]int{2, 4, 6}, Map([]int{1, 2, 3}, func(v int) int { return 2 * v }))
	require.Empty(Map(nil, func(v int) int { return v }))
}
