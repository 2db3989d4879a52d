// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteCoversRange(t *testing.T) {
	require := require.New(t)

	for _, nbTasks := range []int{0, 1, 3, 64} {
		const n = 1000
		seen := make([]int32, n)
		Execute(0, n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		}, nbTasks)
		for i, c := range seen {
			require.Equal(int32(1), c, "index %d visited %d times (nbTasks=%d)", i, c, nbTasks)
		}
	}
}

func TestExecuteEmptyRange(t *testing.T) {
	called := false
	Execute(5, 5, func(start, end int) { called = true })
	require.False(t, called)
}

func TestExecuteOffsetRange(t *testing.T) {
	require := require.New(t)

	var sum int64
	Execute(10, 20, func(start, end int) {
		var local int64
		for i := start; i < end; i++ {
			local += int64(i)
		}
		atomic.AddInt64(&sum, local)
	}, 4)
	require.Equal(int64(145), sum)
}
