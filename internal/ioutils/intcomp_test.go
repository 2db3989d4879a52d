// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ioutils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUints32RoundTrip(t *testing.T) {
	require := require.New(t)

	for _, input := range [][]uint32{
		{},
		{42},
		{0, 1, 2, 3, 4, 5, 1 << 30, 7, 0},
	} {
		var buf bytes.Buffer
		require.NoError(CompressAndWriteUints32(&buf, input))

		read, out, err := ReadAndDecompressUints32(&buf)
		require.NoError(err)
		require.Equal(len(input), len(out))
		if len(input) > 0 {
			require.Equal(input, out)
		}
		require.Positive(read)
	}
}
