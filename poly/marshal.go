// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/groebner"
	"github.com/consensys/groebner/internal/ioutils"
	"github.com/consensys/groebner/logger"
	"github.com/consensys/groebner/term"
)

// Serialized layout: a fixed-size binary header carrying the three section
// lengths, a cbor body (engine version, monoid parameters, per-polynomial
// sizes and sugar degrees), then two intcomp-compressed uint32 streams for
// the coefficients and the flattened exponent vectors. The three sections
// are produced and consumed in parallel.
//
// Reading re-interns every term in a fresh monoid; handle identity is
// re-established rather than preserved across runs.

const headerLen = 3 * 8

type marshalBody struct {
	Version string `cbor:"version"`
	N       int    `cbor:"n"`
	D       int    `cbor:"d"`
	Sizes   []int  `cbor:"sizes"`
	Sugars  []int  `cbor:"sugars"`
}

// WriteTo serializes the list. The list must contain at least one monomial,
// as the monoid parameters travel with the payload.
func (l List) WriteTo(w io.Writer) (int64, error) {
	var m *term.Monoid
	for _, p := range l {
		if p.Len() > 0 {
			m = p.Term(0).Monoid()
			break
		}
	}
	if m == nil {
		return 0, errors.New("poly: cannot serialize a list without terms")
	}

	b := marshalBody{
		Version: groebner.Version.String(),
		N:       m.N(),
		D:       m.D(),
		Sizes:   make([]int, len(l)),
		Sugars:  make([]int, len(l)),
	}
	var nbMonomials int
	for i, p := range l {
		b.Sizes[i] = p.Len()
		b.Sugars[i] = p.Sugar()
		nbMonomials += p.Len()
	}

	var body, coeffSec, expSec []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		body, err = cbor.Marshal(b)
		return err
	})
	g.Go(func() error {
		coeffs := make([]uint32, 0, nbMonomials)
		for _, p := range l {
			coeffs = append(coeffs, p.coeffs...)
		}
		var buf bytes.Buffer
		if err := ioutils.CompressAndWriteUints32(&buf, coeffs); err != nil {
			return err
		}
		coeffSec = buf.Bytes()
		return nil
	})
	g.Go(func() error {
		exps := make([]uint32, 0, nbMonomials*m.N())
		for _, p := range l {
			for _, t := range p.terms {
				exps = append(exps, t.Exps()...)
			}
		}
		var buf bytes.Buffer
		if err := ioutils.CompressAndWriteUints32(&buf, exps); err != nil {
			return err
		}
		expSec = buf.Bytes()
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var header [headerLen]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(len(body)))
	binary.LittleEndian.PutUint64(header[8:16], uint64(len(coeffSec)))
	binary.LittleEndian.PutUint64(header[16:24], uint64(len(expSec)))

	var written int64
	for _, sec := range [][]byte{header[:], body, coeffSec, expSec} {
		n, err := w.Write(sec)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadListFrom deserializes a list written by WriteTo, interning all terms
// in a fresh monoid which is returned alongside. A version mismatch is
// logged but not fatal.
func ReadListFrom(r io.Reader) (List, *term.Monoid, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, nil, err
	}
	bodyLen := binary.LittleEndian.Uint64(header[0:8])
	coeffLen := binary.LittleEndian.Uint64(header[8:16])
	expLen := binary.LittleEndian.Uint64(header[16:24])

	raw := make([]byte, bodyLen+coeffLen+expLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, nil, err
	}

	var b marshalBody
	var coeffs, exps []uint32
	var g errgroup.Group
	g.Go(func() error {
		return cbor.Unmarshal(raw[:bodyLen], &b)
	})
	g.Go(func() error {
		_, vals, err := ioutils.ReadAndDecompressUints32(bytes.NewReader(raw[bodyLen : bodyLen+coeffLen]))
		coeffs = vals
		return err
	})
	g.Go(func() error {
		_, vals, err := ioutils.ReadAndDecompressUints32(bytes.NewReader(raw[bodyLen+coeffLen:]))
		exps = vals
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	checkVersion(b.Version)

	m, err := term.NewMonoid(b.N, b.D)
	if err != nil {
		return nil, nil, err
	}

	var nbMonomials int
	for _, s := range b.Sizes {
		nbMonomials += s
	}
	if len(coeffs) != nbMonomials || len(exps) != nbMonomials*b.N {
		return nil, nil, errors.New("poly: corrupt serialized list")
	}

	l := make(List, len(b.Sizes))
	off := 0
	for i, size := range b.Sizes {
		p := &Polynomial{
			coeffs: append([]uint32(nil), coeffs[off:off+size]...),
			terms:  make([]*term.Term, size),
			sugar:  b.Sugars[i],
		}
		for j := 0; j < size; j++ {
			t, err := m.Make(exps[(off+j)*b.N : (off+j+1)*b.N])
			if err != nil {
				return nil, nil, fmt.Errorf("poly: corrupt exponent vector: %w", err)
			}
			p.terms[j] = t
		}
		l[i] = p
		off += size
	}
	return l, m, nil
}

func checkVersion(object string) {
	v, err := semver.Parse(object)
	if err != nil {
		log := logger.Logger()
		log.Warn().Str("object", object).Msg("unreadable engine version in serialized list")
		return
	}
	if groebner.Version.Compare(v) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", groebner.Version.String()).Str("object", v.String()).
			Msg("engine version mismatch with serialized list. there are no guarantees on compatibility")
	}
}
