// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorizeLUSolveVec(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 2)
	a.Set(0, 1, 1)
	a.Set(1, 0, 1)
	a.Set(1, 1, 3)
	lu := FactorizeLU(a)
	assert.False(t, lu.Singular())

	x := NewVector(2)
	lu.SolveVec(x, Vector{5, 10})
	assert.InDelta(t, 1, x[0], 1e-9)
	assert.InDelta(t, 3, x[1], 1e-9)
}

func TestFactorizeLUDetectsSingular(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 2)
	a.Set(1, 1, 4)
	lu := FactorizeLU(a)
	assert.True(t, lu.Singular())
}

func TestMatrixZeroColumns(t *testing.T) {
	m := NewMatrix(3, 0)
	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 0, cols)
	assert.True(t, m.IsFinite())

	dst := NewVector(3)
	m.MulVec(dst, Vector{})
	assert.Equal(t, Vector{0, 0, 0}, dst)
}

func TestColStoreAppendAndSnapshot(t *testing.T) {
	s := NewColStore(2)
	s.Append(Vector{1, 2})
	s.Append(Vector{3, 4})
	s.Append(Vector{5, 6})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Vector{3, 4}, s.Col(1))

	snap := s.Snapshot(2)
	rows, cols := snap.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 1.0, snap.Get(0, 0))
	assert.Equal(t, 4.0, snap.Get(1, 1))
}

func TestVecDistSq(t *testing.T) {
	assert.InDelta(t, 25.0, VecDistSq(Vector{0, 0}, Vector{3, 4}), 1e-12)
}
