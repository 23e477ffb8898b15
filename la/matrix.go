// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense real matrix, backed by gonum's mat.Dense so the LU
// factorization in lu.go can operate on it directly. gonum's mat.Dense
// does not support a zero dimension (e.g. the N x 0 parameter Jacobian
// of a P=0 oracle), so Matrix tracks its own dims and leaves raw nil in
// that degenerate case.
type Matrix struct {
	rows, cols int
	raw        *mat.Dense
}

// NewMatrix returns a new rows x cols matrix, zeroed.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols}
	if rows > 0 && cols > 0 {
		m.raw = mat.NewDense(rows, cols, nil)
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Get returns the entry at (i, j).
func (m *Matrix) Get(i, j int) float64 {
	return m.raw.At(i, j)
}

// Set assigns the entry at (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.raw.Set(i, j, v)
}

// Raw exposes the underlying gonum matrix for LU factorization. Nil when
// either dimension is zero.
func (m *Matrix) Raw() *mat.Dense {
	return m.raw
}

// SetCol assigns column j from v. len(v) must equal the row count.
func (m *Matrix) SetCol(j int, v Vector) {
	m.raw.SetCol(j, v)
}

// Col returns a fresh copy of column j.
func (m *Matrix) Col(j int) Vector {
	v := make(Vector, m.rows)
	if m.raw != nil {
		mat.Col(v, j, m.raw)
	}
	return v
}

// MulVec sets dst := M * x. A no-op (dst left zeroed) when M has zero
// columns, since there is nothing to multiply.
func (m *Matrix) MulVec(dst Vector, x Vector) {
	for i := range dst {
		dst[i] = 0
	}
	if m.cols == 0 || m.rows == 0 {
		return
	}
	d := mat.NewVecDense(len(dst), dst)
	xv := mat.NewVecDense(len(x), x)
	d.MulVec(m.raw, xv)
	for i := range dst {
		dst[i] = d.AtVec(i)
	}
}

// Copy returns an independent copy of m.
func (m *Matrix) Copy() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	if m.raw != nil {
		c.raw.Copy(m.raw)
	}
	return c
}

// IsFinite returns false if any entry of m is NaN or Inf.
func (m *Matrix) IsFinite() bool {
	if m.raw == nil {
		return true
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := m.raw.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
