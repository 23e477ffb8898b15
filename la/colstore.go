// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

// ColStore is a column-major matrix that grows by appending columns, with
// amortized-capacity reallocation (geometric growth), distinct from the
// fixed-size Matrix used for Jacobians. It backs the Caching wrapper's
// stored-point and stored-solution history.
type ColStore struct {
	rows int
	cols int
	cap  int
	data []float64 // column-major: column j occupies data[j*rows : j*rows+rows]
}

// NewColStore returns an empty store for rows-dimensional columns.
func NewColStore(rows int) *ColStore {
	return &ColStore{rows: rows}
}

// Len returns the number of stored columns.
func (s *ColStore) Len() int {
	return s.cols
}

// Append adds v as a new last column, reallocating with geometric growth
// if the backing array is at capacity.
func (s *ColStore) Append(v Vector) {
	if len(v) != s.rows {
		panic("la.ColStore.Append: dimension mismatch")
	}
	if s.cols == s.cap {
		newCap := s.cap * 2
		if newCap == 0 {
			newCap = 4
		}
		nd := make([]float64, newCap*s.rows)
		copy(nd, s.data)
		s.data = nd
		s.cap = newCap
	}
	copy(s.data[s.cols*s.rows:(s.cols+1)*s.rows], v)
	s.cols++
}

// Col returns a view into column j. The caller must not retain it across
// the next Append, which may reallocate the backing array.
func (s *ColStore) Col(j int) Vector {
	return Vector(s.data[j*s.rows : (j+1)*s.rows])
}

// Snapshot returns a *Matrix copy of the first n columns, suitable for
// handing to kdtree.Build (which takes ownership of a stable point set).
func (s *ColStore) Snapshot(n int) *Matrix {
	m := NewMatrix(s.rows, n)
	for j := 0; j < n; j++ {
		m.SetCol(j, s.Col(j))
	}
	return m
}
