// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// singularCondThreshold bounds the condition number above which a
// factorization is treated as singular. gonum's mat.LU never errors on
// Factorize itself; the caller must inspect conditioning to detect a
// near-singular Jacobian during the Base solver's iteration loop.
const singularCondThreshold = 1e14

// LU is the partial-pivoting LU factorization of a square matrix, built on
// gonum's mat.LU. It exposes a singular-factor indicator without raising,
// and a triangular solve for vector or matrix right-hand sides.
type LU struct {
	raw      mat.LU
	n        int
	singular bool
}

// FactorizeLU factors the square matrix a with partial pivoting.
func FactorizeLU(a *Matrix) *LU {
	rows, cols := a.Dims()
	if rows != cols {
		panic("la.FactorizeLU: matrix must be square")
	}
	lu := &LU{n: rows}
	lu.raw.Factorize(a.raw)
	cond := lu.raw.Cond()
	lu.singular = math.IsInf(cond, 1) || math.IsNaN(cond) || cond > singularCondThreshold
	return lu
}

// Singular reports whether the factored matrix had a zero (or
// numerically indistinguishable from zero) pivot.
func (lu *LU) Singular() bool {
	return lu.singular
}

// SolveVec sets dst := A^-1 * b using the cached factorization.
func (lu *LU) SolveVec(dst, b Vector) {
	bd := mat.NewDense(lu.n, 1, append(Vector(nil), b...))
	var xd mat.Dense
	if err := lu.raw.SolveTo(&xd, false, bd); err != nil {
		lu.singular = true
		for i := range dst {
			dst[i] = math.NaN()
		}
		return
	}
	for i := 0; i < lu.n; i++ {
		dst[i] = xd.At(i, 0)
	}
}

// Solve sets dst := A^-1 * b for a matrix right-hand side b.
func (lu *LU) Solve(dst, b *Matrix) {
	var xd mat.Dense
	if err := lu.raw.SolveTo(&xd, false, b.raw); err != nil {
		lu.singular = true
		return
	}
	rows, cols := dst.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(i, j, xd.At(i, j))
		}
	}
}
