// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la implements the dense linear-algebra primitives the solver
// stack is built on: vectors, matrices, LU factorization and triangular
// solve, and the growable column stores used by the caching wrapper.
package la

import "math"

// Vector is a dense real vector.
type Vector []float64

// NewVector returns a new vector of length n, zeroed.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Copy returns a fresh copy of v.
func (v Vector) Copy() Vector {
	u := make(Vector, len(v))
	copy(u, v)
	return u
}

// CopyInto copies v into dst, which must already have the right length.
func (v Vector) CopyInto(dst Vector) {
	copy(dst, v)
}

// NormSq returns ‖v‖², the squared Euclidean norm.
func (v Vector) NormSq() float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return s
}

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) float64 {
	return VecDot(v, u)
}

// VecDot returns the dot product of u and v.
func VecDot(u, v Vector) float64 {
	var s float64
	for i := range u {
		s += u[i] * v[i]
	}
	return s
}

// VecSub sets res := a - b. res may alias a or b.
func VecSub(res, a, b Vector) {
	for i := range res {
		res[i] = a[i] - b[i]
	}
}

// VecDistSq returns ‖a-b‖², without allocating.
func VecDistSq(a, b Vector) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// IsFinite returns false if v holds any NaN or Inf entry.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
