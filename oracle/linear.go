// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import "github.com/audiolab/opsolve/la"

// Linear implements F(p, z) = A*z + B*p + c, for testing the Base
// solver's one-step exactness and the extrapolation warm start, both of
// which are exact for a linear oracle.
type Linear struct {
	A *la.Matrix // N x N
	B *la.Matrix // N x P
	C la.Vector  // N
}

// NDim returns the state and parameter dimensions, read off A and B.
func (o *Linear) NDim() (n, p int) {
	n, _ = o.A.Dims()
	_, p = o.B.Dims()
	return
}

// Evaluate computes r = A*z + B*p + c, J = A, Jp = B.
func (o *Linear) Evaluate(p, z la.Vector, r la.Vector, J, Jp *la.Matrix) {
	n, pDim := o.NDim()
	o.A.MulVec(r, z)
	bp := la.NewVector(n)
	o.B.MulVec(bp, p)
	for i := 0; i < n; i++ {
		r[i] += bp[i] + o.C[i]
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			J.Set(i, j, o.A.Get(i, j))
		}
		for j := 0; j < pDim; j++ {
			Jp.Set(i, j, o.B.Get(i, j))
		}
	}
}
