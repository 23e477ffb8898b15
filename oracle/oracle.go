// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle defines the residual/Jacobian contract the solver stack
// is built against, and ships a couple of reference implementations used
// by the num package's tests.
package oracle

import "github.com/audiolab/opsolve/la"

// Evaluator computes the residual F(p, z), the state Jacobian J = dF/dz,
// and the parameter Jacobian Jp = dF/dp at a given (p, z), writing into
// caller-provided buffers. It is pure with respect to p and z: it must
// not retain pointers into p or z across calls, and its own output
// buffers are invalidated by the next call.
type Evaluator interface {
	// NDim returns (N, P): the state dimension and parameter dimension.
	NDim() (n, p int)

	// Evaluate fully populates r (length N), J (N x N), and Jp (N x P)
	// for the given p (length P) and z (length N).
	Evaluate(p, z la.Vector, r la.Vector, J, Jp *la.Matrix)
}
