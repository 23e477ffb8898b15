// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "github.com/audiolab/opsolve/la"

// Solver is the capability set common to the Base, Homotopy, and Caching
// solvers. Wrappers take any value implementing it, so they compose in
// any order: Caching[Homotopy[Base]], Homotopy[Caching[Base]], etc.
//
// A plain interface, rather than a Go generic type parameter, is used for
// the wrapping: the capability set is small and uniform, and this corpus
// already dispatches through function-typed fields on its hot path (the
// teacher's own NlSolver.Ffcn/JfcnDn). See SPEC_FULL.md §4.2.
type Solver interface {
	// Solve always returns a value; call HasConverged to test success.
	Solve(p la.Vector) la.Vector

	// HasConverged reports whether the most recent Solve converged.
	HasConverged() bool

	// NeededIterations reports the iteration count of the most recent Solve.
	NeededIterations() int

	// SetTolerance sets the squared-residual convergence threshold.
	SetTolerance(tol float64)

	// SetOrigin forces a new extrapolation origin.
	SetOrigin(p, z la.Vector)

	// Origin returns the current extrapolation origin.
	Origin() (p, z la.Vector)
}
