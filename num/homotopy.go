// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "github.com/audiolab/opsolve/la"

// Homotopy retries a failed inner solve via parameter-space bisection: it
// walks the parameter vector along a straight line from the inner
// solver's last known-good origin to the requested target, backing off
// geometrically whenever an intermediate point fails to converge.
//
// The straight-line interpolation implicitly exploits the inner solver's
// own convergence signal as a step-acceptance rule: each converged
// intermediate point becomes the inner solver's new origin (because a
// successful Solve always advances that origin), so later attempts begin
// from strictly closer, already-converged ground.
//
// HasConverged, NeededIterations, SetTolerance, SetOrigin and Origin all
// delegate straight to Inner: Homotopy's own state is only the bisection
// bookkeeping inside Solve.
type Homotopy struct {
	Inner Solver

	maxDepth int
}

// NewHomotopy wraps inner, an already-constructed solver. A bisection
// loop that only terminates when `a` underflows to exactly 0 can spin
// for a long time near difficult regions; maxHomotopyDepth bounds the
// bisection depth and Solve reports non-convergence once the cap binds.
func NewHomotopy(inner Solver, prms Params) *Homotopy {
	return &Homotopy{
		Inner:    inner,
		maxDepth: int(prms.Get("maxHomotopyDepth", DefaultMaxHomotopyDepth)),
	}
}

// Solve attempts the target directly; on failure it bisects the
// parameter-space segment from the inner solver's current origin to
// pTarget until an intermediate point converges, then resumes toward the
// target from there.
func (h *Homotopy) Solve(pTarget la.Vector) la.Vector {
	z := h.Inner.Solve(pTarget)
	if h.Inner.HasConverged() {
		return z
	}

	pStart, _ := h.Inner.Origin()
	pStart = pStart.Copy()
	pa := la.NewVector(len(pTarget))

	bestA, a := 0.0, 0.5
	// depth counts failed attempts only, so the cap can bind only right
	// after a failed inner solve and HasConverged then reports false.
	for depth := 0; depth < h.maxDepth && bestA < 1 && a > 0; {
		interpolate(pa, pStart, pTarget, a)
		z = h.Inner.Solve(pa)
		if h.Inner.HasConverged() {
			bestA = a
			a = 1.0
		} else {
			a = (a + bestA) / 2
			depth++
		}
	}
	return z
}

// interpolate sets dst := (1-a)*pStart + a*pTarget.
func interpolate(dst, pStart, pTarget la.Vector, a float64) {
	for i := range dst {
		dst[i] = (1-a)*pStart[i] + a*pTarget[i]
	}
}

func (h *Homotopy) HasConverged() bool       { return h.Inner.HasConverged() }
func (h *Homotopy) NeededIterations() int    { return h.Inner.NeededIterations() }
func (h *Homotopy) SetTolerance(tol float64) { h.Inner.SetTolerance(tol) }
func (h *Homotopy) SetOrigin(p, z la.Vector) { h.Inner.SetOrigin(p, z) }
func (h *Homotopy) Origin() (p, z la.Vector) { return h.Inner.Origin() }
