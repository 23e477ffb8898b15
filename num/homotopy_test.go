// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiolab/opsolve/la"
)

// stepLimitedSolver is a fake inner Solver whose basin of convergence is
// any step of at most maxStep away from its current origin. It isolates
// Homotopy's bisection control flow from Base's actual Newton dynamics:
// the scripted failure boundary is a property of the fake, not of any
// real equation, so the expected bisection trace is exact.
type stepLimitedSolver struct {
	p, z      la.Vector
	maxStep   float64
	converged bool
	iters     int
}

func (f *stepLimitedSolver) Solve(p la.Vector) la.Vector {
	step := math.Abs(p[0] - f.p[0])
	if step <= f.maxStep {
		f.converged = true
		f.iters = 1
		f.p = p.Copy()
		f.z = la.Vector{p[0]}
		return f.z
	}
	f.converged = false
	f.iters = DefaultMaxIter
	return f.z
}

func (f *stepLimitedSolver) HasConverged() bool       { return f.converged }
func (f *stepLimitedSolver) NeededIterations() int    { return f.iters }
func (f *stepLimitedSolver) SetTolerance(tol float64) {}
func (f *stepLimitedSolver) SetOrigin(p, z la.Vector) { f.p, f.z = p.Copy(), z.Copy() }
func (f *stepLimitedSolver) Origin() (p, z la.Vector) { return f.p, f.z }

// TestHomotopyRecoversFromFailedBase checks scenario 3: a direct solve
// that exceeds the inner solver's basin fails, but the Homotopy wrapper
// walks there via bisection and succeeds.
func TestHomotopyRecoversFromFailedBase(t *testing.T) {
	inner := &stepLimitedSolver{p: la.Vector{0}, z: la.Vector{0}, maxStep: 3}

	direct := inner.Solve(la.Vector{10})
	require.False(t, inner.HasConverged(), "direct solve should exceed the basin")
	require.Equal(t, la.Vector{0}, direct, "a failed solve must leave z at its prior value")

	inner.p, inner.z = la.Vector{0}, la.Vector{0}
	inner.converged = false

	h := NewHomotopy(inner, Params{})
	z := h.Solve(la.Vector{10})

	assert.True(t, h.HasConverged())
	assert.Equal(t, la.Vector{10}, z)
	p, _ := h.Origin()
	assert.Equal(t, la.Vector{10}, p)
}

// TestHomotopyDepthCapReportsFailure checks that an unreachable target
// (step always exceeds the basin, however finely bisected) terminates at
// maxDepth rather than looping forever, and reports non-convergence.
func TestHomotopyDepthCapReportsFailure(t *testing.T) {
	inner := &stepLimitedSolver{p: la.Vector{0}, z: la.Vector{0}, maxStep: 0}
	h := NewHomotopy(inner, Params{"maxHomotopyDepth": 8})

	h.Solve(la.Vector{10})
	assert.False(t, h.HasConverged())
}
