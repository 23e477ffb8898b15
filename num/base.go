// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"github.com/audiolab/opsolve/chk"
	"github.com/audiolab/opsolve/la"
	"github.com/audiolab/opsolve/oracle"
)

// Base is the Newton solver (full, undamped steps) with first-order extrapolation of the
// initial guess from a remembered operating point. It owns one oracle and
// one cached LU factorization of the Jacobian at that operating point.
//
// Solve always returns a value; it never raises. The three failure modes
// — non-finite evaluation, singular Jacobian, iteration budget exhausted
// — are all observed via HasConverged.
type Base struct {
	oracle  oracle.Evaluator
	n, p    int
	tol     float64
	maxIter int

	lastP, lastZ la.Vector
	lastJp       *la.Matrix
	lastLU       *la.LU

	iters     int
	converged bool
}

// NewBase constructs a Base solver, evaluating the oracle once at
// (p0, z0) to populate the extrapolation origin. The caller is
// responsible for z0 being a valid solution of F(p0, ·) = 0 within tol,
// or near enough that the first Solve call converges from it: this is a
// usage contract, not a locally checkable condition (verifying it would
// require running Newton's method itself), so it is documented rather
// than enforced by a panic.
func NewBase(oc oracle.Evaluator, p0, z0 la.Vector, prms Params) *Base {
	n, p := oc.NDim()
	if len(p0) != p || len(z0) != n {
		chk.Panic("num.NewBase: oracle wants N=%d P=%d, got len(z0)=%d len(p0)=%d", n, p, len(z0), len(p0))
	}
	b := &Base{
		oracle:  oc,
		n:       n,
		p:       p,
		tol:     prms.Get("tol", DefaultTol),
		maxIter: int(prms.Get("maxiter", DefaultMaxIter)),
	}
	r := la.NewVector(n)
	J := la.NewMatrix(n, n)
	Jp := la.NewMatrix(n, p)
	oc.Evaluate(p0, z0, r, J, Jp)
	lu := la.FactorizeLU(J)
	b.installOrigin(p0.Copy(), z0.Copy(), Jp, lu)
	b.converged = r.NormSq() < b.tol
	return b
}

func (b *Base) installOrigin(p, z la.Vector, Jp *la.Matrix, lu *la.LU) {
	b.lastP, b.lastZ, b.lastJp, b.lastLU = p, z, Jp, lu
}

// Origin returns the current extrapolation origin.
func (b *Base) Origin() (p, z la.Vector) {
	return b.lastP, b.lastZ
}

// SetOrigin forces a new extrapolation origin, re-evaluating the oracle
// and refactoring J. Like NewBase, this does not validate convergence:
// it is the caller's responsibility, matching the oracle's own "no error
// channel" contract.
func (b *Base) SetOrigin(p, z la.Vector) {
	if len(p) != b.p || len(z) != b.n {
		chk.Panic("num.Base.SetOrigin: dimension mismatch")
	}
	r := la.NewVector(b.n)
	J := la.NewMatrix(b.n, b.n)
	Jp := la.NewMatrix(b.n, b.p)
	b.oracle.Evaluate(p, z, r, J, Jp)
	lu := la.FactorizeLU(J)
	b.installOrigin(p.Copy(), z.Copy(), Jp, lu)
}

// SetTolerance sets the squared-residual convergence threshold.
func (b *Base) SetTolerance(tol float64) {
	b.tol = tol
}

// HasConverged reports whether the most recent Solve converged.
func (b *Base) HasConverged() bool {
	return b.converged
}

// NeededIterations reports the iteration count of the most recent Solve.
func (b *Base) NeededIterations() int {
	return b.iters
}

// extrapolate computes the first-order Taylor prediction
//
//	z0 = lastZ - lastLU^-1 * (lastJp * (p - lastP))
//
// from the implicit function theorem: given F(lastP, lastZ) = 0, the
// local sensitivity dz/dp equals -J^-1 * Jp.
func (b *Base) extrapolate(p la.Vector) la.Vector {
	dp := la.NewVector(b.p)
	la.VecSub(dp, p, b.lastP)
	jpdp := la.NewVector(b.n)
	b.lastJp.MulVec(jpdp, dp)
	delta := la.NewVector(b.n)
	b.lastLU.SolveVec(delta, jpdp)
	z0 := la.NewVector(b.n)
	for i := range z0 {
		z0[i] = b.lastZ[i] - delta[i]
	}
	return z0
}

// Solve solves F(p, z) = 0 for z, starting from the extrapolated warm
// start. It always returns a value; call HasConverged to test success.
func (b *Base) Solve(p la.Vector) la.Vector {
	if len(p) != b.p {
		chk.Panic("num.Base.Solve: expected len(p)=%d, got %d", b.p, len(p))
	}
	z0 := b.extrapolate(p)

	z := z0
	r := la.NewVector(b.n)
	J := la.NewMatrix(b.n, b.n)

	it := 0
	converged := false
	exhausted := true
	for ; it < b.maxIter; it++ {
		// Jp is allocated fresh each iteration because a converged
		// iteration hands its Jp to installOrigin, which retains it.
		Jp := la.NewMatrix(b.n, b.p)
		b.oracle.Evaluate(p, z, r, J, Jp)

		if !r.IsFinite() || !J.IsFinite() {
			exhausted = false
			break
		}
		lu := la.FactorizeLU(J)
		if lu.Singular() {
			exhausted = false
			break
		}
		if r.NormSq() < b.tol {
			converged = true
			exhausted = false
			b.installOrigin(p.Copy(), z.Copy(), Jp, lu)
			break
		}

		delta := la.NewVector(b.n)
		lu.SolveVec(delta, r)
		for i := range z {
			z[i] -= delta[i]
		}
	}

	// it holds the 0-based index of the pass that broke (or of the pass
	// about to run, if the loop ran to exhaustion): report 1-based
	// pass counts so a first-pass convergence reads as "1 iteration".
	if exhausted {
		b.iters = b.maxIter
	} else {
		b.iters = it + 1
	}
	b.converged = converged
	return z
}
