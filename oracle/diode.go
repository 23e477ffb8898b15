// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"math"

	"github.com/audiolab/opsolve/la"
)

// Diode implements a scalar diode-resistor junction,
//
//	F(z) = z + Is*(exp(z/Vt) - 1) - V/R
//
// with N=1, P=0: V, R, Is, Vt are fixed oracle parameters rather than
// solver-level parameters p. Modeled after the device-stamping style of
// toy-spice's operating-point analysis (an external reference for what
// a real MNA oracle looks like; this package does not depend on it).
type Diode struct {
	V, R, Is, Vt float64
}

// NDim reports N=1, P=0.
func (o *Diode) NDim() (n, p int) {
	return 1, 0
}

// Evaluate computes the scalar residual and its derivative w.r.t. z.
// Jp has zero columns since P=0; it is left untouched.
func (o *Diode) Evaluate(p, z la.Vector, r la.Vector, J, Jp *la.Matrix) {
	zd := z[0]
	expTerm := math.Exp(zd / o.Vt)
	r[0] = zd + o.Is*(expTerm-1) - o.V/o.R
	J.Set(0, 0, 1+(o.Is/o.Vt)*expTerm)
}
