// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"math"

	"github.com/audiolab/opsolve/la"
)

// DiodeVoltageSweep is the same diode-resistor junction as Diode, but
// with the supply voltage promoted to the solver parameter p (N=1, P=1)
// instead of a fixed oracle constant, for exercising the Homotopy and
// Caching wrappers across a voltage sweep the way a discrete-time
// circuit simulator drives one solve per sample.
type DiodeVoltageSweep struct {
	R, Is, Vt float64
}

// NDim reports N=1, P=1.
func (o *DiodeVoltageSweep) NDim() (n, p int) { return 1, 1 }

// Evaluate computes F(p, z) = z + Is*(exp(z/Vt)-1) - p[0]/R.
func (o *DiodeVoltageSweep) Evaluate(p, z la.Vector, r la.Vector, J, Jp *la.Matrix) {
	zd := z[0]
	expTerm := math.Exp(zd / o.Vt)
	r[0] = zd + o.Is*(expTerm-1) - p[0]/o.R
	J.Set(0, 0, 1+(o.Is/o.Vt)*expTerm)
	Jp.Set(0, 0, -1/o.R)
}
