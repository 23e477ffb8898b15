// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"github.com/audiolab/opsolve/kdtree"
	"github.com/audiolab/opsolve/la"
)

// Caching wraps an inner solver with a nearest-neighbor warm-start lookup
// over a growing history of converged (p, z) pairs. The history's indexed
// prefix is searched via a k-d tree; the pending suffix (columns appended
// since the last rebuild) is searched linearly and folds into the same
// query by priming the tree search with the best pending/current-origin
// candidate, so the tree can only ever improve on what the scan already
// found.
type Caching struct {
	Inner Solver

	ps, zs *la.ColStore // P x M, N x M; column j stored together

	tree    *kdtree.Tree
	indexed int // M': columns [0, indexed) are covered by tree

	gateIters     int
	newCount      int
	newCountLimit int
}

// NewCaching wraps inner, seeding the stored-point history with (p0, z0):
// the operating point inner was itself constructed with, so the history
// invariant (every stored column converges) holds from M=1 onward without
// a redundant oracle evaluation here.
func NewCaching(inner Solver, p0, z0 la.Vector, prms Params) *Caching {
	ps := la.NewColStore(len(p0))
	zs := la.NewColStore(len(z0))
	ps.Append(p0)
	zs.Append(z0)
	return &Caching{
		Inner:         inner,
		ps:            ps,
		zs:            zs,
		gateIters:     int(prms.Get("cacheGateIters", DefaultCacheGateIters)),
		newCountLimit: int(prms.Get("initialRebuildLimit", DefaultInitialRebuildCap)),
	}
}

// Solve looks up the nearest stored operating point (or the inner
// solver's current origin, whichever is closer), installs it as the warm
// start, and delegates. A solve that converges only after more than the
// configured gate iterations is stored for future lookups.
func (c *Caching) Solve(p la.Vector) la.Vector {
	c.applyRebuildPolicy()
	c.lookup(p)
	z := c.Inner.Solve(p)

	if c.Inner.HasConverged() && c.Inner.NeededIterations() > c.gateIters {
		c.ps.Append(p.Copy())
		c.zs.Append(z.Copy())
		c.newCount++
	}
	return z
}

// lookup finds the nearest of {current origin, pending suffix, indexed
// prefix} to p and installs it as the inner solver's origin. The origin
// itself is always a candidate (priming with index -1, "keep current
// origin") so a lookup can never make the warm start worse.
func (c *Caching) lookup(p la.Vector) {
	originP, _ := c.Inner.Origin()
	best := kdtree.Candidate{DistSq: la.VecDistSq(p, originP), Index: -1}

	for j := c.indexed; j < c.ps.Len(); j++ {
		d := la.VecDistSq(p, c.ps.Col(j))
		if d < best.DistSq {
			best = kdtree.Candidate{DistSq: d, Index: j}
		}
	}
	if c.tree != nil {
		best = c.tree.Nearest(p, best)
	}
	if best.Index != -1 {
		c.Inner.SetOrigin(c.ps.Col(best.Index).Copy(), c.zs.Col(best.Index).Copy())
	}
}

// applyRebuildPolicy decrements new_count_limit for pending growth left
// over from previous calls' inserts, then rebuilds the tree over the
// full history if the pending suffix has outgrown it, resetting
// new_count_limit to 2*M. It runs before this call's own potential
// insert, so an insert made by the call that rebuilds is not in the new
// tree: it becomes the first pending column of the new cycle and is
// scanned linearly until the following rebuild.
func (c *Caching) applyRebuildPolicy() {
	if c.newCount > 0 {
		c.newCountLimit--
	}
	if c.newCount <= c.newCountLimit {
		return
	}
	m := c.ps.Len()
	c.tree = kdtree.Build(c.ps.Snapshot(m))
	c.indexed = m
	c.newCount = 0
	c.newCountLimit = 2 * m
}

func (c *Caching) HasConverged() bool       { return c.Inner.HasConverged() }
func (c *Caching) NeededIterations() int    { return c.Inner.NeededIterations() }
func (c *Caching) SetTolerance(tol float64) { c.Inner.SetTolerance(tol) }
func (c *Caching) SetOrigin(p, z la.Vector) { c.Inner.SetOrigin(p, z) }
func (c *Caching) Origin() (p, z la.Vector) { return c.Inner.Origin() }
