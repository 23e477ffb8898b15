// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdtree implements a static k-d tree over a fixed set of
// P-dimensional points, supporting nearest-neighbor queries that may be
// primed with an externally-known candidate so the search only ever
// improves on what the caller already has.
package kdtree

import (
	"math"
	"sort"

	"github.com/audiolab/opsolve/la"
)

// Candidate is a (squared distance, point index) pair. Index is -1 when
// no point is known: the Go-idiomatic sentinel, taking the place of the
// 1-indexed source's "index 0 means no match yet" convention.
type Candidate struct {
	DistSq float64
	Index  int
}

// Unprimed is the empty candidate: no information, any tree point wins.
var Unprimed = Candidate{DistSq: math.Inf(1), Index: -1}

type node struct {
	axis        int
	split       float64
	lo, hi      int // range within the permutation this subtree covers
	left, right int // node indices, -1 if none
	isLeaf      bool
	idx         int // point index, valid only when isLeaf and hi > lo
}

// Tree is a static nearest-neighbor index over a P x K point matrix. The
// tree owns only its node array and an index permutation; the point
// storage itself belongs to the caller (here, a snapshot handed in by the
// caching wrapper at rebuild time).
type Tree struct {
	points *la.Matrix // P x K: column j is the j'th point
	perm   []int
	nodes  []node
	root   int
}

// Build constructs a tree over the columns of points (P rows, K columns).
// Axis selection is greatest-variance-first rather than depth-cycled,
// because stored operating points are rarely uniformly scaled across
// parameter dimensions.
func Build(points *la.Matrix) *Tree {
	_, k := points.Dims()
	t := &Tree{points: points}
	t.perm = make([]int, k)
	for i := range t.perm {
		t.perm[i] = i
	}
	t.root = t.buildRange(0, k)
	return t
}

func (t *Tree) buildRange(lo, hi int) int {
	if hi-lo <= 1 {
		n := node{lo: lo, hi: hi, left: -1, right: -1, isLeaf: true}
		if hi > lo {
			n.idx = t.perm[lo]
		}
		t.nodes = append(t.nodes, n)
		return len(t.nodes) - 1
	}
	axis := t.greatestVarianceAxis(lo, hi)
	mid := lo + (hi-lo)/2
	t.sortRangeByAxis(lo, hi, axis)
	split := t.points.Get(axis, t.perm[mid])

	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{axis: axis, split: split, lo: lo, hi: hi, left: -1, right: -1})
	left := t.buildRange(lo, mid)
	right := t.buildRange(mid, hi)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// greatestVarianceAxis picks the dimension with largest sample variance
// over perm[lo:hi], using Welford's online algorithm to avoid a second pass.
func (t *Tree) greatestVarianceAxis(lo, hi int) int {
	p, _ := t.points.Dims()
	bestAxis, bestVar := 0, -1.0
	for axis := 0; axis < p; axis++ {
		var mean, m2, count float64
		for i := lo; i < hi; i++ {
			x := t.points.Get(axis, t.perm[i])
			count++
			delta := x - mean
			mean += delta / count
			m2 += delta * (x - mean)
		}
		variance := m2 / count
		if variance > bestVar {
			bestVar, bestAxis = variance, axis
		}
	}
	return bestAxis
}

func (t *Tree) sortRangeByAxis(lo, hi, axis int) {
	sub := t.perm[lo:hi]
	sort.SliceStable(sub, func(i, j int) bool {
		return t.points.Get(axis, sub[i]) < t.points.Get(axis, sub[j])
	})
}

// Nearest returns the minimum, by squared distance, of best (an
// externally supplied priming candidate) and the tree-resident point
// closest to p. Ties are broken by first-encountered-wins: a later point
// at the same distance never displaces an earlier one.
func (t *Tree) Nearest(p la.Vector, best Candidate) Candidate {
	if len(t.nodes) == 0 {
		return best
	}
	return t.nearestAt(t.root, p, best)
}

func (t *Tree) nearestAt(nodeIdx int, p la.Vector, best Candidate) Candidate {
	n := t.nodes[nodeIdx]
	if n.isLeaf {
		if n.hi == n.lo {
			return best
		}
		d := la.VecDistSq(p, t.points.Col(n.idx))
		if d < best.DistSq {
			best = Candidate{DistSq: d, Index: n.idx}
		}
		return best
	}
	diff := p[n.axis] - n.split
	nearChild, farChild := n.left, n.right
	if diff > 0 {
		nearChild, farChild = n.right, n.left
	}
	best = t.nearestAt(nearChild, p, best)
	if diff*diff < best.DistSq {
		best = t.nearestAt(farChild, p, best)
	}
	return best
}
