// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiolab/opsolve/la"
)

func buildPoints(pts [][]float64) *la.Matrix {
	p := len(pts[0])
	k := len(pts)
	m := la.NewMatrix(p, k)
	for j, pt := range pts {
		m.SetCol(j, la.Vector(pt))
	}
	return m
}

func bruteForce(points *la.Matrix, p la.Vector) Candidate {
	_, k := points.Dims()
	best := Unprimed
	for j := 0; j < k; j++ {
		d := la.VecDistSq(p, points.Col(j))
		if d < best.DistSq {
			best = Candidate{DistSq: d, Index: j}
		}
	}
	return best
}

func TestNearestNeighborBasic(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 1}, {2, 2}, {-1.1, -1.1}}
	m := buildPoints(pts)
	tree := Build(m)

	got := tree.Nearest(la.Vector{2, 2}, Unprimed)
	require.Equal(t, 2, got.Index)
	assert.InDelta(t, 0.0, got.DistSq, 1e-12)

	got = tree.Nearest(la.Vector{0.5, 0}, Unprimed)
	assert.Equal(t, 0, got.Index)
	assert.InDelta(t, 0.25, got.DistSq, 1e-12)
}

func TestEmptyTree(t *testing.T) {
	m := la.NewMatrix(3, 0)
	tree := Build(m)
	got := tree.Nearest(la.Vector{1, 2, 3}, Unprimed)
	assert.Equal(t, -1, got.Index)
	assert.True(t, math.IsInf(got.DistSq, 1))
}

// TestMatchesBruteForce is property I4: the k-d tree nearest-neighbor
// query returns an index whose squared distance to the query point
// equals the brute-force minimum, for a random point set and many queries.
func TestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const p, k = 6, 500
	pts := make([][]float64, k)
	for j := range pts {
		pt := make([]float64, p)
		for d := range pt {
			pt[d] = rng.NormFloat64() * 10
		}
		pts[j] = pt
	}
	m := buildPoints(pts)
	tree := Build(m)

	for q := 0; q < 100; q++ {
		query := make(la.Vector, p)
		for d := range query {
			query[d] = rng.NormFloat64() * 10
		}
		want := bruteForce(m, query)
		got := tree.Nearest(query, Unprimed)
		assert.InDelta(t, want.DistSq, got.DistSq, 1e-9)
	}
}

// TestPrimingOnlyImproves is property I5: priming with an external
// candidate can only decrease (or leave unchanged) the returned
// distance relative to an unprimed query over the same tree.
func TestPrimingOnlyImproves(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const p, k = 4, 200
	pts := make([][]float64, k)
	for j := range pts {
		pt := make([]float64, p)
		for d := range pt {
			pt[d] = rng.NormFloat64() * 5
		}
		pts[j] = pt
	}
	m := buildPoints(pts)
	tree := Build(m)

	for q := 0; q < 50; q++ {
		query := make(la.Vector, p)
		for d := range query {
			query[d] = rng.NormFloat64() * 5
		}
		unprimed := tree.Nearest(query, Unprimed)

		// prime with a deliberately bad (far) candidate: must not beat the tree.
		bad := Candidate{DistSq: 1e18, Index: -1}
		gotBad := tree.Nearest(query, bad)
		assert.InDelta(t, unprimed.DistSq, gotBad.DistSq, 1e-9)

		// prime with a deliberately perfect (zero-distance, fake) candidate: must win.
		perfect := Candidate{DistSq: 0, Index: 999}
		gotPerfect := tree.Nearest(query, perfect)
		assert.Equal(t, 999, gotPerfect.Index)
		assert.LessOrEqual(t, gotPerfect.DistSq, unprimed.DistSq)
	}
}

func TestTieBreakFirstEncountered(t *testing.T) {
	// two coincident points: the lower permutation index should win.
	pts := [][]float64{{0, 0}, {0, 0}}
	m := buildPoints(pts)
	tree := Build(m)
	got := tree.Nearest(la.Vector{0, 0}, Unprimed)
	assert.Equal(t, 0, got.Index)
}
