// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num implements the stacked nonlinear-solver pipeline: a
// Newton base solver with extrapolated warm start, a homotopy wrapper
// that retries failed solves via parameter-space bisection, and a
// caching wrapper that seeds the base solver from a k-d-tree-indexed
// history of converged operating points.
package num

// Params carries tunable construction parameters as a sparse
// map[string]float64: every tunable is read with Get, which falls back
// to its documented default when the key is absent, rather than
// panicking on a sparse map.
type Params map[string]float64

// Get returns prms[key], or def if the key is absent.
func (prms Params) Get(key string, def float64) float64 {
	if prms == nil {
		return def
	}
	if v, ok := prms[key]; ok {
		return v
	}
	return def
}

// Default tunables for Base, Homotopy, and Caching.
const (
	DefaultTol               = 1e-20
	DefaultMaxIter           = 500
	DefaultMaxHomotopyDepth  = 64
	DefaultCacheGateIters    = 5
	DefaultInitialRebuildCap = 2
)
