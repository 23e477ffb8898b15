// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagnostics records per-solve solver state for later plotting,
// off the solving hot path. It is the struct-of-history idiom from the
// teacher's opt.History, adapted from per-iteration optimizer steps to
// per-call solver outcomes, and rendered with gonum/plot instead of the
// teacher's Python-subprocess plt package.
package diagnostics

import (
	"github.com/audiolab/opsolve/la"
	"github.com/audiolab/opsolve/utl"
)

// Sample is one solve() outcome recorded for later inspection.
type Sample struct {
	P           la.Vector
	Converged   bool
	Iterations  int
	ResidualSq  float64
	CacheColumn int // -1 if the caching wrapper did not serve this solve
}

// History accumulates Samples across repeated calls to a wrapped solver,
// the way opt.History accumulates optimizer steps.
type History struct {
	Samples []Sample
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Append records one solve outcome.
func (h *History) Append(s Sample) {
	h.Samples = append(h.Samples, s)
}

// IterationCounts returns the NeededIterations of every recorded sample,
// in call order, for a residual-history style plot.
func (h *History) IterationCounts() []float64 {
	out := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		out[i] = float64(s.Iterations)
	}
	return out
}

// FailureRate returns the fraction of recorded samples that did not
// converge.
func (h *History) FailureRate() float64 {
	if len(h.Samples) == 0 {
		return 0
	}
	var failed int
	for _, s := range h.Samples {
		if !s.Converged {
			failed++
		}
	}
	return float64(failed) / float64(len(h.Samples))
}

// PeakIterations returns the largest NeededIterations seen across all
// recorded samples, 0 if none were recorded.
func (h *History) PeakIterations() int {
	peak := 0
	for _, s := range h.Samples {
		peak = utl.MaxInt(peak, s.Iterations)
	}
	return peak
}
