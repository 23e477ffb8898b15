// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagnostics

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotIterationHistory renders the per-call NeededIterations trace to a
// PNG at path using a native Go renderer rather than a Python-subprocess
// call, since this library may be linked into a real-time process that
// cannot shell out.
func PlotIterationHistory(h *History, path string) error {
	p := plot.New()
	p.Title.Text = "solver iterations per call"
	p.X.Label.Text = "call index"
	p.Y.Label.Text = "needed iterations"

	counts := h.IterationCounts()
	pts := make(plotter.XYs, len(counts))
	for i, c := range counts {
		pts[i].X = float64(i)
		pts[i].Y = c
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// PlotCacheGrowth renders the cumulative count of samples served from a
// cached column (CacheColumn >= 0) against the total call count.
func PlotCacheGrowth(h *History, path string) error {
	p := plot.New()
	p.Title.Text = "cache hit rate"
	p.X.Label.Text = "call index"
	p.Y.Label.Text = "cumulative cache hits"

	pts := make(plotter.XYs, len(h.Samples))
	var hits float64
	for i, s := range h.Samples {
		if s.CacheColumn >= 0 {
			hits++
		}
		pts[i].X = float64(i)
		pts[i].Y = hits
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
