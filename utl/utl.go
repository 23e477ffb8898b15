// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utl implements functions for numeric utility tasks such as
// generating linearly spaced numbers and small min/max helpers.
package utl

// LinSpace returns a slice of n numbers linearly spaced from start to stop, inclusive.
// For n < 2 it returns the single value start.
func LinSpace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	res := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		res[i] = start + float64(i)*step
	}
	return res
}

// Max returns the largest of a and b.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smallest of a and b.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the largest of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smallest of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
