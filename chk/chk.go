// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chk provides auxiliary functions for error checking and testing
package chk

import (
	"fmt"
	"math"
	"testing"
)

// Panic panics with a formatted message. Reserved for programmer errors:
// dimension mismatches, broken preconditions, anything that is never an
// expected runtime outcome of a solve.
func Panic(msg string, prm ...interface{}) {
	panic(fmt.Sprintf("chk.Panic: "+msg, prm...))
}

// Err returns a formatted error. Unused on the solver hot path; kept for
// callers assembling a user-visible diagnostic after exhausting wrappers.
func Err(msg string, prm ...interface{}) error {
	return fmt.Errorf(msg, prm...)
}

// Array checks that a slice of float64 matches a reference, within tol.
// If ref is nil or empty, checks that arr is all-zero.
func Array(tst *testing.T, msg string, tol float64, arr, ref []float64) {
	if ref != nil && len(ref) > 0 && len(arr) != len(ref) {
		tst.Errorf("%s: arrays have different lengths. %d != %d", msg, len(arr), len(ref))
		return
	}
	for i := range arr {
		var r float64
		if ref != nil && len(ref) > 0 {
			r = ref[i]
		}
		if diff := math.Abs(arr[i] - r); diff > tol {
			tst.Errorf("%s: arr[%d]=%v differs from %v by %v (tol=%v)", msg, i, arr[i], r, diff, tol)
		}
	}
}

// Float64 checks that a and b are equal within tol, failing tst otherwise.
func Float64(tst *testing.T, msg string, tol, a, b float64) {
	if diff := math.Abs(a - b); diff > tol {
		tst.Errorf("%s: %v != %v (diff=%v, tol=%v)", msg, a, b, diff, tol)
	}
}

// PrintAnaNum prints (and optionally checks) analytical vs numerical values.
func PrintAnaNum(msg string, tol, ana, num float64, verbose bool) (diff float64) {
	diff = math.Abs(ana - num)
	if verbose {
		fmt.Printf("%s : ana = %23.15e  num = %23.15e  diff = %10.3e\n", msg, ana, num, diff)
	}
	return
}

// PrintTitle prints a title banner for a test-log section.
func PrintTitle(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}
