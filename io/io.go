// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package io provides auxiliary input/output functions, including
// colored printing to the console. No solver in this module calls it.
package io

import "fmt"

// Sf formats a string; shorthand for fmt.Sprintf.
func Sf(msg string, prm ...interface{}) string {
	return fmt.Sprintf(msg, prm...)
}

// Pf prints a formatted string to the console.
func Pf(msg string, prm ...interface{}) {
	fmt.Printf(msg, prm...)
}

// PfYel prints in yellow (ANSI), used for section banners in solver traces.
func PfYel(msg string, prm ...interface{}) {
	fmt.Printf("\033[33m"+msg+"\033[0m", prm...)
}

// PfRed prints in red (ANSI), used to flag non-convergence in traces.
func PfRed(msg string, prm ...interface{}) {
	fmt.Printf("\033[31m"+msg+"\033[0m", prm...)
}

// PfGreen prints in green (ANSI), used to flag convergence in traces.
func PfGreen(msg string, prm ...interface{}) {
	fmt.Printf("\033[32m"+msg+"\033[0m", prm...)
}

// PfCyan prints in cyan (ANSI).
func PfCyan(msg string, prm ...interface{}) {
	fmt.Printf("\033[36m"+msg+"\033[0m", prm...)
}
