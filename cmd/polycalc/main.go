// Command polycalc runs polynomial arithmetic from the command line.
//
// Polynomials are written as comma-separated coefficients by increasing power
// of x, optionally in brackets: "3,5,1" and "[3,5,1]" are both 3 + 5x + x^2.
// Use the bracketed form, or "--", for a polynomial starting with a negative
// coefficient.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
