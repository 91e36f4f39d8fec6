/*
Package realpoly is a library for single-variable polynomials with real (float64) coefficients.

The arithmetic lives in the polynomial package: n-ary addition, subtraction and multiplication,
in-place variants, scalar operations, evaluation, strict equality and a fixed string form.
The utils packages provide the binary codec buffers, deterministic sampling and big.Float helpers
it builds on, and cmd/polycalc exposes the operations on the command line.
*/
package realpoly
