// Package utils implements generic helpers shared by the packages of realpoly.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the input values.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the input values.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// MaxMapped returns the maximum of f over the elements of slice,
// or the zero value of V if the slice is empty.
func MaxMapped[T any, V constraints.Ordered](slice []T, f func(T) V) (max V) {
	for i := range slice {
		if v := f(slice[i]); i == 0 || v > max {
			max = v
		}
	}
	return
}

// CopyNew returns a new slice with the same content as s.
// The result is never nil, even if s is.
func CopyNew[V any](s []V) (c []V) {
	c = make([]V, len(s))
	copy(c, s)
	return
}
