package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/realpoly/realpoly/polynomial"
)

// parsePolynomial parses a comma-separated list of coefficients, optionally
// enclosed in brackets. The empty list is the polynomial of length 0.
func parsePolynomial(s string) (*polynomial.Polynomial, error) {

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")

	if strings.TrimSpace(s) == "" {
		return polynomial.NewPolynomial(), nil
	}

	fields := strings.Split(s, ",")
	coeffs := make([]float64, len(fields))

	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q of x^%d in %q: %w", f, i, s, err)
		}
		coeffs[i] = c
	}

	return polynomial.NewPolynomial(coeffs...), nil
}
