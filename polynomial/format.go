package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// Prefix is the label that starts the string form of a Polynomial.
const Prefix = "Polynomial: "

// String returns the canonical string form of p, for example
// "Polynomial: 8.0x^2+3.0x+8.0".
//
// Terms are written from the highest stored power down, zero coefficients
// being skipped. A positive coefficient gets a leading '+' unless it is stored
// at index p.Len()-1. The power label starts at p.Degree() and decreases by
// one per written term, so a gap of zero coefficients shifts the labels of the
// terms below it: NewPolynomial(5, 0, 8) is written "8.0x^2+5.0x".
// This form is a serialization contract and must not be prettified.
func (p *Polynomial) String() string {

	var sb strings.Builder
	sb.WriteString(Prefix)

	last := len(p.coeffs) - 1

	for i, pow := last, p.Degree(); i >= 0; i-- {

		c := p.coeffs[i]

		if c == 0 {
			continue
		}

		if c > 0 && i != last {
			sb.WriteByte('+')
		}

		sb.WriteString(FormatCoefficient(c))

		switch pow {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(pow))
		}

		pow--
	}

	return sb.String()
}

// FormatCoefficient writes c the way the string form of a Polynomial expects:
// always with a fractional part ("8.0"), in plain notation for magnitudes in
// [1e-3, 1e7) and in scientific notation otherwise ("1.0E7", "2.5E-4").
// Non-finite values are written "NaN", "Infinity" and "-Infinity".
func FormatCoefficient(c float64) string {

	switch {
	case math.IsNaN(c):
		return "NaN"
	case math.IsInf(c, 1):
		return "Infinity"
	case math.IsInf(c, -1):
		return "-Infinity"
	}

	if abs := math.Abs(c); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(c, 'f', -1, 64))
	}

	// 'E' yields "1.5E-04"; the exponent is written without sign padding.
	s := strconv.FormatFloat(c, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return withFraction(mantissa) + "E" + strconv.Itoa(e)
}

func withFraction(s string) string {
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
