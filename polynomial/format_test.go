package polynomial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		name   string
		coeffs []float64
		want   string
	}{
		{"Sum", []float64{8, 3, 8}, "Polynomial: 8.0x^2+3.0x+8.0"},
		{"Negative", []float64{5, -2, 8}, "Polynomial: 8.0x^2-2.0x+5.0"},
		{"LeadingNegative", []float64{1, 0, -4.5}, "Polynomial: -4.5x^2+1.0x"},
		{"Cubic", []float64{75, 95, 70, 200}, "Polynomial: 200.0x^3+70.0x^2+95.0x+75.0"},
		{"Constant", []float64{5}, "Polynomial: 5.0"},
		{"Linear", []float64{0, 1}, "Polynomial: 1.0x"},
		{"ZeroGap", []float64{5, 0, 8}, "Polynomial: 8.0x^2+5.0x"},
		{"TrailingZeros", []float64{3, 5, 0}, "Polynomial: +5.0x+3.0"},
		{"Zero", []float64{0, 0}, "Polynomial: "},
		{"Empty", nil, "Polynomial: "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NewPolynomial(tc.coeffs...).String())
		})
	}
}

func TestFormatCoefficient(t *testing.T) {
	for _, tc := range []struct {
		c    float64
		want string
	}{
		{8, "8.0"},
		{-2, "-2.0"},
		{17.5, "17.5"},
		{0.001, "0.001"},
		{1234567.25, "1234567.25"},
		{1e7, "1.0E7"},
		{-2.5e-4, "-2.5E-4"},
		{1.5e300, "1.5E300"},
		{math.Copysign(0, -1), "-0.0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	} {
		require.Equal(t, tc.want, FormatCoefficient(tc.c))
	}
}
