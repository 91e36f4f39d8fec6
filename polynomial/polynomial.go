// Package polynomial implements single-variable polynomials with float64
// coefficients and the arithmetic over them: n-ary addition, subtraction and
// multiplication, scalar operations, evaluation, strict equality and a fixed
// textual rendering.
//
// Coefficients are stored by increasing power of x: index i holds the
// coefficient of x^i. Trailing zero coefficients are kept as given, so the
// number of stored coefficients (Len) and the degree (Degree) are distinct
// quantities.
//
// A Polynomial is not safe for concurrent mutation.
package polynomial

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/realpoly/realpoly/utils"
)

// ErrOutOfRange is returned when a power of x lies outside the stored
// coefficients of a Polynomial.
var ErrOutOfRange = errors.New("power out of range")

// Polynomial is a single-variable polynomial with float64 coefficients.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial creates a new Polynomial from the given coefficients,
// starting from the coefficient of x^0. For example NewPolynomial(4, 5, 6)
// is 4 + 5x + 6x^2.
// The coefficients are copied, trailing zeros included. Calling it without
// arguments yields the zero polynomial of length 0.
func NewPolynomial(coeffs ...float64) *Polynomial {
	return &Polynomial{coeffs: utils.CopyNew(coeffs)}
}

// CopyNew returns a deep copy of the target polynomial.
func (p *Polynomial) CopyNew() *Polynomial {
	return &Polynomial{coeffs: utils.CopyNew(p.coeffs)}
}

// Len returns the number of stored coefficients, trailing zeros included.
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns the highest power of x with a non-zero coefficient.
// The zero polynomial, of any length, has degree 0.
func (p *Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}
	return 0
}

// Coefficient returns the coefficient of x^power.
// It returns an error wrapping ErrOutOfRange if power < 0 or power >= p.Len().
func (p *Polynomial) Coefficient(power int) (c float64, err error) {
	if err = p.checkPower("Coefficient", power); err != nil {
		return
	}
	return p.coeffs[power], nil
}

// SetCoefficient sets the coefficient of x^power to c.
// It returns an error wrapping ErrOutOfRange if power < 0 or power >= p.Len().
func (p *Polynomial) SetCoefficient(power int, c float64) (err error) {
	if err = p.checkPower("SetCoefficient", power); err != nil {
		return
	}
	p.coeffs[power] = c
	return
}

// Coefficients returns a copy of the stored coefficients.
func (p *Polynomial) Coefficients() []float64 {
	return utils.CopyNew(p.coeffs)
}

// Equal returns true if p and other store the same number of coefficients
// and their coefficients are pairwise identical. Polynomials that differ only
// by trailing zeros are not equal.
// Coefficients are compared by bit pattern: all NaNs are equal whatever their
// payload, and 0 differs from -0.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p == other {
		return true
	}

	if p == nil || other == nil {
		return false
	}

	return cmp.Equal(p.coeffs, other.coeffs, equalCoefficients...)
}

// equalCoefficients compares float64 by canonical bit pattern and treats a
// nil coefficient slice as empty.
var equalCoefficients = []cmp.Option{
	cmp.Comparer(func(a, b float64) bool {
		return canonicalBits(a) == canonicalBits(b)
	}),
	cmpopts.EquateEmpty(),
}

// canonicalNaN is the single bit pattern all NaN payloads are mapped to.
const canonicalNaN = 0x7ff8000000000000

// canonicalBits returns the bit pattern of c, with every NaN mapped to
// canonicalNaN.
func canonicalBits(c float64) uint64 {
	if math.IsNaN(c) {
		return canonicalNaN
	}
	return math.Float64bits(c)
}

func (p *Polynomial) checkPower(op string, power int) error {
	if power < 0 || power >= len(p.coeffs) {
		return fmt.Errorf("cannot %s: power %d not in [0, %d): %w", op, power, len(p.coeffs), ErrOutOfRange)
	}
	return nil
}
