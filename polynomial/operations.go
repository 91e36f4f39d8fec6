package polynomial

import (
	"github.com/realpoly/realpoly/utils"
)

// AddAll returns the sum of the given polynomials as a new Polynomial.
// The result stores as many coefficients as the longest operand; an operand
// shorter than the result contributes zeros for its missing powers.
// The operands are not modified.
func AddAll(p0 *Polynomial, ps ...*Polynomial) *Polynomial {

	operands := append([]*Polynomial{p0}, ps...)

	coeffs := make([]float64, utils.MaxMapped(operands, (*Polynomial).Len))

	for i := range coeffs {
		var sum float64
		for _, op := range operands {
			if i < len(op.coeffs) {
				sum += op.coeffs[i]
			}
		}
		coeffs[i] = sum
	}

	return &Polynomial{coeffs: coeffs}
}

// SubtractAll returns p0 - ps[0] - ps[1] - ... as a new Polynomial.
// The result stores as many coefficients as the longest operand; an operand
// shorter than the result contributes zeros for its missing powers.
// The operands are not modified.
func SubtractAll(p0 *Polynomial, ps ...*Polynomial) *Polynomial {

	coeffs := make([]float64, utils.Max(p0.Len(), utils.MaxMapped(ps, (*Polynomial).Len)))

	for i := range coeffs {
		var diff float64
		if i < len(p0.coeffs) {
			diff = p0.coeffs[i]
		}
		for _, op := range ps {
			if i < len(op.coeffs) {
				diff -= op.coeffs[i]
			}
		}
		coeffs[i] = diff
	}

	return &Polynomial{coeffs: coeffs}
}

// MultiplyTwo returns p0 * p1 as a new Polynomial.
//
// The result stores exactly maxP.Degree() + minP.Degree() + 1 coefficients,
// where maxP is the operand storing more coefficients (p0 on ties) and minP the
// other one. Trailing zeros above the degree of either operand therefore do not
// carry over to the result.
// The operands are not modified.
func MultiplyTwo(p0, p1 *Polynomial) *Polynomial {

	maxP, minP := p0, p1
	if p1.Len() > p0.Len() {
		maxP, minP = p1, p0
	}

	coeffs := make([]float64, maxP.Degree()+minP.Degree()+1)

	// Bounded by the degree so that i+j stays within the result;
	// the Len bound only matters for operands of length 0.
	n0 := utils.Min(maxP.Degree()+1, maxP.Len())
	n1 := utils.Min(minP.Degree()+1, minP.Len())

	for i := 0; i < n0; i++ {
		for j := 0; j < n1; j++ {
			coeffs[i+j] += maxP.coeffs[i] * minP.coeffs[j]
		}
	}

	return &Polynomial{coeffs: coeffs}
}

// MultiplyAll returns p0 * ps[0] * ps[1] * ... as a new Polynomial, folding
// MultiplyTwo from the left. Without ps it returns a copy of p0.
// The operands are not modified.
func MultiplyAll(p0 *Polynomial, ps ...*Polynomial) *Polynomial {
	res := p0.CopyNew()
	for _, op := range ps {
		res = MultiplyTwo(res, op)
	}
	return res
}

// Add sets p to p + other.
func (p *Polynomial) Add(other *Polynomial) {
	p.coeffs = AddAll(p, other).coeffs
}

// Subtract sets p to p - other.
func (p *Polynomial) Subtract(other *Polynomial) {
	p.coeffs = SubtractAll(p, other).coeffs
}

// Multiply sets p to p * other.
func (p *Polynomial) Multiply(other *Polynomial) {
	p.coeffs = MultiplyTwo(p, other).coeffs
}
