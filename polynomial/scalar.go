package polynomial

import (
	"fmt"
	"math"
	"math/big"

	"github.com/realpoly/realpoly/utils/bignum"
)

// AddScalar adds c to the constant coefficient of p.
// It returns an error wrapping ErrOutOfRange if p stores no coefficient.
func (p *Polynomial) AddScalar(c float64) (err error) {
	if len(p.coeffs) == 0 {
		return fmt.Errorf("cannot AddScalar: polynomial has no coefficient: %w", ErrOutOfRange)
	}
	p.coeffs[0] += c
	return
}

// Scale multiplies every coefficient of p by c.
func (p *Polynomial) Scale(c float64) {
	for i := range p.coeffs {
		p.coeffs[i] *= c
	}
}

// Evaluate returns p(x) = sum coeffs[i] * x^i, summing by increasing i.
func (p *Polynomial) Evaluate(x float64) (y float64) {
	for i, c := range p.coeffs {
		y += c * math.Pow(x, float64(i))
	}
	return
}

// EvaluateBig returns p(x) computed at the precision of x, summing by
// increasing power as Evaluate does.
func (p *Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {
	return bignum.MonomialEval(x, p.coeffs)
}
