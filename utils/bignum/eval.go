package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum poly[i] * x^i.
// Terms are accumulated by increasing i at the precision of x.
func MonomialEval(x *big.Float, poly []float64) (y *big.Float) {

	prec := x.Prec()

	y = NewFloat(nil, prec)
	pow := NewFloat(1, prec)
	term := NewFloat(nil, prec)

	for i := range poly {
		if i > 0 {
			pow.Mul(pow, x)
		}
		term.Mul(NewFloat(poly[i], prec), pow)
		y.Add(y, term)
	}

	return
}
