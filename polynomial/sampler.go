package polynomial

import (
	"fmt"

	"github.com/realpoly/realpoly/utils/sampling"
)

// MaxSamplerBound is the largest bound accepted by NewUniformSampler:
// every integer of magnitude at most 2^52 is exactly representable.
const MaxSamplerBound = 1 << 52

// UniformSampler samples polynomials with integer coefficients uniformly
// distributed in [-bound, bound]. Integer coefficients keep the arithmetic of
// small polynomials exact, which makes sampled polynomials suitable to check
// algebraic identities.
type UniformSampler struct {
	prng  sampling.PRNG
	bound uint64
}

// NewUniformSampler creates a new UniformSampler reading from prng.
// With a sampling.KeyedPRNG, the sampled polynomials are reproducible.
func NewUniformSampler(prng sampling.PRNG, bound uint64) *UniformSampler {
	if bound > MaxSamplerBound {
		panic(fmt.Errorf("cannot NewUniformSampler: bound %d exceeds %d", bound, uint64(MaxSamplerBound)))
	}
	return &UniformSampler{prng: prng, bound: bound}
}

// Read overwrites every coefficient of p with a new sample.
func (s *UniformSampler) Read(p *Polynomial) (err error) {
	for i := range p.coeffs {
		var v uint64
		if v, err = sampling.ReadUint64N(s.prng, 2*s.bound+1); err != nil {
			return fmt.Errorf("cannot Read: %w", err)
		}
		p.coeffs[i] = float64(int64(v) - int64(s.bound))
	}
	return
}

// ReadNew samples a new polynomial storing length coefficients.
func (s *UniformSampler) ReadNew(length int) (p *Polynomial, err error) {
	if length < 0 {
		panic(fmt.Errorf("cannot ReadNew: length %d is negative", length))
	}
	p = &Polynomial{coeffs: make([]float64, length)}
	return p, s.Read(p)
}
