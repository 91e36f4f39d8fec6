package polynomial

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkPolynomial(b *testing.B) {

	s := newTestSampler(b, 1<<20)

	for _, n := range []int{16, 256, 1024} {

		p, err := s.ReadNew(n)
		require.NoError(b, err)
		q, err := s.ReadNew(n)
		require.NoError(b, err)

		b.Run(fmt.Sprintf("AddAll/N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				AddAll(p, q)
			}
		})

		b.Run(fmt.Sprintf("MultiplyTwo/N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				MultiplyTwo(p, q)
			}
		})

		b.Run(fmt.Sprintf("Evaluate/N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.Evaluate(0.5)
			}
		})

		b.Run(fmt.Sprintf("MarshalBinary/N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := p.MarshalBinary(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
