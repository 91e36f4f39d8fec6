package polynomial_test

import (
	"fmt"

	"github.com/realpoly/realpoly/polynomial"
)

func ExampleAddAll() {
	p := polynomial.AddAll(
		polynomial.NewPolynomial(10, -1, 1),
		polynomial.NewPolynomial(7, 1, 6),
	)
	fmt.Println(p.Coefficients())
	fmt.Println(p)
	// Output:
	// [17 0 7]
	// Polynomial: 7.0x^2+17.0x
}

func ExampleMultiplyAll() {
	p := polynomial.MultiplyAll(
		polynomial.NewPolynomial(3, 5),
		polynomial.NewPolynomial(5, -2, 8),
		polynomial.NewPolynomial(-3, 3, 12, 4),
	)
	fmt.Println(p.Coefficients())
	// Output:
	// [-45 -12 195 210 364 536 160]
}

func ExamplePolynomial_Evaluate() {
	fmt.Println(polynomial.NewPolynomial(3, 5, 1).Evaluate(4.5))
	// Output:
	// 45.75
}
