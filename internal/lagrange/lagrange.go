// Package lagrange evaluates the interpolating polynomial of a point set at
// x = 0 using exact rational arithmetic.
package lagrange

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Amanking2425/catalog-placement-hashira/internal/fraction"
)

var (
	ErrDuplicateXValue = errors.New("duplicate x value")
	ErrNoPoints        = errors.New("no points to interpolate")
)

// Point represents a decoded (x, y) coordinate of the polynomial.
type Point struct {
	X *big.Int
	Y *big.Int
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// InterpolateAtZero returns f(0) for the unique polynomial of degree
// below len(points) passing through every point:
//
//	f(0) = Σ_i y_i · Π_{j≠i} (-x_j) / (x_i - x_j)
//
// Terms are built and summed in input order so intermediate values are
// reproducible.
func InterpolateAtZero(points []Point) (fraction.Fraction, error) {
	if len(points) == 0 {
		return fraction.Fraction{}, ErrNoPoints
	}
	if err := checkDistinct(points); err != nil {
		return fraction.Fraction{}, err
	}

	sum := fraction.Zero()
	for i, pi := range points {
		term := fraction.FromInt(pi.Y)
		for j, pj := range points {
			if i == j {
				continue
			}
			basis, err := fraction.New(
				new(big.Int).Neg(pj.X),
				new(big.Int).Sub(pi.X, pj.X),
			)
			if err != nil {
				return fraction.Fraction{}, fmt.Errorf("%w: x = %s", ErrDuplicateXValue, pi.X)
			}
			term = term.Mul(basis)
		}
		sum = sum.Add(term)
	}
	return sum, nil
}

func checkDistinct(points []Point) error {
	seen := make(map[string]int, len(points))
	for i, p := range points {
		key := p.X.String()
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: x = %s at positions %d and %d", ErrDuplicateXValue, key, prev, i)
		}
		seen[key] = i
	}
	return nil
}
