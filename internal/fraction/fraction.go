// Package fraction implements exact rational numbers over *big.Int.
//
// A Fraction is always in canonical form: the denominator is positive and
// shares no factor with the numerator. Values are immutable; every
// operation returns a newly reduced Fraction and never touches its
// operands or the integers it was built from.
package fraction

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNonIntegerResult = errors.New("result is not an integer")
)

type Fraction struct {
	num *big.Int
	den *big.Int
}

// New returns num/den reduced to lowest terms.
func New(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("%w: %s/0", ErrDivisionByZero, num)
	}

	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	// big.Int.GCD is only defined for non-negative inputs.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(one) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Fraction{num: n, den: d}, nil
}

// FromInt returns n/1.
func FromInt(n *big.Int) Fraction {
	return Fraction{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// Zero returns 0/1.
func Zero() Fraction {
	return Fraction{num: new(big.Int), den: big.NewInt(1)}
}

var one = big.NewInt(1)

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.numerator())
}

// Den returns a copy of the denominator.
func (f Fraction) Den() *big.Int {
	return new(big.Int).Set(f.denominator())
}

func (f Fraction) Add(o Fraction) Fraction {
	n := new(big.Int).Mul(f.numerator(), o.denominator())
	n.Add(n, new(big.Int).Mul(o.numerator(), f.denominator()))
	return mustNew(n, new(big.Int).Mul(f.denominator(), o.denominator()))
}

func (f Fraction) Sub(o Fraction) Fraction {
	n := new(big.Int).Mul(f.numerator(), o.denominator())
	n.Sub(n, new(big.Int).Mul(o.numerator(), f.denominator()))
	return mustNew(n, new(big.Int).Mul(f.denominator(), o.denominator()))
}

func (f Fraction) Mul(o Fraction) Fraction {
	return mustNew(
		new(big.Int).Mul(f.numerator(), o.numerator()),
		new(big.Int).Mul(f.denominator(), o.denominator()),
	)
}

// Div returns f/o, failing when o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.Sign() == 0 {
		return Fraction{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, f)
	}
	return New(
		new(big.Int).Mul(f.numerator(), o.denominator()),
		new(big.Int).Mul(f.denominator(), o.numerator()),
	)
}

func (f Fraction) Sign() int {
	return f.numerator().Sign()
}

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool {
	return f.denominator().Cmp(one) == 0
}

// Int returns the integer value of f, or ErrNonIntegerResult when f has a
// fractional part.
func (f Fraction) Int() (*big.Int, error) {
	if !f.IsInt() {
		return nil, fmt.Errorf("%w: %s", ErrNonIntegerResult, f)
	}
	return f.Num(), nil
}

// Cmp compares f and o and returns -1, 0 or +1.
func (f Fraction) Cmp(o Fraction) int {
	l := new(big.Int).Mul(f.numerator(), o.denominator())
	r := new(big.Int).Mul(o.numerator(), f.denominator())
	return l.Cmp(r)
}

// String renders f as "n" when integral and "n/d" otherwise.
func (f Fraction) String() string {
	if f.IsInt() {
		return f.numerator().String()
	}
	return f.numerator().String() + "/" + f.denominator().String()
}

// The zero Fraction{} value reads as 0/1.
func (f Fraction) numerator() *big.Int {
	if f.num == nil {
		return new(big.Int)
	}
	return f.num
}

func (f Fraction) denominator() *big.Int {
	if f.den == nil {
		return one
	}
	return f.den
}

// mustNew is for products of non-zero denominators, which cannot be zero.
func mustNew(num, den *big.Int) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}
