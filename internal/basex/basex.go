// Package basex converts digit strings in bases 2 through 36 to and from
// arbitrary-precision integers.
package basex

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const (
	MinBase = 2
	MaxBase = 36
)

var (
	ErrUnsupportedBase = errors.New("unsupported base")
	ErrInvalidDigit    = errors.New("invalid digit")
	ErrDigitOutOfRange = errors.New("digit out of range")
)

// Decode parses value as a non-negative integer written in base. Letters
// are case-insensitive and surrounding whitespace is ignored.
func Decode(value string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}

	digits := strings.TrimSpace(value)
	if digits == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidDigit)
	}

	var (
		acc   = new(big.Int)
		radix = big.NewInt(int64(base))
		d     = new(big.Int)
	)
	for _, c := range digits {
		v, ok := digitValue(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
		if v >= base {
			return nil, fmt.Errorf("%w: %q in base %d", ErrDigitOutOfRange, c, base)
		}
		acc.Mul(acc, radix)
		acc.Add(acc, d.SetInt64(int64(v)))
	}
	return acc, nil
}

// Encode renders a non-negative n in base using digits 0-9 then a-z.
func Encode(n *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("%w: negative value %s", ErrInvalidDigit, n)
	}
	return n.Text(base), nil
}

// ParseBase accepts a base given either as a string or as a number, which
// is how test-case files carry it.
func ParseBase(v any) (int, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedBase, v)
	}
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBase, s)
	}
	if base < MinBase || base > MaxBase {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBase, s)
	}
	return base, nil
}

func digitValue(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
