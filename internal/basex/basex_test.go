package basex

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		base  int
		want  string
	}{
		{name: "binary", value: "111", base: 2, want: "7"},
		{name: "decimal", value: "12", base: 10, want: "12"},
		{name: "base 4", value: "213", base: 4, want: "39"},
		{name: "hex lower", value: "ff", base: 16, want: "255"},
		{name: "base 36", value: "zz", base: 36, want: "1295"},
		{name: "surrounding whitespace", value: "  42\t\n", base: 10, want: "42"},
		{name: "leading zeros", value: "0007", base: 8, want: "7"},
		{name: "zero", value: "0", base: 2, want: "0"},
		{
			name:  "wider than uint64",
			value: "2122212201122002221120200210011020220200",
			base:  3,
			want:  "10788619898233492461",
		},
		{
			name:  "mixed case base 15",
			value: "AED7015a346D63",
			base:  15,
			want:  "21394886326566393",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			got, err := Decode(test.value, test.base)
			require.NoError(err)
			require.Equal(test.want, got.String())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		base        int
		expectedErr error
	}{
		{name: "base too small", value: "1", base: 1, expectedErr: ErrUnsupportedBase},
		{name: "base too large", value: "1", base: 37, expectedErr: ErrUnsupportedBase},
		{name: "empty", value: "", base: 10, expectedErr: ErrInvalidDigit},
		{name: "only whitespace", value: "   ", base: 10, expectedErr: ErrInvalidDigit},
		{name: "sign", value: "-5", base: 10, expectedErr: ErrInvalidDigit},
		{name: "punctuation", value: "1.5", base: 10, expectedErr: ErrInvalidDigit},
		{name: "inner space", value: "1 2", base: 10, expectedErr: ErrInvalidDigit},
		{name: "kelvin sign", value: "1\u212a", base: 36, expectedErr: ErrInvalidDigit},
		{name: "binary two", value: "102", base: 2, expectedErr: ErrDigitOutOfRange},
		{name: "hex g", value: "fg", base: 16, expectedErr: ErrDigitOutOfRange},
		{name: "decimal a", value: "9A", base: 10, expectedErr: ErrDigitOutOfRange},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(test.value, test.base)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestDecodeErrorNamesOffender(t *testing.T) {
	require := require.New(t)

	_, err := Decode("12z", 16)
	require.ErrorContains(err, `'z'`)
	require.ErrorContains(err, "base 16")

	_, err = Decode("1", 40)
	require.ErrorContains(err, "40")
}

func TestDecodeCaseInsensitive(t *testing.T) {
	require := require.New(t)

	upper, err := Decode("Ff", 16)
	require.NoError(err)
	lower, err := Decode("ff", 16)
	require.NoError(err)
	require.Zero(upper.Cmp(lower))
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name        string
		raw         any
		want        int
		expectedErr error
	}{
		{name: "string", raw: "16", want: 16},
		{name: "padded string", raw: " 7 ", want: 7},
		{name: "leading zero string", raw: "010", want: 10},
		{name: "json number", raw: float64(36), want: 36},
		{name: "yaml int", raw: 2, want: 2},
		{name: "toml int64", raw: int64(8), want: 8},
		{name: "fractional number", raw: 10.5, expectedErr: ErrUnsupportedBase},
		{name: "word", raw: "ten", expectedErr: ErrUnsupportedBase},
		{name: "too small", raw: "1", expectedErr: ErrUnsupportedBase},
		{name: "too large", raw: 37, expectedErr: ErrUnsupportedBase},
		{name: "nil", raw: nil, expectedErr: ErrUnsupportedBase},
		{name: "list", raw: []int{10}, expectedErr: ErrUnsupportedBase},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			got, err := ParseBase(test.raw)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.want, got)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(n, b), b) == n", prop.ForAll(
		func(limbs []uint64, base int) bool {
			n := new(big.Int)
			for _, limb := range limbs {
				n.Lsh(n, 64)
				n.Or(n, new(big.Int).SetUint64(limb))
			}

			encoded, err := Encode(n, base)
			if err != nil {
				return false
			}
			decoded, err := Decode(encoded, base)
			if err != nil {
				return false
			}
			return decoded.Cmp(n) == 0
		},
		gen.SliceOfN(6, gen.UInt64()),
		gen.IntRange(MinBase, MaxBase),
	))

	properties.TestingRun(t)
}

func TestEncodeErrors(t *testing.T) {
	require := require.New(t)

	_, err := Encode(big.NewInt(5), 1)
	require.ErrorIs(err, ErrUnsupportedBase)

	_, err = Encode(big.NewInt(-5), 10)
	require.ErrorIs(err, ErrInvalidDigit)
}
