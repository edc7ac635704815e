package cmd

import (
	"errors"

	"github.com/Amanking2425/catalog-placement-hashira/internal/basex"
	"github.com/Amanking2425/catalog-placement-hashira/internal/fraction"
	"github.com/Amanking2425/catalog-placement-hashira/internal/lagrange"
	"github.com/Amanking2425/catalog-placement-hashira/internal/secret"
	"github.com/Amanking2425/catalog-placement-hashira/internal/testcase"
)

// Exit codes, one per failure kind.
const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitUnsupportedBase
	ExitInvalidDigit
	ExitDigitOutOfRange
	ExitInsufficientPoints
	ExitDuplicateXValue
	ExitDivisionByZero
	ExitNonIntegerResult
	ExitMalformedInput
)

// usageError marks bad flags or configuration.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

var exitCodes = []struct {
	err  error
	code int
}{
	{basex.ErrUnsupportedBase, ExitUnsupportedBase},
	{basex.ErrInvalidDigit, ExitInvalidDigit},
	{basex.ErrDigitOutOfRange, ExitDigitOutOfRange},
	{secret.ErrInsufficientPoints, ExitInsufficientPoints},
	{lagrange.ErrDuplicateXValue, ExitDuplicateXValue},
	{fraction.ErrDivisionByZero, ExitDivisionByZero},
	{fraction.ErrNonIntegerResult, ExitNonIntegerResult},
	{secret.ErrInvalidThreshold, ExitMalformedInput},
	{lagrange.ErrNoPoints, ExitMalformedInput},
	{testcase.ErrMissingKeys, ExitMalformedInput},
	{testcase.ErrInvalidLabel, ExitMalformedInput},
	{testcase.ErrMalformedSample, ExitMalformedInput},
	{testcase.ErrUnknownFormat, ExitMalformedInput},
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, e := range exitCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	var u usageError
	if errors.As(err, &u) {
		return ExitUsage
	}
	return ExitFailure
}
