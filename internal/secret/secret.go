// Package secret picks the interpolation points for a test case and
// recovers the polynomial's constant term from them.
package secret

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"go.uber.org/zap"

	"github.com/Amanking2425/catalog-placement-hashira/internal/lagrange"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidThreshold   = errors.New("invalid threshold")
)

// Select returns the k points with the smallest x values, in ascending x
// order. The input slice is not reordered.
func Select(points []lagrange.Point, k int) ([]lagrange.Point, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k = %d", ErrInvalidThreshold, k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientPoints, k, len(points))
	}

	sorted := make([]lagrange.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X.Cmp(sorted[j].X) < 0
	})
	return sorted[:k], nil
}

// Recover selects k points, interpolates them at zero and returns the
// result, which must be an integer.
func Recover(points []lagrange.Point, k int) (*big.Int, error) {
	return NewSolver(nil).Recover(points, k)
}

// Solver is Recover with logging.
type Solver struct {
	logger *zap.Logger
}

func NewSolver(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{logger: logger}
}

func (s *Solver) Recover(points []lagrange.Point, k int) (*big.Int, error) {
	chosen, err := Select(points, k)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("selected points",
		zap.Int("available", len(points)),
		zap.Int("k", k),
		zap.Stringers("points", chosen),
	)

	value, err := lagrange.InterpolateAtZero(chosen)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("interpolated", zap.Stringer("f(0)", value))

	return value.Int()
}
