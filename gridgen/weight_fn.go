package gridgen

import (
	"fmt"
	"math/rand"
)

// DefaultCellCost is the walk cost assigned to an open cell when no
// custom CellCostFn is supplied.
const DefaultCellCost = 1

// CellCostFn produces a single cell's walk cost given a source of
// randomness. It must be deterministic for a given rng seed; panics in
// its constructors indicate a programmer error in configuration, not a
// runtime condition.
type CellCostFn func(rng *rand.Rand) int

// DefaultCellCostFn always returns DefaultCellCost.
func DefaultCellCostFn(_ *rand.Rand) int {
	return DefaultCellCost
}

// ConstantCellCostFn returns a CellCostFn that always yields value.
// Panics if value < -1 (only -1 is a valid wall marker; anything below it
// is not a meaningful cost).
func ConstantCellCostFn(value int) CellCostFn {
	if value < -1 {
		panic(fmt.Sprintf("gridgen: ConstantCellCostFn: value must be >= -1, got %d", value))
	}
	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformCellCostFn returns a CellCostFn sampling uniformly in [min, max]
// inclusive. Panics if min < 0 or max < min.
func UniformCellCostFn(min, max int) CellCostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("gridgen: UniformCellCostFn: require 0 <= min <= max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if min == max {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}

// SwampCostFn returns a CellCostFn that yields swampCost with probability
// p and DefaultCellCost otherwise. Panics if p is outside [0, 1] or
// swampCost < 1.
func SwampCostFn(p float64, swampCost int) CellCostFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("gridgen: SwampCostFn: p must be in [0,1], got %g", p))
	}
	if swampCost < 1 {
		panic(fmt.Sprintf("gridgen: SwampCostFn: swampCost must be >= 1, got %d", swampCost))
	}
	return func(rng *rand.Rand) int {
		if rng.Float64() < p {
			return swampCost
		}
		return DefaultCellCost
	}
}
