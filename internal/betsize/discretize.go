// Package betsize enumerates the candidate bet-size space for the search:
// opening ladders, call-plus-raise spaces when facing a bet, and the
// classification of a size into an action.
package betsize

import (
	"fmt"
	"math"
	"sort"

	"preflop-advisor/internal/ev"
)

const (
	// MinOpenSize is the standard minimum opening raise, 2x the big blind.
	MinOpenSize = 2.0
	// MaxStandardSize is the largest non-all-in bet considered.
	MaxStandardSize = 10.0
	// DefaultIncrement spaces the incremental ladder.
	DefaultIncrement = 0.5
	// CallTolerance is the float tolerance for treating a size as a call
	// or an all-in.
	CallTolerance = 0.01
)

// StandardSizes is the fixed opening ladder in big blinds.
var StandardSizes = []float64{2.0, 2.5, 3.0, 3.5, 4.0, 5.0, 6.0, 7.0, 8.0, 10.0}

// Incremental enumerates bet sizes at a fixed increment. For an opening
// action (facingBet 0) it runs from MinOpenSize up to min(stack,
// MaxStandardSize). Facing a bet it always includes the exact call amount
// plus raise sizes from twice the faced bet upward. Results are
// deduplicated, sorted ascending, and never exceed the stack.
func Incremental(stack, facingBet, increment float64, includeAllIn bool) []float64 {
	if increment <= 0 {
		increment = DefaultIncrement
	}

	var sizes []float64
	ceiling := math.Min(stack, MaxStandardSize)

	if facingBet <= 0 {
		for s := MinOpenSize; s <= ceiling; s += increment {
			sizes = append(sizes, s)
		}
	} else {
		call := math.Min(facingBet, stack)
		sizes = append(sizes, call)
		for s := facingBet * 2; s <= ceiling; s += increment {
			if s > call {
				sizes = append(sizes, s)
			}
		}
	}

	if includeAllIn && stack > MaxStandardSize {
		sizes = append(sizes, stack)
	}
	return dedupeSorted(sizes)
}

// Standard returns the fixed ladder capped by stack, with an all-in
// appended when the stack exceeds the ladder ceiling.
func Standard(stack float64) []float64 {
	var sizes []float64
	for _, s := range StandardSizes {
		if s <= stack {
			sizes = append(sizes, s)
		}
	}
	if stack > MaxStandardSize {
		sizes = append(sizes, stack)
	}
	return sizes
}

// ForScenario returns the candidate space for a scenario. useStandard
// selects the fixed ladder; otherwise the incremental generator is used.
func ForScenario(stack, facingBet float64, useStandard bool) []float64 {
	if !useStandard {
		return Incremental(stack, facingBet, DefaultIncrement, true)
	}
	if facingBet <= 0 {
		return Standard(stack)
	}

	sizes := []float64{math.Min(facingBet, stack)}
	for _, s := range Standard(stack) {
		if s > facingBet {
			sizes = append(sizes, s)
		}
	}
	return dedupeSorted(sizes)
}

// Normalize clamps a proposed size into the valid range: negative sizes
// become 0, sizes above the stack become an all-in.
func Normalize(betSize, stack float64) float64 {
	if betSize < 0 {
		return 0
	}
	if betSize > stack {
		return stack
	}
	return betSize
}

// IsAllIn reports whether a size commits the whole stack.
func IsAllIn(betSize, stack float64) bool {
	return math.Abs(betSize-stack) < CallTolerance
}

// ActionFor classifies a bet size. Opening: zero is a fold, anything else
// an open. Facing a bet: zero folds, a size within tolerance of the faced
// bet calls, a larger size raises, and a smaller non-zero size is invalid
// and classified as a fold so it is excluded from candidate sets.
func ActionFor(betSize, facingBet float64) ev.Action {
	if betSize == 0 {
		return ev.Fold
	}
	if facingBet <= 0 {
		return ev.Open
	}
	if math.Abs(betSize-facingBet) < CallTolerance {
		return ev.Call
	}
	if betSize > facingBet {
		return ev.Raise
	}
	return ev.Fold
}

// Describe renders a size for reason strings, e.g. "3.0x BB" or
// "All-in (50.0 BB)".
func Describe(betSize, stack float64) string {
	if IsAllIn(betSize, stack) {
		return fmt.Sprintf("All-in (%.1f BB)", stack)
	}
	return fmt.Sprintf("%.1fx BB", betSize)
}

func dedupeSorted(sizes []float64) []float64 {
	sort.Float64s(sizes)
	out := sizes[:0]
	for i, s := range sizes {
		if i == 0 || math.Abs(s-out[len(out)-1]) >= 1e-9 {
			out = append(out, s)
		}
	}
	return out
}
