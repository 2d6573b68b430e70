package opponent

// ResponseProbs is the probability the opponent folds, calls, or raises in
// response to a bet. The three values always sum to 1.
type ResponseProbs struct {
	Fold  float64
	Call  float64
	Raise float64
}

// Base response probabilities per archetype, before any bet-size adjustment.
var baseProbs = map[Tendency]ResponseProbs{
	Tight:      {Fold: 0.70, Call: 0.25, Raise: 0.05},
	Loose:      {Fold: 0.30, Call: 0.45, Raise: 0.25},
	Aggressive: {Fold: 0.20, Call: 0.30, Raise: 0.50},
	Passive:    {Fold: 0.40, Call: 0.55, Raise: 0.05},
	Unknown:    {Fold: 0.40, Call: 0.40, Raise: 0.20},
}

// BaseProbs returns the unadjusted probability triple for a tendency,
// falling back to the balanced Unknown profile.
func BaseProbs(t Tendency) ResponseProbs {
	if p, ok := baseProbs[t]; ok {
		return p
	}
	return baseProbs[Unknown]
}

// SizeCategory buckets a bet size for probability adjustment.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// Size category thresholds in big blinds.
const (
	SmallSizeMax  = 2.5
	MediumSizeMax = 4.0
)

// CategoryOf returns the size category for a bet in big blinds.
func CategoryOf(betSize float64) SizeCategory {
	switch {
	case betSize <= SmallSizeMax:
		return SizeSmall
	case betSize <= MediumSizeMax:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// categoryShift is how much probability mass moves from calling to folding
// for each size category. Small bets get called more, large bets get
// folded to more.
const categoryShift = 0.10

// minProb keeps every adjusted probability strictly positive.
const minProb = 0.01

// AdjustedProbs returns the response probabilities for a tendency adjusted
// by the proposed bet's size category. The result always sums to 1.
func AdjustedProbs(t Tendency, betSize float64) ResponseProbs {
	p := BaseProbs(t)

	switch CategoryOf(betSize) {
	case SizeSmall:
		p.Fold -= categoryShift
		p.Call += categoryShift
	case SizeLarge:
		p.Fold += categoryShift
		p.Call -= categoryShift
	}

	p.Fold = max(p.Fold, minProb)
	p.Call = max(p.Call, minProb)
	p.Raise = max(p.Raise, minProb)

	total := p.Fold + p.Call + p.Raise
	p.Fold /= total
	p.Call /= total
	p.Raise /= total

	return p
}
