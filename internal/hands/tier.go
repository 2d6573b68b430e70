package hands

// Tier is the coarse strength bucket derived from a hand's rank.
type Tier int

const (
	Premium Tier = iota
	Strong
	Playable
	Marginal
	Weak
)

// Tier rank thresholds. Each tier is inclusive of its upper bound and the
// five ranges partition [1, Count] with no gaps.
const (
	PremiumMaxRank  = 30
	StrongMaxRank   = 60
	PlayableMaxRank = 87
	MarginalMaxRank = 116
)

func (t Tier) String() string {
	switch t {
	case Premium:
		return "Premium"
	case Strong:
		return "Strong"
	case Playable:
		return "Playable"
	case Marginal:
		return "Marginal"
	case Weak:
		return "Weak"
	default:
		return "Unknown"
	}
}

// TierOf maps a 1-based rank to its tier.
func TierOf(rank int) Tier {
	switch {
	case rank <= PremiumMaxRank:
		return Premium
	case rank <= StrongMaxRank:
		return Strong
	case rank <= PlayableMaxRank:
		return Playable
	case rank <= MarginalMaxRank:
		return Marginal
	default:
		return Weak
	}
}
