package domain

// Card is one pick in the gamble card space.
type Card string

const (
	CardRed   Card = "RED"
	CardBlack Card = "BLACK"
)

// Cards returns the full card space in draw order.
func Cards() []Card {
	return []Card{CardRed, CardBlack}
}

// Valid reports whether the card belongs to the card space.
func (c Card) Valid() bool {
	return c == CardRed || c == CardBlack
}

// GambleType selects how much of the pending win is staked on one pick.
type GambleType string

const (
	GambleHalf    GambleType = "half"
	GambleQuarter GambleType = "quarter"
	GambleFull    GambleType = "full"
)

// Valid reports whether the gamble type is one of half, quarter or full.
func (t GambleType) Valid() bool {
	switch t {
	case GambleHalf, GambleQuarter, GambleFull:
		return true
	}
	return false
}

// StakeAmount derives the staked portion of a pending win for a gamble type.
func StakeAmount(t GambleType, winAmount int64) int64 {
	if winAmount <= 0 {
		return 0
	}
	switch t {
	case GambleHalf:
		return winAmount / 2
	case GambleQuarter:
		return winAmount / 4
	case GambleFull:
		return winAmount
	}
	return 0
}

// GambleOffer lists which ladder rungs remain playable for a pending win.
type GambleOffer struct {
	ByHalf    bool
	ByQuarter bool
	ByFull    bool
}

// Any reports whether at least one rung is offered.
func (o GambleOffer) Any() bool {
	return o.ByHalf || o.ByQuarter || o.ByFull
}

// NextOffers computes the ladder rungs available for the given pending win
// under the game's stake limits.
func NextOffers(winAmount, minStake, maxStake int64) GambleOffer {
	if winAmount <= 0 {
		return GambleOffer{}
	}
	inRange := func(stake int64) bool {
		return stake >= minStake && stake <= maxStake
	}
	return GambleOffer{
		ByHalf:    inRange(winAmount / 2),
		ByQuarter: inRange(winAmount / 4),
		ByFull:    inRange(winAmount),
	}
}
