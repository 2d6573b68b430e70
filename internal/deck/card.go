// Package deck provides playing cards and a shuffled deck for the
// practice-session server, plus the mapping from two dealt hole cards to
// the canonical starting-hand label used by the decision engine.
package deck

import (
	"fmt"
	"strings"
)

// Suit is a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Code returns the single-letter ASCII suit code used on the wire.
func (s Suit) Code() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Rank is a card rank, Two through Ace. Aces are high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	const codes = "23456789TJQKA"
	if r < Two || r > Ace {
		return "?"
	}
	return string(codes[r-Two])
}

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String renders the card with its suit glyph, e.g. "A♠".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code renders the ASCII wire form, e.g. "As".
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.Code()
}

// ParseCards parses a concatenated card string like "AsKh" into cards.
// Parsing is case-insensitive.
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("card string %q has odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	return cards, nil
}

// MustParseCards is ParseCards for known-good literals; it panics on bad
// input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, error) {
	const codes = "23456789TJQKA"
	idx := strings.IndexByte(codes, byte(strings.ToUpper(string(b))[0]))
	if idx < 0 {
		return 0, fmt.Errorf("invalid card rank %q", string(b))
	}
	return Two + Rank(idx), nil
}

func parseSuit(b byte) (Suit, error) {
	switch strings.ToLower(string(b)) {
	case "s":
		return Spades, nil
	case "h":
		return Hearts, nil
	case "d":
		return Diamonds, nil
	case "c":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid card suit %q", string(b))
	}
}

// CanonicalLabel maps two hole cards to their starting-hand label in the
// ranking table's spelling: pairs as "AA", otherwise the lower rank first
// with an "s" or "o" suffix, e.g. "KAs" or "27o".
func CanonicalLabel(a, b Card) string {
	if a.Rank == b.Rank {
		return a.Rank.String() + b.Rank.String()
	}

	low, high := a, b
	if low.Rank > high.Rank {
		low, high = high, low
	}

	suffix := "o"
	if a.Suit == b.Suit {
		suffix = "s"
	}
	return low.Rank.String() + high.Rank.String() + suffix
}
