// Package opponent models the discrete opponent tendency archetypes and
// their response probabilities to a proposed bet.
package opponent

import "strings"

// Tendency is one of the five opponent archetypes.
type Tendency string

const (
	Tight      Tendency = "Tight"
	Loose      Tendency = "Loose"
	Aggressive Tendency = "Aggressive"
	Passive    Tendency = "Passive"
	Unknown    Tendency = "Unknown"
)

// Tendencies lists every archetype.
var Tendencies = []Tendency{Tight, Loose, Aggressive, Passive, Unknown}

// ParseTendency resolves a raw string to a tendency, case-insensitively.
// ok is false for unrecognized input.
func ParseTendency(raw string) (Tendency, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tight":
		return Tight, true
	case "loose":
		return Loose, true
	case "aggressive":
		return Aggressive, true
	case "passive":
		return Passive, true
	case "unknown":
		return Unknown, true
	}
	return Unknown, false
}
