package hands

import "strings"

// phraseAliases maps spoken-style hand names (lowercased, separators
// collapsed to spaces) to canonical labels.
var phraseAliases = map[string]string{
	"ace king suited":  "KAs",
	"aks":              "KAs",
	"ace king offsuit": "KAo",
	"ako":              "KAo",
	"pocket aces":      "AA",
	"aces":             "AA",
	"aa":               "AA",
	"kings":            "KK",
	"queens":           "QQ",
	"jj":               "JJ",
}

// Normalize resolves a raw hand string to its canonical label. Resolution
// order: exact match, phrase alias, two-character-plus-suffix heuristic,
// card-order-swapped variant. It is a pure function of the input string;
// ok is false when nothing matches.
func Normalize(raw string) (hand string, ok bool) {
	h := strings.TrimSpace(raw)
	if _, exists := rankIndex[h]; exists {
		return h, true
	}

	key := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(h, "-", " ")), " "))
	if alias, exists := phraseAliases[key]; exists {
		return alias, true
	}
	if alias, exists := phraseAliases[h]; exists {
		return alias, true
	}

	if len(h) < 2 {
		return "", false
	}
	two := strings.ToUpper(h[:2])
	rest := strings.ToLower(strings.TrimSpace(h[2:]))

	if hand, ok = lookupSuffixed(two, rest); ok {
		return hand, true
	}
	// The canonical list spells each non-pair one way; accept the
	// swapped card order too ("AKs" resolves to "KAs").
	swapped := string(two[1]) + string(two[0])
	return lookupSuffixed(swapped, rest)
}

func lookupSuffixed(two, rest string) (string, bool) {
	if _, exists := rankIndex[two+"s"]; exists && suitedSuffix(rest) {
		return two + "s", true
	}
	if _, exists := rankIndex[two+"o"]; exists && offsuitSuffix(rest) {
		return two + "o", true
	}
	if _, exists := rankIndex[two]; exists && (rest == "" || strings.Contains(rest, "pair")) {
		return two, true
	}
	return "", false
}

func suitedSuffix(rest string) bool {
	switch rest {
	case "s", "suit", "suited", "":
		return true
	}
	return false
}

func offsuitSuffix(rest string) bool {
	switch rest {
	case "o", "off", "offsuit", "":
		return true
	}
	return false
}
