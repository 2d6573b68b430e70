package hands

import "testing"

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		rank int
		want Tier
	}{
		{1, Premium},
		{30, Premium},
		{31, Strong},
		{60, Strong},
		{61, Playable},
		{87, Playable},
		{88, Marginal},
		{116, Marginal},
		{117, Weak},
		{169, Weak},
	}

	for _, tt := range tests {
		if got := TierOf(tt.rank); got != tt.want {
			t.Errorf("TierOf(%d) = %s, want %s", tt.rank, got, tt.want)
		}
	}
}

func TestTiersPartitionRankRange(t *testing.T) {
	counts := map[Tier]int{}
	for rank := 1; rank <= Count; rank++ {
		counts[TierOf(rank)]++
	}

	if len(counts) != 5 {
		t.Fatalf("expected exactly 5 tiers, got %d", len(counts))
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total != Count {
		t.Errorf("tier ranges cover %d ranks, want %d", total, Count)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"AA", "AA", true},
		{"KAs", "KAs", true},
		{"AKs", "KAs", true}, // swapped card order
		{"AKo", "KAo", true},
		{"72o", "27o", true},
		{"pocket aces", "AA", true},
		{"Ace-King suited", "KAs", true},
		{"ace king offsuit", "KAo", true},
		{"kings", "KK", true},
		{"TT", "TT", true},
		{"tt pair", "TT", true},
		{"JT suited", "TJs", true},
		{"invalid-hand", "", false},
		{"Z9s", "", false},
		{"", "", false},
		{"A", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeSwappedOrdersAgree(t *testing.T) {
	a, ok := Normalize("AKs")
	if !ok {
		t.Fatal("AKs should resolve")
	}
	b, ok := Normalize("KAs")
	if !ok {
		t.Fatal("KAs should resolve")
	}
	if a != b || a != "KAs" {
		t.Errorf("expected both spellings to resolve to KAs, got %q and %q", a, b)
	}
}

func TestRank(t *testing.T) {
	if rank, ok := Rank("AA"); !ok || rank != 1 {
		t.Errorf("Rank(AA) = (%d, %v), want (1, true)", rank, ok)
	}
	if rank, ok := Rank("23o"); !ok || rank != 169 {
		t.Errorf("Rank(23o) = (%d, %v), want (169, true)", rank, ok)
	}
	if _, ok := Rank("not a hand"); ok {
		t.Error("Rank should not resolve an unrecognized hand")
	}
}

func TestAllHandsUniqueAndRanked(t *testing.T) {
	all := All()
	if len(all) != 169 {
		t.Fatalf("expected 169 hands, got %d", len(all))
	}

	seen := map[string]bool{}
	for i, h := range all {
		if seen[h] {
			t.Errorf("duplicate hand %q in rank list", h)
		}
		seen[h] = true

		rank, ok := Rank(h)
		if !ok || rank != i+1 {
			t.Errorf("Rank(%q) = (%d, %v), want (%d, true)", h, rank, ok, i+1)
		}
	}
}
