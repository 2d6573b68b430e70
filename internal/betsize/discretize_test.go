package betsize

import (
	"math"
	"testing"

	"preflop-advisor/internal/ev"
)

func TestStandardLadder(t *testing.T) {
	sizes := Standard(50)

	want := []float64{2.0, 2.5, 3.0, 3.5, 4.0, 5.0, 6.0, 7.0, 8.0, 10.0, 50.0}
	if len(sizes) != len(want) {
		t.Fatalf("Standard(50) = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("Standard(50) = %v, want %v", sizes, want)
		}
	}
}

func TestStandardCappedByStack(t *testing.T) {
	sizes := Standard(4)

	for _, s := range sizes {
		if s > 4 {
			t.Errorf("size %f exceeds stack 4", s)
		}
	}
	if len(sizes) != 5 { // 2, 2.5, 3, 3.5, 4 and no all-in
		t.Errorf("Standard(4) = %v, want five sizes", sizes)
	}
}

func TestIncrementalOpening(t *testing.T) {
	sizes := Incremental(50, 0, 0.5, true)

	if sizes[0] != MinOpenSize {
		t.Errorf("opening ladder should start at %f, got %f", MinOpenSize, sizes[0])
	}
	if sizes[len(sizes)-1] != 50 {
		t.Errorf("stack above the ladder ceiling should append an all-in, got %v", sizes)
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Fatalf("sizes not strictly ascending: %v", sizes)
		}
	}
}

func TestIncrementalFacingBetIncludesCallAndMinRaise(t *testing.T) {
	sizes := Incremental(50, 3.0, 0.5, true)

	if sizes[0] != 3.0 {
		t.Errorf("facing a 3 BB bet must include the exact call, got %v", sizes)
	}

	// No raise size below 2x the faced bet.
	for _, s := range sizes[1:] {
		if s < 6.0 {
			t.Errorf("raise size %f is below the 6 BB minimum raise", s)
		}
	}
}

func TestCandidatesNeverExceedStack(t *testing.T) {
	scenarios := []struct {
		stack     float64
		facingBet float64
	}{
		{50, 0}, {50, 3}, {8, 0}, {8, 3}, {5, 3}, {12, 0}, {0, 0}, {3, 5},
	}

	for _, sc := range scenarios {
		for _, useStandard := range []bool{true, false} {
			for _, s := range ForScenario(sc.stack, sc.facingBet, useStandard) {
				if s > sc.stack+1e-9 {
					t.Errorf("stack %.1f facing %.1f: size %f exceeds stack", sc.stack, sc.facingBet, s)
				}
				if s <= 0 {
					t.Errorf("stack %.1f facing %.1f: non-positive size %f", sc.stack, sc.facingBet, s)
				}
			}
		}
	}
}

func TestForScenarioZeroStackIsEmpty(t *testing.T) {
	if sizes := ForScenario(0, 0, true); len(sizes) != 0 {
		t.Errorf("zero stack should produce no candidates, got %v", sizes)
	}
}

func TestForScenarioFacingBetStandard(t *testing.T) {
	sizes := ForScenario(50, 3.0, true)

	if sizes[0] != 3.0 {
		t.Fatalf("first candidate should be the call, got %v", sizes)
	}
	for _, s := range sizes[1:] {
		if s <= 3.0 {
			t.Errorf("raise candidate %f not above the faced bet", s)
		}
	}
	if sizes[len(sizes)-1] != 50 {
		t.Errorf("expected trailing all-in, got %v", sizes)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(-1, 50); got != 0 {
		t.Errorf("Normalize(-1, 50) = %f, want 0", got)
	}
	if got := Normalize(80, 50); got != 50 {
		t.Errorf("Normalize(80, 50) = %f, want 50", got)
	}
	if got := Normalize(3, 50); got != 3 {
		t.Errorf("Normalize(3, 50) = %f, want 3", got)
	}
}

func TestIsAllIn(t *testing.T) {
	if !IsAllIn(50, 50) {
		t.Error("a bet equal to the stack is all-in")
	}
	if !IsAllIn(50.005, 50) {
		t.Error("all-in detection should tolerate float noise")
	}
	if IsAllIn(10, 50) {
		t.Error("10 into 50 is not all-in")
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		betSize   float64
		facingBet float64
		want      ev.Action
	}{
		{0, 0, ev.Fold},
		{3, 0, ev.Open},
		{0, 3, ev.Fold},
		{3, 3, ev.Call},
		{3.005, 3, ev.Call}, // within tolerance
		{6, 3, ev.Raise},
		{2, 3, ev.Fold}, // smaller than the faced bet is invalid
	}

	for _, tt := range tests {
		if got := ActionFor(tt.betSize, tt.facingBet); got != tt.want {
			t.Errorf("ActionFor(%.3f, %.1f) = %s, want %s", tt.betSize, tt.facingBet, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe(50, 50); got != "All-in (50.0 BB)" {
		t.Errorf("Describe all-in = %q", got)
	}
	if got := Describe(3, 50); got != "3.0x BB" {
		t.Errorf("Describe = %q", got)
	}
}

func TestIncrementalDeduplicates(t *testing.T) {
	// Facing a 2 BB bet the 4 BB min-raise coincides with ladder steps;
	// every candidate must be unique.
	sizes := Incremental(50, 2.0, 0.5, true)
	for i := 1; i < len(sizes); i++ {
		if math.Abs(sizes[i]-sizes[i-1]) < 1e-9 {
			t.Fatalf("duplicate size %f in %v", sizes[i], sizes)
		}
	}
}
