package search

import (
	"math"
	"testing"

	"preflop-advisor/internal/equity"
	"preflop-advisor/internal/ev"
	"preflop-advisor/internal/opponent"
)

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	tbl, err := equity.Load()
	if err != nil {
		t.Fatalf("loading equity table: %v", err)
	}
	return New(ev.NewModel(tbl), tbl)
}

func baseScenario() Scenario {
	return Scenario{
		Hand:          "AA",
		Position:      "Button",
		HeroStack:     50,
		OpponentStack: 50,
		Tendency:      opponent.Tight,
		PotSize:       ev.BasePotSize,
	}
}

func TestAStarAgreesWithBruteForce(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()

	astar, err := s.AStar(sc, HandStrength)
	if err != nil {
		t.Fatalf("AStar failed: %v", err)
	}
	brute := s.BruteForce(sc)

	if astar.Action != brute.Action {
		t.Errorf("action mismatch: a_star %s, brute_force %s", astar.Action, brute.Action)
	}
	if math.Abs(astar.BetSize-brute.BetSize) >= 0.01 {
		t.Errorf("bet size mismatch: a_star %f, brute_force %f", astar.BetSize, brute.BetSize)
	}
	if math.Abs(astar.EV-brute.EV) >= 0.01 {
		t.Errorf("EV mismatch: a_star %f, brute_force %f", astar.EV, brute.EV)
	}
}

func TestAgreementAcrossScenarios(t *testing.T) {
	s := newTestSearcher(t)

	scenarios := []Scenario{
		{Hand: "AA", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: opponent.Tight, PotSize: ev.BasePotSize},
		{Hand: "KK", Position: "Big Blind", HeroStack: 50, OpponentStack: 50, Tendency: opponent.Aggressive, PotSize: ev.BasePotSize},
		{Hand: "TJs", Position: "Button", HeroStack: 20, OpponentStack: 50, Tendency: opponent.Loose, PotSize: ev.BasePotSize},
		{Hand: "AA", Position: "Big Blind", HeroStack: 50, OpponentStack: 50, Tendency: opponent.Passive, FacingBet: 3.0, PotSize: ev.BasePotSize},
		{Hand: "27o", Position: "Big Blind", HeroStack: 50, OpponentStack: 50, Tendency: opponent.Unknown, FacingBet: 3.0, PotSize: ev.BasePotSize},
	}

	for _, sc := range scenarios {
		astar, err := s.AStar(sc, HandStrength)
		if err != nil {
			t.Fatalf("AStar(%s facing %.1f) failed: %v", sc.Hand, sc.FacingBet, err)
		}
		brute := s.BruteForce(sc)

		if astar.Action != brute.Action || math.Abs(astar.EV-brute.EV) >= 0.01 {
			t.Errorf("%s facing %.1f: a_star (%s, %f) disagrees with brute_force (%s, %f)",
				sc.Hand, sc.FacingBet, astar.Action, astar.EV, brute.Action, brute.EV)
		}
	}
}

func TestAStarUnknownHeuristicFailsHard(t *testing.T) {
	s := newTestSearcher(t)

	if _, err := s.AStar(baseScenario(), HeuristicType("pessimistic")); err == nil {
		t.Fatal("an unknown heuristic type must surface as an error")
	}
}

func TestAStarZeroStackFolds(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()
	sc.HeroStack = 0

	got, err := s.AStar(sc, HandStrength)
	if err != nil {
		t.Fatalf("AStar failed: %v", err)
	}
	if got.Action != ev.Fold || got.BetSize != 0 || got.EV != 0 {
		t.Errorf("zero stack should fold with zero EV, got %+v", got)
	}
	if got.NodesExplored != 0 {
		t.Errorf("no candidates means no nodes explored, got %d", got.NodesExplored)
	}
}

func TestBruteForceStrongHandOpens(t *testing.T) {
	s := newTestSearcher(t)

	got := s.BruteForce(baseScenario())

	if got.Action != ev.Open {
		t.Errorf("AA on the button should open, got %s", got.Action)
	}
	if got.BetSize < 2.0 {
		t.Errorf("opening size %f below the 2 BB minimum", got.BetSize)
	}
	if got.EV <= 0 {
		t.Errorf("AA open EV should be positive, got %f", got.EV)
	}
}

func TestBruteForceFacingBetClassifiesAction(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()
	sc.FacingBet = 3.0

	got := s.BruteForce(sc)

	switch got.Action {
	case ev.Call:
		if math.Abs(got.BetSize-3.0) >= 0.01 {
			t.Errorf("a call must match the faced bet, got %f", got.BetSize)
		}
	case ev.Raise:
		if got.BetSize <= 3.0 {
			t.Errorf("a raise must exceed the faced bet, got %f", got.BetSize)
		}
	case ev.Fold:
		t.Error("AA should never fold facing a 3 BB bet")
	}
}

func TestAStarExploresNoMoreNodesThanBruteForce(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()

	astar, err := s.AStar(sc, HandStrength)
	if err != nil {
		t.Fatalf("AStar failed: %v", err)
	}
	brute := s.BruteForce(sc)

	if astar.NodesExplored > brute.NodesExplored {
		t.Errorf("a_star explored %d nodes, brute force only %d", astar.NodesExplored, brute.NodesExplored)
	}
	if astar.Method != MethodAStar || brute.Method != MethodBruteForce {
		t.Errorf("method labels wrong: %s / %s", astar.Method, brute.Method)
	}
}

func TestHeuristicIsScenarioLevel(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()

	h1, err := s.Heuristic(sc, HandStrength)
	if err != nil {
		t.Fatalf("Heuristic failed: %v", err)
	}
	h2, _ := s.Heuristic(sc, HandStrength)
	if h1 != h2 {
		t.Error("heuristic must be deterministic for a fixed scenario")
	}
	if h1 < 0 {
		t.Errorf("hand-strength heuristic must be non-negative, got %f", h1)
	}
}

func TestHeuristicButtonAdvantage(t *testing.T) {
	s := newTestSearcher(t)

	button := baseScenario()
	bb := baseScenario()
	bb.Position = "Big Blind"

	hButton, _ := s.Heuristic(button, HandStrength)
	hBB, _ := s.Heuristic(bb, HandStrength)

	if hButton <= hBB {
		t.Errorf("button estimate (%f) should exceed big blind estimate (%f)", hButton, hBB)
	}
}

func TestOptimisticHeuristic(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()

	// Opening: equity x (pot + 3) = 0.85 x 4.5.
	h, err := s.Heuristic(sc, Optimistic)
	if err != nil {
		t.Fatalf("Heuristic failed: %v", err)
	}
	if math.Abs(h-0.85*4.5) > 1e-9 {
		t.Errorf("optimistic open estimate = %f, want %f", h, 0.85*4.5)
	}

	// Facing a bet: equity x (pot + bet) - bet.
	sc.FacingBet = 3.0
	h, _ = s.Heuristic(sc, Optimistic)
	want := 0.85*(1.5+3.0) - 3.0
	if math.Abs(h-want) > 1e-9 {
		t.Errorf("optimistic facing estimate = %f, want %f", h, want)
	}
}

func TestMaxEVMatchesBruteForce(t *testing.T) {
	s := newTestSearcher(t)
	sc := baseScenario()

	if got, want := s.MaxEV(sc), s.BruteForce(sc).EV; got != want {
		t.Errorf("MaxEV = %f, want %f", got, want)
	}
}
