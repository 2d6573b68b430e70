package advisor

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"preflop-advisor/internal/ev"
	"preflop-advisor/internal/search"
)

func newTestAdvisor(t *testing.T) *Advisor {
	t.Helper()
	a, err := New(log.New(io.Discard))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func TestRecommendStrongHandOpens(t *testing.T) {
	a := newTestAdvisor(t)

	got, err := a.Recommend(Request{
		Hand: "AA", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if got.Action != ev.Open {
		t.Errorf("action = %s, want open", got.Action)
	}
	if got.BetSize < 2.0 {
		t.Errorf("bet size %f below the 2 BB minimum open", got.BetSize)
	}
	if got.ExpectedValue <= 0 {
		t.Errorf("AA open EV should be positive, got %f", got.ExpectedValue)
	}
	if got.Playability == nil || !got.Playability.Playable {
		t.Error("playability result should be attached and playable")
	}
	if !strings.Contains(got.Reason, "a_star") {
		t.Errorf("reason should name the search method, got %q", got.Reason)
	}
}

func TestRecommendFilteredHandFoldsWithoutSearch(t *testing.T) {
	a := newTestAdvisor(t)

	got, err := a.Recommend(Request{
		Hand: "72o", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if got.Action != ev.Fold || got.BetSize != 0 || got.ExpectedValue != 0 {
		t.Errorf("filtered hand must fold with zero EV, got %+v", got)
	}
	if got.NodesExplored != 0 {
		t.Error("the search must not run for a filtered hand")
	}
	if got.Playability == nil || got.Playability.Playable {
		t.Error("the filter verdict should be attached and not playable")
	}
	if got.Reason != got.Playability.Reason {
		t.Errorf("fold reason %q should be the playability reason %q", got.Reason, got.Playability.Reason)
	}
}

func TestRecommendSkipFilterSearchesAnyway(t *testing.T) {
	a := newTestAdvisor(t)

	got, err := a.Recommend(Request{
		Hand: "72o", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
		SkipPlayabilityFilter: true,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if got.Playability != nil {
		t.Error("no playability verdict expected when the filter is skipped")
	}
	if got.NodesExplored == 0 {
		t.Error("the search should run when the filter is skipped")
	}
}

func TestRecommendAlgorithmsAgree(t *testing.T) {
	a := newTestAdvisor(t)

	req := Request{Hand: "AA", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight"}

	req.Algorithm = search.MethodAStar
	astar, err := a.Recommend(req)
	if err != nil {
		t.Fatalf("a_star failed: %v", err)
	}

	req.Algorithm = search.MethodBruteForce
	brute, err := a.Recommend(req)
	if err != nil {
		t.Fatalf("brute_force failed: %v", err)
	}

	if astar.Action != brute.Action || astar.BetSize != brute.BetSize {
		t.Errorf("algorithms disagree: a_star (%s, %.1f) vs brute_force (%s, %.1f)",
			astar.Action, astar.BetSize, brute.Action, brute.BetSize)
	}
	if astar.SearchMethod != search.MethodAStar || brute.SearchMethod != search.MethodBruteForce {
		t.Error("search_algorithm_used must name the algorithm that ran")
	}
}

func TestRecommendUnknownAlgorithm(t *testing.T) {
	a := newTestAdvisor(t)

	_, err := a.Recommend(Request{
		Hand: "AA", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
		Algorithm: search.Method("dijkstra"),
	})
	if err == nil {
		t.Fatal("an unknown algorithm must surface as an error")
	}
}

func TestRecommendUnknownHeuristic(t *testing.T) {
	a := newTestAdvisor(t)

	_, err := a.Recommend(Request{
		Hand: "AA", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
		Heuristic: search.HeuristicType("psychic"),
	})
	if err == nil {
		t.Fatal("an unknown heuristic must surface as an error")
	}
}

func TestRecommendPrecomputedPlayability(t *testing.T) {
	a := newTestAdvisor(t)

	first, err := a.Recommend(Request{
		Hand: "72o", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	second, err := a.Recommend(Request{
		Hand: "72o", Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
		Precomputed: first.Playability,
	})
	if err != nil {
		t.Fatalf("Recommend with precomputed verdict failed: %v", err)
	}
	if second.Action != ev.Fold || second.Playability != first.Playability {
		t.Error("a precomputed verdict should be honored as-is")
	}
}

func TestRecommendFacingBet(t *testing.T) {
	a := newTestAdvisor(t)

	got, err := a.Recommend(Request{
		Hand: "AA", Position: "Big Blind", HeroStack: 50, OpponentStack: 50, Tendency: "Unknown",
		FacingBet: 3.0,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if got.Action == ev.Open {
		t.Error("facing a bet the action can only be fold, call, or raise")
	}
	if got.Action == ev.Fold {
		t.Errorf("AA should continue against a 3 BB bet: %s", got.Reason)
	}
}

func TestEvaluateRange(t *testing.T) {
	a := newTestAdvisor(t)

	entries, err := a.EvaluateRange(context.Background(), Request{
		Position: "Button", HeroStack: 50, OpponentStack: 50, Tendency: "Tight",
	})
	if err != nil {
		t.Fatalf("EvaluateRange failed: %v", err)
	}

	if len(entries) != 169 {
		t.Fatalf("range has %d entries, want 169", len(entries))
	}
	if entries[0].Hand != "AA" || entries[0].Rank != 1 {
		t.Errorf("first entry = %+v, want AA at rank 1", entries[0])
	}
	if entries[0].Decision.Action != ev.Open {
		t.Error("AA should open on the button vs Tight")
	}
	if last := entries[168]; last.Decision.Action != ev.Fold {
		t.Errorf("the weakest hand should fold, got %s", last.Decision.Action)
	}
}
