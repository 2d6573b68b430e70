package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"preflop-advisor/internal/advisor"
	"preflop-advisor/internal/playability"
	"preflop-advisor/internal/search"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// PlayabilityCmd runs the rule-based playability check for one hand.
type PlayabilityCmd struct {
	Hand     string  `kong:"arg,help='Starting hand, e.g. AKs, 72o, AsKd'"`
	Position string  `kong:"default='Button',help='Seat: Button or Big Blind'"`
	Stack    int     `kong:"default='50',help='Stack size in big blinds'"`
	Tendency string  `kong:"default='Unknown',help='Opponent tendency: Tight, Loose, Aggressive, Passive, Unknown'"`
	Facing   float64 `kong:"default='0',help='Bet faced in big blinds'"`
	Trace    bool    `kong:"help='Show the inference chain'"`
	JSON     bool    `kong:"help='Emit the full result as JSON'"`
}

func (c *PlayabilityCmd) Run() error {
	result := playability.Decide(playability.Scenario{
		Hand:      c.Hand,
		Position:  c.Position,
		StackSize: c.Stack,
		Tendency:  c.Tendency,
		FacingBet: c.Facing,
	})

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	verdict := foldStyle.Render("NOT PLAYABLE")
	if result.Playable {
		verdict = playStyle.Render("PLAYABLE")
	}
	fmt.Printf("%s  %s\n", headerStyle.Render(result.HandNormalized), verdict)
	if result.HandRank > 0 {
		fmt.Printf("%s\n", dimStyle.Render(fmt.Sprintf("rank %d of 169 (%s)", result.HandRank, result.HandTier)))
	}
	fmt.Println(result.Reason)

	if c.Trace {
		fmt.Println()
		fmt.Println(headerStyle.Render("Inference chain"))
		for _, step := range result.InferenceChain {
			fmt.Printf("  %s\n", step)
		}
	}
	return nil
}

// AdviseCmd runs the full decision engine for one scenario.
type AdviseCmd struct {
	Hand          string  `kong:"arg,help='Starting hand, e.g. AKs, 72o, AsKd'"`
	Position      string  `kong:"default='Button',help='Seat: Button or Big Blind'"`
	Stack         float64 `kong:"default='50',help='Hero stack in big blinds'"`
	OpponentStack float64 `kong:"default='50',help='Opponent stack in big blinds'"`
	Tendency      string  `kong:"default='Unknown',help='Opponent tendency'"`
	Facing        float64 `kong:"default='0',help='Bet faced in big blinds'"`
	Pot           float64 `kong:"default='0',help='Pot before the opponent bet; defaults to the blinds'"`
	Algorithm     string  `kong:"default='a_star',enum='a_star,brute_force',help='Search algorithm'"`
	Heuristic     string  `kong:"default='hand_strength',enum='hand_strength,optimistic',help='A* heuristic'"`
	NoFilter      bool    `kong:"help='Search even when the playability rules say fold'"`
	JSON          bool    `kong:"help='Emit the full decision as JSON'"`
}

func (c *AdviseCmd) Run() error {
	adv, err := advisor.New(log.New(io.Discard))
	if err != nil {
		return err
	}

	decision, err := adv.Recommend(advisor.Request{
		Hand:                  c.Hand,
		Position:              c.Position,
		HeroStack:             c.Stack,
		OpponentStack:         c.OpponentStack,
		Tendency:              c.Tendency,
		FacingBet:             c.Facing,
		PotSize:               c.Pot,
		Algorithm:             search.Method(c.Algorithm),
		Heuristic:             search.HeuristicType(c.Heuristic),
		SkipPlayabilityFilter: c.NoFilter,
	})
	if err != nil {
		return err
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(decision)
	}

	fmt.Printf("%s  %s\n", headerStyle.Render(c.Hand), actionStyle(string(decision.Action)).Render(string(decision.Action)))
	fmt.Println(decision.Reason)
	fmt.Println(dimStyle.Render(fmt.Sprintf("EV %.2f BB, %d nodes explored (%s)",
		decision.ExpectedValue, decision.NodesExplored, decision.SearchMethod)))
	return nil
}

func actionStyle(action string) lipgloss.Style {
	switch action {
	case "open", "raise":
		return playStyle
	case "call":
		return callStyle
	default:
		return foldStyle
	}
}
