package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"preflop-advisor/internal/advisor"
	"preflop-advisor/internal/search"
)

// RangeCmd evaluates all 169 starting hands for one scenario and renders
// them as the usual 13x13 grid.
type RangeCmd struct {
	Position      string  `kong:"default='Button',help='Seat: Button or Big Blind'"`
	Stack         float64 `kong:"default='50',help='Hero stack in big blinds'"`
	OpponentStack float64 `kong:"default='50',help='Opponent stack in big blinds'"`
	Tendency      string  `kong:"default='Unknown',help='Opponent tendency'"`
	Facing        float64 `kong:"default='0',help='Bet faced in big blinds'"`
	Algorithm     string  `kong:"default='a_star',enum='a_star,brute_force',help='Search algorithm'"`
	Heuristic     string  `kong:"default='hand_strength',enum='hand_strength,optimistic',help='A* heuristic'"`
	JSON          bool    `kong:"help='Emit all entries as JSON'"`
}

// gridRanks orders the grid from aces down, as range charts are drawn.
const gridRanks = "AKQJT98765432"

func (c *RangeCmd) Run() error {
	adv, err := advisor.New(log.New(io.Discard))
	if err != nil {
		return err
	}

	entries, err := adv.EvaluateRange(context.Background(), advisor.Request{
		Position:      c.Position,
		HeroStack:     c.Stack,
		OpponentStack: c.OpponentStack,
		Tendency:      c.Tendency,
		FacingBet:     c.Facing,
		Algorithm:     search.Method(c.Algorithm),
		Heuristic:     search.HeuristicType(c.Heuristic),
	})
	if err != nil {
		return err
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	byHand := make(map[string]advisor.Decision, len(entries))
	counts := map[string]int{}
	for _, e := range entries {
		byHand[e.Hand] = e.Decision
		counts[string(e.Decision.Action)]++
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s, %.0f BB vs %s", c.Position, c.Stack, c.Tendency)))
	for i := 0; i < len(gridRanks); i++ {
		var row strings.Builder
		for j := 0; j < len(gridRanks); j++ {
			label := cellLabel(i, j)
			decision, ok := byHand[label]
			style := foldStyle
			if ok {
				style = actionStyle(string(decision.Action))
			}
			row.WriteString(style.Render(fmt.Sprintf("%-4s", label)))
		}
		fmt.Println(row.String())
	}

	fmt.Println()
	fmt.Printf("%s %d  %s %d  %s %d\n",
		playStyle.Render("open/raise"), counts["open"]+counts["raise"],
		callStyle.Render("call"), counts["call"],
		foldStyle.Render("fold"), counts["fold"])
	return nil
}

// cellLabel maps a grid cell to the canonical hand label, which writes
// the lower card first. Upper-right cells are suited, lower-left offsuit.
func cellLabel(i, j int) string {
	switch {
	case i == j:
		return string(gridRanks[i]) + string(gridRanks[i])
	case i < j:
		return string(gridRanks[j]) + string(gridRanks[i]) + "s"
	default:
		return string(gridRanks[i]) + string(gridRanks[j]) + "o"
	}
}
