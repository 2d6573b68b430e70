package server

import (
	"context"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"preflop-advisor/internal/deck"
	"preflop-advisor/internal/gameid"
)

// Session is one heads-up practice hand between the player and the
// advisor-driven AI. Money amounts are in big blinds.
type Session struct {
	mu sync.Mutex

	ID             string
	PlayerHole     [2]deck.Card
	AIHole         [2]deck.Card
	Board          [5]deck.Card
	PlayerHand     string
	AIHand         string
	PlayerStack    float64
	AIStack        float64
	PlayerIsButton bool
	AITendency     string

	Pot            float64
	PlayerInvested float64
	AIInvested     float64
	// CurrentBet is the total size of the outstanding bet, zero when no
	// one has bet yet.
	CurrentBet float64
	// LastBettor is "player", "ai", or empty.
	LastBettor string

	History    []string
	GameOver   bool
	Winner     string
	LastActive time.Time
}

// SessionView is the JSON-safe snapshot of a session. The AI's hole
// cards stay hidden until the hand is over.
type SessionView struct {
	ID             string   `json:"game_id"`
	PlayerHand     string   `json:"player_hand"`
	PlayerHole     []string `json:"player_hole"`
	AIHand         string   `json:"ai_hand,omitempty"`
	AIHole         []string `json:"ai_hole,omitempty"`
	PlayerStack    float64  `json:"player_stack"`
	AIStack        float64  `json:"ai_stack"`
	PlayerIsButton bool     `json:"player_is_button"`
	Pot            float64  `json:"pot"`
	PlayerInvested float64  `json:"player_invested"`
	AIInvested     float64  `json:"ai_invested"`
	CurrentBet     float64  `json:"current_bet"`
	History        []string `json:"action_history"`
	GameOver       bool     `json:"game_over"`
	Winner         string   `json:"winner,omitempty"`
}

// View snapshots the session for clients.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SessionView{
		ID:             s.ID,
		PlayerHand:     s.PlayerHand,
		PlayerHole:     []string{s.PlayerHole[0].Code(), s.PlayerHole[1].Code()},
		PlayerStack:    s.PlayerStack,
		AIStack:        s.AIStack,
		PlayerIsButton: s.PlayerIsButton,
		Pot:            s.Pot,
		PlayerInvested: s.PlayerInvested,
		AIInvested:     s.AIInvested,
		CurrentBet:     s.CurrentBet,
		History:        append([]string(nil), s.History...),
		GameOver:       s.GameOver,
		Winner:         s.Winner,
	}
	if s.GameOver {
		v.AIHand = s.AIHand
		v.AIHole = []string{s.AIHole[0].Code(), s.AIHole[1].Code()}
	}
	return v
}

// Manager owns the live sessions: creation, lookup, and expiry of idle
// ones. The clock is injected so tests control time.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	game   GameSettings
	clock  quartz.Clock
	rng    *rand.Rand
	ids    *gameid.Generator
	ttl    time.Duration
	logger *log.Logger
}

// NewManager builds a session manager.
func NewManager(game GameSettings, clock quartz.Clock, rng *rand.Rand, logger *log.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		game:     game,
		clock:    clock,
		rng:      rng,
		ids:      gameid.NewGenerator(rng),
		ttl:      time.Duration(game.SessionTTLMinutes) * time.Minute,
		logger:   logger.WithPrefix("sessions"),
	}
}

// NewSession deals a fresh hand: hole cards for both seats, a board for
// the eventual showdown, a random button, and blinds in the pot.
func (m *Manager) NewSession() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := deck.New(m.rng)
	d.Shuffle()

	s := &Session{
		ID:             m.ids.Generate(),
		PlayerStack:    m.game.StartingStack,
		AIStack:        m.game.StartingStack,
		PlayerIsButton: m.rng.IntN(2) == 0,
		AITendency:     m.game.AITendency,
		Pot:            1.5,
		LastActive:     m.clock.Now(),
	}

	copy(s.PlayerHole[:], d.DealN(2))
	copy(s.AIHole[:], d.DealN(2))
	copy(s.Board[:], d.DealN(5))
	s.PlayerHand = deck.CanonicalLabel(s.PlayerHole[0], s.PlayerHole[1])
	s.AIHand = deck.CanonicalLabel(s.AIHole[0], s.AIHole[1])

	// Button posts the small blind heads-up.
	if s.PlayerIsButton {
		s.PlayerInvested = 0.5
		s.AIInvested = 1.0
	} else {
		s.PlayerInvested = 1.0
		s.AIInvested = 0.5
	}

	m.sessions[s.ID] = s
	m.logger.Debug("session created", "id", s.ID, "player_button", s.PlayerIsButton)
	return s
}

// Get looks up a session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if ok {
		s.mu.Lock()
		s.LastActive = m.clock.Now()
		s.mu.Unlock()
	}
	return s, ok
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// SweepExpired removes sessions idle longer than the TTL and returns how
// many were removed.
func (m *Manager) SweepExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.clock.Now().Add(-m.ttl)
	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := s.LastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("swept expired sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// StartSweeper runs the expiry sweep once a minute until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context) {
	ticker := m.clock.TickerFunc(ctx, time.Minute, func() error {
		m.SweepExpired()
		return nil
	}, "session-sweeper")
	go func() {
		_ = ticker.Wait()
	}()
}
