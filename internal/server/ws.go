package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// wsCommand is one client message on the play socket.
type wsCommand struct {
	Type    string  `json:"type"` // "player_action", "ai_action", "showdown", "state"
	Action  string  `json:"action,omitempty"`
	BetSize float64 `json:"bet_size,omitempty"`
}

// wsMessage is one server message.
type wsMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleWS runs a session over a single WebSocket: the client drives the
// hand with commands and receives a state snapshot after every move.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	session, ok := s.manager.Get(chi.URLParam(r, "gameID"))
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Debug("websocket attached", "game_id", session.ID)
	if err := conn.WriteJSON(wsMessage{Type: "state", Payload: session.View()}); err != nil {
		return
	}

	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket closed unexpectedly", "game_id", session.ID, "error", err)
			}
			return
		}

		var reply wsMessage
		switch cmd.Type {
		case "player_action":
			outcome, err := session.PlayerAct(cmd.Action, cmd.BetSize)
			if err != nil {
				reply = wsMessage{Type: "error", Error: err.Error()}
			} else {
				reply = wsMessage{Type: "player_action", Payload: outcome}
			}

		case "ai_action":
			result, err := session.AIAct(s.advisor, s.cfg.Game)
			if err != nil {
				reply = wsMessage{Type: "error", Error: err.Error()}
			} else {
				reply = wsMessage{Type: "ai_action", Payload: result}
			}

		case "showdown":
			result, err := session.Showdown()
			if err != nil {
				reply = wsMessage{Type: "error", Error: err.Error()}
			} else {
				reply = wsMessage{Type: "showdown", Payload: result}
			}

		case "state":
			reply = wsMessage{Type: "state", Payload: session.View()}

		default:
			reply = wsMessage{Type: "error", Error: "unknown command type"}
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
		if cmd.Type != "state" {
			if err := conn.WriteJSON(wsMessage{Type: "state", Payload: session.View()}); err != nil {
				return
			}
		}
	}
}
