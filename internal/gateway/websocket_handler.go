package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// clientCommand is the inbound message shape on the time-update socket.
// Anything other than a "done" event is ignored.
type clientCommand struct {
	Event     string `json:"event"`
	ExtraTime *int   `json:"extra_time"`
}

// WebSocketHandler handles the WebSocket endpoints: the per-team listener
// socket and the proctor time-update socket.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	timekeeper        *Timekeeper
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cm *ConnectionManager, tk *Timekeeper) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		timekeeper:        tk,
	}
}

// HandleListener handles GET /ws/{team_name}: a listen-only subscription
// that stays open until the client disconnects and receives every broadcast
// for the team.
func (h *WebSocketHandler) HandleListener(w http.ResponseWriter, r *http.Request) {
	teamName := r.PathValue("team_name")
	if teamName == "" {
		http.Error(w, "team_name is required", http.StatusBadRequest)
		return
	}

	if _, err := h.connectionManager.Subscribe(w, r, teamName, nil); err != nil {
		log.Error().Err(err).Str("team", teamName).Msg("failed to upgrade listener connection")
	}
}

// HandleTimeUpdate handles GET /ws/time-update/{team_name}: the proctor
// console sends {"event":"done","extra_time":N} to extend the team's
// deadline. The socket also receives the team's broadcasts.
func (h *WebSocketHandler) HandleTimeUpdate(w http.ResponseWriter, r *http.Request) {
	teamName := r.PathValue("team_name")
	if teamName == "" {
		http.Error(w, "team_name is required", http.StatusBadRequest)
		return
	}

	_, err := h.connectionManager.Subscribe(w, r, teamName, func(c *Connection, data []byte) {
		var cmd clientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			log.Debug().
				Str("connection_id", c.ID).
				Str("team", teamName).
				Msg("ignoring malformed client message")
			return
		}
		if cmd.Event != "done" {
			return
		}

		h.timekeeper.HandleDone(context.Background(), c, teamName, cmd.ExtraTime)
	})
	if err != nil {
		log.Error().Err(err).Str("team", teamName).Msg("failed to upgrade time-update connection")
	}
}

// RegisterRoutes registers the WebSocket routes with an HTTP mux
func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/{team_name}", h.HandleListener)
	mux.HandleFunc("GET /ws/time-update/{team_name}", h.HandleTimeUpdate)
}
