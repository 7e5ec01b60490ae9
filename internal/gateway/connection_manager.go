package gateway

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ConnectionManager holds the live WebSocket connections for each team and
// fans events out to them. Buckets are independent: broadcasting to one team
// never touches another team's connections, and a team with no listeners is
// a silent no-op.
type ConnectionManager struct {
	teamConnections map[string]map[*Connection]bool
	mu              sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig
}

// Connection represents one WebSocket connection subscribed to a team.
type Connection struct {
	ID       string
	TeamName string

	ws      *websocket.Conn
	send    chan []byte
	manager *ConnectionManager

	// closed guards send: once set, nothing may queue into the channel.
	closeMu sync.Mutex
	closed  bool

	// onMessage, when set, is invoked for every inbound message. The
	// time-update endpoint uses it to dispatch proctor commands.
	onMessage func(c *Connection, data []byte)

	connectedAt time.Time
}

// ConnectionConfig holds WebSocket tuning knobs.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConnectionConfig returns default WebSocket configuration
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// Event clients connect from proctor consoles on the venue LAN.
			return true
		},
	}
}

// NewConnectionManager creates a new WebSocket connection manager
func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		teamConnections: make(map[string]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config: config,
	}
}

// Subscribe upgrades an HTTP request to a WebSocket connection registered
// under the team's bucket and starts its read/write pumps. onMessage may be
// nil for listen-only connections.
func (cm *ConnectionManager) Subscribe(w http.ResponseWriter, r *http.Request, teamName string, onMessage func(c *Connection, data []byte)) (*Connection, error) {
	ws, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}

	conn := &Connection{
		ID:          uuid.New().String(),
		TeamName:    teamName,
		ws:          ws,
		send:        make(chan []byte, 256),
		manager:     cm,
		onMessage:   onMessage,
		connectedAt: time.Now(),
	}

	cm.register(conn)

	go conn.writePump()
	go conn.readPump()

	log.Info().
		Str("connection_id", conn.ID).
		Str("team", teamName).
		Msg("WebSocket connection established")

	return conn, nil
}

// register adds a connection under its team's bucket, creating the bucket if
// absent.
func (cm *ConnectionManager) register(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.teamConnections[conn.TeamName] == nil {
		cm.teamConnections[conn.TeamName] = make(map[*Connection]bool)
	}
	cm.teamConnections[conn.TeamName][conn] = true

	log.Debug().
		Str("connection_id", conn.ID).
		Str("team", conn.TeamName).
		Int("total_connections", len(cm.teamConnections[conn.TeamName])).
		Msg("connection registered")
}

// unregister removes a connection and deletes its bucket once empty.
func (cm *ConnectionManager) unregister(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	connections, exists := cm.teamConnections[conn.TeamName]
	if !exists {
		return
	}
	if _, exists := connections[conn]; !exists {
		return
	}

	delete(connections, conn)

	conn.closeMu.Lock()
	if !conn.closed {
		conn.closed = true
		close(conn.send)
	}
	conn.closeMu.Unlock()

	if len(connections) == 0 {
		delete(cm.teamConnections, conn.TeamName)
	}

	log.Info().
		Str("connection_id", conn.ID).
		Str("team", conn.TeamName).
		Msg("connection unregistered")
}

// Broadcast delivers an event to every connection currently registered for
// the team. Delivery is best-effort: a dead or slow connection is pruned
// without aborting delivery to the rest, and the caller never sees the
// failure.
func (cm *ConnectionManager) Broadcast(teamName string, event Event) {
	cm.mu.RLock()
	connections, exists := cm.teamConnections[teamName]
	if !exists {
		cm.mu.RUnlock()
		return
	}

	// Snapshot so concurrent unregistration cannot disturb the iteration.
	targets := make([]*Connection, 0, len(connections))
	for conn := range connections {
		targets = append(targets, conn)
	}
	cm.mu.RUnlock()

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for broadcast")
		return
	}

	for _, conn := range targets {
		if !conn.queue(data) {
			log.Warn().
				Str("connection_id", conn.ID).
				Str("team", conn.TeamName).
				Msg("connection unreachable, closing connection")
			cm.unregister(conn)
			conn.ws.Close()
		}
	}

	log.Debug().
		Str("event", string(event.Kind)).
		Str("team", teamName).
		Int("connections", len(targets)).
		Msg("event broadcasted")
}

// ConnectionCount returns the number of live connections for a team.
func (cm *ConnectionManager) ConnectionCount(teamName string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.teamConnections[teamName])
}

// Stats returns per-team connection counts.
func (cm *ConnectionManager) Stats() map[string]int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	counts := make(map[string]int, len(cm.teamConnections))
	for team, connections := range cm.teamConnections {
		counts[team] = len(connections)
	}
	return counts
}

// CloseAll tears down every connection; used during shutdown.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	var all []*Connection
	for _, connections := range cm.teamConnections {
		for conn := range connections {
			all = append(all, conn)
		}
	}
	cm.mu.Unlock()

	for _, conn := range all {
		cm.unregister(conn)
		conn.ws.Close()
	}
}

// SendEvent queues an event for this connection only. Used for local error
// replies that must not reach the rest of the team.
func (c *Connection) SendEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal event for connection")
		return
	}

	if !c.queue(data) {
		log.Warn().
			Str("connection_id", c.ID).
			Msg("connection unreachable, dropping event")
	}
}

// queue enqueues data for the write pump. Returns false when the connection
// is closed or its buffer is full.
func (c *Connection) queue(data []byte) bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.ws.Close()
		c.manager.unregister(c)
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(c.manager.config.WriteTimeout))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().
					Err(err).
					Str("connection_id", c.ID).
					Msg("failed to write message to WebSocket")
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(c.manager.config.WriteTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes inbound messages until the peer goes away, dispatching
// each one to onMessage when set. Closing the socket unregisters the
// connection; nothing already committed is rolled back.
func (c *Connection) readPump() {
	defer func() {
		c.manager.unregister(c)
		c.ws.Close()
	}()

	c.ws.SetReadLimit(c.manager.config.MaxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(c.manager.config.ReadTimeout))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(c.manager.config.ReadTimeout))
		return nil
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug().
					Err(err).
					Str("connection_id", c.ID).
					Msg("unexpected WebSocket close")
			}
			break
		}

		if c.onMessage != nil {
			c.onMessage(c, message)
		}
		c.ws.SetReadDeadline(time.Now().Add(c.manager.config.ReadTimeout))
	}
}
