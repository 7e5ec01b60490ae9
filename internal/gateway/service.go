package gateway

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/siammpl/arena/internal/httpjson"
	"github.com/siammpl/arena/internal/keylock"
)

// Service bundles the real-time pieces: the connection manager, the
// notifier the engines publish through, and the WebSocket endpoints.
type Service struct {
	manager    *ConnectionManager
	notifier   *Notifier
	timekeeper *Timekeeper
	wsHandler  *WebSocketHandler
}

// Config holds gateway configuration.
type Config struct {
	Connection   ConnectionConfig
	DefaultBonus time.Duration
}

// DefaultConfig returns default gateway configuration
func DefaultConfig() Config {
	return Config{
		Connection:   DefaultConnectionConfig(),
		DefaultBonus: 60 * time.Second,
	}
}

// NewService creates a new gateway service. The keyed lock must be the same
// instance the allocation engine uses so extensions serialize with purchases
// and releases on the same team.
func NewService(config Config, teamStore TeamStore, clock clockwork.Clock, locks *keylock.Keyed) *Service {
	manager := NewConnectionManager(config.Connection)
	notifier := NewNotifier(manager)
	timekeeper := NewTimekeeper(teamStore, notifier, clock, config.DefaultBonus, locks)
	wsHandler := NewWebSocketHandler(manager, timekeeper)

	return &Service{
		manager:    manager,
		notifier:   notifier,
		timekeeper: timekeeper,
		wsHandler:  wsHandler,
	}
}

// Notifier returns the notifier the state-mutating engines publish through.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

// RegisterRoutes registers the WebSocket routes and the connection stats
// endpoint.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	mux.HandleFunc("GET /admin/connections", s.HandleStats)
	log.Info().Msg("gateway routes registered")
}

// HandleStats handles GET /admin/connections: live connection counts per team.
func (s *Service) HandleStats(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, s.manager.Stats())
}

// Stats returns per-team connection counts.
func (s *Service) Stats() map[string]int {
	return s.manager.Stats()
}

// Stop tears down every live connection.
func (s *Service) Stop() {
	s.manager.CloseAll()
	log.Info().Msg("gateway service stopped")
}
