package main

import (
	"database/sql"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/siammpl/arena/internal/gateway"
	"github.com/siammpl/arena/internal/keylock"
	"github.com/siammpl/arena/internal/mystery"
	mysterydb "github.com/siammpl/arena/internal/mystery/db"
	"github.com/siammpl/arena/internal/questions"
	questionsdb "github.com/siammpl/arena/internal/questions/db"
	"github.com/siammpl/arena/internal/teams"
	teamsdb "github.com/siammpl/arena/internal/teams/db"
)

type Services struct {
	Teams     *teams.Service
	Mystery   *mystery.Service
	Questions *questions.Service
	Gateway   *gateway.Service
}

func setupServices(database *sql.DB, cfg *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	clock := clockwork.NewRealClock()
	locks := keylock.New()

	// Teams
	teamsQueries := teamsdb.New(database)
	teamsRepo := teams.NewRepository(teamsQueries)
	teamsApp := teams.NewApp(teamsRepo, teams.Defaults{
		Points:         cfg.Game.DefaultPoints,
		DeadlineOffset: cfg.DeadlineOffset(),
	}, clock)
	teamsService := teams.NewService(teamsApp)

	// Gateway
	gatewayConfig := gateway.DefaultConfig()
	gatewayConfig.DefaultBonus = cfg.DefaultBonus()
	gatewayConfig.Connection.WriteTimeout = time.Duration(cfg.WebSocket.WriteTimeoutSeconds) * time.Second
	gatewayConfig.Connection.ReadTimeout = time.Duration(cfg.WebSocket.ReadTimeoutSeconds) * time.Second
	gatewayConfig.Connection.PingInterval = time.Duration(cfg.WebSocket.PingIntervalSeconds) * time.Second
	gatewayService := gateway.NewService(gatewayConfig, teamsApp, clock, locks)

	// Mystery
	mysteryQueries := mysterydb.New(database)
	mysteryRepo := mystery.NewRepository(mysteryQueries, database)
	mysteryApp := mystery.NewApp(mysteryRepo, teamsApp, gatewayService.Notifier(), locks)
	mysteryService := mystery.NewService(mysteryApp)

	// Questions
	questionsQueries := questionsdb.New(database)
	questionsRepo := questions.NewRepository(questionsQueries)
	questionsApp := questions.NewApp(questionsRepo, teamsApp)
	questionsService := questions.NewService(questionsApp)

	return &Services{
		Teams:     teamsService,
		Mystery:   mysteryService,
		Questions: questionsService,
		Gateway:   gatewayService,
	}
}
