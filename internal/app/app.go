package app

import (
	"fmt"
	"net/http"

	"github.com/dugout-hq/dugout/internal/config"
	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/roster"
	"github.com/dugout-hq/dugout/internal/domain/team"
	"github.com/dugout-hq/dugout/internal/infrastructure/account/passport"
	cacherepo "github.com/dugout-hq/dugout/internal/infrastructure/repository/cache"
	"github.com/dugout-hq/dugout/internal/infrastructure/repository/memory"
	"github.com/dugout-hq/dugout/internal/infrastructure/repository/postgres"
	"github.com/dugout-hq/dugout/internal/interfaces/httpapi"
	basecache "github.com/dugout-hq/dugout/internal/platform/cache"
	idgen "github.com/dugout-hq/dugout/internal/platform/id"
	"github.com/dugout-hq/dugout/internal/platform/logging"
	"github.com/dugout-hq/dugout/internal/platform/resilience"
	"github.com/dugout-hq/dugout/internal/usecase"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	rosters roster.Repository
}

// NewHTTPServer wires repositories, services, and the HTTP router. The
// returned close function releases storage resources and must be called
// after the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	repos, closeStorage, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	}

	ids := idgen.NewRandomGenerator()
	teamSvc := usecase.NewTeamService(repos.teams, ids)
	playerSvc := usecase.NewPlayerService(repos.teams, repos.players, ids)
	rosterSvc := usecase.NewRosterService(repos.teams, repos.players, repos.rosters, ids, cfg.DefaultStarterSlots)
	reconcileSvc := usecase.NewReconcileService(repos.teams, repos.players, repos.rosters, cfg.DefaultStarterSlots)

	passportClient := passport.NewClient(
		&http.Client{Timeout: cfg.PassportTimeout},
		cfg.PassportBaseURL,
		cfg.PassportIntrospectPath,
		cfg.PassportAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.PassportCircuitEnabled,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PassportCircuitHalfOpenMax,
		},
		logger,
	)

	handler := httpapi.NewHandler(teamSvc, playerSvc, rosterSvc, reconcileSvc, logger)
	router := httpapi.NewRouter(handler, passportClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeStorage()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeStorage, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("storage ready", "driver", "postgres", "db", dbNameFromURL(cfg.DBURL))

		return repositories{
			teams:   postgres.NewTeamRepository(db),
			players: postgres.NewPlayerRepository(db),
			rosters: postgres.NewRosterRepository(db),
		}, db.Close, nil
	default:
		var (
			teams   []team.Team
			players []player.Player
		)
		if cfg.SeedDemoData {
			teams = memory.SeedTeams()
			players = memory.SeedPlayers()
		}
		logger.Info("storage ready", "driver", "memory", "seeded", cfg.SeedDemoData)

		return repositories{
			teams:   memory.NewTeamRepository(teams),
			players: memory.NewPlayerRepository(players),
			rosters: memory.NewRosterRepository(),
		}, func() error { return nil }, nil
	}
}
