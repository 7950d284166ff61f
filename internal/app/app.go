package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"

	"github.com/andrasetya/draft-league/internal/config"
	"github.com/andrasetya/draft-league/internal/domain/draft"
	"github.com/andrasetya/draft-league/internal/domain/player"
	"github.com/andrasetya/draft-league/internal/infrastructure/account/statictoken"
	"github.com/andrasetya/draft-league/internal/infrastructure/catalog"
	"github.com/andrasetya/draft-league/internal/infrastructure/repository/memory"
	"github.com/andrasetya/draft-league/internal/infrastructure/repository/postgres"
	"github.com/andrasetya/draft-league/internal/interfaces/httpapi"
	"github.com/andrasetya/draft-league/internal/platform/cache"
	idgen "github.com/andrasetya/draft-league/internal/platform/id"
	"github.com/andrasetya/draft-league/internal/platform/logging"
	"github.com/andrasetya/draft-league/internal/usecase"
)

// NewHTTPServer wires the repositories, services and HTTP router into a
// ready-to-run server. The draft store is in-memory unless DB_URL points
// at a postgres database.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	players, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	playerRepo := memory.NewPlayerRepository(players)

	draftRepo, err := newDraftRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	var modeCache *cache.Store
	if cfg.CacheEnabled {
		modeCache = cache.NewStore(cfg.CacheTTL)
	}

	draftSvc := usecase.NewDraftService(
		draftRepo,
		playerRepo,
		cfg.ChampionsLeagueClubs,
		idgen.NewRandomGenerator(),
		logger,
	)
	playerSvc := usecase.NewPlayerService(
		playerRepo,
		draftRepo,
		cfg.ChampionsLeagueClubs,
		modeCache,
		logger,
	)

	verifier := statictoken.NewVerifier(cfg.AuthTokens)

	handler := httpapi.NewHandler(draftSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func loadCatalog(cfg config.Config) ([]player.Player, error) {
	if cfg.CatalogFile == "" {
		return memory.SeedPlayers(), nil
	}

	players, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load player catalog: %w", err)
	}

	return players, nil
}

func newDraftRepository(cfg config.Config, logger *logging.Logger) (draft.Repository, error) {
	if cfg.DBURL == "" {
		logger.Info("draft store: in-memory")
		return memory.NewDraftRepository(), nil
	}

	db, err := openPostgres(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	logger.Info("draft store: postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return postgres.NewDraftRepository(db), nil
}

func openPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemNamePostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}
