package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/access"
	accessPostgres "github.com/tossaporn/school-budget/internal/access/postgres"
	"github.com/tossaporn/school-budget/internal/auth"
	"github.com/tossaporn/school-budget/internal/core/events"
	"github.com/tossaporn/school-budget/internal/document"
	"github.com/tossaporn/school-budget/internal/drafting"
	"github.com/tossaporn/school-budget/internal/project"
	projectPostgres "github.com/tossaporn/school-budget/internal/project/postgres"
	"github.com/tossaporn/school-budget/internal/request"
	requestPostgres "github.com/tossaporn/school-budget/internal/request/postgres"
	"github.com/tossaporn/school-budget/internal/transport"
	"github.com/tossaporn/school-budget/internal/transport/rest"
	"github.com/tossaporn/school-budget/internal/user"
	userPostgres "github.com/tossaporn/school-budget/internal/user/postgres"
	"github.com/tossaporn/school-budget/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler     *auth.Handler
	UserHandler     *user.Handler
	AccessHandler   *access.Handler
	ProjectHandler  *project.Handler
	RequestHandler  *request.Handler
	DocumentHandler *document.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.AuthHandler,
		deps.UserHandler,
		deps.AccessHandler,
		deps.ProjectHandler,
		deps.RequestHandler,
		deps.DocumentHandler,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// GORM shares the pgx connection pool the health checker pings
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	// Registry
	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, log)

	// Onboarding
	accessRepo := accessPostgres.NewAccessRequestRepository(gormDB)
	accessService := access.NewService(accessRepo, userService, log)

	// Ledger and workflow, joined by the synchronous event bus so every
	// status change recomputes the derived used-budget figures before the
	// mutating call returns
	bus := events.NewEventBus(log)
	requestRepo := requestPostgres.NewRequestRepository(gormDB)
	projectRepo := projectPostgres.NewProjectRepository(gormDB)
	projectService := project.NewService(projectRepo, requestRepo, log)
	requestService := request.NewService(requestRepo, projectService, bus, config.Workflow, log)

	bus.Subscribe(events.RequestStatusChangedEvent, projectService.StatusChangedHandler())
	bus.Subscribe(events.RequestSubmittedEvent, projectService.StatusChangedHandler())

	// Sessions
	tokens := auth.NewJWTTokenGenerator(config.Security.TokenSecret, config.Security.TokenDuration)
	authService := auth.NewService(userService, tokens, log)

	// Printable documents
	renderer, err := document.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document renderer: %w", err)
	}

	var drafter project.Drafter
	if config.Drafting.APIURL != "" {
		drafter = drafting.NewClient(drafting.Config{
			APIURL:  config.Drafting.APIURL,
			APIKey:  config.Drafting.APIKey,
			Model:   config.Drafting.Model,
			Timeout: config.Drafting.Timeout,
		}, log)
	}

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),

		AuthHandler:     auth.NewHandler(authService),
		UserHandler:     user.NewHandler(userService),
		AccessHandler:   access.NewHandler(accessService),
		ProjectHandler:  project.NewHandler(projectService, drafter),
		RequestHandler:  request.NewHandler(requestService),
		DocumentHandler: document.NewHandler(transport.NewBaseHandler(log), renderer, requestService, projectService),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
