// Package server initializes and runs the main application server.
// It selects the storage backend, wires services and the web layer, and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/logging"
	"github.com/dmitrijs2005/gophsecrets/internal/server/auth"
	"github.com/dmitrijs2005/gophsecrets/internal/server/config"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsecrets/internal/server/services"
	"github.com/dmitrijs2005/gophsecrets/internal/server/web"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *web.HTTPServer
}

// openPostgres is a seam for tests.
var openPostgres = repomanager.OpenPostgres

// logOutput is where the JSON logger writes.
var logOutput io.Writer = os.Stdout

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	tokens, err := auth.NewTokenManager([]byte(c.SecretKey), c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("token manager init error: %w", err)
	}

	var (
		db   *sql.DB
		conn dbx.DBTX
		rm   repomanager.RepositoryManager
	)
	if c.DatabaseDSN != "" {
		db, rm, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		conn = db
		logger.Info(ctx, "Using PostgreSQL storage")
	} else {
		rm = repomanager.NewMemoryRepositoryManager()
		logger.Info(ctx, "Using in-memory storage")
	}

	accounts := services.NewAccountService(conn, rm, auth.NewBcryptHasher(), tokens)
	secrets := services.NewSecretService(conn, rm)

	gin.SetMode(c.GinMode)
	webLogger := logger.With("module", "web")
	handlers := web.NewHandlers(accounts, secrets, web.CookieOptions{
		MaxAge: int(tokens.Validity().Seconds()),
		Secure: c.CookieSecure,
	}, webLogger)
	router := web.NewRouter(handlers, tokens, webLogger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: web.NewHTTPServer(c.EndpointAddrHTTP, router, logger, c.ShutdownTimeout),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, ctx is canceled or the
// server fails, then releases the database connection.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.closeDBIfNeeded(ctx)
	app.logger.Info(ctx, "App stopped")
}

func (app *App) closeDBIfNeeded(ctx context.Context) {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
