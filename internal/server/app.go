// Package server wires configuration, storage, the session service and the
// gRPC transport into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/feastkeeper/internal/logging"
	"github.com/dmitrijs2005/feastkeeper/internal/server/auth"
	"github.com/dmitrijs2005/feastkeeper/internal/server/config"
	"github.com/dmitrijs2005/feastkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/feastkeeper/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/feastkeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// NewApp builds the application for cfg, logging JSON to stdout.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	return newApp(ctx, cfg, os.Stdout)
}

func newApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, error) {
	logger := logging.NewJSONLogger(logOut, cfg.LogLevel)

	var (
		rm repomanager.RepositoryManager
		db *sql.DB
	)

	switch cfg.StoreDriver {
	case config.StoreMemory:
		rm = repomanager.NewMemoryRepositoryManager()
	case config.StorePostgres, config.StoreSQLite:
		m := repomanager.NewPostgresRepositoryManager()
		if cfg.StoreDriver == config.StoreSQLite {
			m = repomanager.NewSQLiteRepositoryManager()
		}
		var err error
		db, err = m.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = m
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	us, err := services.NewUserService(rm.Users(db), auth.NewHasher(), auth.NewCodec([]byte(cfg.SecretKey)), cfg, logger)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	logger.Info(ctx, "store ready", "driver", cfg.StoreDriver)
	return &App{config: cfg, logger: logger, db: db, userService: us}, nil
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

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(gctx)
	})

	err := g.Wait()

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("db close error: %w", cerr))
		}
	}

	app.logger.Info(context.Background(), "App stopped")
	return err
}
