package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/config"
	"bookshelf/internal/core"
	"bookshelf/internal/db"
	"bookshelf/internal/graph"
	"bookshelf/internal/http/handler"
	"bookshelf/internal/http/handler/middleware"
	"bookshelf/internal/http/payload"
	"bookshelf/internal/http/router"
	"bookshelf/internal/http/server"
	"bookshelf/internal/memstore"
	"bookshelf/internal/mongostore"
	"bookshelf/internal/repository"
	"bookshelf/pkg/jwt"
	"bookshelf/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("bookshelf", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	level := log.ParseLevel(config.LogLevel)
	logger := log.NewZapLogger("bookshelf", level)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, logger, config, level)
	if err != nil {
		logger.Errorw("failed to open user store", "store", config.Store, "error", err)
		return err
	}
	defer closeStore()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// bookshelf
	bookshelf := core.NewBookshelf(logger, store, jwtService)

	schema, err := graph.NewSchema(logger, bookshelf)
	if err != nil {
		logger.Errorw("failed to build graphql schema", "error", err)
		return err
	}

	// handler
	gqlHdlr := handler.NewGraphQLHandler(
		logger,
		payload.DecodeValidator{},
		schema)

	hdlr := router.New(logger,
		router.Options{
			AllowedOrigin: config.ClientOrigin,
			StaticDir:     config.StaticDir,
		},
		gqlHdlr,
		middleware.NewAuthMiddleware(logger, jwtService))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// openStore connects the user store selected by the database url and prepares its schema.
func openStore(ctx context.Context, logger *zap.SugaredLogger, cfg config.App, level zapcore.Level) (core.UserStore, func(), error) {
	switch cfg.Store {
	case config.StoreMongo:
		conn, err := db.NewMongoDB(ctx, cfg.DBConnectionURL, cfg.DBName)
		if err != nil {
			return nil, nil, err
		}
		store := mongostore.NewUserStore(conn.Collection(mongostore.UsersCollection))
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = conn.Close(ctx)
			return nil, nil, err
		}
		logger.Infow("using mongodb user store", "database", cfg.DBName)
		return store, func() {
			if err := conn.Close(context.Background()); err != nil {
				logger.Errorw("failed to close database", "error", err)
			}
		}, nil

	case config.StorePostgres:
		gormLevel := gormlogger.Warn
		if level == zapcore.DebugLevel {
			gormLevel = gormlogger.Info
		}
		conn, err := db.NewPostgresDB(cfg.DBConnectionURL, gormLevel)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewUserRepository(conn)
		if err := repo.MigrateTables(ctx); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.Infow("using postgres user store")
		return repo, func() {
			if err := conn.Close(); err != nil {
				logger.Errorw("failed to close database", "error", err)
			}
		}, nil

	case config.StoreMemory:
		logger.Warnw("using in-memory user store, data is lost on restart")
		return memstore.NewUserStore(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store kind %q", cfg.Store)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	return nil
}
