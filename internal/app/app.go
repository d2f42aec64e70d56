package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres"
	itemrepo "github.com/magadiflo/todo-list-backend/internal/adapter/postgres/item"
	itemtagrepo "github.com/magadiflo/todo-list-backend/internal/adapter/postgres/itemtag"
	personrepo "github.com/magadiflo/todo-list-backend/internal/adapter/postgres/person"
	tagrepo "github.com/magadiflo/todo-list-backend/internal/adapter/postgres/tag"
	"github.com/magadiflo/todo-list-backend/internal/config"
	itemsvc "github.com/magadiflo/todo-list-backend/internal/service/item"
	personsvc "github.com/magadiflo/todo-list-backend/internal/service/person"
	tagsvc "github.com/magadiflo/todo-list-backend/internal/service/tag"
	"github.com/magadiflo/todo-list-backend/internal/transport/middleware"
	"github.com/magadiflo/todo-list-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires repositories, services and
// handlers, and serves HTTP until the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	items := itemrepo.New(pool)
	edges := itemtagrepo.New(pool)
	tags := tagrepo.New(pool)
	persons := personrepo.New(pool)

	itemService := itemsvc.NewService(logger, items, edges, tags, persons, txManager)
	personService := personsvc.NewService(logger, persons)
	tagService := tagsvc.NewService(logger, tags)

	router := rest.NewRouter(rest.Handlers{
		Item:   rest.NewItemHandler(itemService, logger),
		Person: rest.NewPersonHandler(personService, logger),
		Tag:    rest.NewTagHandler(tagService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
