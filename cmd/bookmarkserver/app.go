package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Totarae/BookmarkServer/internal/config"
	grpcv2 "github.com/Totarae/BookmarkServer/internal/grpc/v2"
	"github.com/Totarae/BookmarkServer/internal/handlers"
	"github.com/Totarae/BookmarkServer/internal/router"
	"github.com/Totarae/BookmarkServer/internal/service"
	"github.com/Totarae/BookmarkServer/internal/storage"
	"github.com/Totarae/BookmarkServer/internal/validator"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

// listeners - открытые сокеты сервера. Admin и Health равны nil, если выключены.
type listeners struct {
	HTTP   net.Listener
	Admin  net.Listener
	Health net.Listener
}

func openListeners(cfg *config.Config) (*listeners, error) {
	lns := &listeners{}

	var err error
	lns.HTTP, err = net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}

	if cfg.AdminAddress != "" {
		lns.Admin, err = net.Listen("tcp", cfg.AdminAddress)
		if err != nil {
			lns.close()
			return nil, fmt.Errorf("listen admin %s: %w", cfg.AdminAddress, err)
		}
	}

	if cfg.GRPCHealthAddress != "" {
		lns.Health, err = net.Listen("tcp", cfg.GRPCHealthAddress)
		if err != nil {
			lns.close()
			return nil, fmt.Errorf("listen gRPC health %s: %w", cfg.GRPCHealthAddress, err)
		}
	}

	return lns, nil
}

func (l *listeners) close() {
	for _, ln := range []net.Listener{l.HTTP, l.Admin, l.Health} {
		if ln != nil {
			ln.Close()
		}
	}
}

type App struct {
	cfg    *config.Config
	logger *zap.Logger

	server *http.Server
	admin  *http.Server
	health *grpcv2.HealthServer
}

// NewApp собирает зависимости: одно хранилище на весь процесс, без глобальных переменных.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	store := storage.NewMemoryStore()
	checker := validator.NewHTTPChecker(cfg.CheckTimeout, logger)
	svc := service.NewBookmarkService(store, checker, logger)
	handler := handlers.NewHandler(svc, logger)

	a := &App{
		cfg:    cfg,
		logger: logger,
		server: &http.Server{
			Handler:           router.NewRouter(handler, logger),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	if cfg.AdminAddress != "" {
		a.admin = &http.Server{
			Handler:           router.NewAdminRouter(),
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}
	if cfg.GRPCHealthAddress != "" {
		a.health = grpcv2.NewHealthServer(logger)
	}
	return a
}

// Start запускает все серверы и пишет в errChan первую ошибку обслуживания.
func (a *App) Start(lns *listeners, errChan chan<- error) {
	report := func(err error) {
		select {
		case errChan <- err:
		default:
		}
	}

	if a.health != nil && lns.Health != nil {
		go func() {
			if err := a.health.Serve(lns.Health); err != nil {
				report(err)
			}
		}()
	}

	if a.admin != nil && lns.Admin != nil {
		go func() {
			a.logger.Info("Admin server started", zap.String("address", lns.Admin.Addr().String()))
			if err := a.admin.Serve(lns.Admin); err != nil && !errors.Is(err, http.ErrServerClosed) {
				report(fmt.Errorf("admin server: %w", err))
			}
		}()
	}

	go func() {
		a.logger.Info("Serving HTTP", zap.String("address", lns.HTTP.Addr().String()))
		if err := a.server.Serve(lns.HTTP); err != nil && !errors.Is(err, http.ErrServerClosed) {
			report(fmt.Errorf("http server: %w", err))
		}
	}()

	if a.health != nil {
		a.health.SetServing(true)
	}
}

// Stop переводит health в NOT_SERVING и дожидается завершения активных запросов.
func (a *App) Stop(ctx context.Context) error {
	if a.health != nil {
		a.health.SetServing(false)
	}

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if a.admin != nil {
		if err := a.admin.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("admin shutdown: %w", err))
		}
	}
	if a.health != nil {
		a.health.Stop()
	}
	return errors.Join(errs...)
}
