// Command bookmarkserver хранит короткие имена для длинных URI в памяти
// и перенаправляет по ним.
//
// Настраивается только переменными окружения: PORT, BIND_ADDRESS,
// CHECK_TIMEOUT, SHUTDOWN_TIMEOUT, LOG_LEVEL, ADMIN_ADDRESS, GRPC_HEALTH_ADDRESS.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Totarae/BookmarkServer/internal/config"
	"github.com/Totarae/BookmarkServer/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := realMain(); err != nil {
		log.Fatalf("bookmarkserver: %v", err)
	}
}

// realMain не завершает процесс сам: stop и Sync выполняются до выхода из main.
func realMain() error {
	// Инициализация конфигурации
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Error("Ошибка сервера", zap.Error(err))
		return err
	}
	zl.Info("Сервер остановлен")
	return nil
}

// run обслуживает запросы до отмены ctx или первой ошибки сервера.
func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	lns, err := openListeners(cfg)
	if err != nil {
		return err
	}
	return serve(ctx, NewApp(cfg, zl), lns)
}

func serve(ctx context.Context, a *App, lns *listeners) error {
	errChan := make(chan error, 1)
	a.Start(lns, errChan)

	var serveErr error
	select {
	case serveErr = <-errChan:
	case <-ctx.Done():
		a.logger.Info("Получен сигнал остановки")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.Stop(shutdownCtx); err != nil && serveErr == nil {
		return err
	}
	return serveErr
}
