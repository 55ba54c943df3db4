package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// DefaultPort используется, когда PORT не задан или не является корректным портом.
const DefaultPort = 8000

// Config хранит конфигурацию сервера
type Config struct {
	Port              int
	BindAddress       string
	CheckTimeout      time.Duration
	ShutdownTimeout   time.Duration
	LogLevel          string
	AdminAddress      string
	GRPCHealthAddress string
}

// NewConfig собирает конфигурацию из переменных окружения.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("PORT", strconv.Itoa(DefaultPort)) // Значения по умолчанию
	v.SetDefault("BIND_ADDRESS", "")
	v.SetDefault("CHECK_TIMEOUT", "5s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ADMIN_ADDRESS", "")
	v.SetDefault("GRPC_HEALTH_ADDRESS", "")

	v.AutomaticEnv()

	return &Config{
		Port:              parsePort(v.GetString("PORT")),
		BindAddress:       v.GetString("BIND_ADDRESS"),
		CheckTimeout:      v.GetDuration("CHECK_TIMEOUT"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		AdminAddress:      v.GetString("ADMIN_ADDRESS"),
		GRPCHealthAddress: v.GetString("GRPC_HEALTH_ADDRESS"),
	}
}

// 0 допустим: система выберет свободный порт сама.
func parsePort(raw string) int {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 0 || port > 65535 {
		return DefaultPort
	}
	return port
}

// Addr возвращает адрес, на котором слушает основной HTTP-сервер.
func (cfg *Config) Addr() string {
	return net.JoinHostPort(cfg.BindAddress, strconv.Itoa(cfg.Port))
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.CheckTimeout <= 0 {
		return fmt.Errorf("таймаут проверки URI должен быть положительным: %v", cfg.CheckTimeout)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("таймаут остановки должен быть положительным: %v", cfg.ShutdownTimeout)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("неизвестный уровень логирования %q: %w", cfg.LogLevel, err)
	}
	return nil
}
