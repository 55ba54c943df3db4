// Package validator проверяет доступность URI одним GET-запросом.
package validator

import (
	"context"
	"net/http"
	"time"

	"github.com/Totarae/BookmarkServer/internal/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=validator.go -destination=../mocks/checker_mock.go -package=mocks

// DefaultTimeout - ограничение на одну проверку, если не задано другое.
const DefaultTimeout = 5 * time.Second

// Checker сообщает, отвечает ли URI статусом 200 прямо сейчас.
type Checker interface {
	Check(ctx context.Context, uri string) bool
}

var _ Checker = (*HTTPChecker)(nil)

// HTTPChecker выполняет ровно одну попытку без повторов.
type HTTPChecker struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPChecker создаёт проверку с жёстким таймаутом на весь запрос.
func NewHTTPChecker(timeout time.Duration, logger *zap.Logger) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Check returns true if and only if the final response status is 200.
// Любая ошибка (разбор URI, DNS, соединение, таймаут) сводится к false.
func (c *HTTPChecker) Check(ctx context.Context, uri string) bool {
	start := time.Now()
	ok := c.do(ctx, uri)
	metrics.RecordCheck(ok, time.Since(start).Seconds())
	return ok
}

// Отключение клиента не прерывает проверку, её ограничивает только таймаут.
func (c *HTTPChecker) do(ctx context.Context, uri string) bool {
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, uri, nil)
	if err != nil {
		c.logger.Debug("malformed URI", zap.String("uri", uri), zap.Error(err))
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("URI check failed", zap.String("uri", uri), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	c.logger.Debug("URI checked",
		zap.String("uri", uri),
		zap.Int("status", resp.StatusCode),
	)
	return resp.StatusCode == http.StatusOK
}
