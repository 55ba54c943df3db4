package router

import (
	"net/http"

	"github.com/Totarae/BookmarkServer/internal/handlers"
	"github.com/Totarae/BookmarkServer/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает публичный маршрутизатор.
// Любой путь, кроме корня, считается коротким именем, поэтому служебные
// эндпоинты вынесены в NewAdminRouter.
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.MetricsMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.GzipMiddleware) // Gzip-сжатие

	r.Get("/", handler.ShowForm)
	r.Get("/*", handler.ResolveName)
	r.Post("/", handler.ReceiveBookmark)
	r.Post("/*", handler.ReceiveBookmark)
	return r
}

// NewAdminRouter отдаёт метрики prometheus и проверку живости.
func NewAdminRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("pong"))
	})
	return r
}
