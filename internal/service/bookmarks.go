package service

import (
	"context"
	"errors"

	"github.com/Totarae/BookmarkServer/internal/metrics"
	"github.com/Totarae/BookmarkServer/internal/model"
	"github.com/Totarae/BookmarkServer/internal/storage"
	"github.com/Totarae/BookmarkServer/internal/validator"
	"go.uber.org/zap"
)

// ErrURIUnreachable возвращается, когда длинный URI не ответил 200.
var ErrURIUnreachable = errors.New("uri is unreachable")

type BookmarkService struct {
	Store   storage.Storage
	Checker validator.Checker
	Logger  *zap.Logger
}

func NewBookmarkService(store storage.Storage, checker validator.Checker, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{
		Store:   store,
		Checker: checker,
		Logger:  logger,
	}
}

// Save проверяет URI и только после успешной проверки сохраняет закладку.
// Единственная ошибка - ErrURIUnreachable.
// Проверка блокирует запрос не дольше таймаута Checker.
func (s *BookmarkService) Save(ctx context.Context, name, uri string) error {
	if !s.Checker.Check(ctx, uri) {
		s.Logger.Info("bookmark rejected", zap.String("short_name", name), zap.String("long_uri", uri))
		return ErrURIUnreachable
	}

	s.Store.Set(name, uri)
	metrics.BookmarksStored.Set(float64(s.Store.Len()))
	s.Logger.Info("bookmark saved", zap.String("short_name", name), zap.String("long_uri", uri))
	return nil
}

func (s *BookmarkService) Resolve(name string) (string, bool) {
	uri, ok := s.Store.Get(name)
	if ok {
		metrics.RedirectsTotal.Inc()
	}
	return uri, ok
}

// List возвращает все закладки, отсортированные по имени.
func (s *BookmarkService) List() []model.Bookmark {
	return s.Store.Snapshot()
}
