package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Totarae/BookmarkServer/internal/service"
	"github.com/Totarae/BookmarkServer/internal/storage"
	"go.uber.org/zap"
)

type alwaysReachable struct{}

func (alwaysReachable) Check(ctx context.Context, uri string) bool { return true }

// ExampleHandler_ReceiveBookmark демонстрирует сохранение закладки и редирект по ней.
func ExampleHandler_ReceiveBookmark() {
	logger := zap.NewNop()
	svc := service.NewBookmarkService(storage.NewMemoryStore(), alwaysReachable{}, logger)
	h := NewHandler(svc, logger)

	body := "long_uri=https%3A%2F%2Fgo.dev&short_name=go"
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ReceiveBookmark(rec, req)

	fmt.Println(rec.Code, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ResolveName(rec, httptest.NewRequest(http.MethodGet, "/go", nil))

	fmt.Println(rec.Code, rec.Header().Get("Location"))

	// Output:
	// 303 /
	// 303 https://go.dev
}
