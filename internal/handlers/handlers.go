package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Totarae/BookmarkServer/internal/model"
	"github.com/Totarae/BookmarkServer/internal/util"
	"go.uber.org/zap"
)

const (
	fieldLongURI   = "long_uri"
	fieldShortName = "short_name"

	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

// form - страница с формой и списком известных закладок.
const form = `<!DOCTYPE html>
<title>Bookmark Server</title>
<form method="POST">
    <label>Long URI:
        <input name="long_uri">
    </label>
    <br>
    <label>Short name:
        <input name="short_name">
    </label>
    <br>
    <button type="submit">Save it!</button>
</form>
<p>URIs I know about:
<pre>
%s
</pre>
`

// BookmarkService описывает бизнес-логику, нужную обработчикам.
type BookmarkService interface {
	Save(ctx context.Context, name, uri string) error
	Resolve(name string) (string, bool)
	List() []model.Bookmark
}

// Handler обрабатывает HTTP-запросы сервера закладок.
type Handler struct {
	svc    BookmarkService
	logger *zap.Logger
}

func NewHandler(svc BookmarkService, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// ShowForm отдаёт форму со списком закладок, отсортированным по имени.
func (h *Handler) ShowForm(res http.ResponseWriter, req *http.Request) {
	bookmarks := h.svc.List()
	lines := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		lines = append(lines, fmt.Sprintf("%s : %s", b.Name, b.URI))
	}

	res.Header().Set("Content-Type", contentTypeHTML)
	res.WriteHeader(http.StatusOK)
	fmt.Fprintf(res, form, strings.Join(lines, "\n"))
}

// ResolveName перенаправляет на длинный URI по короткому имени.
// Имя - весь декодированный путь без ведущего "/", сравнение буквальное.
func (h *Handler) ResolveName(res http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(req.URL.Path, "/")
	if name == "" {
		h.ShowForm(res, req)
		return
	}

	uri, ok := h.svc.Resolve(name)
	if !ok {
		res.Header().Set("Content-Type", contentTypeText)
		res.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(res, "I don't know '%s'.", name)
		return
	}

	res.Header().Set("Location", uri)
	res.WriteHeader(http.StatusSeeOther)
}

// ReceiveBookmark принимает форму с long_uri и short_name.
// Каждая ветка завершает обработку сразу после записи ответа.
func (h *Handler) ReceiveBookmark(res http.ResponseWriter, req *http.Request) {
	values, err := util.ParseForm(req.Body)
	if err != nil {
		h.logger.Debug("bad form body", zap.Error(err))
		writeText(res, http.StatusBadRequest, "All fields are mandatory")
		return
	}

	longURI, okURI := util.FirstValue(values, fieldLongURI)
	shortName, okName := util.FirstValue(values, fieldShortName)
	if !okURI || !okName {
		writeText(res, http.StatusBadRequest, "All fields are mandatory")
		return
	}

	// Save отказывает только по недоступному URI.
	if err := h.svc.Save(req.Context(), shortName, longURI); err != nil {
		h.logger.Debug("bookmark not saved", zap.String("short_name", shortName), zap.Error(err))
		writeText(res, http.StatusNotFound, fmt.Sprintf("URI couldn't be found: %s", longURI))
		return
	}

	res.Header().Set("Location", "/")
	res.WriteHeader(http.StatusSeeOther)
}

func writeText(res http.ResponseWriter, status int, body string) {
	res.Header().Set("Content-Type", contentTypeText)
	res.WriteHeader(status)
	res.Write([]byte(body))
}
