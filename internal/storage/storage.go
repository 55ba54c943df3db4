package storage

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mock.go -package=mocks

import (
	"github.com/Totarae/BookmarkServer/internal/model"
)

// Storage определяет интерфейс хранилища закладок.
type Storage interface {
	// Get возвращает URI по короткому имени.
	Get(name string) (string, bool)
	// Set сохраняет или перезаписывает URI для короткого имени.
	Set(name, uri string)
	// Snapshot возвращает копию всех закладок, отсортированную по имени.
	Snapshot() []model.Bookmark
	// Len возвращает количество сохранённых закладок.
	Len() int
}
