package storage

import (
	"sort"
	"sync"

	"github.com/Totarae/BookmarkServer/internal/model"
)

var _ Storage = (*MemoryStore)(nil)

// MemoryStore provides a thread-safe bookmark storage.
// Данные живут только пока жив процесс.
type MemoryStore struct {
	data  map[string]string
	mutex sync.RWMutex
}

// NewMemoryStore initializes an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Get retrieves the long URI by its short name
func (s *MemoryStore) Get(name string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	uri, exists := s.data[name]
	return uri, exists
}

// Set stores a bookmark, last write wins
func (s *MemoryStore) Set(name, uri string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[name] = uri
}

// Snapshot копирует содержимое под одной блокировкой чтения,
// поэтому срез соответствует одному моменту времени.
func (s *MemoryStore) Snapshot() []model.Bookmark {
	s.mutex.RLock()
	bookmarks := make([]model.Bookmark, 0, len(s.data))
	for name, uri := range s.data {
		bookmarks = append(bookmarks, model.Bookmark{Name: name, URI: uri})
	}
	s.mutex.RUnlock()

	sort.Slice(bookmarks, func(i, j int) bool {
		return bookmarks[i].Name < bookmarks[j].Name
	})
	return bookmarks
}

// Len returns the number of stored bookmarks
func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
