package storage_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Totarae/BookmarkServer/internal/model"
	"github.com/Totarae/BookmarkServer/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест сохранения и получения закладки
func TestMemoryStore_SetAndGet(t *testing.T) {
	store := storage.NewMemoryStore()

	store.Set("ya", "https://yandex.ru")

	got, ok := store.Get("ya")
	assert.True(t, ok)
	assert.Equal(t, "https://yandex.ru", got)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := storage.NewMemoryStore()

	got, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, got)
}

// Повторная запись под тем же именем перезаписывает значение
func TestMemoryStore_Overwrite(t *testing.T) {
	store := storage.NewMemoryStore()

	store.Set("mail", "https://mail.ru")
	store.Set("mail", "https://gmail.com")

	got, ok := store.Get("mail")
	assert.True(t, ok)
	assert.Equal(t, "https://gmail.com", got)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_SnapshotSorted(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set("vk", "https://vk.com")
	store.Set("avito", "https://avito.ru")
	store.Set("Zed", "https://zed.dev")
	store.Set("mail", "https://mail.ru")

	want := []model.Bookmark{
		{Name: "Zed", URI: "https://zed.dev"},
		{Name: "avito", URI: "https://avito.ru"},
		{Name: "mail", URI: "https://mail.ru"},
		{Name: "vk", URI: "https://vk.com"},
	}
	assert.Equal(t, want, store.Snapshot())
}

func TestMemoryStore_SnapshotIsCopy(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set("a", "https://a.example")

	snap := store.Snapshot()
	snap[0].URI = "changed"

	got, _ := store.Get("a")
	assert.Equal(t, "https://a.example", got)
	assert.Empty(t, storage.NewMemoryStore().Snapshot())
}

// Параллельная запись разных ключей не теряет обновлений
func TestMemoryStore_ConcurrentDistinctKeys(t *testing.T) {
	store := storage.NewMemoryStore()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Set(fmt.Sprintf("name-%03d", i), fmt.Sprintf("https://example.com/%d", i))
			_ = store.Snapshot()
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, store.Len())
	snap := store.Snapshot()
	require.Len(t, snap, n)
	for i, b := range snap {
		assert.Equal(t, fmt.Sprintf("name-%03d", i), b.Name)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), b.URI)
	}
}

// Параллельная запись одного ключа оставляет ровно одно из значений
func TestMemoryStore_ConcurrentSameKey(t *testing.T) {
	store := storage.NewMemoryStore()
	const m = 100

	submitted := make(map[string]struct{}, m)
	for i := 0; i < m; i++ {
		submitted[fmt.Sprintf("https://example.com/%d", i)] = struct{}{}
	}

	var wg sync.WaitGroup
	for uri := range submitted {
		wg.Add(1)
		go func(uri string) {
			defer wg.Done()
			store.Set("same", uri)
		}(uri)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	got, ok := store.Get("same")
	require.True(t, ok)
	assert.Contains(t, submitted, got)
}
