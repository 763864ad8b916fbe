package taskfile

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamcal/teamcal-api/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return NewStore(path, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestLoadMissingFileYieldsEmptyBook(t *testing.T) {
	store := newTestStore(t)

	book, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, book)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	book := domain.NewTaskBook()
	book.Append("eng", "2024-03-01", "write report")
	book.Append("eng", "2024-03-01", "review PR")
	book.Append("sales", "2024-03-05", "call client")

	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, book, loaded)

	// A second save of the loaded book must not change the document.
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded))
	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSavePreservesTaskOrder(t *testing.T) {
	store := newTestStore(t)

	book := domain.NewTaskBook()
	book.Append("eng", "2024-03-01", "first")
	book.Append("eng", "2024-03-01", "second")
	book.Append("eng", "2024-03-01", "third")
	require.NoError(t, store.Save(book))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, loaded.Tasks("eng", "2024-03-01"))
}

func TestLoadCorruptDocument(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageCorrupt)
}

func TestSaveDropsPrunedTeams(t *testing.T) {
	store := newTestStore(t)

	book := domain.NewTaskBook()
	book.Append("eng", "2024-03-01", "only task")
	require.NoError(t, store.Save(book))

	require.NoError(t, book.Remove("eng", "2024-03-01", 0))
	require.NoError(t, store.Save(book))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "eng", "pruned team must not appear in the document")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveDoesNotEscapeHTMLOrUnicode(t *testing.T) {
	store := newTestStore(t)

	book := domain.NewTaskBook()
	book.Append("eng", "2024-03-01", "리뷰 & <배포>")
	require.NoError(t, store.Save(book))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "리뷰 & <배포>")
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	store := newTestStore(t)

	book := domain.NewTaskBook()
	book.Append("eng", "2024-03-01", "task")
	require.NoError(t, store.Save(book))

	_, err := os.Stat(store.Path() + tmpSuffix)
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")
}
