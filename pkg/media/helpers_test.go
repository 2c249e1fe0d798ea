package media

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/structs"
)

func newTestService(t *testing.T) (*Service, *database.Memory) {
	t.Helper()
	db := database.NewMemory()
	svc := New(db, &Options{ThumbnailDir: t.TempDir()}, zerolog.Nop())
	return svc, db
}

// writeArchive writes a zip archive with the given entries, in name order.
func writeArchive(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	assert.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))

	f, err := os.Create(path)
	assert.Nil(t, err)

	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)

	w := zip.NewWriter(f)
	for _, n := range names {
		dst, err := w.Create(n)
		assert.Nil(t, err)
		_, err = dst.Write(entries[n])
		assert.Nil(t, err)
	}
	assert.Nil(t, w.Close())
	assert.Nil(t, f.Close())
}

// seedBook writes an archive to disk and registers a matching book record.
func seedBook(t *testing.T, db *database.Memory, id, seriesID, libraryID, path string, entries map[string][]byte) *structs.Book {
	t.Helper()
	writeArchive(t, path, entries)

	info, err := os.Stat(path)
	assert.Nil(t, err)

	b := &structs.Book{
		ID:        id,
		SeriesID:  seriesID,
		LibraryID: libraryID,
		Name:      stripExtension(filepath.Base(path)),
		Path:      path,
		Extension: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		FileSize:  info.Size(),
		UpdatedAt: info.ModTime().Unix(),
	}
	assert.Nil(t, db.InsertBooks([]*structs.Book{b}))
	return b
}
