package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowbeak/stacks/pkg/structs"
)

func TestDeleteBookFiles(t *testing.T) {
	svc, db := newTestService(t)

	dir := t.TempDir()
	b := seedBook(t, db, "b1", "s1", "lib", filepath.Join(dir, "Alpha 01.cbz"), map[string][]byte{
		"001.jpg": []byte("cover"),
	})
	assert.Nil(t, db.UpsertIndex(structs.KindBook, "b1", "alpha 01"))

	assert.Nil(t, svc.DeleteBookFiles(context.Background(), b))

	_, err := os.Stat(b.Path)
	assert.True(t, os.IsNotExist(err))

	stored, err := db.Book("b1")
	assert.Nil(t, err)
	assert.Nil(t, stored)
	assert.Equal(t, "", db.IndexText(structs.KindBook, "b1"))
}

func TestDeleteBookFilesAlreadyGone(t *testing.T) {
	svc, db := newTestService(t)

	b := &structs.Book{ID: "b1", Path: filepath.Join(t.TempDir(), "never-existed.cbz")}
	assert.Nil(t, db.InsertBooks([]*structs.Book{b}))

	assert.Nil(t, svc.DeleteBookFiles(context.Background(), b))

	stored, err := db.Book("b1")
	assert.Nil(t, err)
	assert.Nil(t, stored)
}

func TestDeleteSeriesFiles(t *testing.T) {
	svc, db := newTestService(t)

	dir := t.TempDir()
	s := &structs.Series{ID: "s1", LibraryID: "lib", Path: filepath.Join(dir, "Alpha")}
	assert.Nil(t, db.InsertSeries([]*structs.Series{s}))
	seedBook(t, db, "b1", "s1", "lib", filepath.Join(s.Path, "Alpha 01.cbz"), map[string][]byte{
		"001.jpg": []byte("cover"),
	})

	assert.Nil(t, svc.DeleteSeriesFiles(context.Background(), s))

	_, err := os.Stat(s.Path)
	assert.True(t, os.IsNotExist(err))

	storedSeries, err := db.Series("s1")
	assert.Nil(t, err)
	assert.Nil(t, storedSeries)

	storedBook, err := db.Book("b1")
	assert.Nil(t, err)
	assert.Nil(t, storedBook)
}

func TestEmptyTrashReclaimsVanishedRecords(t *testing.T) {
	svc, db := newTestService(t)
	assert.Nil(t, db.InsertLibrary(&structs.Library{ID: "lib"}))

	dir := t.TempDir()

	// a trashed book whose file is really gone gets reclaimed
	gone := &structs.Book{ID: "b-gone", SeriesID: "s1", LibraryID: "lib", Path: filepath.Join(dir, "gone.cbz"), Trashed: true}
	// a trashed book whose file reappeared is left for the next scan
	restored := seedBook(t, db, "b-restored", "s1", "lib", filepath.Join(dir, "restored.cbz"), map[string][]byte{
		"001.jpg": []byte("cover"),
	})
	restored.Trashed = true
	assert.Nil(t, db.InsertBooks([]*structs.Book{gone}))
	assert.Nil(t, db.UpdateBook(restored))

	// an empty trashed series goes, one still holding books stays
	assert.Nil(t, db.InsertSeries([]*structs.Series{
		{ID: "s-empty", LibraryID: "lib", Path: filepath.Join(dir, "Empty"), Trashed: true},
		{ID: "s1", LibraryID: "lib", Path: dir, Trashed: true},
	}))

	assert.Nil(t, svc.EmptyTrash(context.Background(), &structs.Library{ID: "lib"}))

	b, err := db.Book("b-gone")
	assert.Nil(t, err)
	assert.Nil(t, b)

	b, err = db.Book("b-restored")
	assert.Nil(t, err)
	assert.NotNil(t, b)

	s, err := db.Series("s-empty")
	assert.Nil(t, err)
	assert.Nil(t, s)

	s, err = db.Series("s1")
	assert.Nil(t, err)
	assert.NotNil(t, s)
}

func TestRebuildIndexEverything(t *testing.T) {
	svc, db := newTestService(t)

	assert.Nil(t, db.InsertLibrary(&structs.Library{ID: "lib", Name: "Main"}))
	assert.Nil(t, db.InsertSeries([]*structs.Series{{ID: "s1", LibraryID: "lib", Name: "Alpha"}}))
	assert.Nil(t, db.InsertBooks([]*structs.Book{{ID: "b1", SeriesID: "s1", LibraryID: "lib", Name: "Alpha 01"}}))

	assert.Nil(t, svc.RebuildIndex(context.Background(), nil))

	assert.Equal(t, "main", db.IndexText(structs.KindLibrary, "lib"))
	assert.Equal(t, "alpha", db.IndexText(structs.KindSeries, "s1"))
	assert.Equal(t, "alpha 01", db.IndexText(structs.KindBook, "b1"))
}

func TestRebuildIndexSingleRefAndStaleRef(t *testing.T) {
	svc, db := newTestService(t)

	assert.Nil(t, db.InsertBooks([]*structs.Book{{ID: "b1", Name: "Alpha 01"}}))
	assert.Nil(t, db.UpsertIndex(structs.KindBook, "b-stale", "stale row"))

	refs := []*structs.ObjectRef{
		structs.NewObjectRef("b1").Book(),
		structs.NewObjectRef("b-stale").Book(),
	}
	assert.Nil(t, svc.RebuildIndex(context.Background(), refs))

	assert.Equal(t, "alpha 01", db.IndexText(structs.KindBook, "b1"))
	assert.Equal(t, "", db.IndexText(structs.KindBook, "b-stale"))
}
