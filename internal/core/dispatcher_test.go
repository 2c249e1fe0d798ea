package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/queue"
	"github.com/hollowbeak/stacks/pkg/structs"
)

type engine struct {
	disp  *Dispatcher
	db    *database.Memory
	qu    *queue.Memory
	fakes *fakeSet
	sink  *recordingSink
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	db := database.NewMemory()
	qu := queue.NewMemoryQueue()
	fakes, col := newFakes()
	sink := newRecordingSink()
	return &engine{
		disp:  NewDispatcher(db, NewEmitter(qu, db), sink, col, zerolog.Nop()),
		db:    db,
		qu:    qu,
		fakes: fakes,
		sink:  sink,
	}
}

func (e *engine) seed(t *testing.T) {
	t.Helper()
	assert.Nil(t, e.db.InsertLibrary(&structs.Library{ID: "lib", Root: "/data"}))
	assert.Nil(t, e.db.InsertSeries([]*structs.Series{{ID: "s1", LibraryID: "lib", Path: "/data/alpha"}}))
	assert.Nil(t, e.db.InsertBooks([]*structs.Book{{ID: "b1", SeriesID: "s1", LibraryID: "lib", PageCount: 3}}))
}

func (e *engine) drain(t *testing.T) []*structs.Task {
	t.Helper()
	out := []*structs.Task{}
	for {
		n, err := e.qu.Len(context.Background())
		assert.Nil(t, err)
		if n == 0 {
			return out
		}
		task, err := e.qu.Dequeue(context.Background())
		assert.Nil(t, err)
		out = append(out, task)
	}
}

func TestDispatchStaleReferenceIsSilentSuccess(t *testing.T) {
	cases := []struct {
		name string
		task *structs.Task
	}{
		{"scan library", &structs.Task{Type: structs.TaskScanLibrary, LibraryID: "gone"}},
		{"find books to convert", &structs.Task{Type: structs.TaskFindBooksToConvert, LibraryID: "gone"}},
		{"find missing page hash", &structs.Task{Type: structs.TaskFindBooksWithMissingPageHash, LibraryID: "gone"}},
		{"find duplicate pages", &structs.Task{Type: structs.TaskFindDuplicatePagesToDelete, LibraryID: "gone"}},
		{"empty trash", &structs.Task{Type: structs.TaskEmptyTrash, LibraryID: "gone"}},
		{"analyze book", &structs.Task{Type: structs.TaskAnalyzeBook, BookID: "gone"}},
		{"thumbnail", &structs.Task{Type: structs.TaskGenerateBookThumbnail, BookID: "gone"}},
		{"refresh book metadata", &structs.Task{Type: structs.TaskRefreshBookMetadata, BookID: "gone"}},
		{"refresh series metadata", &structs.Task{Type: structs.TaskRefreshSeriesMetadata, SeriesID: "gone"}},
		{"aggregate series metadata", &structs.Task{Type: structs.TaskAggregateSeriesMetadata, SeriesID: "gone"}},
		{"book local artwork", &structs.Task{Type: structs.TaskRefreshBookLocalArtwork, BookID: "gone"}},
		{"series local artwork", &structs.Task{Type: structs.TaskRefreshSeriesLocalArtwork, SeriesID: "gone"}},
		{"import book", &structs.Task{Type: structs.TaskImportBook, SeriesID: "gone", SourceFile: "/x.cbz"}},
		{"convert book", &structs.Task{Type: structs.TaskConvertBook, BookID: "gone"}},
		{"repair extension", &structs.Task{Type: structs.TaskRepairExtension, BookID: "gone"}},
		{"remove hashed pages", &structs.Task{Type: structs.TaskRemoveHashedPages, BookID: "gone", Pages: []int{2}}},
		{"hash book", &structs.Task{Type: structs.TaskHashBook, BookID: "gone"}},
		{"hash book pages", &structs.Task{Type: structs.TaskHashBookPages, BookID: "gone"}},
		{"delete book", &structs.Task{Type: structs.TaskDeleteBook, BookID: "gone"}},
		{"delete series", &structs.Task{Type: structs.TaskDeleteSeries, SeriesID: "gone"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newEngine(t)

			e.disp.Handle(context.Background(), c.task)

			assert.Equal(t, 0, len(e.drain(t)))
			durations, failures := e.sink.recorded(c.task.Type)
			assert.Equal(t, 1, durations)
			assert.Equal(t, 0, failures)
		})
	}
}

func TestDispatchUnknownTypeFails(t *testing.T) {
	e := newEngine(t)

	e.disp.Handle(context.Background(), &structs.Task{Type: "Bogus"})

	durations, failures := e.sink.recorded("Bogus")
	assert.Equal(t, 0, durations)
	assert.Equal(t, 1, failures)
}

func TestDispatchAnalyzeBookFanOutOnChange(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.analyzer.analyze = func(_ context.Context, b *structs.Book) (bool, error) {
		return true, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskAnalyzeBook, BookID: "b1", Priority: 2})

	children := e.drain(t)
	assert.Equal(t, 2, len(children))
	assert.Equal(t, structs.TaskGenerateBookThumbnail, children[0].Type)
	assert.Equal(t, structs.TaskRefreshBookMetadata, children[1].Type)
	for _, c := range children {
		assert.Equal(t, 3, c.Priority)
		assert.Equal(t, "b1", c.BookID)
	}
}

func TestDispatchAnalyzeBookNoChangeNoFanOut(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.analyzer.analyze = func(_ context.Context, b *structs.Book) (bool, error) {
		return false, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskAnalyzeBook, BookID: "b1", Priority: 2})

	assert.Equal(t, 0, len(e.drain(t)))
	durations, failures := e.sink.recorded(structs.TaskAnalyzeBook)
	assert.Equal(t, 1, durations)
	assert.Equal(t, 0, failures)
}

func TestDispatchRefreshBookMetadataChain(t *testing.T) {
	e := newEngine(t)
	e.seed(t)

	var gotCaps []string
	e.fakes.metadata.refreshBook = func(_ context.Context, b *structs.Book, capabilities []string) error {
		gotCaps = capabilities
		return nil
	}

	e.disp.Handle(context.Background(), &structs.Task{
		Type:         structs.TaskRefreshBookMetadata,
		BookID:       "b1",
		Priority:     4,
		Capabilities: []string{"comicinfo"},
	})

	assert.Equal(t, []string{"comicinfo"}, gotCaps)

	children := e.drain(t)
	assert.Equal(t, 1, len(children))
	assert.Equal(t, structs.TaskRefreshSeriesMetadata, children[0].Type)
	assert.Equal(t, "s1", children[0].SeriesID)
	// series aggregation is bumped ahead of the parent's tier
	assert.Equal(t, 3, children[0].Priority)
}

func TestDispatchRefreshSeriesMetadataEmitsAggregate(t *testing.T) {
	e := newEngine(t)
	e.seed(t)

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskRefreshSeriesMetadata, SeriesID: "s1", Priority: 3})

	children := e.drain(t)
	assert.Equal(t, 1, len(children))
	assert.Equal(t, structs.TaskAggregateSeriesMetadata, children[0].Type)
	assert.Equal(t, "s1", children[0].SeriesID)
	assert.Equal(t, 3, children[0].Priority)
}

func TestDispatchImportBookEmitsAnalyze(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.importer.imp = func(_ context.Context, s *structs.Series, sourceFile, destinationName string, mode structs.CopyMode, upgradeBookID string) (*structs.Book, error) {
		assert.Equal(t, "s1", s.ID)
		assert.Equal(t, "/incoming/x.cbz", sourceFile)
		assert.Equal(t, structs.CopyModeCopy, mode)
		return &structs.Book{ID: "b-new", SeriesID: "s1"}, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{
		Type:       structs.TaskImportBook,
		SeriesID:   "s1",
		SourceFile: "/incoming/x.cbz",
		CopyMode:   structs.CopyModeCopy,
		Priority:   0,
	})

	children := e.drain(t)
	assert.Equal(t, 1, len(children))
	assert.Equal(t, structs.TaskAnalyzeBook, children[0].Type)
	assert.Equal(t, "b-new", children[0].BookID)
	assert.Equal(t, 1, children[0].Priority)
}

func TestDispatchImportBookStaleSeriesSkipsImport(t *testing.T) {
	e := newEngine(t)

	imported := false
	e.fakes.importer.imp = func(_ context.Context, s *structs.Series, _, _ string, _ structs.CopyMode, _ string) (*structs.Book, error) {
		imported = true
		return nil, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskImportBook, SeriesID: "gone", SourceFile: "/x.cbz"})

	assert.False(t, imported)
	assert.Equal(t, 0, len(e.drain(t)))
	durations, failures := e.sink.recorded(structs.TaskImportBook)
	assert.Equal(t, 1, durations)
	assert.Equal(t, 0, failures)
}

func TestDispatchScanLibraryFanOut(t *testing.T) {
	e := newEngine(t)
	// one book never analyzed and never hashed: it shows up in both the
	// analyze batch and the hash batch
	assert.Nil(t, e.db.InsertLibrary(&structs.Library{ID: "lib", Root: "/data"}))
	assert.Nil(t, e.db.InsertSeries([]*structs.Series{{ID: "s1", LibraryID: "lib"}}))
	assert.Nil(t, e.db.InsertBooks([]*structs.Book{{ID: "b1", SeriesID: "s1", LibraryID: "lib"}}))

	scanned := false
	e.fakes.scanner.scan = func(_ context.Context, lib *structs.Library) error {
		scanned = true
		return nil
	}
	e.fakes.converter.toRepair = func(_ context.Context, lib *structs.Library) ([]*structs.Book, error) {
		return []*structs.Book{{ID: "b1"}}, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskScanLibrary, LibraryID: "lib"})

	assert.True(t, scanned)

	children := e.drain(t)
	types := []structs.TaskType{}
	for _, c := range children {
		types = append(types, c.Type)
	}
	// delivery order: analyze at normal, repair at low, then the lowest
	// tier FIFO in emission order
	assert.Equal(t, []structs.TaskType{
		structs.TaskAnalyzeBook,
		structs.TaskRepairExtension,
		structs.TaskFindBooksToConvert,
		structs.TaskFindBooksWithMissingPageHash,
		structs.TaskFindDuplicatePagesToDelete,
		structs.TaskHashBook,
	}, types)

	assert.Equal(t, structs.PriorityNormal, children[0].Priority)
	assert.Equal(t, structs.PriorityLow, children[1].Priority)
	for _, c := range children[2:] {
		assert.Equal(t, structs.PriorityLowest, c.Priority)
	}
}

func TestDispatchFindBooksToConvertEmitsPerBook(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.converter.toConv = func(_ context.Context, lib *structs.Library) ([]*structs.Book, error) {
		return []*structs.Book{{ID: "b1"}, {ID: "b2"}}, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskFindBooksToConvert, LibraryID: "lib", Priority: 8})

	children := e.drain(t)
	assert.Equal(t, 2, len(children))
	for _, c := range children {
		assert.Equal(t, structs.TaskConvertBook, c.Type)
		assert.Equal(t, 9, c.Priority)
	}
}

func TestDispatchFindMissingPageHashIsIdempotent(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.hasher.missing = func(_ context.Context, lib *structs.Library) ([]*structs.Book, error) {
		return []*structs.Book{{ID: "b1"}}, nil
	}

	task := &structs.Task{Type: structs.TaskFindBooksWithMissingPageHash, LibraryID: "lib", Priority: 8}

	e.disp.Handle(context.Background(), task)
	first := e.drain(t)

	e.disp.Handle(context.Background(), task)
	second := e.drain(t)

	assert.Equal(t, 1, len(first))
	assert.Equal(t, 1, len(second))
	assert.Equal(t, structs.TaskHashBookPages, first[0].Type)
	assert.Equal(t, first[0].Type, second[0].Type)
	assert.Equal(t, first[0].BookID, second[0].BookID)
	assert.Equal(t, first[0].Priority, second[0].Priority)
}

func TestDispatchFindDuplicatePagesEmitsRemovals(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.hasher.deletable = func(_ context.Context, lib *structs.Library) (map[string][]int, error) {
		return map[string][]int{"b1": {2, 3}}, nil
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskFindDuplicatePagesToDelete, LibraryID: "lib", Priority: 8})

	children := e.drain(t)
	assert.Equal(t, 1, len(children))
	assert.Equal(t, structs.TaskRemoveHashedPages, children[0].Type)
	assert.Equal(t, "b1", children[0].BookID)
	assert.Equal(t, []int{2, 3}, children[0].Pages)
	assert.Equal(t, 9, children[0].Priority)
}

func TestDispatchDomainFailureIsCountedNotThrown(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.analyzer.analyze = func(_ context.Context, b *structs.Book) (bool, error) {
		return false, fmt.Errorf("corrupt archive")
	}

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskAnalyzeBook, BookID: "b1"})

	assert.Equal(t, 0, len(e.drain(t)))
	durations, failures := e.sink.recorded(structs.TaskAnalyzeBook)
	assert.Equal(t, 0, durations)
	assert.Equal(t, 1, failures)
}

func TestDispatchPanicIsIsolated(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.thumbnails.generate = func(_ context.Context, b *structs.Book) error {
		panic("renderer blew up")
	}

	assert.NotPanics(t, func() {
		e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskGenerateBookThumbnail, BookID: "b1"})
	})

	durations, failures := e.sink.recorded(structs.TaskGenerateBookThumbnail)
	assert.Equal(t, 0, durations)
	assert.Equal(t, 1, failures)
}

func TestDispatchTransportFailureFailsParent(t *testing.T) {
	e := newEngine(t)
	e.seed(t)
	e.fakes.analyzer.analyze = func(_ context.Context, b *structs.Book) (bool, error) {
		return true, nil
	}

	// fan-out has nowhere to go: the parent fails even though its own
	// work succeeded
	assert.Nil(t, e.qu.Close())

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskAnalyzeBook, BookID: "b1"})

	durations, failures := e.sink.recorded(structs.TaskAnalyzeBook)
	assert.Equal(t, 0, durations)
	assert.Equal(t, 1, failures)
}

func TestDispatchBookDeletedBeforeHash(t *testing.T) {
	e := newEngine(t)
	e.seed(t)

	hashed := false
	e.fakes.hasher.hashPages = func(_ context.Context, b *structs.Book) error {
		hashed = true
		return nil
	}

	assert.Nil(t, e.db.DeleteBook("b1"))

	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskHashBookPages, BookID: "b1"})

	assert.False(t, hashed)
	durations, failures := e.sink.recorded(structs.TaskHashBookPages)
	assert.Equal(t, 1, durations)
	assert.Equal(t, 0, failures)
}

func TestDispatchRebuildIndexPassesRefs(t *testing.T) {
	e := newEngine(t)

	var got []*structs.ObjectRef
	e.fakes.indexer.rebuild = func(_ context.Context, refs []*structs.ObjectRef) error {
		got = refs
		return nil
	}

	refs := []*structs.ObjectRef{{Kind: structs.KindBook, ID: "b1"}}
	e.disp.Handle(context.Background(), &structs.Task{Type: structs.TaskRebuildIndex, Entities: refs})

	assert.Equal(t, refs, got)
	durations, _ := e.sink.recorded(structs.TaskRebuildIndex)
	assert.Equal(t, 1, durations)
}
