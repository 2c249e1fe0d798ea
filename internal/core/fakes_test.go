package core

import (
	"context"
	"sync"
	"time"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// Function-field fakes: each collaborator defaults to a no-op and tests
// override only the operations they care about.

type fakeScanner struct {
	scan func(ctx context.Context, lib *structs.Library) error
}

func (f *fakeScanner) ScanLibrary(ctx context.Context, lib *structs.Library) error {
	if f.scan == nil {
		return nil
	}
	return f.scan(ctx, lib)
}

type fakeAnalyzer struct {
	analyze func(ctx context.Context, b *structs.Book) (bool, error)
}

func (f *fakeAnalyzer) AnalyzeBook(ctx context.Context, b *structs.Book) (bool, error) {
	if f.analyze == nil {
		return false, nil
	}
	return f.analyze(ctx, b)
}

type fakeThumbnails struct {
	generate func(ctx context.Context, b *structs.Book) error
}

func (f *fakeThumbnails) GenerateBookThumbnail(ctx context.Context, b *structs.Book) error {
	if f.generate == nil {
		return nil
	}
	return f.generate(ctx, b)
}

type fakeConverter struct {
	convert  func(ctx context.Context, b *structs.Book) error
	repair   func(ctx context.Context, b *structs.Book) error
	toConv   func(ctx context.Context, lib *structs.Library) ([]*structs.Book, error)
	toRepair func(ctx context.Context, lib *structs.Library) ([]*structs.Book, error)
}

func (f *fakeConverter) ConvertBook(ctx context.Context, b *structs.Book) error {
	if f.convert == nil {
		return nil
	}
	return f.convert(ctx, b)
}

func (f *fakeConverter) RepairExtension(ctx context.Context, b *structs.Book) error {
	if f.repair == nil {
		return nil
	}
	return f.repair(ctx, b)
}

func (f *fakeConverter) BooksToConvert(ctx context.Context, lib *structs.Library) ([]*structs.Book, error) {
	if f.toConv == nil {
		return nil, nil
	}
	return f.toConv(ctx, lib)
}

func (f *fakeConverter) BooksToRepair(ctx context.Context, lib *structs.Library) ([]*structs.Book, error) {
	if f.toRepair == nil {
		return nil, nil
	}
	return f.toRepair(ctx, lib)
}

type fakeMetadata struct {
	refreshBook   func(ctx context.Context, b *structs.Book, capabilities []string) error
	refreshSeries func(ctx context.Context, s *structs.Series) error
	aggregate     func(ctx context.Context, s *structs.Series) error
	bookArtwork   func(ctx context.Context, b *structs.Book) error
	seriesArtwork func(ctx context.Context, s *structs.Series) error
}

func (f *fakeMetadata) RefreshBookMetadata(ctx context.Context, b *structs.Book, capabilities []string) error {
	if f.refreshBook == nil {
		return nil
	}
	return f.refreshBook(ctx, b, capabilities)
}

func (f *fakeMetadata) RefreshSeriesMetadata(ctx context.Context, s *structs.Series) error {
	if f.refreshSeries == nil {
		return nil
	}
	return f.refreshSeries(ctx, s)
}

func (f *fakeMetadata) AggregateSeriesMetadata(ctx context.Context, s *structs.Series) error {
	if f.aggregate == nil {
		return nil
	}
	return f.aggregate(ctx, s)
}

func (f *fakeMetadata) RefreshBookLocalArtwork(ctx context.Context, b *structs.Book) error {
	if f.bookArtwork == nil {
		return nil
	}
	return f.bookArtwork(ctx, b)
}

func (f *fakeMetadata) RefreshSeriesLocalArtwork(ctx context.Context, s *structs.Series) error {
	if f.seriesArtwork == nil {
		return nil
	}
	return f.seriesArtwork(ctx, s)
}

type fakeHasher struct {
	hashBook    func(ctx context.Context, b *structs.Book) error
	hashPages   func(ctx context.Context, b *structs.Book) error
	missing     func(ctx context.Context, lib *structs.Library) ([]*structs.Book, error)
	deletable   func(ctx context.Context, lib *structs.Library) (map[string][]int, error)
	removePages func(ctx context.Context, b *structs.Book, pages []int) error
}

func (f *fakeHasher) HashBook(ctx context.Context, b *structs.Book) error {
	if f.hashBook == nil {
		return nil
	}
	return f.hashBook(ctx, b)
}

func (f *fakeHasher) HashBookPages(ctx context.Context, b *structs.Book) error {
	if f.hashPages == nil {
		return nil
	}
	return f.hashPages(ctx, b)
}

func (f *fakeHasher) BooksWithMissingPageHash(ctx context.Context, lib *structs.Library) ([]*structs.Book, error) {
	if f.missing == nil {
		return nil, nil
	}
	return f.missing(ctx, lib)
}

func (f *fakeHasher) BooksWithDeletablePages(ctx context.Context, lib *structs.Library) (map[string][]int, error) {
	if f.deletable == nil {
		return nil, nil
	}
	return f.deletable(ctx, lib)
}

func (f *fakeHasher) RemoveHashedPages(ctx context.Context, b *structs.Book, pages []int) error {
	if f.removePages == nil {
		return nil
	}
	return f.removePages(ctx, b, pages)
}

type fakeImporter struct {
	imp func(ctx context.Context, s *structs.Series, sourceFile, destinationName string, mode structs.CopyMode, upgradeBookID string) (*structs.Book, error)
}

func (f *fakeImporter) ImportBook(ctx context.Context, s *structs.Series, sourceFile, destinationName string, mode structs.CopyMode, upgradeBookID string) (*structs.Book, error) {
	if f.imp == nil {
		return &structs.Book{ID: "imported"}, nil
	}
	return f.imp(ctx, s, sourceFile, destinationName, mode, upgradeBookID)
}

type fakeIndexer struct {
	rebuild func(ctx context.Context, refs []*structs.ObjectRef) error
}

func (f *fakeIndexer) RebuildIndex(ctx context.Context, refs []*structs.ObjectRef) error {
	if f.rebuild == nil {
		return nil
	}
	return f.rebuild(ctx, refs)
}

type fakeLifecycle struct {
	deleteBook   func(ctx context.Context, b *structs.Book) error
	deleteSeries func(ctx context.Context, s *structs.Series) error
	emptyTrash   func(ctx context.Context, lib *structs.Library) error
}

func (f *fakeLifecycle) DeleteBookFiles(ctx context.Context, b *structs.Book) error {
	if f.deleteBook == nil {
		return nil
	}
	return f.deleteBook(ctx, b)
}

func (f *fakeLifecycle) DeleteSeriesFiles(ctx context.Context, s *structs.Series) error {
	if f.deleteSeries == nil {
		return nil
	}
	return f.deleteSeries(ctx, s)
}

func (f *fakeLifecycle) EmptyTrash(ctx context.Context, lib *structs.Library) error {
	if f.emptyTrash == nil {
		return nil
	}
	return f.emptyTrash(ctx, lib)
}

// fakeSet holds the concrete fakes so tests can set fields after the
// Collaborators bundle is built.
type fakeSet struct {
	scanner    *fakeScanner
	analyzer   *fakeAnalyzer
	thumbnails *fakeThumbnails
	converter  *fakeConverter
	metadata   *fakeMetadata
	hasher     *fakeHasher
	importer   *fakeImporter
	indexer    *fakeIndexer
	lifecycle  *fakeLifecycle
}

func newFakes() (*fakeSet, *Collaborators) {
	f := &fakeSet{
		scanner:    &fakeScanner{},
		analyzer:   &fakeAnalyzer{},
		thumbnails: &fakeThumbnails{},
		converter:  &fakeConverter{},
		metadata:   &fakeMetadata{},
		hasher:     &fakeHasher{},
		importer:   &fakeImporter{},
		indexer:    &fakeIndexer{},
		lifecycle:  &fakeLifecycle{},
	}
	return f, &Collaborators{
		Scanner:    f.scanner,
		Analyzer:   f.analyzer,
		Thumbnails: f.thumbnails,
		Converter:  f.converter,
		Metadata:   f.metadata,
		Hasher:     f.hasher,
		Importer:   f.importer,
		Indexer:    f.indexer,
		Lifecycle:  f.lifecycle,
	}
}

// recordingSink counts metric outcomes per task type.
type recordingSink struct {
	mu        sync.Mutex
	durations map[structs.TaskType]int
	failures  map[structs.TaskType]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		durations: map[structs.TaskType]int{},
		failures:  map[structs.TaskType]int{},
	}
}

func (r *recordingSink) RecordDuration(task structs.TaskType, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations[task]++
}

func (r *recordingSink) IncrementFailure(task structs.TaskType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[task]++
}

func (r *recordingSink) recorded(task structs.TaskType) (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.durations[task], r.failures[task]
}
