package core

import (
	"context"
	"time"

	"github.com/hollowbeak/stacks/internal/utils"
	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/queue"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// Emitter is the producer side of the engine: one method per task variant,
// each a pure construct-and-enqueue. No business rules are validated here;
// enqueue failures propagate to the caller as transport errors.
type Emitter struct {
	qu queue.Queue
	db database.Database
}

// NewEmitter returns an Emitter producing onto the given queue. The store
// is only used by the batch discovery helpers.
func NewEmitter(qu queue.Queue, db database.Database) *Emitter {
	return &Emitter{qu: qu, db: db}
}

func (e *Emitter) emit(ctx context.Context, t *structs.Task) error {
	t.ID = utils.NewRandomID()
	t.CreatedAt = time.Now().Unix()
	return e.qu.Enqueue(ctx, t)
}

// ScanLibrary requests a re-walk of a library's storage root.
func (e *Emitter) ScanLibrary(ctx context.Context, libraryID string) error {
	return e.emit(ctx, &structs.Task{
		Type:      structs.TaskScanLibrary,
		Priority:  structs.PriorityNormal,
		LibraryID: libraryID,
	})
}

func (e *Emitter) FindBooksToConvert(ctx context.Context, libraryID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:      structs.TaskFindBooksToConvert,
		Priority:  priority,
		LibraryID: libraryID,
	})
}

func (e *Emitter) FindBooksWithMissingPageHash(ctx context.Context, libraryID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:      structs.TaskFindBooksWithMissingPageHash,
		Priority:  priority,
		LibraryID: libraryID,
	})
}

func (e *Emitter) FindDuplicatePagesToDelete(ctx context.Context, libraryID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:      structs.TaskFindDuplicatePagesToDelete,
		Priority:  priority,
		LibraryID: libraryID,
	})
}

func (e *Emitter) EmptyTrash(ctx context.Context, libraryID string) error {
	return e.emit(ctx, &structs.Task{
		Type:      structs.TaskEmptyTrash,
		Priority:  structs.PriorityNormal,
		LibraryID: libraryID,
	})
}

func (e *Emitter) AnalyzeBook(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskAnalyzeBook,
		Priority: priority,
		BookID:   bookID,
	})
}

func (e *Emitter) GenerateBookThumbnail(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskGenerateBookThumbnail,
		Priority: priority,
		BookID:   bookID,
	})
}

func (e *Emitter) RefreshBookMetadata(ctx context.Context, bookID string, priority int, capabilities []string) error {
	return e.emit(ctx, &structs.Task{
		Type:         structs.TaskRefreshBookMetadata,
		Priority:     priority,
		BookID:       bookID,
		Capabilities: capabilities,
	})
}

func (e *Emitter) RefreshSeriesMetadata(ctx context.Context, seriesID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskRefreshSeriesMetadata,
		Priority: priority,
		SeriesID: seriesID,
	})
}

func (e *Emitter) AggregateSeriesMetadata(ctx context.Context, seriesID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskAggregateSeriesMetadata,
		Priority: priority,
		SeriesID: seriesID,
	})
}

func (e *Emitter) RefreshBookLocalArtwork(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskRefreshBookLocalArtwork,
		Priority: priority,
		BookID:   bookID,
	})
}

func (e *Emitter) RefreshSeriesLocalArtwork(ctx context.Context, seriesID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskRefreshSeriesLocalArtwork,
		Priority: priority,
		SeriesID: seriesID,
	})
}

func (e *Emitter) ImportBook(ctx context.Context, seriesID, sourceFile string, mode structs.CopyMode, destinationName, upgradeBookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:            structs.TaskImportBook,
		Priority:        priority,
		SeriesID:        seriesID,
		SourceFile:      sourceFile,
		CopyMode:        mode,
		DestinationName: destinationName,
		UpgradeBookID:   upgradeBookID,
	})
}

func (e *Emitter) ConvertBook(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskConvertBook,
		Priority: priority,
		BookID:   bookID,
	})
}

func (e *Emitter) RepairExtension(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskRepairExtension,
		Priority: priority,
		BookID:   bookID,
	})
}

func (e *Emitter) RemoveHashedPages(ctx context.Context, bookID string, pages []int, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskRemoveHashedPages,
		Priority: priority,
		BookID:   bookID,
		Pages:    pages,
	})
}

func (e *Emitter) HashBook(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskHashBook,
		Priority: priority,
		BookID:   bookID,
	})
}

func (e *Emitter) HashBookPages(ctx context.Context, bookID string, priority int) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskHashBookPages,
		Priority: priority,
		BookID:   bookID,
	})
}

// RebuildIndex requests a search re-index of the given entities;
// nil / empty means everything.
func (e *Emitter) RebuildIndex(ctx context.Context, refs []*structs.ObjectRef) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskRebuildIndex,
		Priority: structs.PriorityNormal,
		Entities: refs,
	})
}

func (e *Emitter) DeleteBook(ctx context.Context, bookID string) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskDeleteBook,
		Priority: structs.PriorityNormal,
		BookID:   bookID,
	})
}

func (e *Emitter) DeleteSeries(ctx context.Context, seriesID string) error {
	return e.emit(ctx, &structs.Task{
		Type:     structs.TaskDeleteSeries,
		Priority: structs.PriorityNormal,
		SeriesID: seriesID,
	})
}

// AnalyzeUnknownAndOutdatedBooks emits one AnalyzeBook per book in the
// library that has never been analyzed or changed since its last analysis.
func (e *Emitter) AnalyzeUnknownAndOutdatedBooks(ctx context.Context, libraryID string, priority int) error {
	books, err := e.db.UnanalyzedBooks(libraryID)
	if err != nil {
		return err
	}
	for _, b := range books {
		if err = e.AnalyzeBook(ctx, b.ID, priority); err != nil {
			return err
		}
	}
	return nil
}

// HashBooksWithoutHash emits one HashBook per book in the library that has
// no whole-file hash yet.
func (e *Emitter) HashBooksWithoutHash(ctx context.Context, libraryID string, priority int) error {
	books, err := e.db.BooksWithoutHash(libraryID)
	if err != nil {
		return err
	}
	for _, b := range books {
		if err = e.HashBook(ctx, b.ID, priority); err != nil {
			return err
		}
	}
	return nil
}
