package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/metrics"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// Dispatcher executes one task at a time: resolve the target, invoke the
// matching domain operation, emit follow-up tasks, record exactly one
// metric outcome. Errors and panics stop the task, never the worker.
type Dispatcher struct {
	db   database.Database
	emit *Emitter
	sink metrics.Sink
	col  *Collaborators
	log  zerolog.Logger
}

func NewDispatcher(db database.Database, emit *Emitter, sink metrics.Sink, col *Collaborators, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{db: db, emit: emit, sink: sink, col: col, log: log}
}

// Handle runs the full pipeline for a claimed task. It never returns an
// error: failures are logged and counted here, and the task is dropped
// either way. At-most-once, no retry.
func (d *Dispatcher) Handle(ctx context.Context, t *structs.Task) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Str("task_id", t.ID).
				Str("task_type", string(t.Type)).
				Interface("panic", r).
				Msg("task panicked")
			d.sink.IncrementFailure(t.Type)
		}
	}()

	if err := d.dispatch(ctx, t); err != nil {
		d.log.Error().
			Err(err).
			Str("task_id", t.ID).
			Str("task_type", string(t.Type)).
			Int("priority", t.Priority).
			Msg("task failed")
		d.sink.IncrementFailure(t.Type)
		return
	}
	d.sink.RecordDuration(t.Type, time.Since(start))
}

// dispatch switches exhaustively over the task variants. A nil return from
// one of the resolve helpers means the target vanished since enqueue; the
// task then completes without error and without fan-out.
//
// Fan-out enqueue failures fail the whole parent task, even though its
// primary work already succeeded.
func (d *Dispatcher) dispatch(ctx context.Context, t *structs.Task) error {
	switch t.Type {

	case structs.TaskScanLibrary:
		lib, err := d.library(t)
		if err != nil || lib == nil {
			return err
		}
		if err = d.col.Scanner.ScanLibrary(ctx, lib); err != nil {
			return err
		}
		return d.afterScan(ctx, lib)

	case structs.TaskFindBooksToConvert:
		lib, err := d.library(t)
		if err != nil || lib == nil {
			return err
		}
		books, err := d.col.Converter.BooksToConvert(ctx, lib)
		if err != nil {
			return err
		}
		for _, b := range books {
			if err = d.emit.ConvertBook(ctx, b.ID, t.Priority+1); err != nil {
				return err
			}
		}
		return nil

	case structs.TaskFindBooksWithMissingPageHash:
		lib, err := d.library(t)
		if err != nil || lib == nil {
			return err
		}
		books, err := d.col.Hasher.BooksWithMissingPageHash(ctx, lib)
		if err != nil {
			return err
		}
		for _, b := range books {
			if err = d.emit.HashBookPages(ctx, b.ID, t.Priority+1); err != nil {
				return err
			}
		}
		return nil

	case structs.TaskFindDuplicatePagesToDelete:
		lib, err := d.library(t)
		if err != nil || lib == nil {
			return err
		}
		deletable, err := d.col.Hasher.BooksWithDeletablePages(ctx, lib)
		if err != nil {
			return err
		}
		for bookID, pages := range deletable {
			if err = d.emit.RemoveHashedPages(ctx, bookID, pages, t.Priority+1); err != nil {
				return err
			}
		}
		return nil

	case structs.TaskEmptyTrash:
		lib, err := d.library(t)
		if err != nil || lib == nil {
			return err
		}
		return d.col.Lifecycle.EmptyTrash(ctx, lib)

	case structs.TaskAnalyzeBook:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		changed, err := d.col.Analyzer.AnalyzeBook(ctx, b)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err = d.emit.GenerateBookThumbnail(ctx, b.ID, t.Priority+1); err != nil {
			return err
		}
		return d.emit.RefreshBookMetadata(ctx, b.ID, t.Priority+1, nil)

	case structs.TaskGenerateBookThumbnail:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Thumbnails.GenerateBookThumbnail(ctx, b)

	case structs.TaskRefreshBookMetadata:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		if err = d.col.Metadata.RefreshBookMetadata(ctx, b, t.Capabilities); err != nil {
			return err
		}
		// series aggregation jumps ahead of pending background work so the
		// series reflects the refreshed book promptly
		return d.emit.RefreshSeriesMetadata(ctx, b.SeriesID, t.Priority-1)

	case structs.TaskRefreshSeriesMetadata:
		s, err := d.series(t)
		if err != nil || s == nil {
			return err
		}
		if err = d.col.Metadata.RefreshSeriesMetadata(ctx, s); err != nil {
			return err
		}
		return d.emit.AggregateSeriesMetadata(ctx, s.ID, t.Priority)

	case structs.TaskAggregateSeriesMetadata:
		s, err := d.series(t)
		if err != nil || s == nil {
			return err
		}
		return d.col.Metadata.AggregateSeriesMetadata(ctx, s)

	case structs.TaskRefreshBookLocalArtwork:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Metadata.RefreshBookLocalArtwork(ctx, b)

	case structs.TaskRefreshSeriesLocalArtwork:
		s, err := d.series(t)
		if err != nil || s == nil {
			return err
		}
		return d.col.Metadata.RefreshSeriesLocalArtwork(ctx, s)

	case structs.TaskImportBook:
		s, err := d.series(t)
		if err != nil || s == nil {
			return err
		}
		b, err := d.col.Importer.ImportBook(ctx, s, t.SourceFile, t.DestinationName, t.CopyMode, t.UpgradeBookID)
		if err != nil {
			return err
		}
		return d.emit.AnalyzeBook(ctx, b.ID, t.Priority+1)

	case structs.TaskConvertBook:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Converter.ConvertBook(ctx, b)

	case structs.TaskRepairExtension:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Converter.RepairExtension(ctx, b)

	case structs.TaskRemoveHashedPages:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Hasher.RemoveHashedPages(ctx, b, t.Pages)

	case structs.TaskHashBook:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Hasher.HashBook(ctx, b)

	case structs.TaskHashBookPages:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Hasher.HashBookPages(ctx, b)

	case structs.TaskRebuildIndex:
		return d.col.Indexer.RebuildIndex(ctx, t.Entities)

	case structs.TaskDeleteBook:
		b, err := d.book(t)
		if err != nil || b == nil {
			return err
		}
		return d.col.Lifecycle.DeleteBookFiles(ctx, b)

	case structs.TaskDeleteSeries:
		s, err := d.series(t)
		if err != nil || s == nil {
			return err
		}
		return d.col.Lifecycle.DeleteSeriesFiles(ctx, s)

	default:
		return fmt.Errorf("%w: unknown task type %q", errors.ErrNotSupported, t.Type)
	}
}

// afterScan fans out the corrective and discovery work a fresh scan
// unlocks. Repair is merely low priority; conversion, hashing and
// duplicate discovery can wait behind everything else.
func (d *Dispatcher) afterScan(ctx context.Context, lib *structs.Library) error {
	if err := d.emit.AnalyzeUnknownAndOutdatedBooks(ctx, lib.ID, structs.PriorityNormal); err != nil {
		return err
	}
	repair, err := d.col.Converter.BooksToRepair(ctx, lib)
	if err != nil {
		return err
	}
	for _, b := range repair {
		if err = d.emit.RepairExtension(ctx, b.ID, structs.PriorityLow); err != nil {
			return err
		}
	}
	if err = d.emit.FindBooksToConvert(ctx, lib.ID, structs.PriorityLowest); err != nil {
		return err
	}
	if err = d.emit.FindBooksWithMissingPageHash(ctx, lib.ID, structs.PriorityLowest); err != nil {
		return err
	}
	if err = d.emit.FindDuplicatePagesToDelete(ctx, lib.ID, structs.PriorityLowest); err != nil {
		return err
	}
	return d.emit.HashBooksWithoutHash(ctx, lib.ID, structs.PriorityLowest)
}

func (d *Dispatcher) library(t *structs.Task) (*structs.Library, error) {
	lib, err := d.db.Library(t.LibraryID)
	if err != nil {
		return nil, err
	}
	if lib == nil {
		d.warnStale(t, "library", t.LibraryID)
	}
	return lib, nil
}

func (d *Dispatcher) series(t *structs.Task) (*structs.Series, error) {
	s, err := d.db.Series(t.SeriesID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		d.warnStale(t, "series", t.SeriesID)
	}
	return s, nil
}

func (d *Dispatcher) book(t *structs.Task) (*structs.Book, error) {
	b, err := d.db.Book(t.BookID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		d.warnStale(t, "book", t.BookID)
	}
	return b, nil
}

func (d *Dispatcher) warnStale(t *structs.Task, kind, id string) {
	d.log.Warn().
		Str("task_id", t.ID).
		Str("task_type", string(t.Type)).
		Str(kind+"_id", id).
		Msg("task target no longer exists, dropping task")
}
