package database

import (
	"github.com/hollowbeak/stacks/pkg/structs"
)

// Database is the entity store the engine resolves task targets from.
//
// Lookups return (nil, nil) when the entity does not exist; a task whose
// target resolves to nil is stale, which the dispatcher treats as a normal
// outcome rather than an error.
type Database interface {
	Library(id string) (*structs.Library, error)
	Series(id string) (*structs.Series, error)
	Book(id string) (*structs.Book, error)

	Libraries() ([]*structs.Library, error)
	LibrarySeries(libraryID string) ([]*structs.Series, error)
	LibraryBooks(libraryID string) ([]*structs.Book, error)
	SeriesBooks(seriesID string) ([]*structs.Book, error)

	InsertLibrary(l *structs.Library) error
	InsertSeries(in []*structs.Series) error
	InsertBooks(in []*structs.Book) error
	UpdateSeries(s *structs.Series) error
	UpdateBook(b *structs.Book) error
	DeleteBook(id string) error
	DeleteSeries(id string) error

	// Discovery queries; these back the Find* tasks and the emitter's
	// batch operations. All exclude trashed books.

	// UnanalyzedBooks are books never analyzed, or changed since analysis.
	UnanalyzedBooks(libraryID string) ([]*structs.Book, error)

	// BooksToConvert are books not stored in the canonical extension.
	BooksToConvert(libraryID, canonicalExtension string) ([]*structs.Book, error)

	// BooksWithoutHash are books with no whole-file hash yet.
	BooksWithoutHash(libraryID string) ([]*structs.Book, error)

	// BooksWithMissingPageHash are analyzed books with fewer persisted
	// page hashes than pages.
	BooksWithMissingPageHash(libraryID string) ([]*structs.Book, error)

	TrashedBooks(libraryID string) ([]*structs.Book, error)
	TrashedSeries(libraryID string) ([]*structs.Series, error)

	// Page hash persistence for the duplicate-page workflow.

	// InsertPageHashes upserts matches keyed on (book, page number), so
	// re-hashing a book is idempotent.
	InsertPageHashes(in []*structs.PageHashMatch) error
	PageHashes(bookID string) ([]*structs.PageHashMatch, error)
	DeletePageHashes(bookID string, pages []int) error

	// DuplicatePageCandidates returns every page hash whose content
	// address appears on two or more distinct books of the same series.
	// Policy (which of these are safe to auto-delete) is the caller's.
	DuplicatePageCandidates(libraryID string) ([]*structs.PageHashMatch, error)

	// Search index rows, maintained by RebuildIndex.
	UpsertIndex(kind structs.Kind, id, text string) error
	DeleteIndex(kind structs.Kind, id string) error

	Close() error
}
