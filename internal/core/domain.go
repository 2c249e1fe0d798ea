package core

import (
	"context"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// The engine invokes domain work through these interfaces and treats the
// implementations as opaque. Operations either return an error, a boolean
// gating fan-out, or a collection to be fanned out one task per element.

// Scanner walks a library's storage root and reconciles the store with it.
type Scanner interface {
	ScanLibrary(ctx context.Context, lib *structs.Library) error
}

// Analyzer extracts structural metadata from a book file.
type Analyzer interface {
	// AnalyzeBook reports whether the analysis changed anything; follow-up
	// work (thumbnail, metadata refresh) only makes sense if it did.
	AnalyzeBook(ctx context.Context, b *structs.Book) (bool, error)
}

// ThumbnailGenerator renders a book's preview image.
type ThumbnailGenerator interface {
	GenerateBookThumbnail(ctx context.Context, b *structs.Book) error
}

// Converter moves books to the canonical archive format and fixes
// mismatched file extensions.
type Converter interface {
	ConvertBook(ctx context.Context, b *structs.Book) error
	RepairExtension(ctx context.Context, b *structs.Book) error

	// BooksToConvert & BooksToRepair are discovery passes.
	BooksToConvert(ctx context.Context, lib *structs.Library) ([]*structs.Book, error)
	BooksToRepair(ctx context.Context, lib *structs.Library) ([]*structs.Book, error)
}

// MetadataManager runs metadata providers and series-level aggregation.
type MetadataManager interface {
	RefreshBookMetadata(ctx context.Context, b *structs.Book, capabilities []string) error
	RefreshSeriesMetadata(ctx context.Context, s *structs.Series) error
	AggregateSeriesMetadata(ctx context.Context, s *structs.Series) error
	RefreshBookLocalArtwork(ctx context.Context, b *structs.Book) error
	RefreshSeriesLocalArtwork(ctx context.Context, s *structs.Series) error
}

// PageHasher computes content hashes and drives duplicate-page detection.
type PageHasher interface {
	HashBook(ctx context.Context, b *structs.Book) error
	HashBookPages(ctx context.Context, b *structs.Book) error

	// BooksWithMissingPageHash is a discovery pass over a library.
	BooksWithMissingPageHash(ctx context.Context, lib *structs.Library) ([]*structs.Book, error)

	// BooksWithDeletablePages applies the (conservative) duplicate policy
	// and returns, per book id, the page numbers safe to auto-delete.
	BooksWithDeletablePages(ctx context.Context, lib *structs.Library) (map[string][]int, error)

	RemoveHashedPages(ctx context.Context, b *structs.Book, pages []int) error
}

// Importer ingests an external file into a series.
type Importer interface {
	ImportBook(ctx context.Context, s *structs.Series, sourceFile, destinationName string, mode structs.CopyMode, upgradeBookID string) (*structs.Book, error)
}

// Indexer maintains the search index.
type Indexer interface {
	// RebuildIndex re-indexes the given entities; nil / empty means everything.
	RebuildIndex(ctx context.Context, refs []*structs.ObjectRef) error
}

// Lifecycle removes files for records already marked deleted / trashed.
type Lifecycle interface {
	DeleteBookFiles(ctx context.Context, b *structs.Book) error
	DeleteSeriesFiles(ctx context.Context, s *structs.Series) error
	EmptyTrash(ctx context.Context, lib *structs.Library) error
}

// Collaborators bundles every domain capability the dispatcher needs.
type Collaborators struct {
	Scanner    Scanner
	Analyzer   Analyzer
	Thumbnails ThumbnailGenerator
	Converter  Converter
	Metadata   MetadataManager
	Hasher     PageHasher
	Importer   Importer
	Indexer    Indexer
	Lifecycle  Lifecycle
}
