package api

import (
	"context"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// API represents the functions stacks servers expose.
type API interface {
	CreateLibrary(ctx context.Context, req *structs.CreateLibraryRequest) (*structs.Library, error)
	Libraries(ctx context.Context) ([]*structs.Library, error)

	// Scan enqueues a re-walk of one library's storage root.
	Scan(ctx context.Context, libraryID string) error

	// ScanAll enqueues a re-walk of every library.
	ScanAll(ctx context.Context) error

	// ImportBook enqueues ingestion of an external file into a series.
	ImportBook(ctx context.Context, req *structs.ImportBookRequest) error

	// RebuildIndex enqueues a search re-index; nil refs means everything.
	RebuildIndex(ctx context.Context, refs []*structs.ObjectRef) error

	// EmptyTrash enqueues reclamation of a library's trashed records.
	EmptyTrash(ctx context.Context, libraryID string) error

	// QueueStats reports backlog and consumer counts.
	QueueStats(ctx context.Context) (*structs.QueueStats, error)

	// Run starts the consumer pool (and scheduled scans, if configured).
	Run(ctx context.Context) error

	Close() error
}

// Server is something that can serve the API to callers.
type Server interface {
	ServeForever(api API) error
	Close() error
}
