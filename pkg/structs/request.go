package structs

// ImportBookRequest asks the engine to ingest an external file into a series.
type ImportBookRequest struct {
	// SeriesID is the series to import into.
	SeriesID string `json:"series_id"`

	// SourceFile is the absolute path of the file to import.
	SourceFile string `json:"source_file"`

	// CopyMode says how the file should arrive; defaults to COPY.
	CopyMode CopyMode `json:"copy_mode,omitempty"`

	// DestinationName renames the file on arrival; defaults to the
	// source file name.
	DestinationName string `json:"destination_name,omitempty"`

	// UpgradeBookID, if set, is an existing book this import replaces.
	UpgradeBookID string `json:"upgrade_book_id,omitempty"`
}

// CreateLibraryRequest registers a new storage root.
type CreateLibraryRequest struct {
	// Name is a human readable name; defaults to the root directory name.
	Name string `json:"name,omitempty"`

	// Root is the absolute path to scan.
	Root string `json:"root"`
}

// QueueStats is a point-in-time view of the engine.
type QueueStats struct {
	// Pending is the number of enqueued, unclaimed tasks.
	Pending int64 `json:"pending"`

	// Workers is the number of running consumers.
	Workers int `json:"workers"`
}
