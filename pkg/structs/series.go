package structs

// Series groups the books found in a single directory of a library.
type Series struct {
	// ID is a unique identifier for this series.
	ID string `json:"id"`

	// LibraryID is the library this series belongs to.
	LibraryID string `json:"library_id"`

	// Name is the series title; defaults to the directory name.
	Name string `json:"name"`

	// Path is the absolute path to the series directory.
	Path string `json:"path"`

	// BookCount is the aggregated number of (non trashed) books,
	// maintained by series metadata aggregation.
	BookCount int `json:"book_count"`

	// Trashed marks a series whose directory vanished from disk.
	// Trashed series are reclaimed by EmptyTrash.
	Trashed bool `json:"trashed"`

	// CreatedAt is the time this series was created, unix time in seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this series was last updated, unix time in seconds.
	UpdatedAt int64 `json:"updated_at"`
}
