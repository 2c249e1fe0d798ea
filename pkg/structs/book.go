package structs

// BookPage is a single page of a book archive.
type BookPage struct {
	// Number is the page number, 1-based, in reading order.
	Number int `json:"number"`

	// FileName is the archive entry holding this page.
	FileName string `json:"file_name"`
}

// Book is a single archive file inside a series.
type Book struct {
	// ID is a unique identifier for this book.
	ID string `json:"id"`

	// SeriesID is the series this book belongs to.
	SeriesID string `json:"series_id"`

	// LibraryID is the library this book belongs to.
	LibraryID string `json:"library_id"`

	// Name is the book title; defaults to the file name without extension.
	Name string `json:"name"`

	// Number is the book's position in its series, parsed from the file name.
	Number int `json:"number"`

	// Path is the absolute path to the archive file.
	Path string `json:"path"`

	// Extension is the file extension as named on disk, without the dot.
	Extension string `json:"extension"`

	// FileSize is the archive size in bytes as of the last scan.
	FileSize int64 `json:"file_size"`

	// FileHash is a content hash of the whole archive, set by HashBook.
	// Empty until hashed.
	FileHash string `json:"file_hash"`

	// PageCount is the number of pages found by the last analysis.
	PageCount int `json:"page_count"`

	// Pages is the page list found by the last analysis.
	Pages []BookPage `json:"pages,omitempty"`

	// AnalyzedAt is the time of the last analysis, unix time in seconds.
	// 0 means the book has never been analyzed.
	AnalyzedAt int64 `json:"analyzed_at"`

	// Trashed marks a book whose file vanished from disk.
	// Trashed books are reclaimed by EmptyTrash.
	Trashed bool `json:"trashed"`

	// CreatedAt is the time this book was created, unix time in seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this book record or its file last changed,
	// unix time in seconds.
	UpdatedAt int64 `json:"updated_at"`
}
