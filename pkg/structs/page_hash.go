package structs

// PageHashMatch records that a page of a book is identified by a content
// address. Identical addresses across books mean identical page content;
// the duplicate-page workflow correlates these to find deletable pages.
//
// Immutable: produced by page hashing, consumed by duplicate detection.
type PageHashMatch struct {
	// BookID is the book this page belongs to.
	BookID string `json:"book_id"`

	// URL is the content address of the page data, eg. "crc32:0a1b2c3d".
	URL string `json:"url"`

	// PageNumber is the page number within the book, 1-based.
	PageNumber int `json:"page_number"`
}
