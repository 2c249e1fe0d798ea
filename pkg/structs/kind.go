package structs

// Kind is the type of library entity a reference points at.
type Kind string

const (
	// KindLibrary is a library (a storage root).
	KindLibrary Kind = "Library"

	// KindSeries is a series (a folder of books).
	KindSeries Kind = "Series"

	// KindBook is a single book (an archive file).
	KindBook Kind = "Book"
)
