package structs

// Library is a storage root that gets scanned for series & books.
type Library struct {
	// ID is a unique identifier for this library.
	ID string `json:"id"`

	// Name is a human readable name for this library.
	Name string `json:"name"`

	// Root is the absolute path to the library's storage root.
	Root string `json:"root"`

	// CreatedAt is the time this library was created, unix time in seconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the time this library was last updated, unix time in seconds.
	UpdatedAt int64 `json:"updated_at"`
}
