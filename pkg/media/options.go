package media

import (
	"os"
	"path/filepath"
)

// Options configures the reference collaborators.
type Options struct {
	// CanonicalExtension is the archive extension books are converted to.
	CanonicalExtension string

	// ThumbnailDir is where book & series thumbnails are written.
	ThumbnailDir string
}

// SetDefaults sets unset fields to sensible defaults.
func (o *Options) SetDefaults() {
	if o.CanonicalExtension == "" {
		o.CanonicalExtension = "cbz"
	}
	if o.ThumbnailDir == "" {
		o.ThumbnailDir = filepath.Join(os.TempDir(), "stacks-thumbnails")
	}
}
