package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// Metadata provider names accepted in a task's capabilities filter.
const (
	CapabilityFilename = "filename"
	CapabilityLocalArt = "localart"
)

func capabilityEnabled(capabilities []string, name string) bool {
	if len(capabilities) == 0 {
		return true
	}
	for _, c := range capabilities {
		if c == name {
			return true
		}
	}
	return false
}

// RefreshBookMetadata re-runs the metadata providers selected by the
// capabilities filter; an empty filter runs all of them.
func (m *Service) RefreshBookMetadata(ctx context.Context, b *structs.Book, capabilities []string) error {
	if capabilityEnabled(capabilities, CapabilityFilename) {
		base := stripExtension(filepath.Base(b.Path))
		b.Name = base
		b.Number = parseNumber(base)
		if err := m.db.UpdateBook(b); err != nil {
			return err
		}
	}
	if capabilityEnabled(capabilities, CapabilityLocalArt) {
		if err := m.RefreshBookLocalArtwork(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// RefreshSeriesMetadata re-derives series metadata from its directory.
func (m *Service) RefreshSeriesMetadata(ctx context.Context, s *structs.Series) error {
	s.Name = filepath.Base(s.Path)
	return m.db.UpdateSeries(s)
}

// AggregateSeriesMetadata rolls book metadata up into the series record.
func (m *Service) AggregateSeriesMetadata(ctx context.Context, s *structs.Series) error {
	books, err := m.db.SeriesBooks(s.ID)
	if err != nil {
		return err
	}
	count := 0
	for _, b := range books {
		if !b.Trashed {
			count++
		}
	}
	s.BookCount = count
	s.UpdatedAt = time.Now().Unix()
	return m.db.UpdateSeries(s)
}

// RefreshBookLocalArtwork picks up a sidecar cover next to the archive,
// eg. "Alpha 01.jpg" beside "Alpha 01.cbz".
func (m *Service) RefreshBookLocalArtwork(ctx context.Context, b *structs.Book) error {
	base := strings.TrimSuffix(b.Path, filepath.Ext(b.Path))
	for ext := range imageExtensions {
		if m.adoptArtwork(base+ext, b.ID) {
			return nil
		}
	}
	return nil
}

// RefreshSeriesLocalArtwork picks up a cover file in the series directory.
func (m *Service) RefreshSeriesLocalArtwork(ctx context.Context, s *structs.Series) error {
	for _, name := range []string{"cover", "folder", "poster"} {
		for ext := range imageExtensions {
			if m.adoptArtwork(filepath.Join(s.Path, name+ext), s.ID) {
				return nil
			}
		}
	}
	return nil
}

// adoptArtwork copies a candidate artwork file into the thumbnail dir,
// reporting whether the candidate existed.
func (m *Service) adoptArtwork(candidate, id string) bool {
	if _, err := os.Stat(candidate); err != nil {
		return false
	}
	if err := os.MkdirAll(m.opts.ThumbnailDir, 0755); err != nil {
		return false
	}
	dest := filepath.Join(m.opts.ThumbnailDir, id+filepath.Ext(candidate))
	if err := copyFile(candidate, dest); err != nil {
		m.log.Warn().Err(err).Str("artwork", candidate).Msg("failed to adopt local artwork")
		return false
	}
	return true
}
