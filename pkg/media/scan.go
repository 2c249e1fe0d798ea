package media

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hollowbeak/stacks/internal/utils"
	"github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/structs"
)

type foundBook struct {
	path      string
	extension string
	size      int64
	modified  int64
}

// ScanLibrary walks the library root and reconciles the store with what is
// on disk: one series per directory holding archives, one book per archive.
// Books and series that vanished are marked trashed, not deleted; EmptyTrash
// reclaims them later.
func (m *Service) ScanLibrary(ctx context.Context, lib *structs.Library) error {
	if lib.Root == "" {
		return errors.ErrNoLibraryRoot
	}

	found := map[string][]foundBook{}
	err := filepath.WalkDir(lib.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != lib.Root {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
		if !archiveExtensions[ext] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		dir := filepath.Dir(p)
		found[dir] = append(found[dir], foundBook{
			path:      p,
			extension: ext,
			size:      info.Size(),
			modified:  info.ModTime().Unix(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	knownSeries, err := m.db.LibrarySeries(lib.ID)
	if err != nil {
		return err
	}
	seriesByPath := map[string]*structs.Series{}
	for _, s := range knownSeries {
		seriesByPath[s.Path] = s
	}

	knownBooks, err := m.db.LibraryBooks(lib.ID)
	if err != nil {
		return err
	}
	booksByPath := map[string]*structs.Book{}
	for _, b := range knownBooks {
		booksByPath[b.Path] = b
	}

	dirs := make([]string, 0, len(found))
	for dir := range found {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	now := time.Now().Unix()
	seen := map[string]bool{}
	newBooks := []*structs.Book{}

	for _, dir := range dirs {
		s := seriesByPath[dir]
		if s == nil {
			s = &structs.Series{
				ID:        utils.NewRandomID(),
				LibraryID: lib.ID,
				Name:      filepath.Base(dir),
				Path:      dir,
				CreatedAt: now,
				UpdatedAt: now,
			}
			seriesByPath[dir] = s
			if err = m.db.InsertSeries([]*structs.Series{s}); err != nil {
				return err
			}
		} else if s.Trashed {
			s.Trashed = false
			s.UpdatedAt = now
			if err = m.db.UpdateSeries(s); err != nil {
				return err
			}
		}

		for _, fb := range found[dir] {
			b := booksByPath[fb.path]
			if b == nil {
				base := stripExtension(filepath.Base(fb.path))
				newBooks = append(newBooks, &structs.Book{
					ID:        utils.NewRandomID(),
					SeriesID:  s.ID,
					LibraryID: lib.ID,
					Name:      base,
					Number:    parseNumber(base),
					Path:      fb.path,
					Extension: fb.extension,
					FileSize:  fb.size,
					CreatedAt: now,
					UpdatedAt: fb.modified,
				})
				continue
			}
			seen[b.ID] = true
			if b.FileSize != fb.size || b.UpdatedAt < fb.modified || b.Trashed {
				b.FileSize = fb.size
				b.UpdatedAt = fb.modified
				b.Trashed = false
				if err = m.db.UpdateBook(b); err != nil {
					return err
				}
			}
		}
	}

	if len(newBooks) > 0 {
		if err = m.db.InsertBooks(newBooks); err != nil {
			return err
		}
	}

	for _, b := range knownBooks {
		if seen[b.ID] || b.Trashed {
			continue
		}
		b.Trashed = true
		b.UpdatedAt = now
		if err = m.db.UpdateBook(b); err != nil {
			return err
		}
	}
	for _, s := range knownSeries {
		if s.Trashed || len(found[s.Path]) > 0 {
			continue
		}
		s.Trashed = true
		s.UpdatedAt = now
		if err = m.db.UpdateSeries(s); err != nil {
			return err
		}
	}

	m.log.Info().
		Str("library_id", lib.ID).
		Int("series", len(dirs)).
		Int("new_books", len(newBooks)).
		Msg("library scan complete")
	return nil
}
