package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// BooksToConvert finds books not stored under the canonical extension.
func (m *Service) BooksToConvert(ctx context.Context, lib *structs.Library) ([]*structs.Book, error) {
	return m.db.BooksToConvert(lib.ID, m.opts.CanonicalExtension)
}

// ConvertBook brings a book to the canonical archive format. Zip family
// archives only differ by name, so conversion verifies the content is a
// readable archive and renames it.
func (m *Service) ConvertBook(ctx context.Context, b *structs.Book) error {
	if b.Extension == m.opts.CanonicalExtension {
		return nil
	}
	if _, err := listPages(b.Path); err != nil {
		return err
	}
	return m.renameBook(b, m.opts.CanonicalExtension)
}

// BooksToRepair finds books whose on-disk content is a zip archive but
// whose extension says otherwise. These arrive via import, never via scan.
func (m *Service) BooksToRepair(ctx context.Context, lib *structs.Library) ([]*structs.Book, error) {
	books, err := m.db.LibraryBooks(lib.ID)
	if err != nil {
		return nil, err
	}

	out := []*structs.Book{}
	for _, b := range books {
		if b.Trashed || archiveExtensions[b.Extension] {
			continue
		}
		isZip, err := hasZipMagic(b.Path)
		if err != nil || !isZip {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// RepairExtension renames a book whose extension does not match its
// content. Not a zip, nothing we can assert; leave it alone.
func (m *Service) RepairExtension(ctx context.Context, b *structs.Book) error {
	if archiveExtensions[b.Extension] {
		return nil
	}
	isZip, err := hasZipMagic(b.Path)
	if err != nil || !isZip {
		return err
	}
	return m.renameBook(b, m.opts.CanonicalExtension)
}

func (m *Service) renameBook(b *structs.Book, ext string) error {
	dest := strings.TrimSuffix(b.Path, filepath.Ext(b.Path)) + "." + ext
	if err := os.Rename(b.Path, dest); err != nil {
		return err
	}
	m.log.Info().Str("book_id", b.ID).Str("from", b.Path).Str("to", dest).Msg("renamed book archive")
	b.Path = dest
	b.Extension = ext
	b.UpdatedAt = time.Now().Unix()
	return m.db.UpdateBook(b)
}
