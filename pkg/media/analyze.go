package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// AnalyzeBook reads the archive's central directory and records the page
// list. Reports true when the page list differs from the last analysis,
// which is what gates thumbnail and metadata fan-out.
func (m *Service) AnalyzeBook(ctx context.Context, b *structs.Book) (bool, error) {
	pages, err := listPages(b.Path)
	if err != nil {
		return false, err
	}

	list := make([]structs.BookPage, len(pages))
	for i, p := range pages {
		list[i] = structs.BookPage{Number: i + 1, FileName: p.FileName}
	}

	changed := b.PageCount != len(list) || !samePages(b.Pages, list)
	b.Pages = list
	b.PageCount = len(list)
	b.AnalyzedAt = time.Now().Unix()
	return changed, m.db.UpdateBook(b)
}

func samePages(a, b []structs.BookPage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// GenerateBookThumbnail extracts the book's first page into the thumbnail
// directory, named after the book id.
func (m *Service) GenerateBookThumbnail(ctx context.Context, b *structs.Book) error {
	pages, err := listPages(b.Path)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w: %s has no pages", errors.ErrMediaDamaged, b.Path)
	}

	data, err := readEntry(b.Path, pages[0].FileName)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(m.opts.ThumbnailDir, 0755); err != nil {
		return err
	}
	dest := filepath.Join(m.opts.ThumbnailDir, b.ID+filepath.Ext(pages[0].FileName))
	return os.WriteFile(dest, data, 0644)
}
