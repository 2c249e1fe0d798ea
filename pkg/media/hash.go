package media

import (
	"context"
	"hash/crc32"
	"io"
	"os"
	"sort"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// HashBook computes a whole-file content hash for deduplication of entire
// archives.
func (m *Service) HashBook(ctx context.Context, b *structs.Book) error {
	f, err := os.Open(b.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return err
	}
	b.FileHash = crcURL(h.Sum32())
	return m.db.UpdateBook(b)
}

// HashBookPages persists one content address per page, taken straight from
// the zip central directory. Upserted on (book, page), so re-running is a
// safe recomputation.
func (m *Service) HashBookPages(ctx context.Context, b *structs.Book) error {
	pages, err := listPages(b.Path)
	if err != nil {
		return err
	}

	matches := make([]*structs.PageHashMatch, len(pages))
	for i, p := range pages {
		matches[i] = &structs.PageHashMatch{
			BookID:     b.ID,
			URL:        crcURL(p.CRC),
			PageNumber: i + 1,
		}
	}
	return m.db.InsertPageHashes(matches)
}

// BooksWithMissingPageHash finds analyzed books with fewer persisted page
// hashes than pages.
func (m *Service) BooksWithMissingPageHash(ctx context.Context, lib *structs.Library) ([]*structs.Book, error) {
	return m.db.BooksWithMissingPageHash(lib.ID)
}

// BooksWithDeletablePages applies the duplicate policy: a page may be
// auto-deleted only when its content address appears on two or more books
// of the same series, and it is not the first page of its book. Anything
// more ambiguous is left for a person to decide.
func (m *Service) BooksWithDeletablePages(ctx context.Context, lib *structs.Library) (map[string][]int, error) {
	candidates, err := m.db.DuplicatePageCandidates(lib.ID)
	if err != nil {
		return nil, err
	}

	out := map[string][]int{}
	for _, c := range candidates {
		if c.PageNumber <= 1 {
			continue
		}
		out[c.BookID] = append(out[c.BookID], c.PageNumber)
	}
	for _, pages := range out {
		sort.Ints(pages)
	}
	return out, nil
}

// RemoveHashedPages rewrites the archive without the given pages, then
// re-derives the page list and hashes; page numbers shift after removal so
// the persisted hashes are rebuilt from scratch. The whole-file hash is
// cleared and recomputed by the next scan's hash batch.
func (m *Service) RemoveHashedPages(ctx context.Context, b *structs.Book, pages []int) error {
	current, err := listPages(b.Path)
	if err != nil {
		return err
	}

	drop := map[string]bool{}
	for _, n := range pages {
		if n >= 1 && n <= len(current) {
			drop[current[n-1].FileName] = true
		}
	}
	if len(drop) == 0 {
		return nil
	}

	if err = rewriteWithout(b.Path, drop); err != nil {
		return err
	}

	stale, err := m.db.PageHashes(b.ID)
	if err != nil {
		return err
	}
	nums := make([]int, len(stale))
	for i, ph := range stale {
		nums[i] = ph.PageNumber
	}
	if err = m.db.DeletePageHashes(b.ID, nums); err != nil {
		return err
	}

	if info, err := os.Stat(b.Path); err == nil {
		b.FileSize = info.Size()
	}
	b.FileHash = ""
	if _, err = m.AnalyzeBook(ctx, b); err != nil {
		return err
	}
	return m.HashBookPages(ctx, b)
}
