package media

import (
	"context"
	"os"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// DeleteBookFiles removes a book's file and record, plus its index row and
// page hashes (the store cascades those).
func (m *Service) DeleteBookFiles(ctx context.Context, b *structs.Book) error {
	if err := os.Remove(b.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := m.db.DeleteIndex(structs.KindBook, b.ID); err != nil {
		return err
	}
	return m.db.DeleteBook(b.ID)
}

// DeleteSeriesFiles removes a series directory with everything in it, then
// the series' books and record.
func (m *Service) DeleteSeriesFiles(ctx context.Context, s *structs.Series) error {
	if err := os.RemoveAll(s.Path); err != nil {
		return err
	}
	books, err := m.db.SeriesBooks(s.ID)
	if err != nil {
		return err
	}
	for _, b := range books {
		if err = m.db.DeleteIndex(structs.KindBook, b.ID); err != nil {
			return err
		}
		if err = m.db.DeleteBook(b.ID); err != nil {
			return err
		}
	}
	if err = m.db.DeleteIndex(structs.KindSeries, s.ID); err != nil {
		return err
	}
	return m.db.DeleteSeries(s.ID)
}

// EmptyTrash reclaims everything a scan marked trashed. Trashed means the
// file already vanished from disk, so this is record cleanup; any file
// still present (eg. restored by hand) is left alone for the next scan to
// pick back up.
func (m *Service) EmptyTrash(ctx context.Context, lib *structs.Library) error {
	books, err := m.db.TrashedBooks(lib.ID)
	if err != nil {
		return err
	}
	for _, b := range books {
		if _, err := os.Stat(b.Path); err == nil {
			continue
		}
		if err = m.db.DeleteIndex(structs.KindBook, b.ID); err != nil {
			return err
		}
		if err = m.db.DeleteBook(b.ID); err != nil {
			return err
		}
	}

	series, err := m.db.TrashedSeries(lib.ID)
	if err != nil {
		return err
	}
	for _, s := range series {
		remaining, err := m.db.SeriesBooks(s.ID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			continue
		}
		if err = m.db.DeleteIndex(structs.KindSeries, s.ID); err != nil {
			return err
		}
		if err = m.db.DeleteSeries(s.ID); err != nil {
			return err
		}
	}
	return nil
}
