package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// RebuildIndex refreshes search index rows for the given entities; nil or
// empty means everything. A ref whose entity vanished drops its row.
func (m *Service) RebuildIndex(ctx context.Context, refs []*structs.ObjectRef) error {
	if len(refs) == 0 {
		return m.reindexAll(ctx)
	}
	for _, ref := range refs {
		if err := m.reindexOne(ref); err != nil {
			return err
		}
	}
	return nil
}

func (m *Service) reindexAll(ctx context.Context) error {
	libs, err := m.db.Libraries()
	if err != nil {
		return err
	}
	for _, lib := range libs {
		if err = m.db.UpsertIndex(structs.KindLibrary, lib.ID, indexText(lib.Name)); err != nil {
			return err
		}
		series, err := m.db.LibrarySeries(lib.ID)
		if err != nil {
			return err
		}
		for _, s := range series {
			if err = m.db.UpsertIndex(structs.KindSeries, s.ID, indexText(s.Name)); err != nil {
				return err
			}
		}
		books, err := m.db.LibraryBooks(lib.ID)
		if err != nil {
			return err
		}
		for _, b := range books {
			if err = m.db.UpsertIndex(structs.KindBook, b.ID, indexText(b.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Service) reindexOne(ref *structs.ObjectRef) error {
	switch ref.Kind {
	case structs.KindLibrary:
		lib, err := m.db.Library(ref.ID)
		if err != nil {
			return err
		}
		if lib == nil {
			return m.db.DeleteIndex(ref.Kind, ref.ID)
		}
		return m.db.UpsertIndex(ref.Kind, ref.ID, indexText(lib.Name))
	case structs.KindSeries:
		s, err := m.db.Series(ref.ID)
		if err != nil {
			return err
		}
		if s == nil {
			return m.db.DeleteIndex(ref.Kind, ref.ID)
		}
		return m.db.UpsertIndex(ref.Kind, ref.ID, indexText(s.Name))
	case structs.KindBook:
		b, err := m.db.Book(ref.ID)
		if err != nil {
			return err
		}
		if b == nil {
			return m.db.DeleteIndex(ref.Kind, ref.ID)
		}
		return m.db.UpsertIndex(ref.Kind, ref.ID, indexText(b.Name))
	default:
		return fmt.Errorf("%w: cannot index kind %q", errors.ErrInvalidArg, ref.Kind)
	}
}

func indexText(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
