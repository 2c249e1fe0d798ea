package media

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hollowbeak/stacks/internal/utils"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// ImportBook brings an external file into a series directory and registers
// it. With an upgrade target the new file replaces the old book's file and
// the old record is reset for re-analysis, keeping its identity.
func (m *Service) ImportBook(ctx context.Context, s *structs.Series, sourceFile, destinationName string, mode structs.CopyMode, upgradeBookID string) (*structs.Book, error) {
	if destinationName == "" {
		destinationName = filepath.Base(sourceFile)
	}
	dest := filepath.Join(s.Path, destinationName)

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return nil, err
	}
	if err := placeFile(sourceFile, dest, mode); err != nil {
		return nil, err
	}

	info, err := os.Stat(dest)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	name := stripExtension(destinationName)
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(destinationName)), ".")

	if upgradeBookID != "" {
		old, err := m.db.Book(upgradeBookID)
		if err != nil {
			return nil, err
		}
		if old != nil {
			if old.Path != dest {
				if err = os.Remove(old.Path); err != nil && !os.IsNotExist(err) {
					return nil, err
				}
			}
			old.Name = name
			old.Number = parseNumber(name)
			old.Path = dest
			old.Extension = ext
			old.FileSize = info.Size()
			old.FileHash = ""
			old.PageCount = 0
			old.Pages = nil
			old.AnalyzedAt = 0
			old.Trashed = false
			old.UpdatedAt = now
			return old, m.db.UpdateBook(old)
		}
		// upgrade target vanished; fall through and import as a new book
		m.log.Warn().Str("book_id", upgradeBookID).Msg("upgrade target gone, importing as new book")
	}

	b := &structs.Book{
		ID:        utils.NewRandomID(),
		SeriesID:  s.ID,
		LibraryID: s.LibraryID,
		Name:      name,
		Number:    parseNumber(name),
		Path:      dest,
		Extension: ext,
		FileSize:  info.Size(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return b, m.db.InsertBooks([]*structs.Book{b})
}

func placeFile(src, dest string, mode structs.CopyMode) error {
	switch mode {
	case structs.CopyModeMove:
		if err := os.Rename(src, dest); err == nil {
			return nil
		}
		// cross-device renames fail; copy then drop the source
		if err := copyFile(src, dest); err != nil {
			return err
		}
		return os.Remove(src)
	case structs.CopyModeHardlink:
		return os.Link(src, dest)
	default:
		return copyFile(src, dest)
	}
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
