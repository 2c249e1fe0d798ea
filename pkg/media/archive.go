package media

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hollowbeak/stacks/pkg/errors"
)

var (
	zipMagic = []byte("PK\x03\x04")

	imageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}

	archiveExtensions = map[string]bool{
		"cbz": true,
		"zip": true,
	}
)

// page is one image entry of an archive, with the CRC the zip central
// directory already carries for it.
type page struct {
	FileName string
	CRC      uint32
}

func isPage(name string) bool {
	base := path.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return imageExtensions[strings.ToLower(path.Ext(base))]
}

// listPages reads the archive's central directory and returns its image
// entries in reading order. An unreadable archive is damaged media.
func listPages(archivePath string) ([]page, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrMediaDamaged, archivePath, err)
	}
	defer r.Close()

	pages := []page{}
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isPage(f.Name) {
			continue
		}
		pages = append(pages, page{FileName: f.Name, CRC: f.CRC32})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].FileName < pages[j].FileName })
	return pages, nil
}

// readEntry returns the contents of one archive entry.
func readEntry(archivePath, name string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrMediaDamaged, archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s has no entry %q", errors.ErrMediaDamaged, archivePath, name)
}

// hasZipMagic sniffs the file header. Files too short to hold the magic
// are simply not archives.
func hasZipMagic(filePath string) (bool, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	magic := make([]byte, len(zipMagic))
	if _, err = io.ReadFull(f, magic); err != nil {
		return false, nil
	}
	return bytes.Equal(magic, zipMagic), nil
}

// rewriteWithout rewrites the archive in place, dropping the named entries.
func rewriteWithout(archivePath string, drop map[string]bool) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrMediaDamaged, archivePath, err)
	}
	defer r.Close()

	tmp, err := os.CreateTemp(filepath.Dir(archivePath), ".rewrite-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := zip.NewWriter(tmp)
	for _, f := range r.File {
		if drop[f.Name] {
			continue
		}
		if err = copyEntry(w, f); err != nil {
			tmp.Close()
			return err
		}
	}
	if err = w.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), archivePath)
}

func copyEntry(w *zip.Writer, f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	dst, err := w.Create(f.Name)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, rc)
	return err
}

// crcURL is the content address format used for page hashes.
func crcURL(sum uint32) string {
	return fmt.Sprintf("crc32:%08x", sum)
}
