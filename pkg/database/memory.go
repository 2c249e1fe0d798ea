package database

import (
	"sort"
	"sync"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// Memory is a map-backed Database for tests and the embedded binary.
// It mirrors the Postgres implementation's query semantics.
type Memory struct {
	mu sync.RWMutex

	libraries map[string]*structs.Library
	series    map[string]*structs.Series
	books     map[string]*structs.Book

	// page hashes keyed by book id, then page number
	hashes map[string]map[int]*structs.PageHashMatch

	// search index keyed by kind, then id
	index map[structs.Kind]map[string]string
}

// NewMemory returns an empty in-memory database.
func NewMemory() *Memory {
	return &Memory{
		libraries: map[string]*structs.Library{},
		series:    map[string]*structs.Series{},
		books:     map[string]*structs.Book{},
		hashes:    map[string]map[int]*structs.PageHashMatch{},
		index:     map[structs.Kind]map[string]string{},
	}
}

func (m *Memory) Library(id string) (*structs.Library, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyLibrary(m.libraries[id]), nil
}

func (m *Memory) Series(id string) (*structs.Series, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySeries(m.series[id]), nil
}

func (m *Memory) Book(id string) (*structs.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyBook(m.books[id]), nil
}

func (m *Memory) Libraries() ([]*structs.Library, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*structs.Library{}
	for _, l := range m.libraries {
		out = append(out, copyLibrary(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) LibrarySeries(libraryID string) ([]*structs.Series, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*structs.Series{}
	for _, s := range m.series {
		if s.LibraryID == libraryID {
			out = append(out, copySeries(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) LibraryBooks(libraryID string) ([]*structs.Book, error) {
	return m.selectBooks(func(b *structs.Book) bool { return b.LibraryID == libraryID }), nil
}

func (m *Memory) SeriesBooks(seriesID string) ([]*structs.Book, error) {
	return m.selectBooks(func(b *structs.Book) bool { return b.SeriesID == seriesID }), nil
}

func (m *Memory) InsertLibrary(l *structs.Library) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.libraries[l.ID] = copyLibrary(l)
	return nil
}

func (m *Memory) InsertSeries(in []*structs.Series) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range in {
		m.series[s.ID] = copySeries(s)
	}
	return nil
}

func (m *Memory) InsertBooks(in []*structs.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range in {
		m.books[b.ID] = copyBook(b)
	}
	return nil
}

func (m *Memory) UpdateSeries(s *structs.Series) error {
	return m.InsertSeries([]*structs.Series{s})
}

func (m *Memory) UpdateBook(b *structs.Book) error {
	return m.InsertBooks([]*structs.Book{b})
}

func (m *Memory) DeleteBook(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.books, id)
	delete(m.hashes, id)
	return nil
}

func (m *Memory) DeleteSeries(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.series, id)
	return nil
}

func (m *Memory) UnanalyzedBooks(libraryID string) ([]*structs.Book, error) {
	return m.selectBooks(func(b *structs.Book) bool {
		return b.LibraryID == libraryID && !b.Trashed &&
			(b.AnalyzedAt == 0 || b.UpdatedAt > b.AnalyzedAt)
	}), nil
}

func (m *Memory) BooksToConvert(libraryID, canonicalExtension string) ([]*structs.Book, error) {
	return m.selectBooks(func(b *structs.Book) bool {
		return b.LibraryID == libraryID && !b.Trashed && b.Extension != canonicalExtension
	}), nil
}

func (m *Memory) BooksWithoutHash(libraryID string) ([]*structs.Book, error) {
	return m.selectBooks(func(b *structs.Book) bool {
		return b.LibraryID == libraryID && !b.Trashed && b.FileHash == ""
	}), nil
}

func (m *Memory) BooksWithMissingPageHash(libraryID string) ([]*structs.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*structs.Book{}
	for _, b := range m.books {
		if b.LibraryID != libraryID || b.Trashed || b.AnalyzedAt == 0 {
			continue
		}
		if len(m.hashes[b.ID]) < b.PageCount {
			out = append(out, copyBook(b))
		}
	}
	sortBooks(out)
	return out, nil
}

func (m *Memory) TrashedBooks(libraryID string) ([]*structs.Book, error) {
	return m.selectBooks(func(b *structs.Book) bool {
		return b.LibraryID == libraryID && b.Trashed
	}), nil
}

func (m *Memory) TrashedSeries(libraryID string) ([]*structs.Series, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*structs.Series{}
	for _, s := range m.series {
		if s.LibraryID == libraryID && s.Trashed {
			out = append(out, copySeries(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) InsertPageHashes(in []*structs.PageHashMatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ph := range in {
		byPage, ok := m.hashes[ph.BookID]
		if !ok {
			byPage = map[int]*structs.PageHashMatch{}
			m.hashes[ph.BookID] = byPage
		}
		cp := *ph
		byPage[ph.PageNumber] = &cp
	}
	return nil
}

func (m *Memory) PageHashes(bookID string) ([]*structs.PageHashMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*structs.PageHashMatch{}
	for _, ph := range m.hashes[bookID] {
		cp := *ph
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PageNumber < out[j].PageNumber })
	return out, nil
}

func (m *Memory) DeletePageHashes(bookID string, pages []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range pages {
		delete(m.hashes[bookID], p)
	}
	return nil
}

func (m *Memory) DuplicatePageCandidates(libraryID string) ([]*structs.PageHashMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// count distinct books per (series, url)
	type key struct {
		seriesID string
		url      string
	}
	owners := map[key]map[string]bool{}
	for bookID, byPage := range m.hashes {
		b, ok := m.books[bookID]
		if !ok || b.LibraryID != libraryID || b.Trashed {
			continue
		}
		for _, ph := range byPage {
			k := key{b.SeriesID, ph.URL}
			if owners[k] == nil {
				owners[k] = map[string]bool{}
			}
			owners[k][bookID] = true
		}
	}

	out := []*structs.PageHashMatch{}
	for bookID, byPage := range m.hashes {
		b, ok := m.books[bookID]
		if !ok || b.LibraryID != libraryID || b.Trashed {
			continue
		}
		for _, ph := range byPage {
			if len(owners[key{b.SeriesID, ph.URL}]) > 1 {
				cp := *ph
				out = append(out, &cp)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookID != out[j].BookID {
			return out[i].BookID < out[j].BookID
		}
		return out[i].PageNumber < out[j].PageNumber
	})
	return out, nil
}

func (m *Memory) UpsertIndex(kind structs.Kind, id, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index[kind] == nil {
		m.index[kind] = map[string]string{}
	}
	m.index[kind][id] = text
	return nil
}

func (m *Memory) DeleteIndex(kind structs.Kind, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.index[kind], id)
	return nil
}

// IndexText returns the indexed text for an entity, "" if not indexed.
// Test hook; the Postgres implementation answers this with SQL.
func (m *Memory) IndexText(kind structs.Kind, id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index[kind][id]
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) selectBooks(match func(*structs.Book) bool) []*structs.Book {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*structs.Book{}
	for _, b := range m.books {
		if match(b) {
			out = append(out, copyBook(b))
		}
	}
	sortBooks(out)
	return out
}

func sortBooks(in []*structs.Book) {
	sort.Slice(in, func(i, j int) bool { return in[i].ID < in[j].ID })
}

func copyLibrary(l *structs.Library) *structs.Library {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}

func copySeries(s *structs.Series) *structs.Series {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func copyBook(b *structs.Book) *structs.Book {
	if b == nil {
		return nil
	}
	cp := *b
	cp.Pages = append([]structs.BookPage{}, b.Pages...)
	return &cp
}
