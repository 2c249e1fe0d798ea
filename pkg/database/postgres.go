package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollowbeak/stacks/pkg/structs"
)

const bookCols = `id, series_id, library_id, name, number, path, extension, file_size, file_hash, page_count, pages, analyzed_at, trashed, created_at, updated_at`

// Postgres is a Database implementation that uses postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres database connection.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.SetDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)
	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func (p *Postgres) Library(id string) (*structs.Library, error) {
	row := p.pool.QueryRow(context.Background(),
		`SELECT id, name, root, created_at, updated_at FROM library WHERE id = $1;`, id)
	l := &structs.Library{}
	err := row.Scan(&l.ID, &l.Name, &l.Root, &l.CreatedAt, &l.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return l, err
}

func (p *Postgres) Series(id string) (*structs.Series, error) {
	rows, err := p.querySeries(`WHERE id = $1`, id)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (p *Postgres) Book(id string) (*structs.Book, error) {
	rows, err := p.queryBooks(`WHERE id = $1`, id)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (p *Postgres) Libraries() ([]*structs.Library, error) {
	rows, err := p.pool.Query(context.Background(),
		`SELECT id, name, root, created_at, updated_at FROM library ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.Library{}
	for rows.Next() {
		l := &structs.Library{}
		err = rows.Scan(&l.ID, &l.Name, &l.Root, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (p *Postgres) LibrarySeries(libraryID string) ([]*structs.Series, error) {
	return p.querySeries(`WHERE library_id = $1`, libraryID)
}

func (p *Postgres) LibraryBooks(libraryID string) ([]*structs.Book, error) {
	return p.queryBooks(`WHERE library_id = $1`, libraryID)
}

func (p *Postgres) SeriesBooks(seriesID string) ([]*structs.Book, error) {
	return p.queryBooks(`WHERE series_id = $1`, seriesID)
}

func (p *Postgres) InsertLibrary(l *structs.Library) error {
	_, err := p.pool.Exec(context.Background(),
		`INSERT INTO library (id, name, root, created_at, updated_at) VALUES ($1, $2, $3, $4, $5);`,
		l.ID, l.Name, l.Root, l.CreatedAt, l.UpdatedAt)
	return err
}

func (p *Postgres) InsertSeries(in []*structs.Series) error {
	if len(in) == 0 {
		return nil
	}
	strs, args := []string{}, []interface{}{}
	for _, s := range in {
		strs = append(strs, placeholders(len(args)+1, 8))
		args = append(args, s.ID, s.LibraryID, s.Name, s.Path, s.BookCount, s.Trashed, s.CreatedAt, s.UpdatedAt)
	}
	q := fmt.Sprintf(`INSERT INTO series (id, library_id, name, path, book_count, trashed, created_at, updated_at) VALUES %s;`, strings.Join(strs, ","))
	_, err := p.pool.Exec(context.Background(), q, args...)
	return err
}

func (p *Postgres) InsertBooks(in []*structs.Book) error {
	if len(in) == 0 {
		return nil
	}
	strs, args := []string{}, []interface{}{}
	for _, b := range in {
		pages, err := json.Marshal(b.Pages)
		if err != nil {
			return err
		}
		strs = append(strs, placeholders(len(args)+1, 15))
		args = append(args, b.ID, b.SeriesID, b.LibraryID, b.Name, b.Number, b.Path, b.Extension,
			b.FileSize, b.FileHash, b.PageCount, pages, b.AnalyzedAt, b.Trashed, b.CreatedAt, b.UpdatedAt)
	}
	q := fmt.Sprintf(`INSERT INTO book (%s) VALUES %s;`, bookCols, strings.Join(strs, ","))
	_, err := p.pool.Exec(context.Background(), q, args...)
	return err
}

func (p *Postgres) UpdateSeries(s *structs.Series) error {
	_, err := p.pool.Exec(context.Background(),
		`UPDATE series SET name = $2, path = $3, book_count = $4, trashed = $5, updated_at = $6 WHERE id = $1;`,
		s.ID, s.Name, s.Path, s.BookCount, s.Trashed, s.UpdatedAt)
	return err
}

func (p *Postgres) UpdateBook(b *structs.Book) error {
	pages, err := json.Marshal(b.Pages)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(context.Background(),
		`UPDATE book SET name = $2, number = $3, path = $4, extension = $5, file_size = $6,
		 file_hash = $7, page_count = $8, pages = $9, analyzed_at = $10, trashed = $11, updated_at = $12
		 WHERE id = $1;`,
		b.ID, b.Name, b.Number, b.Path, b.Extension, b.FileSize,
		b.FileHash, b.PageCount, pages, b.AnalyzedAt, b.Trashed, b.UpdatedAt)
	return err
}

func (p *Postgres) DeleteBook(id string) error {
	// page_hash rows go via FK cascade
	_, err := p.pool.Exec(context.Background(), `DELETE FROM book WHERE id = $1;`, id)
	return err
}

func (p *Postgres) DeleteSeries(id string) error {
	_, err := p.pool.Exec(context.Background(), `DELETE FROM series WHERE id = $1;`, id)
	return err
}

func (p *Postgres) UnanalyzedBooks(libraryID string) ([]*structs.Book, error) {
	return p.queryBooks(`WHERE library_id = $1 AND trashed = FALSE AND (analyzed_at = 0 OR updated_at > analyzed_at)`, libraryID)
}

func (p *Postgres) BooksToConvert(libraryID, canonicalExtension string) ([]*structs.Book, error) {
	return p.queryBooks(`WHERE library_id = $1 AND trashed = FALSE AND extension <> $2`, libraryID, canonicalExtension)
}

func (p *Postgres) BooksWithoutHash(libraryID string) ([]*structs.Book, error) {
	return p.queryBooks(`WHERE library_id = $1 AND trashed = FALSE AND file_hash = ''`, libraryID)
}

func (p *Postgres) BooksWithMissingPageHash(libraryID string) ([]*structs.Book, error) {
	return p.queryBooks(`b WHERE b.library_id = $1 AND b.trashed = FALSE AND b.analyzed_at > 0
		AND b.page_count > (SELECT COUNT(*) FROM page_hash ph WHERE ph.book_id = b.id)`, libraryID)
}

func (p *Postgres) TrashedBooks(libraryID string) ([]*structs.Book, error) {
	return p.queryBooks(`WHERE library_id = $1 AND trashed = TRUE`, libraryID)
}

func (p *Postgres) TrashedSeries(libraryID string) ([]*structs.Series, error) {
	return p.querySeries(`WHERE library_id = $1 AND trashed = TRUE`, libraryID)
}

func (p *Postgres) InsertPageHashes(in []*structs.PageHashMatch) error {
	if len(in) == 0 {
		return nil
	}
	strs, args := []string{}, []interface{}{}
	for _, ph := range in {
		strs = append(strs, placeholders(len(args)+1, 3))
		args = append(args, ph.BookID, ph.URL, ph.PageNumber)
	}
	q := fmt.Sprintf(`INSERT INTO page_hash (book_id, url, page_number) VALUES %s
		ON CONFLICT (book_id, page_number) DO UPDATE SET url = EXCLUDED.url;`, strings.Join(strs, ","))
	_, err := p.pool.Exec(context.Background(), q, args...)
	return err
}

func (p *Postgres) PageHashes(bookID string) ([]*structs.PageHashMatch, error) {
	return p.queryPageHashes(
		`SELECT book_id, url, page_number FROM page_hash WHERE book_id = $1 ORDER BY page_number;`, bookID)
}

func (p *Postgres) DeletePageHashes(bookID string, pages []int) error {
	if len(pages) == 0 {
		return nil
	}
	strs, args := []string{}, []interface{}{bookID}
	for _, pg := range pages {
		args = append(args, pg)
		strs = append(strs, fmt.Sprintf("$%d", len(args)))
	}
	q := fmt.Sprintf(`DELETE FROM page_hash WHERE book_id = $1 AND page_number IN (%s);`, strings.Join(strs, ","))
	_, err := p.pool.Exec(context.Background(), q, args...)
	return err
}

func (p *Postgres) DuplicatePageCandidates(libraryID string) ([]*structs.PageHashMatch, error) {
	return p.queryPageHashes(`
		SELECT ph.book_id, ph.url, ph.page_number
		FROM page_hash ph
		JOIN book b ON b.id = ph.book_id
		JOIN (
			SELECT b2.series_id AS series_id, ph2.url AS url
			FROM page_hash ph2
			JOIN book b2 ON b2.id = ph2.book_id
			WHERE b2.library_id = $1 AND b2.trashed = FALSE
			GROUP BY b2.series_id, ph2.url
			HAVING COUNT(DISTINCT ph2.book_id) > 1
		) dup ON dup.series_id = b.series_id AND dup.url = ph.url
		WHERE b.library_id = $1 AND b.trashed = FALSE
		ORDER BY ph.book_id, ph.page_number;`, libraryID)
}

func (p *Postgres) UpsertIndex(kind structs.Kind, id, text string) error {
	_, err := p.pool.Exec(context.Background(),
		`INSERT INTO search_index (kind, id, text) VALUES ($1, $2, $3)
		 ON CONFLICT (kind, id) DO UPDATE SET text = EXCLUDED.text;`, string(kind), id, text)
	return err
}

func (p *Postgres) DeleteIndex(kind structs.Kind, id string) error {
	_, err := p.pool.Exec(context.Background(),
		`DELETE FROM search_index WHERE kind = $1 AND id = $2;`, string(kind), id)
	return err
}

func (p *Postgres) querySeries(where string, args ...interface{}) ([]*structs.Series, error) {
	q := fmt.Sprintf(`SELECT id, library_id, name, path, book_count, trashed, created_at, updated_at
		FROM series %s ORDER BY id;`, where)
	rows, err := p.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.Series{}
	for rows.Next() {
		s := &structs.Series{}
		err = rows.Scan(&s.ID, &s.LibraryID, &s.Name, &s.Path, &s.BookCount, &s.Trashed, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Postgres) queryBooks(where string, args ...interface{}) ([]*structs.Book, error) {
	cols := bookCols
	if strings.HasPrefix(where, "b ") {
		// aliased form for correlated subqueries
		cols = "b." + strings.ReplaceAll(bookCols, ", ", ", b.")
	}
	q := fmt.Sprintf(`SELECT %s FROM book %s ORDER BY 1;`, cols, where)
	rows, err := p.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.Book{}
	for rows.Next() {
		b := &structs.Book{}
		var pages []byte
		err = rows.Scan(&b.ID, &b.SeriesID, &b.LibraryID, &b.Name, &b.Number, &b.Path, &b.Extension,
			&b.FileSize, &b.FileHash, &b.PageCount, &pages, &b.AnalyzedAt, &b.Trashed, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if len(pages) > 0 {
			err = json.Unmarshal(pages, &b.Pages)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (p *Postgres) queryPageHashes(q string, args ...interface{}) ([]*structs.PageHashMatch, error) {
	rows, err := p.pool.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*structs.PageHashMatch{}
	for rows.Next() {
		ph := &structs.PageHashMatch{}
		err = rows.Scan(&ph.BookID, &ph.URL, &ph.PageNumber)
		if err != nil {
			return nil, err
		}
		out = append(out, ph)
	}
	return out, rows.Err()
}

// placeholders returns "($n, $n+1, ... $n+count-1)"
func placeholders(start, count int) string {
	ps := []string{}
	for i := 0; i < count; i++ {
		ps = append(ps, fmt.Sprintf("$%d", start+i))
	}
	return "(" + strings.Join(ps, ", ") + ")"
}
