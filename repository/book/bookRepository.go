package book

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ADEB21/BooksInMyMind/model"
)

type Repo interface {
	Create(ctx context.Context, fields model.BookFields, authors, genres []string) (*model.Book, error)
	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	UpdateShared(ctx context.Context, id int64, fields model.BookFields, authors, genres *[]string) (*model.Book, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, fields model.BookFields, authors, genres []string) (b *model.Book, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id int64
	const ins = `
INSERT INTO books (title, summary, publisher, language, isbn, cover_url, date_published)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id`
	if err = tx.QueryRowContext(ctx, ins,
		fields.Title, fields.Summary, fields.Publisher, fields.Language,
		fields.ISBN, fields.CoverURL, fields.DatePublished,
	).Scan(&id); err != nil {
		return nil, err
	}

	if err = linkAuthors(ctx, tx, id, authors); err != nil {
		return nil, err
	}
	if err = linkGenres(ctx, tx, id, genres); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// linkAuthors upserts each name and attaches it to the book. An existing
// author is reused, never duplicated.
func linkAuthors(ctx context.Context, tx *sql.Tx, bookID int64, names []string) error {
	const upsert = `
INSERT INTO authors (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`
	const link = `
INSERT INTO book_authors (book_id, author_id) VALUES ($1,$2)
ON CONFLICT DO NOTHING`
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var authorID int64
		if err := tx.QueryRowContext(ctx, upsert, name).Scan(&authorID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, link, bookID, authorID); err != nil {
			return err
		}
	}
	return nil
}

func linkGenres(ctx context.Context, tx *sql.Tx, bookID int64, names []string) error {
	const upsert = `
INSERT INTO genres (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`
	const link = `
INSERT INTO book_genres (book_id, genre_id) VALUES ($1,$2)
ON CONFLICT DO NOTHING`
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var genreID int64
		if err := tx.QueryRowContext(ctx, upsert, name).Scan(&genreID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, link, bookID, genreID); err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	q := strings.Builder{}
	q.WriteString(`
SELECT b.id, b.title, b.summary, b.publisher, b.language, b.isbn,
       b.cover_url, b.date_published, b.created_at,
       (SELECT COUNT(*) FROM user_books ub WHERE ub.book_id = b.id) AS reader_count
FROM books b`)

	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(b.title ILIKE $%d OR b.summary ILIKE $%d)", n, n))
	}
	if f.Author != "" {
		args = append(args, "%"+f.Author+"%")
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM book_authors ba JOIN authors a ON a.id = ba.author_id
			WHERE ba.book_id = b.id AND a.name ILIKE $%d)`, len(args)))
	}
	if f.Genre != "" {
		args = append(args, "%"+f.Genre+"%")
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM book_genres bg JOIN genres g ON g.id = bg.genre_id
			WHERE bg.book_id = b.id AND g.name ILIKE $%d)`, len(args)))
	}
	if len(conds) > 0 {
		q.WriteString("\nWHERE " + strings.Join(conds, " AND "))
	}
	q.WriteString("\nORDER BY b.created_at DESC, b.id DESC")

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	var ids []int64
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Summary, &b.Publisher, &b.Language, &b.ISBN,
			&b.CoverURL, &b.DatePublished, &b.CreatedAt, &b.ReaderCount,
		); err != nil {
			return nil, err
		}
		b.Authors = []model.Author{}
		b.Genres = []model.Genre{}
		out = append(out, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, ids, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Book, error) {
	const q = `
SELECT b.id, b.title, b.summary, b.publisher, b.language, b.isbn,
       b.cover_url, b.date_published, b.created_at,
       (SELECT COUNT(*) FROM user_books ub WHERE ub.book_id = b.id) AS reader_count
FROM books b
WHERE b.id = $1`
	var b model.Book
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.Summary, &b.Publisher, &b.Language, &b.ISBN,
		&b.CoverURL, &b.DatePublished, &b.CreatedAt, &b.ReaderCount,
	); err != nil {
		return nil, err
	}
	b.Authors = []model.Author{}
	b.Genres = []model.Genre{}
	books := []model.Book{b}
	if err := r.loadRelations(ctx, []int64{b.ID}, books); err != nil {
		return nil, err
	}
	return &books[0], nil
}

// loadRelations fills Authors and Genres for the given books in two batch
// queries instead of one pair per book.
func (r *repo) loadRelations(ctx context.Context, ids []int64, books []model.Book) error {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[int64]*model.Book, len(books))
	for i := range books {
		byID[books[i].ID] = &books[i]
	}

	const qa = `
SELECT ba.book_id, a.id, a.name
FROM book_authors ba
JOIN authors a ON a.id = ba.author_id
WHERE ba.book_id = ANY($1)
ORDER BY a.name`
	rows, err := r.db.QueryContext(ctx, qa, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var bookID int64
		var a model.Author
		if err := rows.Scan(&bookID, &a.ID, &a.Name); err != nil {
			return err
		}
		if b := byID[bookID]; b != nil {
			b.Authors = append(b.Authors, a)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const qg = `
SELECT bg.book_id, g.id, g.name
FROM book_genres bg
JOIN genres g ON g.id = bg.genre_id
WHERE bg.book_id = ANY($1)
ORDER BY g.name`
	grows, err := r.db.QueryContext(ctx, qg, ids)
	if err != nil {
		return err
	}
	defer grows.Close()
	for grows.Next() {
		var bookID int64
		var g model.Genre
		if err := grows.Scan(&bookID, &g.ID, &g.Name); err != nil {
			return err
		}
		if b := byID[bookID]; b != nil {
			b.Genres = append(b.Genres, g)
		}
	}
	return grows.Err()
}

func (r *repo) UpdateShared(ctx context.Context, id int64, fields model.BookFields, authors, genres *[]string) (b *model.Book, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// COALESCE keeps columns whose field was not supplied.
	const q = `
UPDATE books SET
	title          = COALESCE($2, title),
	summary        = COALESCE($3, summary),
	publisher      = COALESCE($4, publisher),
	language       = COALESCE($5, language),
	isbn           = COALESCE($6, isbn),
	cover_url      = COALESCE($7, cover_url),
	date_published = COALESCE($8, date_published)
WHERE id = $1`
	res, err := tx.ExecContext(ctx, q, id,
		fields.Title, fields.Summary, fields.Publisher, fields.Language,
		fields.ISBN, fields.CoverURL, fields.DatePublished,
	)
	if err != nil {
		return nil, err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		err = sql.ErrNoRows
		return nil, err
	}

	if authors != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM book_authors WHERE book_id = $1`, id); err != nil {
			return nil, err
		}
		if err = linkAuthors(ctx, tx, id, *authors); err != nil {
			return nil, err
		}
	}
	if genres != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM book_genres WHERE book_id = $1`, id); err != nil {
			return nil, err
		}
		if err = linkGenres(ctx, tx, id, *genres); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
