package library

import (
	"context"
	"database/sql"

	"github.com/ADEB21/BooksInMyMind/model"
)

type Repo interface {
	Insert(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error)
	ListByUser(ctx context.Context, userID int64) ([]model.UserBook, error)
	Get(ctx context.Context, userID, id int64) (*model.UserBook, error)
	Update(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
	Stats(ctx context.Context, userID int64) (*model.LibraryStats, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

// Insert relies on the (user_id, book_id) unique constraint: a duplicate add
// surfaces as a unique violation, the caller maps it to a conflict. No
// check-then-insert.
func (r *repo) Insert(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error) {
	status := model.StatusToRead
	if fields.Status != nil {
		status = *fields.Status
	}
	const q = `
INSERT INTO user_books (user_id, book_id, status, rating, comment, start_date, end_date, pages)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id, created_at`
	ub := &model.UserBook{
		UserID:    userID,
		BookID:    bookID,
		Status:    status,
		Rating:    fields.Rating,
		Comment:   fields.Comment,
		StartDate: fields.StartDate,
		EndDate:   fields.EndDate,
		Pages:     fields.Pages,
	}
	if err := r.db.QueryRowContext(ctx, q,
		userID, bookID, status, fields.Rating, fields.Comment,
		fields.StartDate, fields.EndDate, fields.Pages,
	).Scan(&ub.ID, &ub.CreatedAt); err != nil {
		return nil, err
	}
	return ub, nil
}

const rowColumns = `
ub.id, ub.user_id, ub.book_id, ub.status, ub.rating, ub.comment,
ub.start_date, ub.end_date, ub.pages, ub.created_at,
b.id, b.title, b.summary, b.publisher, b.language, b.isbn,
b.cover_url, b.date_published, b.created_at`

func scanRow(sc interface{ Scan(...any) error }) (*model.UserBook, error) {
	var ub model.UserBook
	var b model.Book
	if err := sc.Scan(
		&ub.ID, &ub.UserID, &ub.BookID, &ub.Status, &ub.Rating, &ub.Comment,
		&ub.StartDate, &ub.EndDate, &ub.Pages, &ub.CreatedAt,
		&b.ID, &b.Title, &b.Summary, &b.Publisher, &b.Language, &b.ISBN,
		&b.CoverURL, &b.DatePublished, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	ub.Book = &b
	return &ub, nil
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.UserBook, error) {
	const q = `
SELECT ` + rowColumns + `
FROM user_books ub
JOIN books b ON b.id = ub.book_id
WHERE ub.user_id = $1
ORDER BY ub.created_at DESC, ub.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserBook
	for rows.Next() {
		ub, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ub)
	}
	return out, rows.Err()
}

// Get scopes by owner: a row that exists but belongs to someone else is
// indistinguishable from a missing one.
func (r *repo) Get(ctx context.Context, userID, id int64) (*model.UserBook, error) {
	const q = `
SELECT ` + rowColumns + `
FROM user_books ub
JOIN books b ON b.id = ub.book_id
WHERE ub.id = $1 AND ub.user_id = $2`
	return scanRow(r.db.QueryRowContext(ctx, q, id, userID))
}

func (r *repo) Update(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error) {
	const q = `
UPDATE user_books SET
	status     = COALESCE($3, status),
	rating     = COALESCE($4, rating),
	comment    = COALESCE($5, comment),
	start_date = COALESCE($6, start_date),
	end_date   = COALESCE($7, end_date),
	pages      = COALESCE($8, pages)
WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID,
		fields.Status, fields.Rating, fields.Comment,
		fields.StartDate, fields.EndDate, fields.Pages,
	)
	if err != nil {
		return nil, err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return nil, sql.ErrNoRows
	}
	return r.Get(ctx, userID, id)
}

func (r *repo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_books WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Stats(ctx context.Context, userID int64) (*model.LibraryStats, error) {
	const q = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status = 'FINISHED'),
       COUNT(*) FILTER (WHERE status = 'READING'),
       COALESCE(AVG(rating), 0)::FLOAT8
FROM user_books
WHERE user_id = $1`
	var s model.LibraryStats
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&s.Total, &s.Finished, &s.Reading, &s.AvgRating,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
