package librarysvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ADEB21/BooksInMyMind/model"
	libraryrepo "github.com/ADEB21/BooksInMyMind/repository/library"
)

// errors used by controllers

type ErrCode string

const (
	ErrBookNotFound ErrCode = "BOOK_NOT_FOUND"
	ErrNotFound     ErrCode = "NOT_FOUND"
	ErrAlreadyAdded ErrCode = "ALREADY_IN_LIBRARY"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Add puts a catalog book into the caller's library. Status defaults to
	// TO_READ. A second add of the same book conflicts.
	Add(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error)

	// My lists the caller's library, newest first, each row joined with its
	// book.
	My(ctx context.Context, userID int64) ([]model.UserBook, error)

	// Get returns one library row if it belongs to the caller; a row owned
	// by someone else reads as not found.
	Get(ctx context.Context, userID, id int64) (*model.UserBook, error)

	// Update mutates only the personal fields of the caller's row, never
	// the shared book.
	Update(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error)

	// Remove deletes the caller's row; the book itself persists.
	Remove(ctx context.Context, userID, id int64) error

	Stats(ctx context.Context, userID int64) (*model.LibraryStats, error)
}

type service struct{ lr libraryrepo.Repo }

func New(lr libraryrepo.Repo) Service { return &service{lr: lr} }

// Add leans on database constraints rather than a lookup-then-insert: the
// unique (user_id, book_id) pair reports a duplicate, the book_id foreign
// key reports an unknown book. Both hold under concurrent adds.
func (s *service) Add(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error) {
	ub, err := s.lr.Insert(ctx, userID, bookID, fields)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, makeErr(ErrAlreadyAdded)
			case pgerrcode.ForeignKeyViolation:
				return nil, makeErr(ErrBookNotFound)
			}
		}
		return nil, err
	}
	ub.FillReadingDays()
	return ub, nil
}

func (s *service) My(ctx context.Context, userID int64) ([]model.UserBook, error) {
	rows, err := s.lr.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].FillReadingDays()
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, userID, id int64) (*model.UserBook, error) {
	ub, err := s.lr.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	ub.FillReadingDays()
	return ub, nil
}

func (s *service) Update(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error) {
	ub, err := s.lr.Update(ctx, userID, id, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	ub.FillReadingDays()
	return ub, nil
}

func (s *service) Remove(ctx context.Context, userID, id int64) error {
	ok, err := s.lr.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) Stats(ctx context.Context, userID int64) (*model.LibraryStats, error) {
	return s.lr.Stats(ctx, userID)
}
