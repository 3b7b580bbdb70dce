package booksvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ADEB21/BooksInMyMind/model"
	bookrepo "github.com/ADEB21/BooksInMyMind/repository/book"
	libraryrepo "github.com/ADEB21/BooksInMyMind/repository/library"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
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
	// Create adds a catalog book, upserting any named authors/genres. When
	// personal is non-nil the caller's library row is created as well; the
	// two inserts are not one transaction, a failed library insert leaves
	// the book in place.
	Create(ctx context.Context, userID int64, fields model.BookFields, authors, genres []string, personal *model.UserBookFields) (*model.Book, *model.UserBook, error)

	List(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)

	// UpdateShared mutates only the shared catalog fields. Any
	// authenticated user may call it.
	UpdateShared(ctx context.Context, id int64, fields model.BookFields, authors, genres *[]string) (*model.Book, error)

	// Delete removes the book; dependent library rows go with it (the
	// schema cascades).
	Delete(ctx context.Context, id int64) error
}

type service struct {
	br bookrepo.Repo
	lr libraryrepo.Repo
}

func New(br bookrepo.Repo, lr libraryrepo.Repo) Service {
	return &service{br: br, lr: lr}
}

func (s *service) Create(ctx context.Context, userID int64, fields model.BookFields, authors, genres []string, personal *model.UserBookFields) (*model.Book, *model.UserBook, error) {
	b, err := s.br.Create(ctx, fields, authors, genres)
	if err != nil {
		return nil, nil, err
	}
	if personal == nil {
		return b, nil, nil
	}
	ub, err := s.lr.Insert(ctx, userID, b.ID, *personal)
	if err != nil {
		return nil, nil, err
	}
	ub.Book = b
	ub.FillReadingDays()
	return b, ub, nil
}

func (s *service) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	return s.br.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.br.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateShared(ctx context.Context, id int64, fields model.BookFields, authors, genres *[]string) (*model.Book, error) {
	b, err := s.br.UpdateShared(ctx, id, fields, authors, genres)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.br.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFound)
	}
	return nil
}
