package librarysvc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/ADEB21/BooksInMyMind/model"
	libraryrepo "github.com/ADEB21/BooksInMyMind/repository/library"
)

type mockRepo struct {
	insertFn func(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error)
	listFn   func(ctx context.Context, userID int64) ([]model.UserBook, error)
	getFn    func(ctx context.Context, userID, id int64) (*model.UserBook, error)
	updateFn func(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error)
	deleteFn func(ctx context.Context, userID, id int64) (bool, error)
	statsFn  func(ctx context.Context, userID int64) (*model.LibraryStats, error)
}

var _ libraryrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Insert(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error) {
	return m.insertFn(ctx, userID, bookID, fields)
}
func (m *mockRepo) ListByUser(ctx context.Context, userID int64) ([]model.UserBook, error) {
	return m.listFn(ctx, userID)
}
func (m *mockRepo) Get(ctx context.Context, userID, id int64) (*model.UserBook, error) {
	return m.getFn(ctx, userID, id)
}
func (m *mockRepo) Update(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error) {
	return m.updateFn(ctx, userID, id, fields)
}
func (m *mockRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	return m.deleteFn(ctx, userID, id)
}
func (m *mockRepo) Stats(ctx context.Context, userID int64) (*model.LibraryStats, error) {
	return m.statsFn(ctx, userID)
}

func TestAdd_DefaultStatus(t *testing.T) {
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error) {
			status := model.StatusToRead
			if fields.Status != nil {
				status = *fields.Status
			}
			return &model.UserBook{ID: 1, UserID: userID, BookID: bookID, Status: status}, nil
		},
	}
	s := New(m)
	ub, err := s.Add(context.Background(), 7, 3, model.UserBookFields{})
	require.NoError(t, err)
	require.Equal(t, model.StatusToRead, ub.Status)
	require.Equal(t, int64(3), ub.BookID)
}

func TestAdd_SecondAddConflicts(t *testing.T) {
	calls := 0
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error) {
			calls++
			if calls == 1 {
				return &model.UserBook{ID: 1, UserID: userID, BookID: bookID, Status: model.StatusToRead}, nil
			}
			return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "user_books_user_id_book_id_key"}
		},
	}
	s := New(m)

	_, err := s.Add(context.Background(), 7, 3, model.UserBookFields{})
	require.NoError(t, err)

	_, err = s.Add(context.Background(), 7, 3, model.UserBookFields{})
	require.Equal(t, ErrAlreadyAdded, Code(err))
}

func TestAdd_UnknownBook(t *testing.T) {
	m := &mockRepo{
		insertFn: func(ctx context.Context, userID, bookID int64, fields model.UserBookFields) (*model.UserBook, error) {
			return nil, &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "user_books_book_id_fkey"}
		},
	}
	s := New(m)
	_, err := s.Add(context.Background(), 7, 999, model.UserBookFields{})
	require.Equal(t, ErrBookNotFound, Code(err))
}

func TestGet_NotOwnedReadsAsNotFound(t *testing.T) {
	m := &mockRepo{
		getFn: func(ctx context.Context, userID, id int64) (*model.UserBook, error) {
			// the repo scopes by owner, a foreign row is ErrNoRows
			return nil, sql.ErrNoRows
		},
	}
	s := New(m)
	_, err := s.Get(context.Background(), 7, 55)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestGet_FillsReadingDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	m := &mockRepo{
		getFn: func(ctx context.Context, userID, id int64) (*model.UserBook, error) {
			return &model.UserBook{ID: id, UserID: userID, Status: model.StatusFinished,
				StartDate: &start, EndDate: &end}, nil
		},
	}
	s := New(m)
	ub, err := s.Get(context.Background(), 7, 1)
	require.NoError(t, err)
	require.NotNil(t, ub.ReadingDays)
	require.Equal(t, 14, *ub.ReadingDays)
}

func TestUpdate_NotFound(t *testing.T) {
	m := &mockRepo{
		updateFn: func(ctx context.Context, userID, id int64, fields model.UserBookFields) (*model.UserBook, error) {
			return nil, sql.ErrNoRows
		},
	}
	s := New(m)
	rating := 4
	_, err := s.Update(context.Background(), 7, 55, model.UserBookFields{Rating: &rating})
	require.Equal(t, ErrNotFound, Code(err))
}

func TestRemove(t *testing.T) {
	m := &mockRepo{
		deleteFn: func(ctx context.Context, userID, id int64) (bool, error) {
			return userID == 7 && id == 1, nil
		},
	}
	s := New(m)
	require.NoError(t, s.Remove(context.Background(), 7, 1))
	require.Equal(t, ErrNotFound, Code(s.Remove(context.Background(), 8, 1)))
}

func TestMy_FillsReadingDays(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	m := &mockRepo{
		listFn: func(ctx context.Context, userID int64) ([]model.UserBook, error) {
			return []model.UserBook{
				{ID: 1, StartDate: &start, EndDate: &end},
				{ID: 2},
			}, nil
		},
	}
	s := New(m)
	rows, err := s.My(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].ReadingDays)
	require.Equal(t, 1, *rows[0].ReadingDays) // partial day rounds up
	require.Nil(t, rows[1].ReadingDays)
}

func TestStats_Passthrough(t *testing.T) {
	m := &mockRepo{
		statsFn: func(ctx context.Context, userID int64) (*model.LibraryStats, error) {
			return &model.LibraryStats{Total: 3, Finished: 2, Reading: 1, AvgRating: 4.5}, nil
		},
	}
	s := New(m)
	st, err := s.Stats(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(3), st.Total)
	require.Equal(t, 4.5, st.AvgRating)
}
