// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/ADEB21/BooksInMyMind/model"
	userrepo "github.com/ADEB21/BooksInMyMind/repository/user"
	"github.com/ADEB21/BooksInMyMind/util/hash"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret", 24)

	req := model.RegisterReq{
		Name:     "Test User",
		Email:    "USER@Example.COM",
		Password: "supersecret",
	}

	u, tok, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.True(t, hash.Check(u.PasswordHash, "supersecret"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := New(m, "test-secret", 24)

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		Name: "a", Email: "a@b.co", Password: "123456",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hashed, err := hash.HashPassword("password123")
	require.NoError(t, err)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 7, Email: email, PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret", 24)

	u, tok, err := svc.Login(context.Background(), model.LoginReq{
		Email: "test@example.com", Password: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.NotEmpty(t, tok)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, err := hash.HashPassword("password123")
	require.NoError(t, err)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 7, Email: email, PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret", 24)

	_, _, err = svc.Login(context.Background(), model.LoginReq{
		Email: "test@example.com", Password: "nope",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := New(m, "test-secret", 24)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email: "nobody@example.com", Password: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestRegister_HashFailurePropagates(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'x'
	}
	svc := New(&mockRepo{}, "test-secret", 24)
	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		Name: "a", Email: "a@b.co", Password: string(long),
	})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrEmailTaken))
}
