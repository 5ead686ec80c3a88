// service/auth/authService_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"library/model"
	userrepo "library/repository/user"
	"library/util/apperr"
	"library/util/hash"
	jwtutil "library/util/jwt"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	userrepo.Repo
	byUsernameFn func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockRepo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.byUsernameFn(ctx, username)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestLogin_Success(t *testing.T) {
	hashed := mustHash(t, "supersecret")
	m := &mockRepo{byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
		require.Equal(t, "ada", username)
		return &model.User{ID: 7, Username: "ada", IsActive: true, PasswordHash: hashed}, nil
	}}

	u, tok, err := New(m, "test-secret").Login(context.Background(), " ada ", "supersecret")
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)

	parsed, err := jwtutil.Parse(tok, "test-secret")
	require.NoError(t, err)
	sub, err := jwtutil.Subject(parsed)
	require.NoError(t, err)
	require.Equal(t, int64(7), sub)
}

func TestLogin_BadInput(t *testing.T) {
	_, _, err := New(&mockRepo{}, "s").Login(context.Background(), " ", "")
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}

func TestLogin_UnknownUser(t *testing.T) {
	m := &mockRepo{byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
		return nil, apperr.New(apperr.ErrNotFound, "user not found")
	}}
	_, _, err := New(m, "s").Login(context.Background(), "ghost", "whatever")
	require.Equal(t, apperr.ErrInvalidCredentials, apperr.Code(err))
}

func TestLogin_WrongPasswordOrInactive(t *testing.T) {
	hashed := mustHash(t, "correct-password")
	active := true
	m := &mockRepo{byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
		return &model.User{ID: 1, IsActive: active, PasswordHash: hashed}, nil
	}}
	s := New(m, "s")

	_, _, err := s.Login(context.Background(), "ada", "wrong")
	require.Equal(t, apperr.ErrInvalidCredentials, apperr.Code(err))

	active = false
	_, _, err = s.Login(context.Background(), "ada", "correct-password")
	require.Equal(t, apperr.ErrInvalidCredentials, apperr.Code(err))
}

func TestLogin_StoreErrorPassesThrough(t *testing.T) {
	m := &mockRepo{byUsernameFn: func(ctx context.Context, username string) (*model.User, error) {
		return nil, errors.New("db error: down")
	}}
	_, _, err := New(m, "s").Login(context.Background(), "ada", "pw")
	require.EqualError(t, err, "db error: down")
	require.Equal(t, apperr.ErrCode(""), apperr.Code(err))
}
