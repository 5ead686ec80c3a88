// service/user/userService_test.go
package usersvc_test

import (
	"context"
	"testing"

	"library/model"
	userrepo "library/repository/user"
	"library/repository/store"
	usersvc "library/service/user"
	"library/util/apperr"
	"library/util/hash"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	createFn      func(ctx context.Context, u *model.User) error
	getFn         func(ctx context.Context, id int64) (*model.User, error)
	updateFn      func(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error)
	setPasswordFn func(ctx context.Context, id int64, passwordHash string) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) Get(ctx context.Context, id int64) (*model.User, error) {
	if m.getFn == nil {
		return nil, apperr.New(apperr.ErrNotFound, "user not found")
	}
	return m.getFn(ctx, id)
}

func (m *mockRepo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, apperr.New(apperr.ErrNotFound, "user not found")
}

func (m *mockRepo) List(ctx context.Context, opts store.ListOptions) ([]model.User, error) {
	return []model.User{}, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error) {
	return m.updateFn(ctx, id, u)
}

func (m *mockRepo) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	return m.setPasswordFn(ctx, id, passwordHash)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error { return nil }

func validInput() usersvc.CreateInput {
	return usersvc.CreateInput{
		Username: "ada",
		Fullname: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "analytical",
	}
}

// --- tests ---

func TestCreate_HashesPassword(t *testing.T) {
	var stored *model.User
	m := &mockRepo{createFn: func(ctx context.Context, u *model.User) error {
		u.ID = 5
		stored = u
		return nil
	}}

	u, err := usersvc.New(m).Create(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, int64(5), u.ID)
	require.True(t, u.IsActive)
	require.NotEqual(t, "analytical", stored.PasswordHash)
	require.True(t, hash.Check(stored.PasswordHash, "analytical"))
}

func TestCreate_EmailShape(t *testing.T) {
	s := usersvc.New(&mockRepo{})
	for _, email := range []string{"plain", "a@b", "@b.c", "a@.c"} {
		in := validInput()
		in.Email = email
		_, err := s.Create(context.Background(), in)
		require.Equal(t, apperr.ErrValidation, apperr.Code(err), email)
	}

	in := validInput()
	in.Email = "x@y.io"
	_, err := s.Create(context.Background(), in)
	require.NoError(t, err)
}

func TestCreate_DuplicatePropagates(t *testing.T) {
	m := &mockRepo{createFn: func(ctx context.Context, u *model.User) error {
		return apperr.New(apperr.ErrDuplicateKey, "user already exists (users_email_key)")
	}}
	_, err := usersvc.New(m).Create(context.Background(), validInput())
	require.Equal(t, apperr.ErrDuplicateKey, apperr.Code(err))
}

func TestUpdate_RevalidatesEmail(t *testing.T) {
	m := &mockRepo{updateFn: func(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error) {
		return &model.User{ID: id, Email: *u.Email}, nil
	}}
	s := usersvc.New(m)

	bad := "nope"
	_, err := s.Update(context.Background(), 1, model.UserUpdate{Email: &bad})
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))

	good := "new@example.com"
	u, err := s.Update(context.Background(), 1, model.UserUpdate{Email: &good})
	require.NoError(t, err)
	require.Equal(t, good, u.Email)
}

func TestUpdatePassword(t *testing.T) {
	hashed, err := hash.HashPassword("old-secret")
	require.NoError(t, err)

	var saved string
	m := &mockRepo{
		getFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, PasswordHash: hashed}, nil
		},
		setPasswordFn: func(ctx context.Context, id int64, h string) error {
			saved = h
			return nil
		},
	}
	s := usersvc.New(m)

	err = s.UpdatePassword(context.Background(), 1, "wrong", "new-secret")
	require.Equal(t, apperr.ErrInvalidCredentials, apperr.Code(err))
	require.Empty(t, saved)

	require.NoError(t, s.UpdatePassword(context.Background(), 1, "old-secret", "new-secret"))
	require.True(t, hash.Check(saved, "new-secret"))
}

func TestUpdatePassword_UnknownUser(t *testing.T) {
	err := usersvc.New(&mockRepo{}).UpdatePassword(context.Background(), 9, "a", "long-enough")
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}
