package usersvc

import (
	"context"
	"regexp"
	"strings"

	"library/model"
	userrepo "library/repository/user"
	"library/repository/store"
	"library/util/apperr"
	"library/util/hash"
)

var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

const MinPasswordLen = 6

type CreateInput struct {
	Username string
	Fullname string
	Email    string
	Password string
	Phone    *string
	Address  *string
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.User, error)
	Update(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, current, next string) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r userrepo.Repo }

func New(r userrepo.Repo) Service { return &service{r: r} }

func validEmail(s string) bool { return emailRe.MatchString(s) }

func (s *service) Create(ctx context.Context, in CreateInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Fullname == "" {
		return nil, apperr.New(apperr.ErrValidation, "username and fullname are required")
	}
	if !validEmail(in.Email) {
		return nil, apperr.New(apperr.ErrValidation, "invalid email format")
	}
	if len(in.Password) < MinPasswordLen {
		return nil, apperr.Newf(apperr.ErrValidation, "password must be at least %d characters", MinPasswordLen)
	}

	hashed, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Username:     in.Username,
		Fullname:     in.Fullname,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		IsActive:     true,
		PasswordHash: hashed,
	}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error) {
	if u.Email != nil && !validEmail(*u.Email) {
		return nil, apperr.New(apperr.ErrValidation, "invalid email format")
	}
	if u.Username != nil && strings.TrimSpace(*u.Username) == "" {
		return nil, apperr.New(apperr.ErrValidation, "username must not be empty")
	}
	return s.r.Update(ctx, id, u)
}

// UpdatePassword replaces the hash once current matches the stored one.
func (s *service) UpdatePassword(ctx context.Context, id int64, current, next string) error {
	if len(next) < MinPasswordLen {
		return apperr.Newf(apperr.ErrValidation, "password must be at least %d characters", MinPasswordLen)
	}
	u, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if !hash.Check(u.PasswordHash, current) {
		return apperr.New(apperr.ErrInvalidCredentials, "current password is incorrect")
	}
	hashed, err := hash.HashPassword(next)
	if err != nil {
		return err
	}
	return s.r.SetPassword(ctx, id, hashed)
}

func (s *service) Get(ctx context.Context, id int64) (*model.User, error) { return s.r.Get(ctx, id) }

func (s *service) List(ctx context.Context, opts store.ListOptions) ([]model.User, error) {
	return s.r.List(ctx, opts)
}

func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
