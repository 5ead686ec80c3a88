package authsvc

import (
	"context"
	"strings"

	"library/model"
	userrepo "library/repository/user"
	"library/util/apperr"
	"library/util/hash"
	jwtutil "library/util/jwt"
)

type Service interface {
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

// Login checks the credentials and returns a signed bearer token.
// An unknown user and a wrong password fail the same way.
func (s *service) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", apperr.New(apperr.ErrValidation, "username and password are required")
	}

	u, err := s.ur.ByUsername(ctx, username)
	if err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.New(apperr.ErrInvalidCredentials, "invalid credentials")
		}
		return nil, "", err
	}
	if !u.IsActive || !hash.Check(u.PasswordHash, password) {
		return nil, "", apperr.New(apperr.ErrInvalidCredentials, "invalid credentials")
	}

	token, err := jwtutil.Issue(s.secret, u.ID, jwtutil.DefaultTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
