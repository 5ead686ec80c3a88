package categorysvc

import (
	"context"
	"strings"

	"library/model"
	categoryrepo "library/repository/category"
	"library/repository/store"
	"library/util/apperr"
)

type Service interface {
	Create(ctx context.Context, name string, description *string) (*model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Category, error)
	Update(ctx context.Context, id int64, u model.CategoryUpdate) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ r categoryrepo.Repo }

func New(r categoryrepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name string, description *string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.ErrValidation, "name is required")
	}
	c := &model.Category{Name: name, Description: description}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, u model.CategoryUpdate) (*model.Category, error) {
	if u.Name != nil {
		n := strings.TrimSpace(*u.Name)
		if n == "" {
			return nil, apperr.New(apperr.ErrValidation, "name must not be empty")
		}
		u.Name = &n
	}
	return s.r.Update(ctx, id, u)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Category, error) {
	return s.r.Get(ctx, id)
}

func (s *service) List(ctx context.Context, opts store.ListOptions) ([]model.Category, error) {
	return s.r.List(ctx, opts)
}

func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
