package reviewsvc

import (
	"context"
	"time"

	"library/model"
	reviewrepo "library/repository/review"
	"library/repository/store"
	"library/util/apperr"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Service interface {
	Create(ctx context.Context, in model.ReviewCreate) (*model.Review, error)
	Get(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Review, error)
	Update(ctx context.Context, id int64, u model.ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r   reviewrepo.Repo
	now func() time.Time
}

type Option func(*service)

// WithClock overrides the clock used to default the review date.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func New(r reviewrepo.Repo, opts ...Option) Service {
	s := &service{r: r, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func checkRating(r int64) error {
	if r < MinRating || r > MaxRating {
		return apperr.Newf(apperr.ErrValidation, "rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

func (s *service) Create(ctx context.Context, in model.ReviewCreate) (*model.Review, error) {
	if in.UserID <= 0 || in.BookID <= 0 {
		return nil, apperr.New(apperr.ErrValidation, "user_id and book_id are required")
	}
	if err := checkRating(in.Rating); err != nil {
		return nil, err
	}
	day := model.DateOf(s.now().UTC())
	if in.ReviewDate != nil && !in.ReviewDate.IsZero() {
		day = *in.ReviewDate
	}
	rv := &model.Review{
		UserID:     in.UserID,
		BookID:     in.BookID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		ReviewDate: day,
	}
	if err := s.r.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) Update(ctx context.Context, id int64, u model.ReviewUpdate) (*model.Review, error) {
	if u.Rating != nil {
		if err := checkRating(*u.Rating); err != nil {
			return nil, err
		}
	}
	return s.r.Update(ctx, id, u)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Review, error) { return s.r.Get(ctx, id) }

func (s *service) List(ctx context.Context, opts store.ListOptions) ([]model.Review, error) {
	return s.r.List(ctx, opts)
}

func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
