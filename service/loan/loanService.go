package loansvc

import (
	"context"
	"time"

	"library/model"
	"library/repository/store"
	"library/util/apperr"
)

type Repo interface {
	Add(ctx context.Context, l *model.Loan) error
	Get(ctx context.Context, id int64) (*model.Loan, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Loan, error)
	UpdateStatus(ctx context.Context, id int64, status model.LoanStatus) (*model.Loan, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	// Create opens an ACTIVE loan due LoanPeriodDays after the loan date.
	Create(ctx context.Context, in model.LoanCreate) (*model.Loan, error)

	// UpdateStatus changes the status and nothing else.
	UpdateStatus(ctx context.Context, id int64, status model.LoanStatus) (*model.Loan, error)

	Get(ctx context.Context, id int64) (*model.Loan, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Loan, error)
	Delete(ctx context.Context, id int64) error
}

// ----- Service implementation -----

type service struct {
	r   Repo
	now func() time.Time
}

type Option func(*service)

// WithClock overrides the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func New(r Repo, opts ...Option) Service {
	s := &service{r: r, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create resolves the loan date, derives the due date and forces ACTIVE.
// The book's stock is left untouched.
func (s *service) Create(ctx context.Context, in model.LoanCreate) (*model.Loan, error) {
	if in.UserID <= 0 || in.BookID <= 0 {
		return nil, apperr.New(apperr.ErrValidation, "user_id and book_id are required")
	}

	loanDate := model.DateOf(s.now().UTC())
	if in.LoanDate != nil && !in.LoanDate.IsZero() {
		loanDate = *in.LoanDate
	}

	l := &model.Loan{
		UserID:   in.UserID,
		BookID:   in.BookID,
		LoanDate: loanDate,
		DueDate:  loanDate.AddDays(model.LoanPeriodDays),
		Status:   model.LoanActive,
	}
	if err := s.r.Add(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateStatus allows any transition between known statuses.
func (s *service) UpdateStatus(ctx context.Context, id int64, status model.LoanStatus) (*model.Loan, error) {
	if !status.Valid() {
		return nil, apperr.Newf(apperr.ErrValidation, "status must be one of %s, %s, %s",
			model.LoanActive, model.LoanReturned, model.LoanOverdue)
	}
	return s.r.UpdateStatus(ctx, id, status)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Loan, error) { return s.r.Get(ctx, id) }

func (s *service) List(ctx context.Context, opts store.ListOptions) ([]model.Loan, error) {
	return s.r.List(ctx, opts)
}

func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }
