// service/loan/loanService_test.go
package loansvc_test

import (
	"context"
	"testing"
	"time"

	"library/model"
	"library/repository/store"
	loansvc "library/service/loan"
	"library/util/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memRepo keeps loans in a map keyed by id.
type memRepo struct {
	loans  map[int64]model.Loan
	nextID int64
	addErr error
}

func newMemRepo() *memRepo { return &memRepo{loans: map[int64]model.Loan{}} }

func (m *memRepo) Add(ctx context.Context, l *model.Loan) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.nextID++
	l.ID = m.nextID
	m.loans[l.ID] = *l
	return nil
}

func (m *memRepo) Get(ctx context.Context, id int64) (*model.Loan, error) {
	l, ok := m.loans[id]
	if !ok {
		return nil, apperr.New(apperr.ErrNotFound, "loan not found")
	}
	return &l, nil
}

func (m *memRepo) List(ctx context.Context, opts store.ListOptions) ([]model.Loan, error) {
	out := []model.Loan{}
	for _, l := range m.loans {
		out = append(out, l)
	}
	return out, nil
}

func (m *memRepo) UpdateStatus(ctx context.Context, id int64, status model.LoanStatus) (*model.Loan, error) {
	l, ok := m.loans[id]
	if !ok {
		return nil, apperr.New(apperr.ErrNotFound, "loan not found")
	}
	l.Status = status
	m.loans[id] = l
	return &l, nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.loans[id]; !ok {
		return apperr.New(apperr.ErrNotFound, "loan not found")
	}
	delete(m.loans, id)
	return nil
}

var _ loansvc.Repo = (*memRepo)(nil)

func fixedClock(t time.Time) loansvc.Option {
	return loansvc.WithClock(func() time.Time { return t })
}

func TestCreate_ExplicitLoanDate(t *testing.T) {
	s := loansvc.New(newMemRepo())
	d := model.NewDate(2024, time.January, 1)

	l, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 2, LoanDate: &d})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", l.LoanDate.String())
	require.Equal(t, "2024-01-15", l.DueDate.String())
	require.Equal(t, model.LoanActive, l.Status)
	require.False(t, l.FineAmount.Valid)
	require.Nil(t, l.ReturnDate)
}

func TestCreate_DefaultsToToday(t *testing.T) {
	now := time.Date(2024, time.February, 20, 23, 30, 0, 0, time.UTC)
	s := loansvc.New(newMemRepo(), fixedClock(now))

	l, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 2})
	require.NoError(t, err)
	require.Equal(t, "2024-02-20", l.LoanDate.String())
	require.Equal(t, "2024-03-05", l.DueDate.String())
}

func TestCreate_DueDateAlwaysFourteenDaysLater(t *testing.T) {
	s := loansvc.New(newMemRepo())
	start := model.NewDate(2023, time.December, 1)
	for i := 0; i < 400; i += 13 {
		d := start.AddDays(i)
		l, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 1, LoanDate: &d})
		require.NoError(t, err)
		require.Equal(t, d.AddDays(14), l.DueDate)
		require.Equal(t, model.LoanActive, l.Status)
	}
}

func TestCreate_MissingReferences(t *testing.T) {
	s := loansvc.New(newMemRepo())
	_, err := s.Create(context.Background(), model.LoanCreate{BookID: 2})
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}

func TestCreate_StoreNotFoundPropagates(t *testing.T) {
	repo := newMemRepo()
	repo.addErr = apperr.New(apperr.ErrNotFound, "referenced record not found")
	s := loansvc.New(repo)

	_, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 999})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	repo := newMemRepo()
	s := loansvc.New(repo)
	d := model.NewDate(2024, time.January, 1)
	created, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 2, LoanDate: &d})
	require.NoError(t, err)

	// Seed a fine to check it survives the status change.
	seeded := repo.loans[created.ID]
	seeded.FineAmount = decimal.NewNullDecimal(decimal.RequireFromString("1.50"))
	repo.loans[created.ID] = seeded

	updated, err := s.UpdateStatus(context.Background(), created.ID, model.LoanReturned)
	require.NoError(t, err)

	want := seeded
	want.Status = model.LoanReturned
	require.Equal(t, want, *updated)
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	s := loansvc.New(newMemRepo())
	l, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 2})
	require.NoError(t, err)

	for _, st := range []model.LoanStatus{model.LoanReturned, model.LoanActive, model.LoanOverdue, model.LoanActive} {
		got, err := s.UpdateStatus(context.Background(), l.ID, st)
		require.NoError(t, err)
		require.Equal(t, st, got.Status)
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	s := loansvc.New(newMemRepo())

	_, err := s.UpdateStatus(context.Background(), 1, model.LoanStatus("LOST"))
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))

	_, err = s.UpdateStatus(context.Background(), 404, model.LoanReturned)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestPassThroughs(t *testing.T) {
	s := loansvc.New(newMemRepo())
	l, err := s.Create(context.Background(), model.LoanCreate{UserID: 1, BookID: 2})
	require.NoError(t, err)

	got, err := s.Get(context.Background(), l.ID)
	require.NoError(t, err)
	require.Equal(t, l.ID, got.ID)

	all, err := s.List(context.Background(), store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, s.Delete(context.Background(), l.ID))
	err = s.Delete(context.Background(), l.ID)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}
