// repository/loan/loanRepository.go
package loanrepo

import (
	"context"
	"fmt"
	"strings"

	"library/model"
	"library/repository/store"

	"github.com/doug-martin/goqu/v9"
)

const entity = "loan"

var columns = []string{
	"id", "user_id", "book_id", "loan_dt", "due_date", "return_dt",
	"status", "fine_amount", "created_at", "updated_at",
}

var columnList = strings.Join(columns, ", ")

type Repo interface {
	Add(ctx context.Context, l *model.Loan) error
	Get(ctx context.Context, id int64) (*model.Loan, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Loan, error)
	UpdateStatus(ctx context.Context, id int64, status model.LoanStatus) (*model.Loan, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db store.DBTX }

func New(db store.DBTX) Repo { return &repo{db: db} }

type scanner interface{ Scan(dest ...any) error }

func scanLoan(s scanner) (*model.Loan, error) {
	var (
		l   model.Loan
		ret model.Date
		has bool
	)
	dest := []any{
		&l.ID, &l.UserID, &l.BookID, &l.LoanDate, &l.DueDate, &nullDate{d: &ret, valid: &has},
		&l.Status, &l.FineAmount, &l.CreatedAt, &l.UpdatedAt,
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	if has {
		l.ReturnDate = &ret
	}
	return &l, nil
}

// nullDate scans a nullable DATE column.
type nullDate struct {
	d     *model.Date
	valid *bool
}

func (n *nullDate) Scan(src any) error {
	if src == nil {
		*n.valid = false
		return nil
	}
	*n.valid = true
	return n.d.Scan(src)
}

func (r *repo) Add(ctx context.Context, l *model.Loan) error {
	q, args, err := store.PG().Insert("loans").Prepared(true).
		Rows(goqu.Record{
			"user_id":     l.UserID,
			"book_id":     l.BookID,
			"loan_dt":     l.LoanDate,
			"due_date":    l.DueDate,
			"status":      string(l.Status),
			"fine_amount": l.FineAmount,
		}).
		Returning("id", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return err
	}
	err = r.db.QueryRowContext(ctx, q, args...).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return store.MapErr(entity, err)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Loan, error) {
	q := fmt.Sprintf(`
SELECT %s
FROM loans
WHERE id = $1`, columnList)
	l, err := scanLoan(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return l, nil
}

func (r *repo) List(ctx context.Context, opts store.ListOptions) ([]model.Loan, error) {
	sel := make([]any, len(columns))
	for i, c := range columns {
		sel[i] = goqu.C(c)
	}
	q, args, err := opts.Apply(
		store.PG().From("loans").Prepared(true).Select(sel...).Order(goqu.C("id").Asc()),
	).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	defer rows.Close()

	out := []model.Loan{}
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

// UpdateStatus writes the status column and nothing else.
func (r *repo) UpdateStatus(ctx context.Context, id int64, status model.LoanStatus) (*model.Loan, error) {
	q := fmt.Sprintf(`
UPDATE loans
SET status = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING %s`, columnList)
	l, err := scanLoan(r.db.QueryRowContext(ctx, q, id, string(status)))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return l, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM loans WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return store.MapDeleteErr(entity, err)
	}
	return store.MustAffect(entity, res)
}
