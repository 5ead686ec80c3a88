package reviewrepo

import (
	"context"
	"fmt"
	"strings"

	"library/model"
	"library/repository/store"

	"github.com/doug-martin/goqu/v9"
)

const entity = "review"

var columns = []string{
	"id", "user_id", "book_id", "rating", "comment", "review_date", "created_at", "updated_at",
}

var columnList = strings.Join(columns, ", ")

type Repo interface {
	Create(ctx context.Context, rv *model.Review) error
	Get(ctx context.Context, id int64) (*model.Review, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Review, error)
	Update(ctx context.Context, id int64, u model.ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db store.DBTX }

func New(db store.DBTX) Repo { return &repo{db} }

type scanner interface{ Scan(dest ...any) error }

func scanReview(s scanner) (*model.Review, error) {
	var rv model.Review
	if err := s.Scan(&rv.ID, &rv.UserID, &rv.BookID, &rv.Rating, &rv.Comment,
		&rv.ReviewDate, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repo) Create(ctx context.Context, rv *model.Review) error {
	const q = `
INSERT INTO reviews (user_id, book_id, rating, comment, review_date)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, q, rv.UserID, rv.BookID, rv.Rating, rv.Comment, rv.ReviewDate).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	return store.MapErr(entity, err)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Review, error) {
	q := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1`, columnList)
	rv, err := scanReview(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return rv, nil
}

func (r *repo) List(ctx context.Context, opts store.ListOptions) ([]model.Review, error) {
	sel := make([]any, len(columns))
	for i, c := range columns {
		sel[i] = goqu.C(c)
	}
	q, args, err := opts.Apply(
		store.PG().From("reviews").Prepared(true).Select(sel...).Order(goqu.C("id").Asc()),
	).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, id int64, u model.ReviewUpdate) (*model.Review, error) {
	if u.Empty() {
		return r.Get(ctx, id)
	}
	rec := goqu.Record{"updated_at": goqu.L("NOW()")}
	if u.Rating != nil {
		rec["rating"] = *u.Rating
	}
	if u.Comment != nil {
		rec["comment"] = *u.Comment
	}
	if u.ReviewDate != nil {
		rec["review_date"] = *u.ReviewDate
	}
	q, args, err := store.PG().Update("reviews").Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		Returning(goqu.L(columnList)).
		ToSQL()
	if err != nil {
		return nil, err
	}
	rv, err := scanReview(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return rv, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return store.MapDeleteErr(entity, err)
	}
	return store.MustAffect(entity, res)
}
