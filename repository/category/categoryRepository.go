package categoryrepo

import (
	"context"

	"library/model"
	"library/repository/store"

	"github.com/doug-martin/goqu/v9"
)

const entity = "category"

type Repo interface {
	Create(ctx context.Context, c *model.Category) error
	Get(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Category, error)
	Update(ctx context.Context, id int64, u model.CategoryUpdate) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db store.DBTX }

func New(db store.DBTX) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Category) error {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1,$2)
RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, q, c.Name, c.Description).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return store.MapErr(entity, err)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Category, error) {
	const q = `
SELECT id, name, description, created_at, updated_at
FROM categories
WHERE id = $1`
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, store.MapErr(entity, err)
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, opts store.ListOptions) ([]model.Category, error) {
	q, args, err := opts.Apply(
		store.PG().From("categories").Prepared(true).
			Select("id", "name", "description", "created_at", "updated_at").
			Order(goqu.C("name").Asc()),
	).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, id int64, u model.CategoryUpdate) (*model.Category, error) {
	if u.Empty() {
		return r.Get(ctx, id)
	}
	rec := goqu.Record{"updated_at": goqu.L("NOW()")}
	if u.Name != nil {
		rec["name"] = *u.Name
	}
	if u.Description != nil {
		rec["description"] = *u.Description
	}
	q, args, err := store.PG().Update("categories").Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		Returning("id", "name", "description", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return nil, err
	}
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, store.MapErr(entity, err)
	}
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return store.MapDeleteErr(entity, err)
	}
	return store.MustAffect(entity, res)
}
