package userrepo

import (
	"context"
	"fmt"
	"strings"

	"library/model"
	"library/repository/store"

	"github.com/doug-martin/goqu/v9"
)

const entity = "user"

var columns = []string{
	"id", "username", "fullname", "email", "phone", "address", "is_active",
	"password_hash", "created_at", "updated_at",
}

var columnList = strings.Join(columns, ", ")

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	Get(ctx context.Context, id int64) (*model.User, error)
	ByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.User, error)
	Update(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error)
	SetPassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db store.DBTX }

func New(db store.DBTX) Repo { return &repo{db} }

type scanner interface{ Scan(dest ...any) error }

func scanUser(s scanner) (*model.User, error) {
	u := &model.User{}
	err := s.Scan(&u.ID, &u.Username, &u.Fullname, &u.Email, &u.Phone, &u.Address,
		&u.IsActive, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) Create(ctx context.Context, u *model.User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users(username, fullname, email, phone, address, is_active, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at`,
		u.Username, u.Fullname, u.Email, u.Phone, u.Address, u.IsActive, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return store.MapErr(entity, err)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, fmt.Sprintf(`
        SELECT %s
        FROM users
        WHERE id = $1`, columnList), id))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return u, nil
}

func (r *repo) ByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, fmt.Sprintf(`
        SELECT %s
        FROM users
        WHERE lower(username) = lower($1)`, columnList), username))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return u, nil
}

func (r *repo) List(ctx context.Context, opts store.ListOptions) ([]model.User, error) {
	sel := make([]any, len(columns))
	for i, c := range columns {
		sel[i] = goqu.C(c)
	}
	q, args, err := opts.Apply(
		store.PG().From("users").Prepared(true).Select(sel...).Order(goqu.C("id").Asc()),
	).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, id int64, u model.UserUpdate) (*model.User, error) {
	if u.Empty() {
		return r.Get(ctx, id)
	}
	rec := goqu.Record{"updated_at": goqu.L("NOW()")}
	if u.Username != nil {
		rec["username"] = *u.Username
	}
	if u.Fullname != nil {
		rec["fullname"] = *u.Fullname
	}
	if u.Email != nil {
		rec["email"] = *u.Email
	}
	if u.Phone != nil {
		rec["phone"] = *u.Phone
	}
	if u.Address != nil {
		rec["address"] = *u.Address
	}
	if u.IsActive != nil {
		rec["is_active"] = *u.IsActive
	}
	ret := make([]any, len(columns))
	for i, c := range columns {
		ret[i] = goqu.C(c)
	}
	q, args, err := store.PG().Update("users").Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		Returning(ret...).
		ToSQL()
	if err != nil {
		return nil, err
	}
	out, err := scanUser(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return out, nil
}

func (r *repo) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`, id, passwordHash)
	if err != nil {
		return store.MapErr(entity, err)
	}
	return store.MustAffect(entity, res)
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return store.MapDeleteErr(entity, err)
	}
	return store.MustAffect(entity, res)
}
