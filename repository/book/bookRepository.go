package bookrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"library/model"
	"library/repository/store"
	"library/util/apperr"

	"github.com/doug-martin/goqu/v9"
)

const entity = "book"

var columns = []string{
	"id", "title", "author", "isbn", "pages", "published_year", "stock",
	"description", "language", "publisher", "version", "created_at", "updated_at",
}

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	AddCategory(ctx context.Context, bookID, categoryID int64) error
	Get(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Book, error)
	Update(ctx context.Context, id int64, u model.BookUpdate) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	// Catalog queries
	SearchByTitle(ctx context.Context, title string, opts store.ListOptions) ([]model.Book, error)
	SearchByAuthor(ctx context.Context, author string, opts store.ListOptions) ([]model.Book, error)
	FilterByYear(ctx context.Context, from, to int64, opts store.ListOptions) ([]model.Book, error)
	Recent(ctx context.Context, limit uint) ([]model.Book, error)
	Available(ctx context.Context, opts store.ListOptions) ([]model.Book, error)
	ByCategory(ctx context.Context, categoryID int64, opts store.ListOptions) ([]model.Book, error)
	MostReviewed(ctx context.Context, limit uint) ([]model.Book, error)
	Stats(ctx context.Context) (*model.BookStats, error)

	// Stock
	StockForUpdate(ctx context.Context, id int64) (stock, version int64, err error)
	SetStock(ctx context.Context, id, stock, expectedVersion int64) (*model.Book, error)

	WithTx(tx store.DBTX) Repo
}

type repo struct{ db store.DBTX }

func New(db store.DBTX) Repo { return &repo{db: db} }

func (r *repo) WithTx(tx store.DBTX) Repo { return &repo{db: tx} }

type scanner interface{ Scan(dest ...any) error }

func scanBook(s scanner) (*model.Book, error) {
	var b model.Book
	if err := s.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Pages, &b.PublishedYear, &b.Stock,
		&b.Description, &b.Language, &b.Publisher, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func cols(table string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		if table == "" {
			out[i] = goqu.C(c)
		} else {
			out[i] = goqu.I(table + "." + c)
		}
	}
	return out
}

func returning() []any { return cols("") }

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	q, args, err := store.PG().Insert("books").Prepared(true).
		Rows(goqu.Record{
			"title":          b.Title,
			"author":         b.Author,
			"isbn":           b.ISBN,
			"pages":          b.Pages,
			"published_year": b.PublishedYear,
			"stock":          b.Stock,
			"description":    b.Description,
			"language":       b.Language,
			"publisher":      b.Publisher,
		}).
		Returning("id", "version", "created_at", "updated_at").
		ToSQL()
	if err != nil {
		return err
	}
	err = r.db.QueryRowContext(ctx, q, args...).Scan(&b.ID, &b.Version, &b.CreatedAt, &b.UpdatedAt)
	return store.MapErr(entity, err)
}

func (r *repo) AddCategory(ctx context.Context, bookID, categoryID int64) error {
	const q = `
INSERT INTO book_categories (book_id, category_id)
VALUES ($1,$2)`
	_, err := r.db.ExecContext(ctx, q, bookID, categoryID)
	return store.MapErr("book category", err)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Book, error) {
	q, args, err := store.PG().From("books").Prepared(true).
		Select(cols("")...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, err
	}
	b, err := scanBook(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return b, nil
}

func (r *repo) List(ctx context.Context, opts store.ListOptions) ([]model.Book, error) {
	return r.query(ctx, opts.Apply(r.selectBooks().Order(goqu.C("id").Asc())))
}

func (r *repo) Update(ctx context.Context, id int64, u model.BookUpdate) (*model.Book, error) {
	if u.Empty() {
		return r.Get(ctx, id)
	}
	rec := goqu.Record{"updated_at": goqu.L("NOW()")}
	setIf(rec, "title", u.Title)
	setIf(rec, "author", u.Author)
	setIf(rec, "isbn", u.ISBN)
	setIf(rec, "pages", u.Pages)
	setIf(rec, "published_year", u.PublishedYear)
	setIf(rec, "description", u.Description)
	setIf(rec, "language", u.Language)
	setIf(rec, "publisher", u.Publisher)
	if u.Stock != nil {
		rec["stock"] = *u.Stock
		rec["version"] = goqu.L("version + 1")
	}

	q, args, err := store.PG().Update("books").Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		Returning(returning()...).
		ToSQL()
	if err != nil {
		return nil, err
	}
	b, err := scanBook(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return b, nil
}

func setIf[T any](rec goqu.Record, col string, v *T) {
	if v != nil {
		rec[col] = *v
	}
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM books WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return store.MapDeleteErr(entity, err)
	}
	return store.MustAffect(entity, res)
}

// Catalog queries

func (r *repo) SearchByTitle(ctx context.Context, title string, opts store.ListOptions) ([]model.Book, error) {
	ds := r.selectBooks().
		Where(goqu.C("title").ILike("%" + title + "%")).
		Order(goqu.C("title").Asc())
	return r.query(ctx, opts.Apply(ds))
}

func (r *repo) SearchByAuthor(ctx context.Context, author string, opts store.ListOptions) ([]model.Book, error) {
	ds := r.selectBooks().
		Where(goqu.C("author").ILike("%" + author + "%")).
		Order(goqu.C("author").Asc(), goqu.C("title").Asc())
	return r.query(ctx, opts.Apply(ds))
}

func (r *repo) FilterByYear(ctx context.Context, from, to int64, opts store.ListOptions) ([]model.Book, error) {
	ds := r.selectBooks().
		Where(goqu.C("published_year").Between(goqu.Range(from, to))).
		Order(goqu.C("published_year").Asc(), goqu.C("id").Asc())
	return r.query(ctx, opts.Apply(ds))
}

func (r *repo) Recent(ctx context.Context, limit uint) ([]model.Book, error) {
	ds := r.selectBooks().
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc()).
		Limit(limit)
	return r.query(ctx, ds)
}

func (r *repo) Available(ctx context.Context, opts store.ListOptions) ([]model.Book, error) {
	ds := r.selectBooks().
		Where(goqu.C("stock").Gt(0)).
		Order(goqu.C("id").Asc())
	return r.query(ctx, opts.Apply(ds))
}

func (r *repo) ByCategory(ctx context.Context, categoryID int64, opts store.ListOptions) ([]model.Book, error) {
	ds := store.PG().From(goqu.T("books").As("b")).Prepared(true).
		Select(cols("b")...).
		Join(goqu.T("book_categories").As("bc"), goqu.On(goqu.I("bc.book_id").Eq(goqu.I("b.id")))).
		Where(goqu.I("bc.category_id").Eq(categoryID)).
		Order(goqu.I("b.id").Asc())
	return r.query(ctx, opts.Apply(ds))
}

func (r *repo) MostReviewed(ctx context.Context, limit uint) ([]model.Book, error) {
	ds := store.PG().From(goqu.T("books").As("b")).Prepared(true).
		Select(cols("b")...).
		LeftJoin(goqu.T("reviews").As("rv"), goqu.On(goqu.I("rv.book_id").Eq(goqu.I("b.id")))).
		GroupBy(goqu.I("b.id")).
		Order(goqu.COUNT(goqu.I("rv.id")).Desc(), goqu.I("b.id").Asc()).
		Limit(limit)
	return r.query(ctx, ds)
}

func (r *repo) Stats(ctx context.Context) (*model.BookStats, error) {
	q, args, err := store.PG().From("books").Prepared(true).
		Select(
			goqu.COUNT(goqu.Star()),
			goqu.L("COALESCE(AVG(pages), 0)::float8"),
			goqu.MIN("published_year"),
			goqu.MAX("published_year"),
		).
		ToSQL()
	if err != nil {
		return nil, err
	}
	var (
		st             model.BookStats
		oldest, newest sql.NullInt64
	)
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&st.TotalBooks, &st.AveragePages, &oldest, &newest); err != nil {
		return nil, store.MapErr(entity, err)
	}
	if oldest.Valid {
		st.OldestPublicationYear = &oldest.Int64
	}
	if newest.Valid {
		st.NewestPublicationYear = &newest.Int64
	}
	return &st, nil
}

// Stock

// StockForUpdate reads the stock row and locks it until the transaction ends.
func (r *repo) StockForUpdate(ctx context.Context, id int64) (int64, int64, error) {
	const q = `
SELECT stock, version
FROM books
WHERE id = $1
FOR UPDATE`
	var stock, version int64
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&stock, &version); err != nil {
		return 0, 0, store.MapErr(entity, err)
	}
	return stock, version, nil
}

// SetStock writes stock only if the row still carries expectedVersion.
func (r *repo) SetStock(ctx context.Context, id, stock, expectedVersion int64) (*model.Book, error) {
	q := fmt.Sprintf(`
UPDATE books
SET stock = $2,
    version = version + 1,
    updated_at = NOW()
WHERE id = $1
  AND version = $3
RETURNING %s`, columnList)
	b, err := scanBook(r.db.QueryRowContext(ctx, q, id, stock, expectedVersion))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.ErrConflict, "book stock changed concurrently")
	}
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	return b, nil
}

var columnList = strings.Join(columns, ", ")

func (r *repo) selectBooks() *goqu.SelectDataset {
	return store.PG().From("books").Prepared(true).Select(cols("")...)
}

func (r *repo) query(ctx context.Context, ds *goqu.SelectDataset) ([]model.Book, error) {
	q, args, err := ds.ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, store.MapErr(entity, err)
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}
