package booksvc

import (
	"context"
	"math"
	"unicode/utf8"

	"library/model"
	bookrepo "library/repository/book"
	"library/repository/store"
	"library/util/apperr"
)

const (
	MinPublishedYear = 1000
	MaxPublishedYear = 2024
	LanguageLen      = 2
	DefaultStock     = 1

	DefaultRecentLimit       = 10
	MaxRecentLimit           = 50
	DefaultMostReviewedLimit = 10
)

type Service interface {
	Create(ctx context.Context, in model.BookCreate) (*model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, opts store.ListOptions) ([]model.Book, error)
	Update(ctx context.Context, id int64, u model.BookUpdate) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	// AdjustStock applies delta to the book's stock. Not idempotent.
	AdjustStock(ctx context.Context, id, delta int64) (*model.Book, error)

	SearchByTitle(ctx context.Context, title string, opts store.ListOptions) ([]model.Book, error)
	SearchByAuthor(ctx context.Context, author string, opts store.ListOptions) ([]model.Book, error)
	FilterByYear(ctx context.Context, from, to int64, opts store.ListOptions) ([]model.Book, error)
	Recent(ctx context.Context, limit int) ([]model.Book, error)
	Available(ctx context.Context, opts store.ListOptions) ([]model.Book, error)
	ByCategory(ctx context.Context, categoryID int64, opts store.ListOptions) ([]model.Book, error)
	MostReviewed(ctx context.Context, limit int) ([]model.Book, error)
	Stats(ctx context.Context) (*model.BookStats, error)
}

type service struct {
	tx store.TxRunner
	r  bookrepo.Repo
}

func New(tx store.TxRunner, r bookrepo.Repo) Service { return &service{tx: tx, r: r} }

// CreationGuard checks the fields a new book must satisfy. A nil stock
// means the default applies and is not checked.
func CreationGuard(publishedYear int64, stock *int64, language string) error {
	if publishedYear < MinPublishedYear || publishedYear > MaxPublishedYear {
		return apperr.Newf(apperr.ErrValidation, "published year must be between %d and %d",
			MinPublishedYear, MaxPublishedYear)
	}
	if stock != nil && *stock <= 0 {
		return apperr.New(apperr.ErrValidation, "stock must be greater than 0")
	}
	if utf8.RuneCountInString(language) != LanguageLen {
		return apperr.New(apperr.ErrValidation, "language must be a 2-letter code")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in model.BookCreate) (*model.Book, error) {
	if in.Title == "" || in.Author == "" || in.ISBN == "" {
		return nil, apperr.New(apperr.ErrValidation, "title, author and isbn are required")
	}
	if in.Pages <= 0 {
		return nil, apperr.New(apperr.ErrValidation, "pages must be greater than 0")
	}
	if err := CreationGuard(in.PublishedYear, in.Stock, in.Language); err != nil {
		return nil, err
	}

	stock := int64(DefaultStock)
	if in.Stock != nil {
		stock = *in.Stock
	}
	b := &model.Book{
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		Pages:         in.Pages,
		PublishedYear: in.PublishedYear,
		Stock:         stock,
		Description:   in.Description,
		Language:      in.Language,
		Publisher:     in.Publisher,
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		r := s.r.WithTx(tx)
		if err := r.Create(ctx, b); err != nil {
			return err
		}
		for _, cid := range in.CategoryIDs {
			if err := r.AddCategory(ctx, b.ID, cid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update checks only stock and language; the year is not re-validated.
func (s *service) Update(ctx context.Context, id int64, u model.BookUpdate) (*model.Book, error) {
	if u.Stock != nil && *u.Stock < 0 {
		return nil, apperr.New(apperr.ErrValidation, "stock must not be negative")
	}
	if u.Language != nil && utf8.RuneCountInString(*u.Language) != LanguageLen {
		return nil, apperr.New(apperr.ErrValidation, "language must be a 2-letter code")
	}
	return s.r.Update(ctx, id, u)
}

func (s *service) AdjustStock(ctx context.Context, id, delta int64) (*model.Book, error) {
	if delta == math.MinInt64 {
		return nil, apperr.New(apperr.ErrValidation, "quantity out of range")
	}
	var out *model.Book
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		r := s.r.WithTx(tx)
		current, version, err := r.StockForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if delta > 0 && current > math.MaxInt64-delta {
			return apperr.New(apperr.ErrValidation, "quantity out of range")
		}
		next := current + delta
		if next < 0 {
			return apperr.Newf(apperr.ErrInvalidAdjustment,
				"stock cannot go negative: have %d, delta %d", current, delta)
		}
		out, err = r.SetStock(ctx, id, next, version)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Book, error) { return s.r.Get(ctx, id) }

func (s *service) List(ctx context.Context, opts store.ListOptions) ([]model.Book, error) {
	return s.r.List(ctx, opts)
}

func (s *service) Delete(ctx context.Context, id int64) error { return s.r.Delete(ctx, id) }

func (s *service) SearchByTitle(ctx context.Context, title string, opts store.ListOptions) ([]model.Book, error) {
	if title == "" {
		return nil, apperr.New(apperr.ErrValidation, "title is required")
	}
	return s.r.SearchByTitle(ctx, title, opts)
}

func (s *service) SearchByAuthor(ctx context.Context, author string, opts store.ListOptions) ([]model.Book, error) {
	if author == "" {
		return nil, apperr.New(apperr.ErrValidation, "author is required")
	}
	return s.r.SearchByAuthor(ctx, author, opts)
}

func (s *service) FilterByYear(ctx context.Context, from, to int64, opts store.ListOptions) ([]model.Book, error) {
	if from > to {
		return nil, apperr.New(apperr.ErrValidation, "start year must not be after end year")
	}
	return s.r.FilterByYear(ctx, from, to, opts)
}

// Recent returns the newest books. Zero limit means the default.
func (s *service) Recent(ctx context.Context, limit int) ([]model.Book, error) {
	if limit == 0 {
		limit = DefaultRecentLimit
	}
	if limit < 1 || limit > MaxRecentLimit {
		return nil, apperr.Newf(apperr.ErrValidation, "limit must be between 1 and %d", MaxRecentLimit)
	}
	return s.r.Recent(ctx, uint(limit))
}

func (s *service) Available(ctx context.Context, opts store.ListOptions) ([]model.Book, error) {
	return s.r.Available(ctx, opts)
}

func (s *service) ByCategory(ctx context.Context, categoryID int64, opts store.ListOptions) ([]model.Book, error) {
	return s.r.ByCategory(ctx, categoryID, opts)
}

func (s *service) MostReviewed(ctx context.Context, limit int) ([]model.Book, error) {
	if limit == 0 {
		limit = DefaultMostReviewedLimit
	}
	if limit < 1 {
		return nil, apperr.New(apperr.ErrValidation, "limit must be at least 1")
	}
	return s.r.MostReviewed(ctx, uint(limit))
}

func (s *service) Stats(ctx context.Context) (*model.BookStats, error) { return s.r.Stats(ctx) }
