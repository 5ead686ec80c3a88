package book

import "library/model"

type CategoryRef struct {
	CategoryID int64 `json:"category_id" validate:"required,gt=0"`
}

type CreateBookReq struct {
	Title         string        `json:"title" validate:"required"`
	Author        string        `json:"author" validate:"required"`
	ISBN          string        `json:"isbn" validate:"required"`
	Pages         int64         `json:"pages" validate:"required,gt=0"`
	PublishedYear int64         `json:"published_year" validate:"required"`
	Stock         *int64        `json:"stock"`
	Description   *string       `json:"description"`
	Language      string        `json:"language" validate:"required"`
	Publisher     *string       `json:"publisher"`
	Categories    []CategoryRef `json:"categories" validate:"dive"`
}

func (r CreateBookReq) toModel() model.BookCreate {
	ids := make([]int64, 0, len(r.Categories))
	for _, c := range r.Categories {
		ids = append(ids, c.CategoryID)
	}
	return model.BookCreate{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Pages:         r.Pages,
		PublishedYear: r.PublishedYear,
		Stock:         r.Stock,
		Description:   r.Description,
		Language:      r.Language,
		Publisher:     r.Publisher,
		CategoryIDs:   ids,
	}
}

type UpdateBookReq struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Author        *string `json:"author" validate:"omitempty,min=1"`
	ISBN          *string `json:"isbn" validate:"omitempty,min=1"`
	Pages         *int64  `json:"pages" validate:"omitempty,gt=0"`
	PublishedYear *int64  `json:"published_year"`
	Stock         *int64  `json:"stock"`
	Description   *string `json:"description"`
	Language      *string `json:"language"`
	Publisher     *string `json:"publisher"`
}

func (r UpdateBookReq) toModel() model.BookUpdate {
	return model.BookUpdate{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Pages:         r.Pages,
		PublishedYear: r.PublishedYear,
		Stock:         r.Stock,
		Description:   r.Description,
		Language:      r.Language,
		Publisher:     r.Publisher,
	}
}
