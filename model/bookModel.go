// model/bookModel.go
package model

import "time"

type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	Pages         int64     `json:"pages"`
	PublishedYear int64     `json:"published_year"`
	Stock         int64     `json:"stock"`
	Description   *string   `json:"description,omitempty"`
	Language      string    `json:"language"`
	Publisher     *string   `json:"publisher,omitempty"`
	Version       int64     `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookCreate is a new catalog entry. Stock nil means the default of 1.
type BookCreate struct {
	Title         string
	Author        string
	ISBN          string
	Pages         int64
	PublishedYear int64
	Stock         *int64
	Description   *string
	Language      string
	Publisher     *string
	CategoryIDs   []int64
}

type BookUpdate struct {
	Title         *string
	Author        *string
	ISBN          *string
	Pages         *int64
	PublishedYear *int64
	Stock         *int64
	Description   *string
	Language      *string
	Publisher     *string
}

func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.ISBN == nil && u.Pages == nil &&
		u.PublishedYear == nil && u.Stock == nil && u.Description == nil &&
		u.Language == nil && u.Publisher == nil
}

// BookCategory links a book to a category.
type BookCategory struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookStats struct {
	TotalBooks            int64   `json:"total_books"`
	AveragePages          float64 `json:"average_pages"`
	OldestPublicationYear *int64  `json:"oldest_publication_year"`
	NewestPublicationYear *int64  `json:"newest_publication_year"`
}
