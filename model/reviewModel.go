package model

import "time"

type Review struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	BookID     int64     `json:"book_id"`
	Rating     int64     `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate Date      `json:"review_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReviewCreate struct {
	UserID     int64
	BookID     int64
	Rating     int64
	Comment    string
	ReviewDate *Date
}

type ReviewUpdate struct {
	Rating     *int64
	Comment    *string
	ReviewDate *Date
}

func (u ReviewUpdate) Empty() bool {
	return u.Rating == nil && u.Comment == nil && u.ReviewDate == nil
}
