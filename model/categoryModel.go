package model

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryUpdate struct {
	Name        *string
	Description *string
}

func (u CategoryUpdate) Empty() bool { return u.Name == nil && u.Description == nil }
