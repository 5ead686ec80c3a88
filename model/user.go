package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate lists the fields a user may change. Nil means "leave as is".
type UserUpdate struct {
	Username *string
	Fullname *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Fullname == nil && u.Email == nil &&
		u.Phone == nil && u.Address == nil && u.IsActive == nil
}
