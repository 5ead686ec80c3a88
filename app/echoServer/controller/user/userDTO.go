package user

import "library/model"

type RegisterReq struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Fullname string  `json:"fullname" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type UpdateUserReq struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Fullname *string `json:"fullname" validate:"omitempty,min=1"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateUserReq) toModel() model.UserUpdate {
	return model.UserUpdate{
		Username: r.Username,
		Fullname: r.Fullname,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		IsActive: r.IsActive,
	}
}

type UpdatePasswordReq struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}
