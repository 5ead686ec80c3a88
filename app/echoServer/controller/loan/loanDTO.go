package loan

import (
	"library/model"

	jsoniter "github.com/json-iterator/go"
)

type CreateLoanReq struct {
	UserID   int64       `json:"user_id" validate:"required,gt=0"`
	BookID   int64       `json:"book_id" validate:"required,gt=0"`
	LoanDate *model.Date `json:"loan_dt"`

	// Server-owned fields: accepted and ignored.
	DueDate    jsoniter.RawMessage `json:"due_date,omitempty" swaggerignore:"true"`
	Status     jsoniter.RawMessage `json:"status,omitempty" swaggerignore:"true"`
	FineAmount jsoniter.RawMessage `json:"fine_amount,omitempty" swaggerignore:"true"`
}

type UpdateLoanReq struct {
	Status model.LoanStatus `json:"status" validate:"required,oneof=ACTIVE RETURNED OVERDUE"`
}
