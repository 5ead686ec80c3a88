// model/loanModel.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanReturned LoanStatus = "RETURNED"
	LoanOverdue  LoanStatus = "OVERDUE"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanActive, LoanReturned, LoanOverdue:
		return true
	}
	return false
}

// LoanPeriodDays is the fixed borrowing window.
const LoanPeriodDays = 14

type Loan struct {
	ID         int64               `json:"id"`
	UserID     int64               `json:"user_id"`
	BookID     int64               `json:"book_id"`
	LoanDate   Date                `json:"loan_dt"`
	DueDate    Date                `json:"due_date"`
	ReturnDate *Date               `json:"return_dt"`
	Status     LoanStatus          `json:"status"`
	FineAmount decimal.NullDecimal `json:"fine_amount"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// LoanCreate is what a caller may choose when opening a loan.
type LoanCreate struct {
	UserID   int64
	BookID   int64
	LoanDate *Date
}
