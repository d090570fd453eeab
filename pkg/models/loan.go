package models

import (
	"github.com/uptrace/bun"
)

// DateFormat is the calendar-date layout used everywhere dates are stored or
// parsed. Dates are persisted as TEXT in this format.
const DateFormat = "2006-01-02"

// Loan is one row in the transactions table. A loan with no return date is
// open: the book is out with the user. At most one open loan can exist per
// book, enforced by a partial unique index.
type Loan struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	TransactionID int     `bun:"transaction_id,pk,autoincrement" json:"transaction_id"`
	UserID        int     `bun:"user_id" json:"user_id"`
	BookID        string  `bun:"book_id" json:"book_id"`
	DateIssued    string  `bun:"date_issued" json:"date_issued"`
	DateReturned  *string `bun:"date_returned" json:"date_returned"`

	// Relations
	User *User `bun:"rel:belongs-to,join:user_id=user_id" json:"user,omitempty"`
	Book *Book `bun:"rel:belongs-to,join:book_id=book_id" json:"book,omitempty"`
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool {
	return l.DateReturned == nil
}
