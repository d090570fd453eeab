package loans

// IssueBookPayload represents the request body for issuing a book.
type IssueBookPayload struct {
	UserID int    `json:"user_id" query:"user_id" validate:"required"`
	BookID string `json:"book_id" query:"book_id" validate:"required"`
}

// ReturnBookPayload represents the request body for returning a book.
type ReturnBookPayload struct {
	UserID int    `json:"user_id" query:"user_id" validate:"required"`
	BookID string `json:"book_id" query:"book_id" validate:"required"`
}
