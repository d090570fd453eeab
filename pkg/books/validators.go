package books

// CreateBookPayload represents the request body for creating a book.
type CreateBookPayload struct {
	BookID string `json:"book_id" query:"book_id" validate:"required"`
	Title  string `json:"title" query:"title" validate:"required"`
	Author string `json:"author" query:"author" validate:"required"`
}
