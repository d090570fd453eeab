package users

// CreateUserPayload represents the request body for creating a user.
type CreateUserPayload struct {
	UserID int    `json:"user_id" query:"user_id" validate:"required"`
	Name   string `json:"name" query:"name" validate:"required"`
}
