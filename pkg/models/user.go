package models

import (
	"github.com/uptrace/bun"
)

// User is a library member. The ID is assigned by the caller, not the
// database, so it is never treated as an autoincrement column.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID int    `bun:"user_id,pk" json:"user_id"`
	Name   string `bun:"name" json:"name"`
}
