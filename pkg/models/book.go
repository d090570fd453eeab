package models

import (
	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	BookID string `bun:"book_id,pk" json:"book_id"`
	Title  string `bun:"title" json:"title"`
	Author string `bun:"author" json:"author"`
	Issued bool   `bun:"issued" json:"issued"`
}
