package models

import (
	"github.com/uptrace/bun"
)

// Payment records a fine charged on a late return. Payments are immutable
// once written and are keyed by user only, not by transaction.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:p"`

	UserID int `bun:"user_id" json:"user_id"`
	Fine   int `bun:"fine" json:"fine"`
}
