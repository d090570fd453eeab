package loans

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the loan lifecycle and history routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	loanService := NewService(db)

	h := &handler{
		loanService: loanService,
	}

	e.POST("/issue-book", h.issue)
	e.POST("/return-book", h.returnBook)
	e.GET("/user-history/:user_id", h.history)

	return loanService
}
