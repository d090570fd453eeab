package testutils

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loanledger/loanledger/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type handler struct {
	db *bun.DB
}

// createLoanRequest is the request body for seeding a loan.
type createLoanRequest struct {
	UserID     int    `json:"user_id" validate:"required"`
	BookID     string `json:"book_id" validate:"required"`
	DateIssued string `json:"date_issued" validate:"required,date"`
}

// createLoan opens a loan with an arbitrary issue date so overdue-fine
// scenarios can be exercised without waiting for real days to pass.
// POST /test/loans.
func (h *handler) createLoan(c echo.Context) error {
	ctx := c.Request().Context()

	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	loan := &models.Loan{
		UserID:     req.UserID,
		BookID:     req.BookID,
		DateIssued: req.DateIssued,
	}

	err := h.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*models.Book)(nil)).
			Set("issued = ?", true).
			Where("book_id = ?", req.BookID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to mark book issued")
		}

		_, err = tx.NewInsert().Model(loan).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to create loan")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, loan)
}

// deleteAllDataResponse is the response body for clearing the database.
type deleteAllDataResponse struct {
	Deleted int `json:"deleted"`
}

// deleteAllData deletes every row from every table.
// DELETE /test/data.
func (h *handler) deleteAllData(c echo.Context) error {
	ctx := c.Request().Context()

	deleted := 0
	for _, model := range []interface{}{
		(*models.Payment)(nil),
		(*models.Loan)(nil),
		(*models.Book)(nil),
		(*models.User)(nil),
	} {
		result, err := h.db.NewDelete().
			Model(model).
			Where("1=1").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete rows")
		}
		rows, _ := result.RowsAffected()
		deleted += int(rows)
	}

	return c.JSON(http.StatusOK, deleteAllDataResponse{
		Deleted: deleted,
	})
}
