package loans

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type handler struct {
	loanService *Service
}

func (h *handler) issue(c echo.Context) error {
	ctx := c.Request().Context()

	params := IssueBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	loan, err := h.loanService.Issue(ctx, params.UserID, params.BookID)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Book %s issued to User %d successfully.", loan.BookID, loan.UserID)
	return c.JSON(http.StatusOK, map[string]string{"message": msg})
}

func (h *handler) returnBook(c echo.Context) error {
	ctx := c.Request().Context()

	params := ReturnBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	_, _, err := h.loanService.Return(ctx, params.UserID, params.BookID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Book returned successfully."})
}

func (h *handler) history(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return errcodes.NotFound("User")
	}

	entries, err := h.loanService.History(ctx, userID)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return c.JSON(http.StatusOK, map[string]string{"message": "No borrowing history found for the user."})
	}

	rows := lo.Map(entries, func(e HistoryEntry, _ int) map[string]interface{} {
		return map[string]interface{}{
			"Book ID":       e.BookID,
			"Title":         e.Title,
			"Date Issued":   e.DateIssued,
			"Date Returned": e.DateReturned,
			"Fine Paid":     e.FineDescription(),
		}
	})

	return c.JSON(http.StatusOK, map[string]interface{}{"User Borrowing History": rows})
}
