package books

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	_, err := h.bookService.Create(ctx, CreateBookOptions(params))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Book added successfully."})
}
