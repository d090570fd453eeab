package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/loanledger/loanledger/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	userService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateUserPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	_, err := h.userService.Create(ctx, CreateUserOptions(params))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User added successfully."})
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	// An empty catalog is reported explicitly so callers can tell it apart
	// from a failed lookup.
	if len(users) == 0 {
		return c.JSON(http.StatusOK, map[string]string{"message": "No users found"})
	}

	resp := struct {
		Users []*models.User `json:"Users"`
	}{users}

	return c.JSON(http.StatusOK, resp)
}
