package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/loanledger/loanledger/pkg/binder"
	"github.com/loanledger/loanledger/pkg/books"
	"github.com/loanledger/loanledger/pkg/config"
	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/loanledger/loanledger/pkg/loans"
	"github.com/loanledger/loanledger/pkg/testutils"
	"github.com/loanledger/loanledger/pkg/users"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	// The original API used FastAPI-style trailing slashes; accept both forms.
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	users.RegisterRoutes(e, db)
	books.RegisterRoutes(e, db)
	loans.RegisterRoutes(e, db)

	// Test-only seeding and reset endpoints.
	if cfg.Environment == "test" {
		testutils.RegisterRoutes(e, db)
	}

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
