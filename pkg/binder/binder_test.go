package binder

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	UserID int    `json:"user_id" query:"user_id" validate:"required"`
	BookID string `json:"book_id" query:"book_id" mod:"trim" validate:"required"`
	Date   string `json:"date" query:"date" validate:"omitempty,date"`
}

var (
	goodJSON             = `{"user_id":1,"book_id":" B1 "}`
	unknownFieldsErrJSON = `{"user_id":1,"book_id":"B1","foo":"bar"}`
	typeErrJSON          = `{"user_id":"one","book_id":"B1"}`
	validationErrJSON    = `{"book_id":"B1"}`
	badDateJSON          = `{"user_id":1,"book_id":"B1","date":"01/04/2024"}`
)

func TestNew(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)
	assert.NotNil(t, b)

	t.Run("only allows application/json", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationXML)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Unsupported Media Type")
	})

	t.Run("disallows unknown fields", func(tt *testing.T) {
		c := newContext(unknownFieldsErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `Unknown Parameter "foo"`)
	})

	t.Run("returns a good message for type errors", func(tt *testing.T) {
		c := newContext(typeErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"user_id" should be of type int`)
	})

	t.Run("use mod tag to modify params", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, "B1", p.BookID)
	})

	t.Run("use validate tag to validate params", func(tt *testing.T) {
		c := newContext(validationErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"user_id" is required`)
	})

	t.Run("validates date format", func(tt *testing.T) {
		c := newContext(badDateJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"date" should be in the format of YYYY-MM-DD`)
	})

	t.Run("decodes query params when the body is empty", func(tt *testing.T) {
		c := newQueryContext("/issue-book?user_id=1&book_id=B1")
		p := params{}
		err = b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, 1, p.UserID)
		assert.Equal(tt, "B1", p.BookID)
	})

	t.Run("returns a good message for query type errors", func(tt *testing.T) {
		c := newQueryContext("/issue-book?user_id=one&book_id=B1")
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"user_id" should be of type int`)
	})

	t.Run("validates query params", func(tt *testing.T) {
		c := newQueryContext("/issue-book?book_id=B1")
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"user_id" is required`)
	})
}

func newContext(payload, mime string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.POST, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, mime)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}

func newQueryContext(path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.POST, path, nil)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}
