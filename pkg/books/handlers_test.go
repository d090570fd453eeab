package books

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loanledger/loanledger/pkg/binder"
	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooksTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, rr := newBooksTestContext(t, http.MethodPost, "/books", `{"book_id":"B1","title":"Dune","author":"Herbert"}`)
	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book added successfully.", body["message"])
}

func TestHandlerCreate_QueryParams(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, rr := newBooksTestContext(t, http.MethodPost, "/books?book_id=B1&title=Dune&author=Herbert", "")
	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandlerCreate_Duplicate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, _ := newBooksTestContext(t, http.MethodPost, "/books", `{"book_id":"B1","title":"Dune","author":"Herbert"}`)
	require.NoError(t, h.create(c))

	c, _ = newBooksTestContext(t, http.MethodPost, "/books", `{"book_id":"B1","title":"Dune","author":"Herbert"}`)
	err := h.create(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "duplicate_key", codeErr.Code)
}

func TestHandlerCreate_MissingField(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, _ := newBooksTestContext(t, http.MethodPost, "/books", `{"book_id":"B1","title":"Dune"}`)
	err := h.create(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
}
