package loans

import (
	"context"
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

func newLoansTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestHandlerIssue(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")
	seedBook(ctx, t, db, "B1", "Dune", "Herbert")

	h := &handler{loanService: newServiceAt(db, "2024-01-01")}

	c, rr := newLoansTestContext(t, http.MethodPost, "/issue-book", `{"user_id":1,"book_id":"B1"}`)
	err := h.issue(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book B1 issued to User 1 successfully.", body["message"])
}

func TestHandlerIssue_QueryParams(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")
	seedBook(ctx, t, db, "B1", "Dune", "Herbert")

	h := &handler{loanService: newServiceAt(db, "2024-01-01")}

	// The original API accepted POST inputs on the query string.
	c, rr := newLoansTestContext(t, http.MethodPost, "/issue-book?user_id=1&book_id=B1", "")
	err := h.issue(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book B1 issued to User 1 successfully.", body["message"])
}

func TestHandlerIssue_Unavailable(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")

	h := &handler{loanService: newServiceAt(db, "2024-01-01")}

	c, _ := newLoansTestContext(t, http.MethodPost, "/issue-book", `{"user_id":1,"book_id":"missing"}`)
	err := h.issue(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "book_unavailable", codeErr.Code)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "Book not available.", codeErr.Message)
}

func TestHandlerReturn(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")
	seedBook(ctx, t, db, "B1", "Dune", "Herbert")

	_, err := newServiceAt(db, "2024-01-01").Issue(ctx, 1, "B1")
	require.NoError(t, err)

	h := &handler{loanService: newServiceAt(db, "2024-01-06")}

	c, rr := newLoansTestContext(t, http.MethodPost, "/return-book", `{"user_id":1,"book_id":"B1"}`)
	err = h.returnBook(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book returned successfully.", body["message"])
}

func TestHandlerReturn_NoLoan(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")
	seedBook(ctx, t, db, "B1", "Dune", "Herbert")

	h := &handler{loanService: newServiceAt(db, "2024-01-01")}

	c, _ := newLoansTestContext(t, http.MethodPost, "/return-book", `{"user_id":1,"book_id":"B1"}`)
	err := h.returnBook(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "no_active_loan", codeErr.Code)
	assert.Equal(t, "Book not borrowed by the user.", codeErr.Message)
}

func TestHandlerHistory(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")
	seedBook(ctx, t, db, "B1", "Dune", "Herbert")

	_, err := newServiceAt(db, "2024-01-01").Issue(ctx, 1, "B1")
	require.NoError(t, err)
	_, _, err = newServiceAt(db, "2024-01-06").Return(ctx, 1, "B1")
	require.NoError(t, err)

	h := &handler{loanService: NewService(db)}

	c, rr := newLoansTestContext(t, http.MethodGet, "/user-history/1", "")
	c.SetPath("/user-history/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues("1")

	err = h.history(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	rows := body["User Borrowing History"]
	require.Len(t, rows, 1)

	assert.Equal(t, "B1", rows[0]["Book ID"])
	assert.Equal(t, "Dune", rows[0]["Title"])
	assert.Equal(t, "2024-01-01", rows[0]["Date Issued"])
	assert.Equal(t, "2024-01-06", rows[0]["Date Returned"])
	assert.Equal(t, "Rs.50", rows[0]["Fine Paid"])
}

func TestHandlerHistory_Empty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()
	seedUser(ctx, t, db, 1, "Alice")

	h := &handler{loanService: NewService(db)}

	c, rr := newLoansTestContext(t, http.MethodGet, "/user-history/1", "")
	c.SetPath("/user-history/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues("1")

	err := h.history(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "No borrowing history found for the user.", body["message"])
}

func TestHandlerHistory_BadUserID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	h := &handler{loanService: NewService(db)}

	c, _ := newLoansTestContext(t, http.MethodGet, "/user-history/abc", "")
	c.SetPath("/user-history/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues("abc")

	err := h.history(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "not_found", codeErr.Code)
}
