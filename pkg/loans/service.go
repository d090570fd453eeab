package loans

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/loanledger/loanledger/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service handles the loan lifecycle and the borrowing-history report.
type Service struct {
	db  *bun.DB
	now func() time.Time
}

// NewService creates a new loans service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func (svc *Service) today() string {
	return svc.now().Format(models.DateFormat)
}

// Issue moves a book from available to on loan and opens a transaction dated
// today. A book that is missing or already out fails with BookUnavailable;
// the two cases are not distinguished. The availability check, the flag
// update, and the transaction insert share one commit.
func (svc *Service) Issue(ctx context.Context, userID int, bookID string) (*models.Loan, error) {
	loan := &models.Loan{
		UserID:     userID,
		BookID:     bookID,
		DateIssued: svc.today(),
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		book := &models.Book{}
		err := tx.NewSelect().
			Model(book).
			Where("b.book_id = ?", bookID).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return errcodes.BookUnavailable()
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if book.Issued {
			return errcodes.BookUnavailable()
		}

		_, err = tx.NewUpdate().
			Model((*models.Book)(nil)).
			Set("issued = ?", true).
			Where("book_id = ?", bookID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewInsert().Model(loan).Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loan, nil
}

// Return closes the most recent open loan for the user and book, stamps the
// return date, restores the book's availability, and records a payment when
// the return is overdue. Everything happens in one commit; a failed fine
// calculation rolls the whole return back.
func (svc *Service) Return(ctx context.Context, userID int, bookID string) (*models.Loan, int, error) {
	loan := &models.Loan{}
	fine := 0

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(loan).
			Where("t.user_id = ?", userID).
			Where("t.book_id = ?", bookID).
			Where("t.date_returned IS NULL").
			Order("t.transaction_id DESC").
			Limit(1).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return errcodes.NoActiveLoan()
		}
		if err != nil {
			return errors.WithStack(err)
		}

		today := svc.today()
		fine, err = CalculateFine(loan.DateIssued, today)
		if err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model((*models.Book)(nil)).
			Set("issued = ?", false).
			Where("book_id = ?", bookID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		loan.DateReturned = &today
		_, err = tx.NewUpdate().
			Model(loan).
			Column("date_returned").
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		if fine > 0 {
			payment := &models.Payment{UserID: userID, Fine: fine}
			_, err = tx.NewInsert().Model(payment).Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return loan, fine, nil
}

// HistoryEntry is one row of the per-user borrowing report: one entry per
// distinct book the user has ever borrowed. TotalFine sums every payment the
// user has on record, not just the ones for this book's loans; the join is
// user-scoped on purpose (see DESIGN.md).
type HistoryEntry struct {
	BookID       string  `bun:"book_id"`
	Title        *string `bun:"title"`
	DateIssued   string  `bun:"date_issued"`
	DateReturned *string `bun:"date_returned"`
	TotalFine    *int    `bun:"total_fine"`
}

// FineDescription renders the fine column of the report. A loan still out
// shows the no-fine text; a closed loan shows the summed amount.
func (e HistoryEntry) FineDescription() string {
	if e.DateReturned == nil || *e.DateReturned == "" {
		return "No fine payment, returned on time"
	}
	total := 0
	if e.TotalFine != nil {
		total = *e.TotalFine
	}
	return fmt.Sprintf("Rs.%d", total)
}

// History returns the borrowing report for a user. An empty slice means the
// user has no transactions at all.
func (svc *Service) History(ctx context.Context, userID int) ([]HistoryEntry, error) {
	entries := []HistoryEntry{}

	err := svc.db.NewRaw(`
		SELECT
			t.book_id,
			b.title,
			t.date_issued,
			t.date_returned,
			SUM(p.fine) AS total_fine
		FROM transactions t
		LEFT JOIN books b ON t.book_id = b.book_id
		LEFT JOIN payments p ON t.user_id = p.user_id
		WHERE t.user_id = ?
		GROUP BY t.book_id
	`, userID).Scan(ctx, &entries)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entries, nil
}
