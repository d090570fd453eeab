package books

import (
	"context"
	"database/sql"

	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/loanledger/loanledger/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service handles book catalog operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new books service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// CreateBookOptions contains options for creating a book.
type CreateBookOptions struct {
	BookID string
	Title  string
	Author string
}

// Create inserts a new book, available by default. A colliding identifier
// fails with a duplicate-key error and leaves the existing row untouched.
func (svc *Service) Create(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	book := &models.Book{
		BookID: opts.BookID,
		Title:  opts.Title,
		Author: opts.Author,
		Issued: false,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Book)(nil)).
			Where("book_id = ?", opts.BookID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errcodes.Duplicate("Book")
		}

		_, err = tx.NewInsert().Model(book).Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// Retrieve gets a book by its identifier.
func (svc *Service) Retrieve(ctx context.Context, bookID string) (*models.Book, error) {
	book := &models.Book{}
	err := svc.db.NewSelect().
		Model(book).
		Where("b.book_id = ?", bookID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Book")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return book, nil
}
