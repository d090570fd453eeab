package users

import (
	"context"
	"database/sql"

	"github.com/loanledger/loanledger/pkg/errcodes"
	"github.com/loanledger/loanledger/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service handles user catalog operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new users service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// CreateUserOptions contains options for creating a user.
type CreateUserOptions struct {
	UserID int
	Name   string
}

// Create inserts a new user. The identifier is caller-assigned; a collision
// fails the whole operation with a duplicate-key error. The existence check
// and insert share one commit.
func (svc *Service) Create(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	user := &models.User{
		UserID: opts.UserID,
		Name:   opts.Name,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.User)(nil)).
			Where("user_id = ?", opts.UserID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errcodes.Duplicate("User")
		}

		_, err = tx.NewInsert().Model(user).Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// List returns all users ordered by their identifier.
func (svc *Service) List(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}

	err := svc.db.NewSelect().
		Model(&users).
		Order("u.user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}
