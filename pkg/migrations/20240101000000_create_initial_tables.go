package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE books (
				book_id TEXT PRIMARY KEY,
				title TEXT,
				author TEXT,
				issued BOOLEAN NOT NULL DEFAULT FALSE
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE users (
				user_id INTEGER PRIMARY KEY,
				name TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE transactions (
				transaction_id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER REFERENCES users (user_id),
				book_id TEXT REFERENCES books (book_id),
				date_issued TEXT,
				date_returned TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_transactions_user_id ON transactions (user_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_transactions_book_id ON transactions (book_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		// At most one open loan per book, enforced by the store itself so
		// concurrent issue requests can't both commit.
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_transactions_open_book ON transactions (book_id) WHERE date_returned IS NULL`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE payments (
				user_id INTEGER REFERENCES users (user_id),
				fine INTEGER
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_payments_user_id ON payments (user_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{"payments", "transactions", "users", "books"} {
			_, err := db.Exec("DROP TABLE IF EXISTS " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
