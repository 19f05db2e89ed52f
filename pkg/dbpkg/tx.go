package dbpkg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/client-bank/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// ExecTx executes fn within a database transaction.
//
// The transaction is committed when fn returns nil and rolled back otherwise.
// fn's error is returned unchanged; begin and commit failures are logged and
// reported as errorspkg.ErrInternal.
func ExecTx(ctx context.Context, conn *sql.DB, fn func(tx SQLInterface) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Msg("begin tx")
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Msg("rollback tx")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Msg("commit tx")
		return errorspkg.ErrInternal
	}

	return nil
}
