// Package store binds repositories to a shared database transaction.
package store

import (
	"context"
	"database/sql"

	"github.com/go-petr/client-bank/internal/accountrepo"
	"github.com/go-petr/client-bank/internal/accountservice"
	"github.com/go-petr/client-bank/internal/clientrepo"
	"github.com/go-petr/client-bank/internal/clientservice"
	"github.com/go-petr/client-bank/internal/ownershiprepo"
	"github.com/go-petr/client-bank/pkg/dbpkg"
)

// Store provides functions to execute repository calls in a transaction.
type Store struct {
	conn *sql.DB
}

// New returns Store over conn.
func New(conn *sql.DB) *Store {
	return &Store{
		conn: conn,
	}
}

// AccountTx runs fn with account and ownership repositories bound to one transaction.
func (s *Store) AccountTx(ctx context.Context, fn func(accountservice.Repo, accountservice.OwnershipRepo) error) error {
	return dbpkg.ExecTx(ctx, s.conn, func(tx dbpkg.SQLInterface) error {
		return fn(accountrepo.NewTxRepoPGS(tx), ownershiprepo.NewRepoPGS(tx))
	})
}

// ClientTx runs fn with client, ownership and account repositories bound to one transaction.
func (s *Store) ClientTx(ctx context.Context, fn func(clientservice.Repo, clientservice.OwnershipRepo, clientservice.AccountReader) error) error {
	return dbpkg.ExecTx(ctx, s.conn, func(tx dbpkg.SQLInterface) error {
		return fn(clientrepo.NewTxRepoPGS(tx), ownershiprepo.NewRepoPGS(tx), accountrepo.NewTxRepoPGS(tx))
	})
}
