// Package ownershiprepo manages repository layer of client-account links.
package ownershiprepo

import (
	"context"
	"errors"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/dbpkg"
	"github.com/go-petr/client-bank/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates ownership repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ownership RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func mapErr(l *zerolog.Logger, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "client_accounts_pkey":
			l.Info().Err(err).Send()
			return domain.ErrOwnershipExists
		case "client_accounts_customer_id_fkey":
			l.Info().Err(err).Send()
			return domain.ErrClientNotFound
		case "client_accounts_account_id_fkey":
			l.Info().Err(err).Send()
			return domain.ErrAccountNotFound
		}
	}

	l.Error().Err(err).Send()

	return errorspkg.ErrInternal
}

const assignQuery = `
INSERT INTO client_accounts (customer_id, account_id, ownership_type)
VALUES ($1, $2, $3)
RETURNING customer_id, account_id, ownership_type, created_at
`

// Assign links the client to the account.
func (r *RepoPGS) Assign(ctx context.Context, clientID, accountID int64, t domain.OwnershipType) (domain.Ownership, error) {
	l := zerolog.Ctx(ctx)

	if _, err := domain.ParseOwnershipType(string(t)); err != nil {
		l.Info().Err(err).Send()
		return domain.Ownership{}, err
	}

	var o domain.Ownership

	err := r.db.QueryRowContext(ctx, assignQuery, clientID, accountID, t).
		Scan(&o.ClientID, &o.AccountID, &o.Type, &o.CreatedAt)
	if err != nil {
		return domain.Ownership{}, mapErr(l, err)
	}

	return o, nil
}

const accountsOfQuery = `
SELECT customer_id, account_id, ownership_type, created_at
FROM client_accounts
WHERE customer_id = $1
ORDER BY account_id
`

// AccountsOf returns the links of the client ordered by account id.
func (r *RepoPGS) AccountsOf(ctx context.Context, clientID int64) ([]domain.Ownership, error) {
	return r.list(ctx, accountsOfQuery, clientID)
}

const ownersOfQuery = `
SELECT customer_id, account_id, ownership_type, created_at
FROM client_accounts
WHERE account_id = $1
ORDER BY created_at, customer_id
`

// OwnersOf returns the links of the account, oldest first.
func (r *RepoPGS) OwnersOf(ctx context.Context, accountID int64) ([]domain.Ownership, error) {
	return r.list(ctx, ownersOfQuery, accountID)
}

func (r *RepoPGS) list(ctx context.Context, query string, id int64) ([]domain.Ownership, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, mapErr(l, err)
	}
	defer rows.Close()

	items := []domain.Ownership{}

	for rows.Next() {
		var o domain.Ownership
		if err := rows.Scan(&o.ClientID, &o.AccountID, &o.Type, &o.CreatedAt); err != nil {
			return nil, mapErr(l, err)
		}

		items = append(items, o)
	}

	if err := rows.Close(); err != nil {
		return nil, mapErr(l, err)
	}

	if err := rows.Err(); err != nil {
		return nil, mapErr(l, err)
	}

	return items, nil
}

const countOwnersQuery = `
SELECT COUNT(*) FROM client_accounts
WHERE account_id = $1
`

// IsJoint reports whether more than one client owns the account.
func (r *RepoPGS) IsJoint(ctx context.Context, accountID int64) (bool, error) {
	var n int64

	if err := r.db.QueryRowContext(ctx, countOwnersQuery, accountID).Scan(&n); err != nil {
		return false, mapErr(zerolog.Ctx(ctx), err)
	}

	return n > 1, nil
}

const removeQuery = `
DELETE FROM client_accounts
WHERE customer_id = $1 AND account_id = $2
`

// Remove unlinks the client from the account.
func (r *RepoPGS) Remove(ctx context.Context, clientID, accountID int64) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, removeQuery, clientID, accountID)
	if err != nil {
		return mapErr(l, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapErr(l, err)
	}

	if n == 0 {
		l.Info().Err(domain.ErrOwnershipNotFound).Send()
		return domain.ErrOwnershipNotFound
	}

	return nil
}

const removeAllOwnersOfQuery = `
DELETE FROM client_accounts
WHERE account_id = $1
`

// RemoveAllOwnersOf unlinks every client from the account.
func (r *RepoPGS) RemoveAllOwnersOf(ctx context.Context, accountID int64) error {
	if _, err := r.db.ExecContext(ctx, removeAllOwnersOfQuery, accountID); err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return nil
}

const removeAllAccountsOfQuery = `
DELETE FROM client_accounts
WHERE customer_id = $1
`

// RemoveAllAccountsOf unlinks the client from every account it owns.
func (r *RepoPGS) RemoveAllAccountsOf(ctx context.Context, clientID int64) error {
	if _, err := r.db.ExecContext(ctx, removeAllAccountsOfQuery, clientID); err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return nil
}

const listJointQuery = `
SELECT account_id
FROM client_accounts
GROUP BY account_id
HAVING COUNT(*) > 1
ORDER BY account_id
`

// ListJointAccounts returns ids of the accounts with more than one owner.
func (r *RepoPGS) ListJointAccounts(ctx context.Context) ([]int64, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listJointQuery)
	if err != nil {
		return nil, mapErr(l, err)
	}
	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, mapErr(l, err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, mapErr(l, err)
	}

	return ids, nil
}
