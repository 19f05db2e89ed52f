// Package accountrepo manages repository layer of accounts.
//
// An account is stored as an accounts row plus one row in the table of its
// type. Writes touching both rows are atomic: a repo built with NewRepoPGS
// wraps them in a transaction, a repo bound to an existing handle with
// NewTxRepoPGS compensates a failed second step instead.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/dbpkg"
	"github.com/go-petr/client-bank/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewRepoPGS returns account RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

// NewTxRepoPGS returns account RepoPGS bound to db, usually a caller-owned transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const checkViolation = "23514"

func mapErr(l *zerolog.Logger, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		l.Info().Err(err).Send()
		return domain.ErrAccountNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == checkViolation {
		l.Info().Err(err).Send()
		return domain.ErrInvalidInput
	}

	l.Error().Err(err).Send()

	return errorspkg.ErrInternal
}

const createQuery = `
INSERT INTO
    accounts (account_type, account_name, balance)
VALUES
    ($1, $2, $3)
RETURNING id
`

const createCheckingQuery = `
INSERT INTO
    checking_accounts (account_id, overdraft_fee, overdraft_limit)
VALUES
    ($1, $2, $3)
`

const createSavingsQuery = `
INSERT INTO
    savings_accounts (account_id, interest_rate, withdrawal_limit, withdrawal_counter)
VALUES
    ($1, $2, $3, $4)
`

const createCreditLineQuery = `
INSERT INTO
    credit_line_accounts (account_id, credit_limit, interest_rate, min_payment_percentage)
VALUES
    ($1, $2, $3, $4)
`

// Create stores the account and returns the id assigned to it.
func (r *RepoPGS) Create(ctx context.Context, e domain.AccountEntity) (int64, error) {
	l := zerolog.Ctx(ctx)

	if err := checkDetails(e); err != nil {
		l.Info().Err(err).Send()
		return 0, err
	}

	if r.conn == nil {
		return r.createCompensated(ctx, e)
	}

	var id int64

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		var err error

		id, err = insertAccount(ctx, tx, e)
		if err != nil {
			return err
		}

		return insertDetails(ctx, tx, id, e)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *RepoPGS) createCompensated(ctx context.Context, e domain.AccountEntity) (int64, error) {
	l := zerolog.Ctx(ctx)

	id, err := insertAccount(ctx, r.db, e)
	if err != nil {
		return 0, err
	}

	if err := insertDetails(ctx, r.db, id, e); err != nil {
		if _, delErr := r.db.ExecContext(ctx, deleteQuery, id); delErr != nil {
			l.Error().Err(delErr).Int64("account_id", id).Msg("compensating delete failed")
		}

		return 0, err
	}

	return id, nil
}

func insertAccount(ctx context.Context, db dbpkg.SQLInterface, e domain.AccountEntity) (int64, error) {
	var id int64

	err := db.QueryRowContext(ctx, createQuery, e.Type, e.Name, e.Balance).Scan(&id)
	if err != nil {
		return 0, mapErr(zerolog.Ctx(ctx), err)
	}

	return id, nil
}

func insertDetails(ctx context.Context, db dbpkg.SQLInterface, id int64, e domain.AccountEntity) error {
	var err error

	switch domain.AccountType(e.Type) {
	case domain.AccountTypeChecking:
		_, err = db.ExecContext(ctx, createCheckingQuery, id,
			e.Checking.OverdraftFee, e.Checking.OverdraftLimit)
	case domain.AccountTypeSavings:
		_, err = db.ExecContext(ctx, createSavingsQuery, id,
			e.Savings.InterestRate, e.Savings.WithdrawalLimit, e.Savings.WithdrawalCounter)
	case domain.AccountTypeCreditLine:
		_, err = db.ExecContext(ctx, createCreditLineQuery, id,
			e.CreditLine.CreditLimit, e.CreditLine.InterestRate, e.CreditLine.MinPaymentPercentage)
	}

	if err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return nil
}

// checkDetails makes sure the type-specific row matching e.Type is present.
func checkDetails(e domain.AccountEntity) error {
	t, err := domain.ParseAccountType(e.Type)
	if err != nil {
		return err
	}

	if (t == domain.AccountTypeChecking && e.Checking == nil) ||
		(t == domain.AccountTypeSavings && e.Savings == nil) ||
		(t == domain.AccountTypeCreditLine && e.CreditLine == nil) {
		return domain.ErrInvalidInput
	}

	return nil
}

const selectQuery = `
SELECT
    a.id, a.account_type, a.account_name, a.balance,
    c.overdraft_fee, c.overdraft_limit,
    s.interest_rate, s.withdrawal_limit, s.withdrawal_counter,
    cl.credit_limit, cl.interest_rate, cl.min_payment_percentage
FROM accounts a
LEFT JOIN checking_accounts c ON c.account_id = a.id
LEFT JOIN savings_accounts s ON s.account_id = a.id
LEFT JOIN credit_line_accounts cl ON cl.account_id = a.id
`

const getQuery = selectQuery + `WHERE a.id = $1
`

const listQuery = selectQuery + `ORDER BY a.id
`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row scanner) (domain.AccountEntity, error) {
	var (
		e domain.AccountEntity

		overdraftFee, overdraftLimit                 decimal.NullDecimal
		savingsRate                                  decimal.NullDecimal
		withdrawalLimit, withdrawalCounter           sql.NullInt32
		creditLimit, creditRate, minPaymentPercentage decimal.NullDecimal
	)

	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Name,
		&e.Balance,
		&overdraftFee,
		&overdraftLimit,
		&savingsRate,
		&withdrawalLimit,
		&withdrawalCounter,
		&creditLimit,
		&creditRate,
		&minPaymentPercentage,
	)
	if err != nil {
		return domain.AccountEntity{}, err
	}

	if overdraftFee.Valid {
		e.Checking = &domain.CheckingRow{
			OverdraftFee:   overdraftFee.Decimal,
			OverdraftLimit: overdraftLimit.Decimal,
		}
	}

	if savingsRate.Valid {
		e.Savings = &domain.SavingsRow{
			InterestRate:      savingsRate.Decimal,
			WithdrawalLimit:   withdrawalLimit.Int32,
			WithdrawalCounter: withdrawalCounter.Int32,
		}
	}

	if creditLimit.Valid {
		e.CreditLine = &domain.CreditLineRow{
			CreditLimit:          creditLimit.Decimal,
			InterestRate:         creditRate.Decimal,
			MinPaymentPercentage: minPaymentPercentage.Decimal,
		}
	}

	return e, nil
}

func get(ctx context.Context, db dbpkg.SQLInterface, id int64) (domain.AccountEntity, error) {
	e, err := scanAccount(db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		return e, mapErr(zerolog.Ctx(ctx), err)
	}

	return e, nil
}

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.AccountEntity, error) {
	return get(ctx, r.db, id)
}

// List returns every account ordered by id.
func (r *RepoPGS) List(ctx context.Context) ([]domain.AccountEntity, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.AccountEntity{}

	for rows.Next() {
		e, err := scanAccount(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE accounts
SET account_name = $2, balance = $3
WHERE id = $1 AND account_type = $4
`

const updateCheckingQuery = `
UPDATE checking_accounts
SET overdraft_fee = $2, overdraft_limit = $3
WHERE account_id = $1
`

const updateSavingsQuery = `
UPDATE savings_accounts
SET interest_rate = $2, withdrawal_limit = $3, withdrawal_counter = $4
WHERE account_id = $1
`

const updateCreditLineQuery = `
UPDATE credit_line_accounts
SET credit_limit = $2, interest_rate = $3, min_payment_percentage = $4
WHERE account_id = $1
`

// Update overwrites both rows of the account and returns the stored result.
//
// The account type cannot change; updating with a different type reports
// the account as not found.
func (r *RepoPGS) Update(ctx context.Context, e domain.AccountEntity) (domain.AccountEntity, error) {
	l := zerolog.Ctx(ctx)

	if err := checkDetails(e); err != nil {
		l.Info().Err(err).Send()
		return domain.AccountEntity{}, err
	}

	if r.conn == nil {
		return r.updateCompensated(ctx, e)
	}

	var updated domain.AccountEntity

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		if err := updateAccount(ctx, tx, e.ID, e.Type, e.Name, e.Balance); err != nil {
			return err
		}

		if err := updateDetails(ctx, tx, e); err != nil {
			return err
		}

		var err error
		updated, err = get(ctx, tx, e.ID)

		return err
	})
	if err != nil {
		return domain.AccountEntity{}, err
	}

	return updated, nil
}

func (r *RepoPGS) updateCompensated(ctx context.Context, e domain.AccountEntity) (domain.AccountEntity, error) {
	l := zerolog.Ctx(ctx)

	old, err := get(ctx, r.db, e.ID)
	if err != nil {
		return domain.AccountEntity{}, err
	}

	if err := updateAccount(ctx, r.db, e.ID, e.Type, e.Name, e.Balance); err != nil {
		return domain.AccountEntity{}, err
	}

	if err := updateDetails(ctx, r.db, e); err != nil {
		if restoreErr := updateAccount(ctx, r.db, old.ID, old.Type, old.Name, old.Balance); restoreErr != nil {
			l.Error().Err(restoreErr).Int64("account_id", e.ID).Msg("compensating update failed")
		}

		return domain.AccountEntity{}, err
	}

	return get(ctx, r.db, e.ID)
}

func updateAccount(ctx context.Context, db dbpkg.SQLInterface, id int64, typ, name string, balance decimal.Decimal) error {
	res, err := db.ExecContext(ctx, updateQuery, id, name, balance, typ)
	if err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return requireAffected(ctx, res)
}

func updateDetails(ctx context.Context, db dbpkg.SQLInterface, e domain.AccountEntity) error {
	var (
		res sql.Result
		err error
	)

	switch domain.AccountType(e.Type) {
	case domain.AccountTypeChecking:
		res, err = db.ExecContext(ctx, updateCheckingQuery, e.ID,
			e.Checking.OverdraftFee, e.Checking.OverdraftLimit)
	case domain.AccountTypeSavings:
		res, err = db.ExecContext(ctx, updateSavingsQuery, e.ID,
			e.Savings.InterestRate, e.Savings.WithdrawalLimit, e.Savings.WithdrawalCounter)
	case domain.AccountTypeCreditLine:
		res, err = db.ExecContext(ctx, updateCreditLineQuery, e.ID,
			e.CreditLine.CreditLimit, e.CreditLine.InterestRate, e.CreditLine.MinPaymentPercentage)
	}

	if err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return requireAffected(ctx, res)
}

func requireAffected(ctx context.Context, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	if n == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

const typeQuery = `
SELECT account_type FROM accounts
WHERE id = $1
`

const deleteCheckingQuery = `
DELETE FROM checking_accounts
WHERE account_id = $1
`

const deleteSavingsQuery = `
DELETE FROM savings_accounts
WHERE account_id = $1
`

const deleteCreditLineQuery = `
DELETE FROM credit_line_accounts
WHERE account_id = $1
`

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

var deleteDetailsQueries = map[domain.AccountType]string{
	domain.AccountTypeChecking:   deleteCheckingQuery,
	domain.AccountTypeSavings:    deleteSavingsQuery,
	domain.AccountTypeCreditLine: deleteCreditLineQuery,
}

// Delete removes the type-specific row and then the accounts row.
//
// Ownership rows referencing the account must be removed beforehand.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	if r.conn == nil {
		return deleteAccount(ctx, r.db, id)
	}

	return dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		return deleteAccount(ctx, tx, id)
	})
}

func deleteAccount(ctx context.Context, db dbpkg.SQLInterface, id int64) error {
	l := zerolog.Ctx(ctx)

	var typ string
	if err := db.QueryRowContext(ctx, typeQuery, id).Scan(&typ); err != nil {
		return mapErr(l, err)
	}

	if q, ok := deleteDetailsQueries[domain.AccountType(typ)]; ok {
		if _, err := db.ExecContext(ctx, q, id); err != nil {
			return mapErr(l, err)
		}
	}

	res, err := db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return mapErr(l, err)
	}

	return requireAffected(ctx, res)
}
