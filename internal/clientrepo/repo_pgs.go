// Package clientrepo manages repository layer of clients.
//
// A client is stored as a clients row plus one row in personal_clients or
// business_clients. The same transaction rules as in accountrepo apply:
// NewRepoPGS runs compound writes in a transaction, NewTxRepoPGS
// compensates a failed second step.
package clientrepo

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

// RepoPGS facilitates client repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewRepoPGS returns client RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

// NewTxRepoPGS returns client RepoPGS bound to db, usually a caller-owned transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func mapErr(l *zerolog.Logger, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		l.Info().Err(err).Send()
		return domain.ErrClientNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Constraint == "personal_clients_tax_id_key":
			l.Info().Err(err).Send()
			return domain.ErrTaxIDAlreadyExists
		case pqErr.Constraint == "business_clients_ein_key":
			l.Info().Err(err).Send()
			return domain.ErrEINAlreadyExists
		case pqErr.Code == "23514":
			l.Info().Err(err).Send()
			return domain.ErrInvalidInput
		}
	}

	l.Error().Err(err).Send()

	return errorspkg.ErrInternal
}

const createQuery = `
INSERT INTO clients (client_type, name, address, phone_number)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const createPersonalQuery = `
INSERT INTO personal_clients (client_id, tax_id, credit_score, yearly_income, total_debt)
VALUES ($1, $2, $3, $4, $5)
`

const createBusinessQuery = `
INSERT INTO business_clients (
    client_id, ein, business_type, contact_name, contact_title,
    total_asset_value, annual_revenue, annual_profit
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Create inserts the clients row and its type-specific row and returns the new id.
func (r *RepoPGS) Create(ctx context.Context, e domain.ClientEntity) (int64, error) {
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

		id, err = insertClient(ctx, tx, e)
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

func (r *RepoPGS) createCompensated(ctx context.Context, e domain.ClientEntity) (int64, error) {
	l := zerolog.Ctx(ctx)

	id, err := insertClient(ctx, r.db, e)
	if err != nil {
		return 0, err
	}

	if err := insertDetails(ctx, r.db, id, e); err != nil {
		if _, delErr := r.db.ExecContext(ctx, deleteQuery, id); delErr != nil {
			l.Error().Err(delErr).Int64("client_id", id).Msg("compensating delete failed")
		}

		return 0, err
	}

	return id, nil
}

func insertClient(ctx context.Context, db dbpkg.SQLInterface, e domain.ClientEntity) (int64, error) {
	var id int64

	err := db.QueryRowContext(ctx, createQuery, e.Type, e.Name, e.Address, e.Phone).Scan(&id)
	if err != nil {
		return 0, mapErr(zerolog.Ctx(ctx), err)
	}

	return id, nil
}

func insertDetails(ctx context.Context, db dbpkg.SQLInterface, id int64, e domain.ClientEntity) error {
	var err error

	switch domain.ClientType(e.Type) {
	case domain.ClientTypePersonal:
		p := e.Personal
		_, err = db.ExecContext(ctx, createPersonalQuery, id,
			p.TaxID, p.CreditScore, p.YearlyIncome, p.TotalDebt)
	case domain.ClientTypeBusiness:
		b := e.Business
		_, err = db.ExecContext(ctx, createBusinessQuery, id,
			b.EIN, b.BusinessType, b.ContactName, b.ContactTitle,
			b.TotalAssetValue, b.AnnualRevenue, b.AnnualProfit)
	}

	if err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return nil
}

func checkDetails(e domain.ClientEntity) error {
	t, err := domain.ParseClientType(e.Type)
	if err != nil {
		return err
	}

	if (t == domain.ClientTypePersonal && e.Personal == nil) ||
		(t == domain.ClientTypeBusiness && e.Business == nil) {
		return domain.ErrInvalidInput
	}

	return nil
}

const selectQuery = `
SELECT
    c.id, c.client_type, c.name, c.address, c.phone_number,
    p.tax_id, p.credit_score, p.yearly_income, p.total_debt,
    b.ein, b.business_type, b.contact_name, b.contact_title,
    b.total_asset_value, b.annual_revenue, b.annual_profit
FROM clients c
LEFT JOIN personal_clients p ON p.client_id = c.id
LEFT JOIN business_clients b ON b.client_id = c.id
`

const getQuery = selectQuery + `WHERE c.id = $1
`

const getByTaxIDQuery = selectQuery + `WHERE p.tax_id = $1
`

const getByEINQuery = selectQuery + `WHERE b.ein = $1
`

// Business names are not unique; the oldest client wins.
const getByBusinessNameQuery = selectQuery + `WHERE c.client_type = 'BUSINESS' AND c.name = $1
ORDER BY c.id
LIMIT 1
`

const listQuery = selectQuery + `ORDER BY c.id
`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row scanner) (domain.ClientEntity, error) {
	var (
		e domain.ClientEntity

		taxID                       sql.NullString
		creditScore                 sql.NullInt32
		yearlyIncome, totalDebt     decimal.NullDecimal
		ein, businessType           sql.NullString
		contactName, contactTitle   sql.NullString
		assetValue, revenue, profit decimal.NullDecimal
	)

	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Name,
		&e.Address,
		&e.Phone,
		&taxID,
		&creditScore,
		&yearlyIncome,
		&totalDebt,
		&ein,
		&businessType,
		&contactName,
		&contactTitle,
		&assetValue,
		&revenue,
		&profit,
	)
	if err != nil {
		return domain.ClientEntity{}, err
	}

	if taxID.Valid {
		e.Personal = &domain.PersonalRow{
			TaxID:        taxID.String,
			CreditScore:  creditScore.Int32,
			YearlyIncome: yearlyIncome.Decimal,
			TotalDebt:    totalDebt.Decimal,
		}
	}

	if ein.Valid {
		e.Business = &domain.BusinessRow{
			EIN:             ein.String,
			BusinessType:    businessType.String,
			ContactName:     contactName.String,
			ContactTitle:    contactTitle.String,
			TotalAssetValue: assetValue.Decimal,
			AnnualRevenue:   revenue.Decimal,
			AnnualProfit:    profit.Decimal,
		}
	}

	return e, nil
}

func getOne(ctx context.Context, db dbpkg.SQLInterface, query string, arg interface{}) (domain.ClientEntity, error) {
	e, err := scanClient(db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return domain.ClientEntity{}, mapErr(zerolog.Ctx(ctx), err)
	}

	return e, nil
}

// Get returns the client with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.ClientEntity, error) {
	return getOne(ctx, r.db, getQuery, id)
}

// GetByTaxID returns the personal client with the given raw tax id.
func (r *RepoPGS) GetByTaxID(ctx context.Context, taxID string) (domain.ClientEntity, error) {
	return getOne(ctx, r.db, getByTaxIDQuery, taxID)
}

// GetByEIN returns the business client with the given EIN in ##-####### format.
func (r *RepoPGS) GetByEIN(ctx context.Context, ein string) (domain.ClientEntity, error) {
	return getOne(ctx, r.db, getByEINQuery, ein)
}

// GetByBusinessName returns the oldest business client with the given name.
func (r *RepoPGS) GetByBusinessName(ctx context.Context, name string) (domain.ClientEntity, error) {
	return getOne(ctx, r.db, getByBusinessNameQuery, name)
}

// List returns every client ordered by id.
func (r *RepoPGS) List(ctx context.Context) ([]domain.ClientEntity, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, mapErr(l, err)
	}
	defer rows.Close()

	items := []domain.ClientEntity{}

	for rows.Next() {
		e, err := scanClient(rows)
		if err != nil {
			return nil, mapErr(l, err)
		}

		items = append(items, e)
	}

	if err := rows.Close(); err != nil {
		return nil, mapErr(l, err)
	}

	if err := rows.Err(); err != nil {
		return nil, mapErr(l, err)
	}

	return items, nil
}

const updateQuery = `
UPDATE clients
SET name = $2, address = $3, phone_number = $4
WHERE id = $1 AND client_type = $5
`

const updatePersonalQuery = `
UPDATE personal_clients
SET tax_id = $2, credit_score = $3, yearly_income = $4, total_debt = $5
WHERE client_id = $1
`

const updateBusinessQuery = `
UPDATE business_clients
SET ein = $2, business_type = $3, contact_name = $4, contact_title = $5,
    total_asset_value = $6, annual_revenue = $7, annual_profit = $8
WHERE client_id = $1
`

// Update overwrites both rows of the client and returns the stored result.
// The client type cannot change.
func (r *RepoPGS) Update(ctx context.Context, e domain.ClientEntity) (domain.ClientEntity, error) {
	l := zerolog.Ctx(ctx)

	if err := checkDetails(e); err != nil {
		l.Info().Err(err).Send()
		return domain.ClientEntity{}, err
	}

	if r.conn == nil {
		return r.updateCompensated(ctx, e)
	}

	var updated domain.ClientEntity

	err := dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		if err := updateClient(ctx, tx, e); err != nil {
			return err
		}

		if err := updateDetails(ctx, tx, e); err != nil {
			return err
		}

		var err error
		updated, err = getOne(ctx, tx, getQuery, e.ID)

		return err
	})
	if err != nil {
		return domain.ClientEntity{}, err
	}

	return updated, nil
}

func (r *RepoPGS) updateCompensated(ctx context.Context, e domain.ClientEntity) (domain.ClientEntity, error) {
	l := zerolog.Ctx(ctx)

	old, err := getOne(ctx, r.db, getQuery, e.ID)
	if err != nil {
		return domain.ClientEntity{}, err
	}

	if err := updateClient(ctx, r.db, e); err != nil {
		return domain.ClientEntity{}, err
	}

	if err := updateDetails(ctx, r.db, e); err != nil {
		if restoreErr := updateClient(ctx, r.db, old); restoreErr != nil {
			l.Error().Err(restoreErr).Int64("client_id", e.ID).Msg("compensating update failed")
		}

		return domain.ClientEntity{}, err
	}

	return getOne(ctx, r.db, getQuery, e.ID)
}

func updateClient(ctx context.Context, db dbpkg.SQLInterface, e domain.ClientEntity) error {
	res, err := db.ExecContext(ctx, updateQuery, e.ID, e.Name, e.Address, e.Phone, e.Type)
	if err != nil {
		return mapErr(zerolog.Ctx(ctx), err)
	}

	return requireAffected(ctx, res)
}

func updateDetails(ctx context.Context, db dbpkg.SQLInterface, e domain.ClientEntity) error {
	var (
		res sql.Result
		err error
	)

	switch domain.ClientType(e.Type) {
	case domain.ClientTypePersonal:
		p := e.Personal
		res, err = db.ExecContext(ctx, updatePersonalQuery, e.ID,
			p.TaxID, p.CreditScore, p.YearlyIncome, p.TotalDebt)
	case domain.ClientTypeBusiness:
		b := e.Business
		res, err = db.ExecContext(ctx, updateBusinessQuery, e.ID,
			b.EIN, b.BusinessType, b.ContactName, b.ContactTitle,
			b.TotalAssetValue, b.AnnualRevenue, b.AnnualProfit)
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
		return domain.ErrClientNotFound
	}

	return nil
}

const typeQuery = `
SELECT client_type FROM clients
WHERE id = $1
`

const deletePersonalQuery = `
DELETE FROM personal_clients
WHERE client_id = $1
`

const deleteBusinessQuery = `
DELETE FROM business_clients
WHERE client_id = $1
`

const deleteQuery = `
DELETE FROM clients
WHERE id = $1
`

var deleteDetailsQueries = map[domain.ClientType]string{
	domain.ClientTypePersonal: deletePersonalQuery,
	domain.ClientTypeBusiness: deleteBusinessQuery,
}

// Delete removes the type-specific row and then the clients row.
//
// Ownership rows referencing the client must be removed beforehand.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	if r.conn == nil {
		return deleteClient(ctx, r.db, id)
	}

	return dbpkg.ExecTx(ctx, r.conn, func(tx dbpkg.SQLInterface) error {
		return deleteClient(ctx, tx, id)
	})
}

func deleteClient(ctx context.Context, db dbpkg.SQLInterface, id int64) error {
	l := zerolog.Ctx(ctx)

	var typ string
	if err := db.QueryRowContext(ctx, typeQuery, id).Scan(&typ); err != nil {
		return mapErr(l, err)
	}

	if q, ok := deleteDetailsQueries[domain.ClientType(typ)]; ok {
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
