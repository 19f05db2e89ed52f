package test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-petr/client-bank/internal/accountrepo"
	"github.com/go-petr/client-bank/internal/clientrepo"
	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/internal/ownershiprepo"
	"github.com/go-petr/client-bank/pkg/dbpkg"
	"github.com/go-petr/client-bank/pkg/formatpkg"
)

// SeedPersonalClient creates random personal client inside a test transaction.
func SeedPersonalClient(t *testing.T, tx dbpkg.SQLInterface) domain.ClientEntity {
	t.Helper()

	c := RandomPersonalClient()

	phone, err := formatpkg.Phone(c.PhoneNumber)
	if err != nil {
		t.Fatalf("formatpkg.Phone(%v) returned error: %v", c.PhoneNumber, err)
	}

	e := domain.ClientEntity{
		Type:    string(domain.ClientTypePersonal),
		Name:    c.Name,
		Address: c.Address,
		Phone:   phone,
		Personal: &domain.PersonalRow{
			TaxID:        c.TaxID,
			CreditScore:  c.CreditScore,
			YearlyIncome: c.YearlyIncome,
			TotalDebt:    c.TotalDebt,
		},
	}

	e.ID, err = clientrepo.NewTxRepoPGS(tx).Create(context.Background(), e)
	if err != nil {
		t.Fatalf("clientRepo.Create(context.Background(), %+v) returned error: %v", e, err)
	}

	return e
}

// SeedChecking creates checking account with the given balance inside a test transaction.
func SeedChecking(t *testing.T, tx dbpkg.SQLInterface, balance decimal.Decimal) domain.AccountEntity {
	t.Helper()

	a := RandomChecking()

	e := domain.AccountEntity{
		Type:    string(domain.AccountTypeChecking),
		Name:    a.Name,
		Balance: balance,
		Checking: &domain.CheckingRow{
			OverdraftFee:   a.OverdraftFee,
			OverdraftLimit: a.OverdraftLimit,
		},
	}

	id, err := accountrepo.NewTxRepoPGS(tx).Create(context.Background(), e)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", e, err)
	}

	e.ID = id

	return e
}

// SeedOwnership links client and account inside a test transaction.
func SeedOwnership(t *testing.T, tx dbpkg.SQLInterface, clientID, accountID int64, ot domain.OwnershipType) domain.Ownership {
	t.Helper()

	o, err := ownershiprepo.NewRepoPGS(tx).Assign(context.Background(), clientID, accountID, ot)
	if err != nil {
		t.Fatalf("ownershipRepo.Assign(context.Background(), %v, %v, %v) returned error: %v",
			clientID, accountID, ot, err)
	}

	return o
}
