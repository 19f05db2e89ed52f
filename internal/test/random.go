package test

import (
	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// RandomChecking returns a valid checking account without an id.
func RandomChecking() *domain.Checking {
	return &domain.Checking{
		AccountInfo: domain.AccountInfo{
			Name:    randompkg.Name() + " checking",
			Balance: randompkg.MoneyAmountBetween(100, 10_000),
		},
		OverdraftFee:   randompkg.MoneyAmountBetween(5, 50),
		OverdraftLimit: randompkg.MoneyAmountBetween(100, 1000),
	}
}

// RandomSavings returns a valid savings account without an id.
func RandomSavings() *domain.Savings {
	return &domain.Savings{
		AccountInfo: domain.AccountInfo{
			Name:    randompkg.Name() + " savings",
			Balance: randompkg.MoneyAmountBetween(100, 10_000),
		},
		InterestRate:    randompkg.MoneyAmountBetween(0, 10),
		WithdrawalLimit: randompkg.IntBetween(1, 6),
	}
}

// RandomCreditLine returns a valid credit line without an id.
func RandomCreditLine() *domain.CreditLine {
	limit := randompkg.MoneyAmountBetween(1000, 20_000)

	return &domain.CreditLine{
		AccountInfo: domain.AccountInfo{
			Name:    randompkg.Name() + " credit",
			Balance: randompkg.MoneyAmountBetween(0, 500).Neg(),
		},
		CreditLimit:          limit,
		InterestRate:         randompkg.MoneyAmountBetween(5, 30),
		MinPaymentPercentage: randompkg.MoneyAmountBetween(1, 5),
	}
}

// RandomPersonalClient returns a valid personal client without an id.
func RandomPersonalClient() *domain.PersonalClient {
	return &domain.PersonalClient{
		ClientInfo: domain.ClientInfo{
			Name:        randompkg.FullName(),
			Address:     randompkg.Address(),
			PhoneNumber: randompkg.Phone(),
		},
		TaxID:        randompkg.TaxID(),
		CreditScore:  randompkg.IntBetween(300, 850),
		YearlyIncome: randompkg.MoneyAmountBetween(10_000, 200_000),
		TotalDebt:    randompkg.MoneyAmountBetween(0, 50_000),
	}
}

// RandomBusinessClient returns a valid business client without an id.
func RandomBusinessClient() *domain.BusinessClient {
	return &domain.BusinessClient{
		ClientInfo: domain.ClientInfo{
			Name:        randompkg.Name() + " Inc",
			Address:     randompkg.Address(),
			PhoneNumber: randompkg.Phone(),
		},
		EIN:             randompkg.EIN(),
		BusinessType:    randompkg.OneOf(domain.BusinessTypes...),
		ContactName:     randompkg.FullName(),
		ContactTitle:    randompkg.OneOf(domain.ContactTitleCEO, domain.ContactTitleCFO, domain.ContactTitleOwner),
		TotalAssetValue: randompkg.MoneyAmountBetween(10_000, 1_000_000),
		AnnualRevenue:   randompkg.MoneyAmountBetween(10_000, 1_000_000),
		AnnualProfit:    randompkg.MoneyAmountBetween(0, 100_000).Sub(decimal.NewFromInt(50_000)),
	}
}
