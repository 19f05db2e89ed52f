package domain

import "github.com/shopspring/decimal"

// AccountEntity is the stored form of an account: the accounts row joined
// with exactly one type-specific row.
type AccountEntity struct {
	ID         int64
	Type       string
	Name       string
	Balance    decimal.Decimal
	Checking   *CheckingRow
	Savings    *SavingsRow
	CreditLine *CreditLineRow
}

// CheckingRow is the checking_accounts row.
type CheckingRow struct {
	OverdraftFee   decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// SavingsRow is the savings_accounts row.
type SavingsRow struct {
	InterestRate      decimal.Decimal
	WithdrawalLimit   int32
	WithdrawalCounter int32
}

// CreditLineRow is the credit_line_accounts row.
type CreditLineRow struct {
	CreditLimit          decimal.Decimal
	InterestRate         decimal.Decimal
	MinPaymentPercentage decimal.Decimal
}

// ClientEntity is the stored form of a client: the clients row joined with
// exactly one type-specific row. Phone and EIN are kept in display format.
type ClientEntity struct {
	ID       int64
	Type     string
	Name     string
	Address  string
	Phone    string
	Personal *PersonalRow
	Business *BusinessRow
}

// PersonalRow is the personal_clients row.
type PersonalRow struct {
	TaxID        string
	CreditScore  int32
	YearlyIncome decimal.Decimal
	TotalDebt    decimal.Decimal
}

// BusinessRow is the business_clients row.
type BusinessRow struct {
	EIN             string
	BusinessType    string
	ContactName     string
	ContactTitle    string
	TotalAssetValue decimal.Decimal
	AnnualRevenue   decimal.Decimal
	AnnualProfit    decimal.Decimal
}
