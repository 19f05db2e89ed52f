package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validPersonal() *PersonalClient {
	return &PersonalClient{
		ClientInfo: ClientInfo{
			Name:        "Ada Lovelace",
			Address:     "12 Analytical St",
			PhoneNumber: "5551234567",
		},
		TaxID:        "123456789",
		CreditScore:  720,
		YearlyIncome: decimal.RequireFromString("85000.00"),
		TotalDebt:    decimal.RequireFromString("1200.50"),
	}
}

func validBusiness() *BusinessClient {
	return &BusinessClient{
		ClientInfo: ClientInfo{
			Name:        "Acme Widgets",
			Address:     "1 Industrial Way",
			PhoneNumber: "5559876543",
		},
		EIN:             "987654321",
		BusinessType:    BusinessTypeSoleProprietorship,
		ContactName:     "Wile Coyote",
		ContactTitle:    ContactTitleOwner,
		TotalAssetValue: decimal.RequireFromString("250000"),
		AnnualRevenue:   decimal.RequireFromString("1000000"),
		AnnualProfit:    decimal.RequireFromString("-5000"),
	}
}

func TestPersonalClientValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *PersonalClient)
		wantErr bool
	}{
		{name: "OK", mutate: func(c *PersonalClient) {}},
		{name: "CreditScoreTooLow", mutate: func(c *PersonalClient) { c.CreditScore = 299 }, wantErr: true},
		{name: "CreditScoreTooHigh", mutate: func(c *PersonalClient) { c.CreditScore = 851 }, wantErr: true},
		{name: "NegativeIncome", mutate: func(c *PersonalClient) { c.YearlyIncome = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "NegativeDebt", mutate: func(c *PersonalClient) { c.TotalDebt = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "ShortTaxID", mutate: func(c *PersonalClient) { c.TaxID = "12345678" }, wantErr: true},
		{name: "SignedTaxID", mutate: func(c *PersonalClient) { c.TaxID = "-12345678" }, wantErr: true},
		{name: "FormattedPhone", mutate: func(c *PersonalClient) { c.PhoneNumber = "(555) 123-4567" }, wantErr: true},
		{name: "NoName", mutate: func(c *PersonalClient) { c.Name = "" }, wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			c := validPersonal()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr {
				require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestBusinessClientValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *BusinessClient)
		wantErr bool
	}{
		{name: "OK", mutate: func(c *BusinessClient) {}},
		{name: "NegativeProfitAllowed", mutate: func(c *BusinessClient) { c.AnnualProfit = decimal.NewFromInt(-100) }},
		{name: "UnknownBusinessType", mutate: func(c *BusinessClient) { c.BusinessType = "Cooperative" }, wantErr: true},
		{name: "UnknownTitle", mutate: func(c *BusinessClient) { c.ContactTitle = "Intern" }, wantErr: true},
		{name: "ShortContactName", mutate: func(c *BusinessClient) { c.ContactName = "Al" }, wantErr: true},
		{name: "NegativeRevenue", mutate: func(c *BusinessClient) { c.AnnualRevenue = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "NegativeAssets", mutate: func(c *BusinessClient) { c.TotalAssetValue = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "FormattedEIN", mutate: func(c *BusinessClient) { c.EIN = "98-7654321" }, wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			c := validBusiness()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr {
				require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAccountValidate(t *testing.T) {
	testCases := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{
			name: "CheckingOK",
			account: &Checking{
				AccountInfo:    AccountInfo{Name: "Everyday", Balance: decimal.NewFromInt(-20)},
				OverdraftFee:   decimal.NewFromInt(25),
				OverdraftLimit: decimal.NewFromInt(500),
			},
		},
		{
			name: "CheckingNegativeFee",
			account: &Checking{
				AccountInfo:  AccountInfo{Name: "Everyday"},
				OverdraftFee: decimal.NewFromInt(-1),
			},
			wantErr: true,
		},
		{
			name: "SavingsRateAbove100",
			account: &Savings{
				AccountInfo:  AccountInfo{Name: "Rainy day"},
				InterestRate: decimal.RequireFromString("100.01"),
			},
			wantErr: true,
		},
		{
			name: "SavingsNoName",
			account: &Savings{
				InterestRate: decimal.NewFromInt(2),
			},
			wantErr: true,
		},
		{
			name: "CreditLineOK",
			account: &CreditLine{
				AccountInfo:          AccountInfo{Name: "Card", Balance: decimal.NewFromInt(-5000)},
				CreditLimit:          decimal.NewFromInt(5000),
				InterestRate:         decimal.NewFromInt(19),
				MinPaymentPercentage: decimal.NewFromInt(3),
			},
		},
		{
			name: "CreditLinePositiveBalance",
			account: &CreditLine{
				AccountInfo: AccountInfo{Name: "Card", Balance: decimal.NewFromInt(1)},
				CreditLimit: decimal.NewFromInt(5000),
			},
			wantErr: true,
		},
		{
			name: "CreditLineBelowFloor",
			account: &CreditLine{
				AccountInfo: AccountInfo{Name: "Card", Balance: decimal.RequireFromString("-5000.01")},
				CreditLimit: decimal.NewFromInt(5000),
			},
			wantErr: true,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.Validate()
			if tc.wantErr {
				require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSameClient(t *testing.T) {
	a, b := validPersonal(), validPersonal()
	require.True(t, SameClient(a, b), "unassigned ids fall back to the tax id")

	b.TaxID = "111111111"
	require.False(t, SameClient(a, b))

	a.ID, b.ID = 7, 7
	require.True(t, SameClient(a, b), "assigned ids win over the tax id")

	b.ID = 8
	b.TaxID = a.TaxID
	require.False(t, SameClient(a, b))

	require.False(t, SameClient(validPersonal(), validBusiness()))
}

func TestSameAccount(t *testing.T) {
	a := &Checking{AccountInfo: AccountInfo{Name: "a"}}
	b := &Checking{AccountInfo: AccountInfo{Name: "a"}}

	require.True(t, SameAccount(a, a))
	require.False(t, SameAccount(a, b))

	a.ID, b.ID = 3, 3
	require.True(t, SameAccount(a, b))
}

func TestAccountDeletionBlockedError(t *testing.T) {
	var err error = &AccountDeletionBlockedError{
		ClientID: 4,
		Accounts: []BlockingAccount{
			{AccountID: 10, Type: AccountTypeChecking, Balance: decimal.NewFromInt(250)},
			{AccountID: 11, Type: AccountTypeCreditLine, Balance: decimal.RequireFromString("-12.5")},
		},
	}

	require.True(t, errors.Is(err, ErrAccountDeletionBlocked))
	require.Equal(t,
		"client 4: client has accounts with outstanding balances: CHECKING account 10 balance 250.00, CREDIT_LINE account 11 balance -12.50",
		err.Error())

	var blocked *AccountDeletionBlockedError
	require.True(t, errors.As(err, &blocked))
	require.Len(t, blocked.Accounts, 2)
}

func TestParseTypes(t *testing.T) {
	at, err := ParseAccountType("SAVINGS")
	require.NoError(t, err)
	require.Equal(t, AccountTypeSavings, at)

	_, err = ParseAccountType("BROKERAGE")
	require.True(t, errors.Is(err, ErrInvalidAccountType))

	ct, err := ParseClientType("BUSINESS")
	require.NoError(t, err)
	require.Equal(t, ClientTypeBusiness, ct)

	_, err = ParseBusinessType("Cooperative")
	require.True(t, errors.Is(err, ErrInvalidInput))

	ot, err := ParseOwnershipType("JOINT")
	require.NoError(t, err)
	require.Equal(t, OwnershipJoint, ot)
}
