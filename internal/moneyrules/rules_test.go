package moneyrules

import (
	"errors"
	"testing"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestRound(t *testing.T) {
	requireDecimal(t, "1.01", Round(d("1.005")))
	requireDecimal(t, "-1.01", Round(d("-1.005")))
	requireDecimal(t, "2.00", Round(d("1.999")))
}

func TestIsEffectivelyZero(t *testing.T) {
	require.True(t, IsEffectivelyZero(d("0")))
	require.True(t, IsEffectivelyZero(d("0.0049")))
	require.True(t, IsEffectivelyZero(d("-0.0049")))
	require.False(t, IsEffectivelyZero(d("0.005")))
	require.False(t, IsEffectivelyZero(d("-250.00")))
}

func TestDeposit(t *testing.T) {
	got, err := Deposit(d("100"), d("50.25"))
	require.NoError(t, err)
	requireDecimal(t, "150.25", got)

	got, err = Deposit(d("100"), d("0.005"))
	require.NoError(t, err)
	requireDecimal(t, "100.01", got)

	for _, amount := range []string{"0", "-1", "0.004", "-0.004"} {
		got, err = Deposit(d("100"), d(amount))
		require.True(t, errors.Is(err, domain.ErrInvalidAmount))
		requireDecimal(t, "100", got)
	}
}

func TestWithdrawChecking(t *testing.T) {
	c := domain.Checking{
		AccountInfo:    domain.AccountInfo{Balance: d("100")},
		OverdraftFee:   d("25"),
		OverdraftLimit: d("500"),
	}

	testCases := []struct {
		name    string
		amount  string
		want    string
		wantErr error
	}{
		{name: "WithinBalance", amount: "40", want: "60"},
		{name: "ExactlyZeroNoFee", amount: "100", want: "0"},
		{name: "OverdraftWithFee", amount: "550", want: "-475"},
		{name: "OverdraftAtLimit", amount: "600", want: "-525"},
		{name: "BeyondLimit", amount: "700", want: "100", wantErr: domain.ErrLimitExceeded},
		{name: "ZeroAmount", amount: "0", want: "100", wantErr: domain.ErrInvalidAmount},
		{name: "NegativeAmount", amount: "-5", want: "100", wantErr: domain.ErrInvalidAmount},
		{name: "SubCentAmount", amount: "0.004", want: "100", wantErr: domain.ErrInvalidAmount},
		{name: "AmountRoundedToCent", amount: "40.006", want: "59.99"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := WithdrawChecking(c, d(tc.amount))
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}

			requireDecimal(t, tc.want, got)
		})
	}
}

func TestWithdrawCheckingSubCentChargesNoFee(t *testing.T) {
	c := domain.Checking{
		OverdraftFee:   d("25"),
		OverdraftLimit: d("500"),
	}

	got, err := WithdrawChecking(c, d("0.004"))
	require.True(t, errors.Is(err, domain.ErrInvalidAmount), "got %v", err)
	requireDecimal(t, "0", got)
}

func TestWithdrawSavingsCap(t *testing.T) {
	s := domain.Savings{
		AccountInfo:     domain.AccountInfo{Balance: d("1000")},
		WithdrawalLimit: 3,
	}

	for i := 0; i < 3; i++ {
		balance, counter, err := WithdrawSavings(s, d("10"))
		require.NoError(t, err)
		require.Equal(t, int32(i+1), counter)

		s.Balance, s.WithdrawalCounter = balance, counter
	}

	requireDecimal(t, "970", s.Balance)

	for _, amount := range []string{"0.01", "0", "-5", "5000"} {
		balance, counter, err := WithdrawSavings(s, d(amount))
		require.True(t, errors.Is(err, domain.ErrLimitReached), "amount %s: got %v", amount, err)
		require.Equal(t, int32(3), counter)
		requireDecimal(t, "970", balance)
	}
}

func TestWithdrawSavingsSubCentKeepsCounter(t *testing.T) {
	s := domain.Savings{
		AccountInfo:     domain.AccountInfo{Balance: d("100")},
		WithdrawalLimit: 3,
	}

	balance, counter, err := WithdrawSavings(s, d("0.001"))
	require.True(t, errors.Is(err, domain.ErrInvalidAmount), "got %v", err)
	require.Equal(t, int32(0), counter)
	requireDecimal(t, "100", balance)
}

func TestWithdrawSavingsInsufficientFunds(t *testing.T) {
	s := domain.Savings{
		AccountInfo:     domain.AccountInfo{Balance: d("50")},
		WithdrawalLimit: 3,
	}

	balance, counter, err := WithdrawSavings(s, d("50.01"))
	require.True(t, errors.Is(err, domain.ErrInsufficientFunds))
	require.Equal(t, int32(0), counter)
	requireDecimal(t, "50", balance)

	_, _, err = WithdrawSavings(s, d("0"))
	require.True(t, errors.Is(err, domain.ErrInvalidAmount))
}

func TestApplyInterest(t *testing.T) {
	requireDecimal(t, "1000", ApplyInterest(d("1000"), d("0")))
	requireDecimal(t, "1050.00", ApplyInterest(d("1000"), d("5")))
	requireDecimal(t, "1002.58", ApplyInterest(d("1000.33"), d("0.225")))
	requireDecimal(t, "-1050.00", ApplyInterest(d("-1000"), d("5")))
}

func TestChargeCredit(t *testing.T) {
	c := domain.CreditLine{CreditLimit: d("5000")}

	balance, err := ChargeCredit(c, d("5000"))
	require.NoError(t, err)
	requireDecimal(t, "-5000", balance)

	c.Balance = balance

	balance, err = ChargeCredit(c, d("0.01"))
	require.True(t, errors.Is(err, domain.ErrLimitExceeded))
	requireDecimal(t, "-5000", balance)

	_, err = ChargeCredit(c, d("0"))
	require.True(t, errors.Is(err, domain.ErrInvalidAmount))

	_, err = ChargeCredit(domain.CreditLine{CreditLimit: d("5000")}, d("0.004"))
	require.True(t, errors.Is(err, domain.ErrInvalidAmount))
}

func TestMakePayment(t *testing.T) {
	c := domain.CreditLine{
		AccountInfo: domain.AccountInfo{Balance: d("-300")},
		CreditLimit: d("5000"),
	}

	testCases := []struct {
		name    string
		amount  string
		want    string
		wantErr error
	}{
		{name: "Partial", amount: "100", want: "-200"},
		{name: "Full", amount: "300", want: "0"},
		{name: "Zero", amount: "0", want: "-300"},
		{name: "Overpay", amount: "300.01", want: "-300", wantErr: domain.ErrInvalidAmount},
		{name: "Negative", amount: "-1", want: "-300", wantErr: domain.ErrInvalidAmount},
		{name: "SubCentIsNoPayment", amount: "0.004", want: "-300"},
		{name: "AmountRoundedToCent", amount: "100.005", want: "-199.99"},
		{name: "RoundedToFull", amount: "300.004", want: "0"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := MakePayment(c, d(tc.amount))
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}

			requireDecimal(t, tc.want, got)
		})
	}
}

func TestMakePaymentBelowFloor(t *testing.T) {
	// A limit lowered under the current debt leaves even a payment below the floor.
	c := domain.CreditLine{
		AccountInfo: domain.AccountInfo{Balance: d("-900")},
		CreditLimit: d("500"),
	}

	_, err := MakePayment(c, d("100"))
	require.True(t, errors.Is(err, domain.ErrLimitExceeded))
}

func TestMinimumPayment(t *testing.T) {
	c := domain.CreditLine{
		AccountInfo:          domain.AccountInfo{Balance: d("-1234.56")},
		MinPaymentPercentage: d("3"),
	}

	requireDecimal(t, "37.04", MinimumPayment(c))
}

func TestIncreaseCreditLimit(t *testing.T) {
	requireDecimal(t, "5500", IncreaseCreditLimit(d("5000")))
	requireDecimal(t, "1.11", IncreaseCreditLimit(d("1.01")))
}
