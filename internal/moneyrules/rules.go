// Package moneyrules computes account balances for money operations.
//
// Every function is pure: it takes the current account state by value and
// returns the new values, leaving the caller to apply and persist them.
// All returned amounts are rounded to two decimals.
package moneyrules

import (
	"fmt"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred   = decimal.NewFromInt(100)
	zeroBound = decimal.RequireFromString("0.005")
	// creditLimitStep is the factor applied by IncreaseCreditLimit.
	creditLimitStep = decimal.RequireFromString("1.10")
)

// Round rounds d to two decimals, halves away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsEffectivelyZero reports whether |d| < 0.005.
func IsEffectivelyZero(d decimal.Decimal) bool {
	return d.Abs().LessThan(zeroBound)
}

// positive returns amount rounded to cents. Amounts that round to zero or
// below are rejected.
func positive(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := Round(amount)
	if !rounded.IsPositive() {
		return rounded, fmt.Errorf("%w: %s must be at least 0.01", domain.ErrInvalidAmount, amount)
	}

	return rounded, nil
}

// Deposit returns the balance after depositing amount.
func Deposit(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	amount, err := positive(amount)
	if err != nil {
		return balance, err
	}

	return Round(balance.Add(amount)), nil
}

// WithdrawChecking returns the checking balance after withdrawing amount.
//
// A result below zero must stay within the overdraft limit and is charged the
// overdraft fee. The limit is checked before the fee is taken.
func WithdrawChecking(c domain.Checking, amount decimal.Decimal) (decimal.Decimal, error) {
	amount, err := positive(amount)
	if err != nil {
		return c.Balance, err
	}

	balance := c.Balance.Sub(amount)
	if balance.IsNegative() {
		if balance.LessThan(c.OverdraftLimit.Neg()) {
			return c.Balance, fmt.Errorf("%w: overdraft limit %s", domain.ErrLimitExceeded, c.OverdraftLimit)
		}

		balance = balance.Sub(c.OverdraftFee)
	}

	return Round(balance), nil
}

// WithdrawSavings returns the savings balance and withdrawal counter after
// withdrawing amount.
//
// Once the period's withdrawals are used up every attempt fails with
// ErrLimitReached, whatever the amount.
func WithdrawSavings(s domain.Savings, amount decimal.Decimal) (decimal.Decimal, int32, error) {
	if s.WithdrawalCounter >= s.WithdrawalLimit {
		return s.Balance, s.WithdrawalCounter,
			fmt.Errorf("%w: %d of %d used", domain.ErrLimitReached, s.WithdrawalCounter, s.WithdrawalLimit)
	}

	amount, err := positive(amount)
	if err != nil {
		return s.Balance, s.WithdrawalCounter, err
	}

	balance := s.Balance.Sub(amount)
	if balance.IsNegative() {
		return s.Balance, s.WithdrawalCounter, domain.ErrInsufficientFunds
	}

	return Round(balance), s.WithdrawalCounter + 1, nil
}

// ApplyInterest returns balance grown by rate percent.
func ApplyInterest(balance, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return balance
	}

	return Round(balance.Add(balance.Mul(rate).Div(hundred)))
}

// ChargeCredit returns the credit line balance after borrowing amount.
func ChargeCredit(c domain.CreditLine, amount decimal.Decimal) (decimal.Decimal, error) {
	amount, err := positive(amount)
	if err != nil {
		return c.Balance, err
	}

	balance := c.Balance.Sub(amount)
	if balance.LessThan(c.CreditLimit.Neg()) {
		return c.Balance, fmt.Errorf("%w: credit limit %s", domain.ErrLimitExceeded, c.CreditLimit)
	}

	return Round(balance), nil
}

// MakePayment returns the credit line balance after paying back amount.
//
// The amount is rounded to cents first. A payment cannot exceed the amount owed.
func MakePayment(c domain.CreditLine, amount decimal.Decimal) (decimal.Decimal, error) {
	amount = Round(amount)
	if amount.IsNegative() {
		return c.Balance, fmt.Errorf("%w: %s is negative", domain.ErrInvalidAmount, amount)
	}

	balance := c.Balance.Add(amount)
	if balance.LessThan(c.CreditLimit.Neg()) {
		return c.Balance, fmt.Errorf("%w: credit limit %s", domain.ErrLimitExceeded, c.CreditLimit)
	}

	if balance.IsPositive() {
		return c.Balance, fmt.Errorf("%w: %s exceeds the amount owed %s",
			domain.ErrInvalidAmount, amount, c.Balance.Neg())
	}

	return Round(balance), nil
}

// MinimumPayment returns the smallest payment due on the credit line.
func MinimumPayment(c domain.CreditLine) decimal.Decimal {
	return Round(c.Balance.Abs().Mul(c.MinPaymentPercentage).Div(hundred))
}

// IncreaseCreditLimit returns limit raised by 10%.
func IncreaseCreditLimit(limit decimal.Decimal) decimal.Decimal {
	return Round(limit.Mul(creditLimitStep))
}
