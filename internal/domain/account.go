// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAccountType indicates an account type outside the supported set.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrInvalidAmount indicates a non-positive or otherwise unusable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrLimitExceeded indicates that the operation would cross the overdraft or credit floor.
	ErrLimitExceeded = errors.New("limit exceeded")
	// ErrLimitReached indicates that the savings withdrawal allowance is used up.
	ErrLimitReached = errors.New("withdrawal limit reached")
	// ErrInsufficientFunds indicates that the balance cannot cover the withdrawal.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnsupportedOperation indicates that the account type does not support the operation.
	ErrUnsupportedOperation = errors.New("operation is not supported for the account type")
)

// AccountType tags the account variant.
type AccountType string

// Supported account types.
const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditLine AccountType = "CREDIT_LINE"
)

// ParseAccountType returns the account type stored as s.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(s); t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditLine:
		return t, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
}

// Account is one of *Checking, *Savings or *CreditLine.
type Account interface {
	Info() *AccountInfo
	Type() AccountType
	Validate() error
	isAccount()
}

// AccountInfo holds the attributes shared by every account type.
//
// ID is zero until storage assigns one at creation.
type AccountInfo struct {
	ID      int64           `json:"account_id"`
	Name    string          `json:"account_name" validate:"required,max=100"`
	Balance decimal.Decimal `json:"balance"`
}

// Info returns the shared account attributes.
func (i *AccountInfo) Info() *AccountInfo {
	return i
}

// Checking is an account that may go below zero up to the overdraft limit.
type Checking struct {
	AccountInfo
	OverdraftFee   decimal.Decimal `json:"overdraft_fee" validate:"gte=0"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit" validate:"gte=0"`
}

// Type implements Account.
func (*Checking) Type() AccountType { return AccountTypeChecking }

// Validate implements Account.
func (c *Checking) Validate() error { return validateStruct(c) }

func (*Checking) isAccount() {}

// Savings is an interest bearing account with a capped number of withdrawals per period.
type Savings struct {
	AccountInfo
	InterestRate      decimal.Decimal `json:"interest_rate" validate:"gte=0,lte=100"`
	WithdrawalLimit   int32           `json:"withdrawal_limit" validate:"gte=0"`
	WithdrawalCounter int32           `json:"withdrawal_counter" validate:"gte=0"`
}

// Type implements Account.
func (*Savings) Type() AccountType { return AccountTypeSavings }

// Validate implements Account.
func (s *Savings) Validate() error { return validateStruct(s) }

func (*Savings) isAccount() {}

// CreditLine is a borrowing account. Its balance is zero or negative, the
// magnitude being the amount owed, and never drops below -CreditLimit.
type CreditLine struct {
	AccountInfo
	CreditLimit          decimal.Decimal `json:"credit_limit" validate:"gte=0"`
	InterestRate         decimal.Decimal `json:"interest_rate" validate:"gte=0,lte=100"`
	MinPaymentPercentage decimal.Decimal `json:"min_payment_percentage" validate:"gte=0,lte=100"`
}

// Type implements Account.
func (*CreditLine) Type() AccountType { return AccountTypeCreditLine }

// Validate implements Account.
func (c *CreditLine) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	if c.Balance.IsPositive() {
		return fmt.Errorf("%w: credit line balance %s is positive", ErrInvalidInput, c.Balance)
	}

	if c.Balance.LessThan(c.CreditLimit.Neg()) {
		return fmt.Errorf("%w: credit line balance %s is below the limit", ErrInvalidInput, c.Balance)
	}

	return nil
}

func (*CreditLine) isAccount() {}

// SameAccount reports whether a and b denote the same account.
//
// Accounts without a storage assigned ID have no natural key, so they are
// only equal to themselves.
func SameAccount(a, b Account) bool {
	if a == nil || b == nil {
		return false
	}

	if a.Info().ID != 0 && b.Info().ID != 0 {
		return a.Info().ID == b.Info().ID
	}

	return a == b
}
