package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAccountDeletionBlocked indicates that the client still solely owns accounts with money on them.
var ErrAccountDeletionBlocked = errors.New("client has accounts with outstanding balances")

// BlockingAccount is a solely owned account whose balance prevents client deletion.
type BlockingAccount struct {
	AccountID int64           `json:"account_id"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
}

// AccountDeletionBlockedError lists the accounts that block deleting the client.
//
// errors.Is(err, ErrAccountDeletionBlocked) holds for it.
type AccountDeletionBlockedError struct {
	ClientID int64             `json:"customer_id"`
	Accounts []BlockingAccount `json:"blocking_accounts"`
}

func (e *AccountDeletionBlockedError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "client %d: %s:", e.ClientID, ErrAccountDeletionBlocked)

	for i, a := range e.Accounts {
		if i > 0 {
			sb.WriteString(",")
		}

		fmt.Fprintf(&sb, " %s account %d balance %s", a.Type, a.AccountID, a.Balance.StringFixed(2))
	}

	return sb.String()
}

// Is makes the error match ErrAccountDeletionBlocked.
func (e *AccountDeletionBlockedError) Is(target error) bool {
	return target == ErrAccountDeletionBlocked
}
