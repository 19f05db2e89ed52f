package accountservice

import (
	"errors"
	"fmt"

	"github.com/go-petr/client-bank/internal/domain"
)

var errCorruptRecord = errors.New("corrupt account record")

func toEntity(a domain.Account) (domain.AccountEntity, error) {
	info := a.Info()

	e := domain.AccountEntity{
		ID:      info.ID,
		Type:    string(a.Type()),
		Name:    info.Name,
		Balance: info.Balance,
	}

	switch acc := a.(type) {
	case *domain.Checking:
		e.Checking = &domain.CheckingRow{
			OverdraftFee:   acc.OverdraftFee,
			OverdraftLimit: acc.OverdraftLimit,
		}
	case *domain.Savings:
		e.Savings = &domain.SavingsRow{
			InterestRate:      acc.InterestRate,
			WithdrawalLimit:   acc.WithdrawalLimit,
			WithdrawalCounter: acc.WithdrawalCounter,
		}
	case *domain.CreditLine:
		e.CreditLine = &domain.CreditLineRow{
			CreditLimit:          acc.CreditLimit,
			InterestRate:         acc.InterestRate,
			MinPaymentPercentage: acc.MinPaymentPercentage,
		}
	default:
		return domain.AccountEntity{}, fmt.Errorf("%w: %T", domain.ErrInvalidAccountType, a)
	}

	return e, nil
}

func toModel(e domain.AccountEntity) (domain.Account, error) {
	t, err := domain.ParseAccountType(e.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptRecord, err)
	}

	info := domain.AccountInfo{
		ID:      e.ID,
		Name:    e.Name,
		Balance: e.Balance,
	}

	switch t {
	case domain.AccountTypeChecking:
		if e.Checking != nil {
			return &domain.Checking{
				AccountInfo:    info,
				OverdraftFee:   e.Checking.OverdraftFee,
				OverdraftLimit: e.Checking.OverdraftLimit,
			}, nil
		}
	case domain.AccountTypeSavings:
		if e.Savings != nil {
			return &domain.Savings{
				AccountInfo:       info,
				InterestRate:      e.Savings.InterestRate,
				WithdrawalLimit:   e.Savings.WithdrawalLimit,
				WithdrawalCounter: e.Savings.WithdrawalCounter,
			}, nil
		}
	case domain.AccountTypeCreditLine:
		if e.CreditLine != nil {
			return &domain.CreditLine{
				AccountInfo:          info,
				CreditLimit:          e.CreditLine.CreditLimit,
				InterestRate:         e.CreditLine.InterestRate,
				MinPaymentPercentage: e.CreditLine.MinPaymentPercentage,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s account %d has no %s row", errCorruptRecord, t, e.ID, t)
}
