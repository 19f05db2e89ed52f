// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/internal/moneyrules"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, e domain.AccountEntity) (int64, error)
	Get(ctx context.Context, id int64) (domain.AccountEntity, error)
	List(ctx context.Context) ([]domain.AccountEntity, error)
	Update(ctx context.Context, e domain.AccountEntity) (domain.AccountEntity, error)
	Delete(ctx context.Context, id int64) error
}

// OwnershipRepo provides access to client-account links.
type OwnershipRepo interface {
	Assign(ctx context.Context, clientID, accountID int64, t domain.OwnershipType) (domain.Ownership, error)
	AccountsOf(ctx context.Context, clientID int64) ([]domain.Ownership, error)
	OwnersOf(ctx context.Context, accountID int64) ([]domain.Ownership, error)
	IsJoint(ctx context.Context, accountID int64) (bool, error)
	Remove(ctx context.Context, clientID, accountID int64) error
	RemoveAllOwnersOf(ctx context.Context, accountID int64) error
	ListJointAccounts(ctx context.Context) ([]int64, error)
}

// Transactor runs fn with repositories bound to a single transaction.
type Transactor interface {
	AccountTx(ctx context.Context, fn func(repo Repo, owners OwnershipRepo) error) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo   Repo
	owners OwnershipRepo
	txer   Transactor
}

// New returns account service struct to manage account bussines logic.
//
// txer may be nil, in which case compound writes are undone by compensation.
func New(ar Repo, or OwnershipRepo, txer Transactor) *Service {
	return &Service{
		repo:   ar,
		owners: or,
		txer:   txer,
	}
}

// Create stores the account with ownerID as its PRIMARY owner and sets the
// assigned id on a.
func (s *Service) Create(ctx context.Context, a domain.Account, ownerID int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	e, err := validEntity(a)
	if err != nil {
		l.Info().Err(err).Send()
		return 0, err
	}

	var id int64

	if s.txer != nil {
		err = s.txer.AccountTx(ctx, func(repo Repo, owners OwnershipRepo) error {
			var err error

			id, err = repo.Create(ctx, e)
			if err != nil {
				return err
			}

			if _, err := owners.Assign(ctx, ownerID, id, domain.OwnershipPrimary); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrOwnershipConflict, err)
			}

			return nil
		})
	} else {
		id, err = s.createCompensated(ctx, e, ownerID)
	}

	if err != nil {
		return 0, err
	}

	a.Info().ID = id

	return id, nil
}

func (s *Service) createCompensated(ctx context.Context, e domain.AccountEntity, ownerID int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return 0, err
	}

	if _, err := s.owners.Assign(ctx, ownerID, id, domain.OwnershipPrimary); err != nil {
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			l.Error().Err(delErr).Int64("account_id", id).Msg("compensating delete failed")
		}

		return 0, fmt.Errorf("%w: %v", domain.ErrOwnershipConflict, err)
	}

	return id, nil
}

func validEntity(a domain.Account) (domain.AccountEntity, error) {
	if a == nil {
		return domain.AccountEntity{}, fmt.Errorf("%w: missing account", domain.ErrInvalidInput)
	}

	if err := a.Validate(); err != nil {
		return domain.AccountEntity{}, err
	}

	return toEntity(a)
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := toModel(e)
	if err != nil {
		l := zerolog.Ctx(ctx)
		l.Warn().Err(err).Int64("account_id", id).Send()

		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

// List returns every account. Records that cannot be converted are skipped.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	entities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.models(ctx, entities), nil
}

func (s *Service) models(ctx context.Context, entities []domain.AccountEntity) []domain.Account {
	l := zerolog.Ctx(ctx)

	accounts := make([]domain.Account, 0, len(entities))

	for _, e := range entities {
		a, err := toModel(e)
		if err != nil {
			l.Warn().Err(err).Int64("account_id", e.ID).Send()
			continue
		}

		accounts = append(accounts, a)
	}

	return accounts
}

// ListByClient returns the accounts linked to the client.
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Account, error) {
	links, err := s.owners.AccountsOf(ctx, clientID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(links))
	for _, o := range links {
		ids = append(ids, o.AccountID)
	}

	return s.getAll(ctx, ids)
}

func (s *Service) getAll(ctx context.Context, ids []int64) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(ids))

	for _, id := range ids {
		a, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrAccountNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		accounts = append(accounts, a)
	}

	return accounts, nil
}

// Update replaces the stored account with a and returns the stored result.
func (s *Service) Update(ctx context.Context, id int64, a domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if a != nil {
		a.Info().ID = id
	}

	e, err := validEntity(a)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, err
	}

	return toModel(updated)
}

// Delete unlinks every owner of the account and removes it.
//
// No balance check is made; client deletion guards balances.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.txer != nil {
		return s.txer.AccountTx(ctx, func(repo Repo, owners OwnershipRepo) error {
			return deleteAccount(ctx, repo, owners, id)
		})
	}

	return deleteAccount(ctx, s.repo, s.owners, id)
}

func deleteAccount(ctx context.Context, repo Repo, owners OwnershipRepo, id int64) error {
	if err := owners.RemoveAllOwnersOf(ctx, id); err != nil {
		return err
	}

	return repo.Delete(ctx, id)
}

// AddJointOwner links the client to the account as a JOINT owner.
func (s *Service) AddJointOwner(ctx context.Context, accountID, clientID int64) (domain.Ownership, error) {
	return s.owners.Assign(ctx, clientID, accountID, domain.OwnershipJoint)
}

// RemoveOwner unlinks the client from the account.
//
// The only owner of an account whose balance is not effectively zero cannot
// be removed: ErrLastOwner is returned and nothing is written.
func (s *Service) RemoveOwner(ctx context.Context, accountID, clientID int64) error {
	if s.txer != nil {
		return s.txer.AccountTx(ctx, func(repo Repo, owners OwnershipRepo) error {
			return removeOwner(ctx, repo, owners, accountID, clientID)
		})
	}

	return removeOwner(ctx, s.repo, s.owners, accountID, clientID)
}

func removeOwner(ctx context.Context, repo Repo, owners OwnershipRepo, accountID, clientID int64) error {
	l := zerolog.Ctx(ctx)

	links, err := owners.OwnersOf(ctx, accountID)
	if err != nil {
		return err
	}

	owned := false

	for _, o := range links {
		if o.ClientID == clientID {
			owned = true
			break
		}
	}

	if !owned {
		return domain.ErrOwnershipNotFound
	}

	if len(links) == 1 {
		e, err := repo.Get(ctx, accountID)
		if err != nil {
			return err
		}

		if !moneyrules.IsEffectivelyZero(e.Balance) {
			err := fmt.Errorf("%w: account %d balance %s", domain.ErrLastOwner, accountID, e.Balance.StringFixed(2))
			l.Info().Err(err).Send()

			return err
		}
	}

	return owners.Remove(ctx, clientID, accountID)
}

// Owners returns the links of the account.
func (s *Service) Owners(ctx context.Context, accountID int64) ([]domain.Ownership, error) {
	return s.owners.OwnersOf(ctx, accountID)
}

// IsJoint reports whether more than one client owns the account.
func (s *Service) IsJoint(ctx context.Context, accountID int64) (bool, error) {
	return s.owners.IsJoint(ctx, accountID)
}

// JointAccounts returns the accounts with more than one owner.
func (s *Service) JointAccounts(ctx context.Context) ([]domain.Account, error) {
	ids, err := s.owners.ListJointAccounts(ctx)
	if err != nil {
		return nil, err
	}

	return s.getAll(ctx, ids)
}

// save persists the already mutated account. On failure a has diverged
// from storage and should be fetched again.
func (s *Service) save(ctx context.Context, a domain.Account) error {
	e, err := toEntity(a)
	if err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, e)

	return err
}

func unsupported(ctx context.Context, op string, a domain.Account) error {
	l := zerolog.Ctx(ctx)

	err := fmt.Errorf("%w: %s on %s account", domain.ErrUnsupportedOperation, op, accountType(a))
	l.Info().Err(err).Send()

	return err
}

func accountType(a domain.Account) string {
	if a == nil {
		return "missing"
	}

	return string(a.Type())
}

func rejected(ctx context.Context, err error) error {
	l := zerolog.Ctx(ctx)
	l.Info().Err(err).Send()

	return err
}

// Deposit adds amount to a checking or savings account.
func (s *Service) Deposit(ctx context.Context, a domain.Account, amount decimal.Decimal) error {
	switch a.(type) {
	case *domain.Checking, *domain.Savings:
	default:
		return unsupported(ctx, "deposit", a)
	}

	balance, err := moneyrules.Deposit(a.Info().Balance, amount)
	if err != nil {
		return rejected(ctx, err)
	}

	a.Info().Balance = balance

	return s.save(ctx, a)
}

// Withdraw takes amount from a checking or savings account.
func (s *Service) Withdraw(ctx context.Context, a domain.Account, amount decimal.Decimal) error {
	switch acc := a.(type) {
	case *domain.Checking:
		balance, err := moneyrules.WithdrawChecking(*acc, amount)
		if err != nil {
			return rejected(ctx, err)
		}

		acc.Balance = balance
	case *domain.Savings:
		balance, counter, err := moneyrules.WithdrawSavings(*acc, amount)
		if err != nil {
			return rejected(ctx, err)
		}

		acc.Balance = balance
		acc.WithdrawalCounter = counter
	default:
		return unsupported(ctx, "withdraw", a)
	}

	return s.save(ctx, a)
}

// ChargeCredit draws amount from a credit line.
func (s *Service) ChargeCredit(ctx context.Context, a domain.Account, amount decimal.Decimal) error {
	acc, ok := a.(*domain.CreditLine)
	if !ok {
		return unsupported(ctx, "charge", a)
	}

	balance, err := moneyrules.ChargeCredit(*acc, amount)
	if err != nil {
		return rejected(ctx, err)
	}

	acc.Balance = balance

	return s.save(ctx, a)
}

// MakePayment pays amount towards the debt of a credit line.
//
// The amount is rounded to cents. Paying more than is owed is rejected with
// ErrInvalidAmount, as a credit line balance never goes above zero.
func (s *Service) MakePayment(ctx context.Context, a domain.Account, amount decimal.Decimal) error {
	acc, ok := a.(*domain.CreditLine)
	if !ok {
		return unsupported(ctx, "payment", a)
	}

	balance, err := moneyrules.MakePayment(*acc, amount)
	if err != nil {
		return rejected(ctx, err)
	}

	acc.Balance = balance

	return s.save(ctx, a)
}

// ApplyInterest applies the account interest rate to the balance of a
// savings account or a credit line.
//
// Interest that would push a credit line past its limit is rejected.
func (s *Service) ApplyInterest(ctx context.Context, a domain.Account) error {
	switch acc := a.(type) {
	case *domain.Savings:
		acc.Balance = moneyrules.ApplyInterest(acc.Balance, acc.InterestRate)
	case *domain.CreditLine:
		balance := moneyrules.ApplyInterest(acc.Balance, acc.InterestRate)
		if balance.LessThan(acc.CreditLimit.Neg()) {
			return rejected(ctx, fmt.Errorf("%w: interest on account %d", domain.ErrLimitExceeded, acc.ID))
		}

		acc.Balance = balance
	default:
		return unsupported(ctx, "interest", a)
	}

	return s.save(ctx, a)
}

// IncreaseCreditLimit raises the limit of a credit line by 10%.
func (s *Service) IncreaseCreditLimit(ctx context.Context, a domain.Account) error {
	acc, ok := a.(*domain.CreditLine)
	if !ok {
		return unsupported(ctx, "credit limit increase", a)
	}

	acc.CreditLimit = moneyrules.IncreaseCreditLimit(acc.CreditLimit)

	return s.save(ctx, a)
}

// ResetWithdrawals starts a new withdrawal period for a savings account.
func (s *Service) ResetWithdrawals(ctx context.Context, a domain.Account) error {
	acc, ok := a.(*domain.Savings)
	if !ok {
		return unsupported(ctx, "withdrawal reset", a)
	}

	acc.WithdrawalCounter = 0

	return s.save(ctx, a)
}

// MinimumPayment returns the minimum payment due on a credit line.
func (s *Service) MinimumPayment(ctx context.Context, a domain.Account) (decimal.Decimal, error) {
	acc, ok := a.(*domain.CreditLine)
	if !ok {
		return decimal.Zero, unsupported(ctx, "minimum payment", a)
	}

	return moneyrules.MinimumPayment(*acc), nil
}
