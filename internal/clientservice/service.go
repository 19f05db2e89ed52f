// Package clientservice manages business logic layer of clients.
package clientservice

import (
	"context"
	"fmt"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/internal/moneyrules"
	"github.com/go-petr/client-bank/pkg/formatpkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by client service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package clientservice
type Repo interface {
	Create(ctx context.Context, e domain.ClientEntity) (int64, error)
	Get(ctx context.Context, id int64) (domain.ClientEntity, error)
	GetByTaxID(ctx context.Context, taxID string) (domain.ClientEntity, error)
	GetByEIN(ctx context.Context, ein string) (domain.ClientEntity, error)
	GetByBusinessName(ctx context.Context, name string) (domain.ClientEntity, error)
	List(ctx context.Context) ([]domain.ClientEntity, error)
	Update(ctx context.Context, e domain.ClientEntity) (domain.ClientEntity, error)
	Delete(ctx context.Context, id int64) error
}

// OwnershipRepo provides the client side of client-account links.
type OwnershipRepo interface {
	AccountsOf(ctx context.Context, clientID int64) ([]domain.Ownership, error)
	IsJoint(ctx context.Context, accountID int64) (bool, error)
	RemoveAllAccountsOf(ctx context.Context, clientID int64) error
}

// AccountReader reads stored accounts.
type AccountReader interface {
	Get(ctx context.Context, id int64) (domain.AccountEntity, error)
}

// Transactor runs fn with repositories bound to a single transaction.
type Transactor interface {
	ClientTx(ctx context.Context, fn func(repo Repo, owners OwnershipRepo, accounts AccountReader) error) error
}

// Service facilitates client service layer logic.
type Service struct {
	repo     Repo
	owners   OwnershipRepo
	accounts AccountReader
	txer     Transactor
}

// New returns client service struct to manage client bussines logic.
//
// txer may be nil, in which case Delete reads and writes without a transaction.
func New(cr Repo, or OwnershipRepo, ar AccountReader, txer Transactor) *Service {
	return &Service{
		repo:     cr,
		owners:   or,
		accounts: ar,
		txer:     txer,
	}
}

func validEntity(c domain.Client) (domain.ClientEntity, error) {
	if c == nil {
		return domain.ClientEntity{}, fmt.Errorf("%w: missing client", domain.ErrInvalidInput)
	}

	if err := c.Validate(); err != nil {
		return domain.ClientEntity{}, err
	}

	return toEntity(c)
}

// Create stores the client and sets the assigned id on c.
func (s *Service) Create(ctx context.Context, c domain.Client) (int64, error) {
	l := zerolog.Ctx(ctx)

	e, err := validEntity(c)
	if err != nil {
		l.Info().Err(err).Send()
		return 0, err
	}

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return 0, err
	}

	c.Info().ID = id

	return id, nil
}

func (s *Service) model(ctx context.Context, e domain.ClientEntity, err error) (domain.Client, error) {
	if err != nil {
		return nil, err
	}

	c, err := toModel(e)
	if err != nil {
		l := zerolog.Ctx(ctx)
		l.Warn().Err(err).Int64("client_id", e.ID).Send()

		return nil, domain.ErrClientNotFound
	}

	return c, nil
}

// Get returns the client with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Client, error) {
	e, err := s.repo.Get(ctx, id)
	return s.model(ctx, e, err)
}

// GetByTaxID returns the personal client with the given 9 digit tax id.
func (s *Service) GetByTaxID(ctx context.Context, taxID string) (domain.Client, error) {
	if !formatpkg.IsDigits(taxID, 9) {
		return nil, fmt.Errorf("%w: tax id must be 9 digits", domain.ErrInvalidInput)
	}

	e, err := s.repo.GetByTaxID(ctx, taxID)

	return s.model(ctx, e, err)
}

// GetByEIN returns the business client with the given 9 digit EIN.
func (s *Service) GetByEIN(ctx context.Context, ein string) (domain.Client, error) {
	stored, err := formatpkg.EIN(ein)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	e, err := s.repo.GetByEIN(ctx, stored)

	return s.model(ctx, e, err)
}

// GetByBusinessName returns the oldest business client with the given name.
func (s *Service) GetByBusinessName(ctx context.Context, name string) (domain.Client, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty business name", domain.ErrInvalidInput)
	}

	e, err := s.repo.GetByBusinessName(ctx, name)

	return s.model(ctx, e, err)
}

// List returns every client. Records that cannot be converted are skipped.
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	l := zerolog.Ctx(ctx)

	entities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(entities))

	for _, e := range entities {
		c, err := toModel(e)
		if err != nil {
			l.Warn().Err(err).Int64("client_id", e.ID).Send()
			continue
		}

		clients = append(clients, c)
	}

	return clients, nil
}

// Update replaces the stored client with c and returns the stored result.
func (s *Service) Update(ctx context.Context, id int64, c domain.Client) (domain.Client, error) {
	l := zerolog.Ctx(ctx)

	if c != nil {
		c.Info().ID = id
	}

	e, err := validEntity(c)
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

// Delete removes the client unless it is the sole owner of an account with
// a non-zero balance, in which case an *AccountDeletionBlockedError naming
// those accounts is returned and nothing is written.
//
// The client's ownership links are removed with it. Jointly owned accounts
// keep their other owners and solely owned accounts stay in place.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if s.txer != nil {
		return s.txer.ClientTx(ctx, func(repo Repo, owners OwnershipRepo, accounts AccountReader) error {
			return deleteClient(ctx, repo, owners, accounts, id)
		})
	}

	return deleteClient(ctx, s.repo, s.owners, s.accounts, id)
}

func deleteClient(ctx context.Context, repo Repo, owners OwnershipRepo, accounts AccountReader, id int64) error {
	l := zerolog.Ctx(ctx)

	if _, err := repo.Get(ctx, id); err != nil {
		return err
	}

	blocking, err := blockingAccounts(ctx, owners, accounts, id)
	if err != nil {
		return err
	}

	if len(blocking) > 0 {
		err := &domain.AccountDeletionBlockedError{
			ClientID: id,
			Accounts: blocking,
		}
		l.Info().Err(err).Send()

		return err
	}

	if err := owners.RemoveAllAccountsOf(ctx, id); err != nil {
		return err
	}

	return repo.Delete(ctx, id)
}

func blockingAccounts(ctx context.Context, owners OwnershipRepo, accounts AccountReader, clientID int64) ([]domain.BlockingAccount, error) {
	links, err := owners.AccountsOf(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var blocking []domain.BlockingAccount

	for _, o := range links {
		joint, err := owners.IsJoint(ctx, o.AccountID)
		if err != nil {
			return nil, err
		}

		if joint {
			continue
		}

		a, err := accounts.Get(ctx, o.AccountID)
		if err != nil {
			return nil, err
		}

		if moneyrules.IsEffectivelyZero(a.Balance) {
			continue
		}

		blocking = append(blocking, domain.BlockingAccount{
			AccountID: a.ID,
			Type:      domain.AccountType(a.Type),
			Balance:   a.Balance,
		})
	}

	return blocking, nil
}
