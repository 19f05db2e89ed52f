package clientservice

import (
	"context"
	"errors"
	"testing"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/internal/test"
	"github.com/go-petr/client-bank/pkg/errorspkg"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	repo     *MockRepo
	owners   *MockOwnershipRepo
	accounts *MockAccountReader
	txer     *MockTransactor
}

func newMocks(t *testing.T) mocks {
	ctrl := gomock.NewController(t)

	return mocks{
		repo:     NewMockRepo(ctrl),
		owners:   NewMockOwnershipRepo(ctrl),
		accounts: NewMockAccountReader(ctrl),
		txer:     NewMockTransactor(ctrl),
	}
}

func (m mocks) service() *Service {
	return New(m.repo, m.owners, m.accounts, nil)
}

func personalEntity(id int64) domain.ClientEntity {
	return domain.ClientEntity{
		ID:      id,
		Type:    string(domain.ClientTypePersonal),
		Name:    "Ann Lee",
		Address: "12 Elm St",
		Phone:   "(555) 123-4567",
		Personal: &domain.PersonalRow{
			TaxID:        "123456789",
			CreditScore:  720,
			YearlyIncome: decimal.RequireFromString("85000.00"),
			TotalDebt:    decimal.RequireFromString("1200.50"),
		},
	}
}

func businessEntity(id int64) domain.ClientEntity {
	return domain.ClientEntity{
		ID:      id,
		Type:    string(domain.ClientTypeBusiness),
		Name:    "Acme",
		Address: "1 Main St",
		Phone:   "(555) 987-6543",
		Business: &domain.BusinessRow{
			EIN:             "12-3456789",
			BusinessType:    "Sole Proprietorship",
			ContactName:     "Bob Stone",
			ContactTitle:    "Owner",
			TotalAssetValue: decimal.RequireFromString("250000.00"),
			AnnualRevenue:   decimal.RequireFromString("90000.00"),
			AnnualProfit:    decimal.RequireFromString("-1500.00"),
		},
	}
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		client        func() domain.Client
		buildStubs    func(m mocks)
		checkResponse func(t *testing.T, c domain.Client, id int64, err error)
	}{
		{
			name: "Personal",
			client: func() domain.Client {
				c := test.RandomPersonalClient()
				c.PhoneNumber = "5551234567"
				return c
			},
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(ctx context.Context, e domain.ClientEntity) (int64, error) {
						if e.Phone != "(555) 123-4567" || e.Personal == nil {
							return 0, errors.New("unexpected entity")
						}
						return 21, nil
					})
			},
			checkResponse: func(t *testing.T, c domain.Client, id int64, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(21), id)
				require.Equal(t, int64(21), c.Info().ID)
			},
		},
		{
			name: "Business",
			client: func() domain.Client {
				c := test.RandomBusinessClient()
				c.EIN = "987654321"
				return c
			},
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(ctx context.Context, e domain.ClientEntity) (int64, error) {
						if e.Business == nil || e.Business.EIN != "98-7654321" {
							return 0, errors.New("unexpected entity")
						}
						return 22, nil
					})
			},
			checkResponse: func(t *testing.T, c domain.Client, id int64, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(22), id)
			},
		},
		{
			name: "InvalidCreditScore",
			client: func() domain.Client {
				c := test.RandomPersonalClient()
				c.CreditScore = 900
				return c
			},
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, c domain.Client, id int64, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				require.Zero(t, id)
			},
		},
		{
			name: "InvalidBusinessType",
			client: func() domain.Client {
				c := test.RandomBusinessClient()
				c.BusinessType = "Cooperative"
				return c
			},
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, c domain.Client, id int64, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
			},
		},
		{
			name: "DuplicateTaxID",
			client: func() domain.Client {
				return test.RandomPersonalClient()
			},
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					Return(int64(0), domain.ErrTaxIDAlreadyExists)
			},
			checkResponse: func(t *testing.T, c domain.Client, id int64, err error) {
				require.ErrorIs(t, err, domain.ErrTaxIDAlreadyExists)
				require.Zero(t, c.Info().ID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			m := newMocks(t)
			tc.buildStubs(m)

			c := tc.client()
			id, err := m.service().Create(context.Background(), c)
			tc.checkResponse(t, c, id, err)
		})
	}
}

func TestGet(t *testing.T) {
	m := newMocks(t)
	s := m.service()

	corrupt := businessEntity(5)
	corrupt.Business.BusinessType = "Guild"

	m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(4))).Times(1).Return(businessEntity(4), nil)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(5))).Times(1).Return(corrupt, nil)
	m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(6))).Times(1).
		Return(domain.ClientEntity{}, domain.ErrClientNotFound)

	got, err := s.Get(context.Background(), 4)
	require.NoError(t, err)

	b, ok := got.(*domain.BusinessClient)
	require.True(t, ok)
	require.Equal(t, "123456789", b.EIN)
	require.Equal(t, "5559876543", b.PhoneNumber)
	require.Equal(t, domain.BusinessTypeSoleProprietorship, b.BusinessType)

	got, err = s.Get(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
	require.Nil(t, got)

	_, err = s.Get(context.Background(), 6)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestNaturalKeyLookups(t *testing.T) {
	m := newMocks(t)
	s := m.service()

	m.repo.EXPECT().GetByTaxID(gomock.Any(), gomock.Eq("123456789")).Times(1).Return(personalEntity(3), nil)
	m.repo.EXPECT().GetByEIN(gomock.Any(), gomock.Eq("12-3456789")).Times(1).Return(businessEntity(4), nil)
	m.repo.EXPECT().GetByBusinessName(gomock.Any(), gomock.Eq("Acme")).Times(1).Return(businessEntity(4), nil)

	got, err := s.GetByTaxID(context.Background(), "123456789")
	require.NoError(t, err)
	require.Equal(t, int64(3), got.Info().ID)

	got, err = s.GetByEIN(context.Background(), "123456789")
	require.NoError(t, err)
	require.Equal(t, int64(4), got.Info().ID)

	got, err = s.GetByBusinessName(context.Background(), "Acme")
	require.NoError(t, err)
	require.Equal(t, "123456789", got.NaturalKey())

	_, err = s.GetByTaxID(context.Background(), "12-345")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.GetByEIN(context.Background(), "12-3456789")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.GetByBusinessName(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList(t *testing.T) {
	m := newMocks(t)
	s := m.service()

	corrupt := personalEntity(9)
	corrupt.Phone = "555-123-4567"

	m.repo.EXPECT().List(gomock.Any()).Times(1).
		Return([]domain.ClientEntity{personalEntity(3), corrupt, businessEntity(4)}, nil)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.ClientTypePersonal, got[0].Type())
	require.Equal(t, domain.ClientTypeBusiness, got[1].Type())
}

func TestUpdate(t *testing.T) {
	m := newMocks(t)
	s := m.service()

	c := test.RandomPersonalClient()
	c.Address = "99 Oak Ave"

	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, e domain.ClientEntity) (domain.ClientEntity, error) {
			return e, nil
		})

	got, err := s.Update(context.Background(), 3, c)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.Info().ID)
	require.Equal(t, "99 Oak Ave", got.Info().Address)

	c.PhoneNumber = "555"

	got, err = s.Update(context.Background(), 3, c)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Nil(t, got)
}

func checkingEntity(id int64, balance string) domain.AccountEntity {
	return domain.AccountEntity{
		ID:      id,
		Type:    string(domain.AccountTypeChecking),
		Name:    "Everyday",
		Balance: decimal.RequireFromString(balance),
		Checking: &domain.CheckingRow{
			OverdraftFee:   decimal.RequireFromString("25"),
			OverdraftLimit: decimal.RequireFromString("500"),
		},
	}
}

func TestDelete(t *testing.T) {
	const clientID = int64(3)

	testCases := []struct {
		name       string
		buildStubs func(m mocks)
		checkErr   func(t *testing.T, err error)
	}{
		{
			name: "BlockedBySoleOwnedBalance",
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(personalEntity(clientID), nil)
				m.owners.EXPECT().AccountsOf(gomock.Any(), gomock.Eq(clientID)).Times(1).
					Return([]domain.Ownership{{ClientID: clientID, AccountID: 10, Type: domain.OwnershipPrimary}}, nil)
				m.owners.EXPECT().IsJoint(gomock.Any(), gomock.Eq(int64(10))).Times(1).Return(false, nil)
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(int64(10))).Times(1).
					Return(checkingEntity(10, "250.00"), nil)
				m.owners.EXPECT().RemoveAllAccountsOf(gomock.Any(), gomock.Any()).Times(0)
				m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			checkErr: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrAccountDeletionBlocked)

				var blocked *domain.AccountDeletionBlockedError
				require.True(t, errors.As(err, &blocked))
				require.Equal(t, clientID, blocked.ClientID)
				require.Len(t, blocked.Accounts, 1)
				require.Equal(t, int64(10), blocked.Accounts[0].AccountID)
				require.Equal(t, domain.AccountTypeChecking, blocked.Accounts[0].Type)
				require.Equal(t, "250.00", blocked.Accounts[0].Balance.StringFixed(2))
			},
		},
		{
			name: "ZeroBalance",
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(personalEntity(clientID), nil)
				m.owners.EXPECT().AccountsOf(gomock.Any(), gomock.Eq(clientID)).Times(1).
					Return([]domain.Ownership{{ClientID: clientID, AccountID: 10, Type: domain.OwnershipPrimary}}, nil)
				m.owners.EXPECT().IsJoint(gomock.Any(), gomock.Eq(int64(10))).Times(1).Return(false, nil)
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Eq(int64(10))).Times(1).
					Return(checkingEntity(10, "0.00"), nil)
				gomock.InOrder(
					m.owners.EXPECT().RemoveAllAccountsOf(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(nil),
					m.repo.EXPECT().Delete(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(nil),
				)
			},
			checkErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "JointOwnerNotBlocked",
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(personalEntity(clientID), nil)
				m.owners.EXPECT().AccountsOf(gomock.Any(), gomock.Eq(clientID)).Times(1).
					Return([]domain.Ownership{{ClientID: clientID, AccountID: 11, Type: domain.OwnershipJoint}}, nil)
				m.owners.EXPECT().IsJoint(gomock.Any(), gomock.Eq(int64(11))).Times(1).Return(true, nil)
				m.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				m.owners.EXPECT().RemoveAllAccountsOf(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(nil)
				m.repo.EXPECT().Delete(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(nil)
			},
			checkErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(clientID)).Times(1).
					Return(domain.ClientEntity{}, domain.ErrClientNotFound)
				m.owners.EXPECT().AccountsOf(gomock.Any(), gomock.Any()).Times(0)
			},
			checkErr: func(t *testing.T, err error) {
				require.ErrorIs(t, err, domain.ErrClientNotFound)
			},
		},
		{
			name: "OwnershipReadFails",
			buildStubs: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(clientID)).Times(1).Return(personalEntity(clientID), nil)
				m.owners.EXPECT().AccountsOf(gomock.Any(), gomock.Eq(clientID)).Times(1).
					Return(nil, errorspkg.ErrInternal)
				m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			checkErr: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			m := newMocks(t)
			tc.buildStubs(m)

			tc.checkErr(t, m.service().Delete(context.Background(), clientID))
		})
	}
}

func TestDeleteInTransaction(t *testing.T) {
	m := newMocks(t)
	s := New(m.repo, m.owners, m.accounts, m.txer)

	m.txer.EXPECT().ClientTx(gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(ctx context.Context, fn func(Repo, OwnershipRepo, AccountReader) error) error {
			return fn(m.repo, m.owners, m.accounts)
		})
	m.repo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(4))).Times(1).Return(businessEntity(4), nil)
	m.owners.EXPECT().AccountsOf(gomock.Any(), gomock.Eq(int64(4))).Times(1).Return([]domain.Ownership{}, nil)
	m.owners.EXPECT().RemoveAllAccountsOf(gomock.Any(), gomock.Eq(int64(4))).Times(1).Return(nil)
	m.repo.EXPECT().Delete(gomock.Any(), gomock.Eq(int64(4))).Times(1).Return(nil)

	require.NoError(t, s.Delete(context.Background(), 4))
}

func TestConversionRoundTrip(t *testing.T) {
	t.Run("EntityModelEntity", func(t *testing.T) {
		for _, e := range []domain.ClientEntity{personalEntity(1), businessEntity(2)} {
			c, err := toModel(e)
			require.NoError(t, err)

			back, err := toEntity(c)
			require.NoError(t, err)
			require.Equal(t, e, back)
		}
	})

	t.Run("ModelEntityModel", func(t *testing.T) {
		for _, c := range []domain.Client{test.RandomPersonalClient(), test.RandomBusinessClient()} {
			c.Info().ID = 7

			e, err := toEntity(c)
			require.NoError(t, err)

			back, err := toModel(e)
			require.NoError(t, err)
			require.Equal(t, c, back)
		}
	})

	t.Run("CorruptTitle", func(t *testing.T) {
		e := businessEntity(2)
		e.Business.ContactTitle = "Intern"

		_, err := toModel(e)
		require.ErrorIs(t, err, errCorruptRecord)
	})
}
