package clientservice

import (
	"errors"
	"fmt"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/formatpkg"
)

var errCorruptRecord = errors.New("corrupt client record")

func toEntity(c domain.Client) (domain.ClientEntity, error) {
	info := c.Info()

	phone, err := formatpkg.Phone(info.PhoneNumber)
	if err != nil {
		return domain.ClientEntity{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	e := domain.ClientEntity{
		ID:      info.ID,
		Type:    string(c.Type()),
		Name:    info.Name,
		Address: info.Address,
		Phone:   phone,
	}

	switch cl := c.(type) {
	case *domain.PersonalClient:
		e.Personal = &domain.PersonalRow{
			TaxID:        cl.TaxID,
			CreditScore:  cl.CreditScore,
			YearlyIncome: cl.YearlyIncome,
			TotalDebt:    cl.TotalDebt,
		}
	case *domain.BusinessClient:
		ein, err := formatpkg.EIN(cl.EIN)
		if err != nil {
			return domain.ClientEntity{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}

		e.Business = &domain.BusinessRow{
			EIN:             ein,
			BusinessType:    string(cl.BusinessType),
			ContactName:     cl.ContactName,
			ContactTitle:    string(cl.ContactTitle),
			TotalAssetValue: cl.TotalAssetValue,
			AnnualRevenue:   cl.AnnualRevenue,
			AnnualProfit:    cl.AnnualProfit,
		}
	default:
		return domain.ClientEntity{}, fmt.Errorf("%w: %T", domain.ErrInvalidClientType, c)
	}

	return e, nil
}

func corrupt(e domain.ClientEntity, err error) error {
	return fmt.Errorf("%w: client %d: %v", errCorruptRecord, e.ID, err)
}

func toModel(e domain.ClientEntity) (domain.Client, error) {
	t, err := domain.ParseClientType(e.Type)
	if err != nil {
		return nil, corrupt(e, err)
	}

	phone, err := formatpkg.ParsePhone(e.Phone)
	if err != nil {
		return nil, corrupt(e, err)
	}

	info := domain.ClientInfo{
		ID:          e.ID,
		Name:        e.Name,
		Address:     e.Address,
		PhoneNumber: phone,
	}

	switch t {
	case domain.ClientTypePersonal:
		if e.Personal == nil {
			return nil, corrupt(e, errors.New("no personal_clients row"))
		}

		return &domain.PersonalClient{
			ClientInfo:   info,
			TaxID:        e.Personal.TaxID,
			CreditScore:  e.Personal.CreditScore,
			YearlyIncome: e.Personal.YearlyIncome,
			TotalDebt:    e.Personal.TotalDebt,
		}, nil
	default:
		b := e.Business
		if b == nil {
			return nil, corrupt(e, errors.New("no business_clients row"))
		}

		ein, err := formatpkg.ParseEIN(b.EIN)
		if err != nil {
			return nil, corrupt(e, err)
		}

		businessType, err := domain.ParseBusinessType(b.BusinessType)
		if err != nil {
			return nil, corrupt(e, err)
		}

		title, err := domain.ParseContactTitle(b.ContactTitle)
		if err != nil {
			return nil, corrupt(e, err)
		}

		return &domain.BusinessClient{
			ClientInfo:      info,
			EIN:             ein,
			BusinessType:    businessType,
			ContactName:     b.ContactName,
			ContactTitle:    title,
			TotalAssetValue: b.TotalAssetValue,
			AnnualRevenue:   b.AnnualRevenue,
			AnnualProfit:    b.AnnualProfit,
		}, nil
	}
}
