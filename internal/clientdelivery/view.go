package clientdelivery

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/formatpkg"
)

// clientView is the display form of a client: phone and EIN formatted,
// tax id masked.
type clientView struct {
	Type   domain.ClientType `json:"type"`
	Client any               `json:"client"`
}

type infoView struct {
	ID          int64  `json:"customer_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type personalView struct {
	infoView
	TaxID        string          `json:"tax_id"`
	CreditScore  int32           `json:"credit_score"`
	YearlyIncome decimal.Decimal `json:"yearly_income"`
	TotalDebt    decimal.Decimal `json:"total_debt"`
}

type businessView struct {
	infoView
	EIN             string              `json:"ein"`
	BusinessType    domain.BusinessType `json:"business_type"`
	ContactName     string              `json:"contact_name"`
	ContactTitle    domain.ContactTitle `json:"contact_title"`
	TotalAssetValue decimal.Decimal     `json:"total_asset_value"`
	AnnualRevenue   decimal.Decimal     `json:"annual_revenue"`
	AnnualProfit    decimal.Decimal     `json:"annual_profit"`
}

// display returns formatted when raw can be formatted, raw otherwise.
func display(format func(string) (string, error), raw string) string {
	formatted, err := format(raw)
	if err != nil {
		return raw
	}

	return formatted
}

func infoViewOf(i *domain.ClientInfo) infoView {
	return infoView{
		ID:          i.ID,
		Name:        i.Name,
		Address:     i.Address,
		PhoneNumber: display(formatpkg.Phone, i.PhoneNumber),
	}
}

func viewOf(c domain.Client) clientView {
	switch c := c.(type) {
	case *domain.PersonalClient:
		return clientView{
			Type: c.Type(),
			Client: personalView{
				infoView:     infoViewOf(c.Info()),
				TaxID:        formatpkg.MaskTaxID(c.TaxID),
				CreditScore:  c.CreditScore,
				YearlyIncome: c.YearlyIncome,
				TotalDebt:    c.TotalDebt,
			},
		}
	case *domain.BusinessClient:
		return clientView{
			Type: c.Type(),
			Client: businessView{
				infoView:        infoViewOf(c.Info()),
				EIN:             display(formatpkg.EIN, c.EIN),
				BusinessType:    c.BusinessType,
				ContactName:     c.ContactName,
				ContactTitle:    c.ContactTitle,
				TotalAssetValue: c.TotalAssetValue,
				AnnualRevenue:   c.AnnualRevenue,
				AnnualProfit:    c.AnnualProfit,
			},
		}
	}

	return clientView{}
}
