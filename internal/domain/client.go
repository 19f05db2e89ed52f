package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrClientNotFound indicates that the client is not found.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidClientType indicates a client type outside the supported set.
	ErrInvalidClientType = errors.New("invalid client type")
	// ErrTaxIDAlreadyExists indicates that a personal client with the tax id already exists.
	ErrTaxIDAlreadyExists = errors.New("tax id already exists")
	// ErrEINAlreadyExists indicates that a business client with the EIN already exists.
	ErrEINAlreadyExists = errors.New("EIN already exists")
)

// ClientType tags the client variant.
type ClientType string

// Supported client types.
const (
	ClientTypePersonal ClientType = "PERSONAL"
	ClientTypeBusiness ClientType = "BUSINESS"
)

// ParseClientType returns the client type stored as s.
func ParseClientType(s string) (ClientType, error) {
	switch t := ClientType(s); t {
	case ClientTypePersonal, ClientTypeBusiness:
		return t, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidClientType, s)
}

// BusinessType is the legal form of a business client.
type BusinessType string

// Supported business types.
const (
	BusinessTypeLLC                BusinessType = "LLC"
	BusinessTypeCorporation        BusinessType = "Corporation"
	BusinessTypePartnership        BusinessType = "Partnership"
	BusinessTypeSoleProprietorship BusinessType = "Sole Proprietorship"
	BusinessTypeNonProfit          BusinessType = "Non-Profit"
)

// BusinessTypes lists every supported business type.
var BusinessTypes = []BusinessType{
	BusinessTypeLLC,
	BusinessTypeCorporation,
	BusinessTypePartnership,
	BusinessTypeSoleProprietorship,
	BusinessTypeNonProfit,
}

// ParseBusinessType returns the business type stored as s.
func ParseBusinessType(s string) (BusinessType, error) {
	for _, bt := range BusinessTypes {
		if string(bt) == s {
			return bt, nil
		}
	}

	return "", fmt.Errorf("%w: business type %q", ErrInvalidInput, s)
}

// ContactTitle is the role of the business contact person.
type ContactTitle string

// Supported contact titles.
const (
	ContactTitleCEO      ContactTitle = "CEO"
	ContactTitleCFO      ContactTitle = "CFO"
	ContactTitleManager  ContactTitle = "Manager"
	ContactTitleDirector ContactTitle = "Director"
	ContactTitleOwner    ContactTitle = "Owner"
	ContactTitlePartner  ContactTitle = "Partner"
)

// ParseContactTitle returns the contact title stored as s.
func ParseContactTitle(s string) (ContactTitle, error) {
	switch t := ContactTitle(s); t {
	case ContactTitleCEO, ContactTitleCFO, ContactTitleManager,
		ContactTitleDirector, ContactTitleOwner, ContactTitlePartner:
		return t, nil
	}

	return "", fmt.Errorf("%w: contact title %q", ErrInvalidInput, s)
}

// Client is one of *PersonalClient or *BusinessClient.
type Client interface {
	Info() *ClientInfo
	Type() ClientType
	// NaturalKey returns the business identifier (tax id or EIN digits).
	NaturalKey() string
	Validate() error
	isClient()
}

// ClientInfo holds the attributes shared by every client type.
//
// PhoneNumber holds 10 raw digits; storage keeps it as (###) ###-####.
type ClientInfo struct {
	ID          int64  `json:"customer_id"`
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=200"`
	PhoneNumber string `json:"phone_number" validate:"required,len=10,digits"`
}

// Info returns the shared client attributes.
func (i *ClientInfo) Info() *ClientInfo {
	return i
}

// PersonalClient is an individual customer.
type PersonalClient struct {
	ClientInfo
	TaxID        string          `json:"tax_id" validate:"required,len=9,digits"`
	CreditScore  int32           `json:"credit_score" validate:"min=300,max=850"`
	YearlyIncome decimal.Decimal `json:"yearly_income" validate:"gte=0"`
	TotalDebt    decimal.Decimal `json:"total_debt" validate:"gte=0"`
}

// Type implements Client.
func (*PersonalClient) Type() ClientType { return ClientTypePersonal }

// NaturalKey implements Client.
func (c *PersonalClient) NaturalKey() string { return c.TaxID }

// Validate implements Client.
func (c *PersonalClient) Validate() error { return validateStruct(c) }

func (*PersonalClient) isClient() {}

// BusinessClient is a company customer. EIN holds 9 raw digits.
type BusinessClient struct {
	ClientInfo
	EIN             string          `json:"ein" validate:"required,len=9,digits"`
	BusinessType    BusinessType    `json:"business_type" validate:"required,business_type"`
	ContactName     string          `json:"contact_name" validate:"required,min=3,max=50"`
	ContactTitle    ContactTitle    `json:"contact_title" validate:"required,oneof=CEO CFO Manager Director Owner Partner"`
	TotalAssetValue decimal.Decimal `json:"total_asset_value" validate:"gte=0"`
	AnnualRevenue   decimal.Decimal `json:"annual_revenue" validate:"gte=0"`
	AnnualProfit    decimal.Decimal `json:"annual_profit"`
}

// Type implements Client.
func (*BusinessClient) Type() ClientType { return ClientTypeBusiness }

// NaturalKey implements Client.
func (c *BusinessClient) NaturalKey() string { return c.EIN }

// Validate implements Client.
func (c *BusinessClient) Validate() error { return validateStruct(c) }

func (*BusinessClient) isClient() {}

// SameClient reports whether a and b denote the same client: by customer id
// once both are assigned, by natural key otherwise.
func SameClient(a, b Client) bool {
	if a == nil || b == nil {
		return false
	}

	if a.Info().ID != 0 && b.Info().ID != 0 {
		return a.Info().ID == b.Info().ID
	}

	return a.Type() == b.Type() && a.NaturalKey() == b.NaturalKey()
}
