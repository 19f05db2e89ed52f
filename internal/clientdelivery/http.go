// Package clientdelivery manages delivery layer of clients.
package clientdelivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/errorspkg"
	"github.com/go-petr/client-bank/pkg/formatpkg"
	"github.com/go-petr/client-bank/pkg/web"
)

// Service provides service layer interface needed by client delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package clientdelivery
type Service interface {
	Create(ctx context.Context, c domain.Client) (int64, error)
	Get(ctx context.Context, id int64) (domain.Client, error)
	GetByTaxID(ctx context.Context, taxID string) (domain.Client, error)
	GetByEIN(ctx context.Context, ein string) (domain.Client, error)
	GetByBusinessName(ctx context.Context, name string) (domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id int64, c domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates client delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns client handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

// ErrSearchKey indicates that a search names no natural key or more than one.
var ErrSearchKey = errors.New("exactly one of tax_id, ein, business_name is required")

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidClientType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTaxIDAlreadyExists),
		errors.Is(err, domain.ErrEINAlreadyExists),
		errors.Is(err, domain.ErrAccountDeletionBlocked):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func respondError(gctx *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		gctx.JSON(status, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(status, web.Error(err))
}

func bindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	l.Info().Err(err).Send()

	gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})
}

type clientInfoRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=200"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

func (r clientInfoRequest) info() domain.ClientInfo {
	return domain.ClientInfo{
		Name:        r.Name,
		Address:     r.Address,
		PhoneNumber: formatpkg.Digits(r.PhoneNumber),
	}
}

type personalRequest struct {
	clientInfoRequest
	TaxID        string          `json:"tax_id" binding:"required"`
	CreditScore  int32           `json:"credit_score" binding:"required"`
	YearlyIncome decimal.Decimal `json:"yearly_income"`
	TotalDebt    decimal.Decimal `json:"total_debt"`
}

func (r personalRequest) client() *domain.PersonalClient {
	return &domain.PersonalClient{
		ClientInfo:   r.info(),
		TaxID:        formatpkg.Digits(r.TaxID),
		CreditScore:  r.CreditScore,
		YearlyIncome: r.YearlyIncome,
		TotalDebt:    r.TotalDebt,
	}
}

type businessRequest struct {
	clientInfoRequest
	EIN             string              `json:"ein" binding:"required"`
	BusinessType    domain.BusinessType `json:"business_type" binding:"required"`
	ContactName     string              `json:"contact_name" binding:"required"`
	ContactTitle    domain.ContactTitle `json:"contact_title" binding:"required"`
	TotalAssetValue decimal.Decimal     `json:"total_asset_value"`
	AnnualRevenue   decimal.Decimal     `json:"annual_revenue"`
	AnnualProfit    decimal.Decimal     `json:"annual_profit"`
}

func (r businessRequest) client() *domain.BusinessClient {
	return &domain.BusinessClient{
		ClientInfo:      r.info(),
		EIN:             formatpkg.Digits(r.EIN),
		BusinessType:    r.BusinessType,
		ContactName:     r.ContactName,
		ContactTitle:    r.ContactTitle,
		TotalAssetValue: r.TotalAssetValue,
		AnnualRevenue:   r.AnnualRevenue,
		AnnualProfit:    r.AnnualProfit,
	}
}

func (h *Handler) create(gctx *gin.Context, c domain.Client) {
	if _, err := h.service.Create(gctx.Request.Context(), c); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: viewOf(c)})
}

// CreatePersonal handles http request to create a personal client.
func (h *Handler) CreatePersonal(gctx *gin.Context) {
	var req personalRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	h.create(gctx, req.client())
}

// CreateBusiness handles http request to create a business client.
func (h *Handler) CreateBusiness(gctx *gin.Context) {
	var req businessRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	h.create(gctx, req.client())
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a client.
func (h *Handler) Get(gctx *gin.Context) {
	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	c, err := h.service.Get(gctx.Request.Context(), req.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: viewOf(c)})
}

type searchRequest struct {
	TaxID        string `form:"tax_id"`
	EIN          string `form:"ein"`
	BusinessName string `form:"business_name"`
}

// List handles http request to list every client or, given a natural key
// in the query, to find the client it identifies.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindError(gctx, err)
		return
	}

	if req == (searchRequest{}) {
		clients, err := h.service.List(ctx)
		if err != nil {
			respondError(gctx, err)
			return
		}

		views := make([]clientView, 0, len(clients))
		for _, c := range clients {
			views = append(views, viewOf(c))
		}

		gctx.JSON(http.StatusOK, web.Response{Data: views})

		return
	}

	c, err := h.search(ctx, req)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: viewOf(c)})
}

func (h *Handler) search(ctx context.Context, req searchRequest) (domain.Client, error) {
	keys := 0
	for _, k := range []string{req.TaxID, req.EIN, req.BusinessName} {
		if k != "" {
			keys++
		}
	}

	if keys != 1 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, ErrSearchKey)
	}

	switch {
	case req.TaxID != "":
		return h.service.GetByTaxID(ctx, formatpkg.Digits(req.TaxID))
	case req.EIN != "":
		return h.service.GetByEIN(ctx, formatpkg.Digits(req.EIN))
	}

	return h.service.GetByBusinessName(ctx, req.BusinessName)
}

func (h *Handler) update(gctx *gin.Context, bind func() (domain.Client, error)) {
	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	c, err := bind()
	if err != nil {
		bindError(gctx, err)
		return
	}

	updated, err := h.service.Update(gctx.Request.Context(), uri.ID, c)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: viewOf(updated)})
}

// UpdatePersonal handles http request to replace a personal client.
func (h *Handler) UpdatePersonal(gctx *gin.Context) {
	h.update(gctx, func() (domain.Client, error) {
		var req personalRequest
		if err := gctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}

		return req.client(), nil
	})
}

// UpdateBusiness handles http request to replace a business client.
func (h *Handler) UpdateBusiness(gctx *gin.Context) {
	h.update(gctx, func() (domain.Client, error) {
		var req businessRequest
		if err := gctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}

		return req.client(), nil
	})
}

// Delete handles http request to delete a client.
//
// A client that still solely owns money is kept and the blocking accounts
// are returned with the conflict.
func (h *Handler) Delete(gctx *gin.Context) {
	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	err := h.service.Delete(gctx.Request.Context(), req.ID)

	var blocked *domain.AccountDeletionBlockedError
	if errors.As(err, &blocked) {
		gctx.JSON(http.StatusConflict, web.Response{
			Data:  blocked,
			Error: domain.ErrAccountDeletionBlocked.Error(),
		})

		return
	}

	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}
