// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/errorspkg"
	"github.com/go-petr/client-bank/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, a domain.Account, ownerID int64) (int64, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Account, error)
	Update(ctx context.Context, id int64, a domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id int64) error
	AddJointOwner(ctx context.Context, accountID, clientID int64) (domain.Ownership, error)
	RemoveOwner(ctx context.Context, accountID, clientID int64) error
	Owners(ctx context.Context, accountID int64) ([]domain.Ownership, error)
	IsJoint(ctx context.Context, accountID int64) (bool, error)
	JointAccounts(ctx context.Context) ([]domain.Account, error)
	Deposit(ctx context.Context, a domain.Account, amount decimal.Decimal) error
	Withdraw(ctx context.Context, a domain.Account, amount decimal.Decimal) error
	ChargeCredit(ctx context.Context, a domain.Account, amount decimal.Decimal) error
	MakePayment(ctx context.Context, a domain.Account, amount decimal.Decimal) error
	ApplyInterest(ctx context.Context, a domain.Account) error
	IncreaseCreditLimit(ctx context.Context, a domain.Account) error
	ResetWithdrawals(ctx context.Context, a domain.Account) error
	MinimumPayment(ctx context.Context, a domain.Account) (decimal.Decimal, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrUnsupportedOperation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrOwnershipNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrLimitReached),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrOwnershipConflict),
		errors.Is(err, domain.ErrOwnershipExists),
		errors.Is(err, domain.ErrLastOwner):
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

type accountData struct {
	Type    domain.AccountType `json:"type"`
	Account domain.Account     `json:"account"`
}

func dataOf(a domain.Account) accountData {
	return accountData{
		Type:    a.Type(),
		Account: a,
	}
}

func dataOfAll(accounts []domain.Account) []accountData {
	data := make([]accountData, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, dataOf(a))
	}

	return data
}

type accountRequest struct {
	Type                 domain.AccountType `json:"type" binding:"required,oneof=CHECKING SAVINGS CREDIT_LINE"`
	Name                 string             `json:"account_name" binding:"required,max=100"`
	Balance              decimal.Decimal    `json:"balance"`
	OverdraftFee         decimal.Decimal    `json:"overdraft_fee"`
	OverdraftLimit       decimal.Decimal    `json:"overdraft_limit"`
	InterestRate         decimal.Decimal    `json:"interest_rate"`
	WithdrawalLimit      int32              `json:"withdrawal_limit" binding:"min=0"`
	WithdrawalCounter    int32              `json:"withdrawal_counter" binding:"min=0"`
	CreditLimit          decimal.Decimal    `json:"credit_limit"`
	MinPaymentPercentage decimal.Decimal    `json:"min_payment_percentage"`
}

func (r accountRequest) account() domain.Account {
	info := domain.AccountInfo{
		Name:    r.Name,
		Balance: r.Balance,
	}

	switch r.Type {
	case domain.AccountTypeSavings:
		return &domain.Savings{
			AccountInfo:       info,
			InterestRate:      r.InterestRate,
			WithdrawalLimit:   r.WithdrawalLimit,
			WithdrawalCounter: r.WithdrawalCounter,
		}
	case domain.AccountTypeCreditLine:
		return &domain.CreditLine{
			AccountInfo:          info,
			CreditLimit:          r.CreditLimit,
			InterestRate:         r.InterestRate,
			MinPaymentPercentage: r.MinPaymentPercentage,
		}
	}

	return &domain.Checking{
		AccountInfo:    info,
		OverdraftFee:   r.OverdraftFee,
		OverdraftLimit: r.OverdraftLimit,
	}
}

type createRequest struct {
	accountRequest
	OwnerID int64 `json:"owner_id" binding:"required,min=1"`
}

// Create handles http request to create an account with its primary owner.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	a := req.account()
	if _, err := h.service.Create(ctx, a, req.OwnerID); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: dataOf(a)})
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get an account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	a, err := h.service.Get(ctx, req.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOf(a)})
}

// List handles http request to list every account.
func (h *Handler) List(gctx *gin.Context) {
	accounts, err := h.service.List(gctx.Request.Context())
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOfAll(accounts)})
}

// ListByClient handles http request to list the accounts of a client.
func (h *Handler) ListByClient(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	accounts, err := h.service.ListByClient(ctx, req.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOfAll(accounts)})
}

// JointAccounts handles http request to list accounts with several owners.
func (h *Handler) JointAccounts(gctx *gin.Context) {
	accounts, err := h.service.JointAccounts(gctx.Request.Context())
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOfAll(accounts)})
}

// Update handles http request to replace an account.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req accountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	updated, err := h.service.Update(ctx, uri.ID, req.account())
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOf(updated)})
}

// Delete handles http request to delete an account and its ownership links.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}
