package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/web"
)

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// load binds the account id from the uri and fetches the account.
func (h *Handler) load(gctx *gin.Context) (domain.Account, bool) {
	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return nil, false
	}

	a, err := h.service.Get(gctx.Request.Context(), req.ID)
	if err != nil {
		respondError(gctx, err)
		return nil, false
	}

	return a, true
}

func (h *Handler) withAmount(gctx *gin.Context, op func(context.Context, domain.Account, decimal.Decimal) error) {
	a, ok := h.load(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	if err := op(gctx.Request.Context(), a, req.Amount); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOf(a)})
}

func (h *Handler) apply(gctx *gin.Context, op func(context.Context, domain.Account) error) {
	a, ok := h.load(gctx)
	if !ok {
		return
	}

	if err := op(gctx.Request.Context(), a); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOf(a)})
}

// Deposit handles http request to deposit money.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.withAmount(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.withAmount(gctx, h.service.Withdraw)
}

// Charge handles http request to borrow from a credit line.
func (h *Handler) Charge(gctx *gin.Context) {
	h.withAmount(gctx, h.service.ChargeCredit)
}

// Payment handles http request to pay back a credit line.
func (h *Handler) Payment(gctx *gin.Context) {
	h.withAmount(gctx, h.service.MakePayment)
}

// Interest handles http request to apply interest.
func (h *Handler) Interest(gctx *gin.Context) {
	h.apply(gctx, h.service.ApplyInterest)
}

// IncreaseCreditLimit handles http request to raise a credit limit.
func (h *Handler) IncreaseCreditLimit(gctx *gin.Context) {
	h.apply(gctx, h.service.IncreaseCreditLimit)
}

// ResetWithdrawals handles http request to start a new savings withdrawal period.
func (h *Handler) ResetWithdrawals(gctx *gin.Context) {
	h.apply(gctx, h.service.ResetWithdrawals)
}

type minimumPaymentData struct {
	AccountID      int64           `json:"account_id"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
}

// MinimumPayment handles http request to get the minimum payment due on a credit line.
func (h *Handler) MinimumPayment(gctx *gin.Context) {
	a, ok := h.load(gctx)
	if !ok {
		return
	}

	amount, err := h.service.MinimumPayment(gctx.Request.Context(), a)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: minimumPaymentData{
		AccountID:      a.Info().ID,
		MinimumPayment: amount,
	}})
}
