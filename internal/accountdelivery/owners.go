package accountdelivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/client-bank/internal/domain"
	"github.com/go-petr/client-bank/pkg/web"
)

type ownersData struct {
	AccountID int64              `json:"account_id"`
	Joint     bool               `json:"joint"`
	Owners    []domain.Ownership `json:"owners"`
}

// Owners handles http request to list the owners of an account.
func (h *Handler) Owners(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	owners, err := h.service.Owners(ctx, req.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	joint, err := h.service.IsJoint(ctx, req.ID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ownersData{
		AccountID: req.ID,
		Joint:     joint,
		Owners:    owners,
	}})
}

type addOwnerRequest struct {
	ClientID int64 `json:"client_id" binding:"required,min=1"`
}

// AddOwner handles http request to add a joint owner to an account.
func (h *Handler) AddOwner(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req addOwnerRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	o, err := h.service.AddJointOwner(ctx, uri.ID, req.ClientID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: o})
}

type removeOwnerRequest struct {
	ID       int64 `uri:"id" binding:"required,min=1"`
	ClientID int64 `uri:"client_id" binding:"required,min=1"`
}

// RemoveOwner handles http request to unlink a client from an account.
func (h *Handler) RemoveOwner(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req removeOwnerRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	if err := h.service.RemoveOwner(ctx, req.ID, req.ClientID); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.Status(http.StatusNoContent)
}
