package handlers

import (
	"errors"
	"net/http"
	request "portal_expositor/internal/adapter/http/dto/request"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFairID       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Feira inválida.", http.StatusBadRequest)
	errFairNotFound        = pkg.NewDomainErrorSimple("NOT_FOUND", "Feira não encontrada.", http.StatusNotFound)
	errNoPurchaseAvailable = pkg.NewDomainErrorSimple("NO_PURCHASE_AVAILABLE", "Sem vagas para este tamanho", http.StatusConflict).
				WithDetails("Nenhuma compra desta feira tem vaga para o tamanho da barraca.")
	errPurchaseMismatch = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Compra incompatível", http.StatusUnprocessableEntity).
				WithDetails("A compra escolhida não é do tamanho da barraca ou não tem vaga.")
)

// FairHandler serves the owner's fairs and the stall links.
type FairHandler struct {
	usecase usecase.IFairUseCase
}

func NewFairHandler(uc usecase.IFairUseCase) *FairHandler {
	return &FairHandler{usecase: uc}
}

// ListFairs
//
// @Summary   Owner fairs
// @Tags      fairs
// @Produce   json
// @Security  Bearer
// @Success   200 {object} response.FairListResponse
// @Failure   401 {object} pkg.HTTPError
// @Router    /fairs [get]
func (h *FairHandler) ListFairs(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context())
	if err != nil {
		fail(c, "fair", err, mapFairError)
		return
	}
	c.JSON(http.StatusOK, response.FromFairViews(views))
}

// LinkStall links a stall to a fair. Without purchaseId the purchase is picked
// when exactly one matches the stall size.
//
// @Summary   Link stall to fair
// @Tags      fairs
// @Produce   json
// @Security  Bearer
// @Param     fair_id    path  string true  "Fair ID"
// @Param     stall_id   path  string true  "Stall ID"
// @Param     purchaseId query string false "Purchase ID"
// @Success   200 {object} response.OKResponse
// @Failure   409 {object} pkg.HTTPError
// @Router    /fairs/{fair_id}/stalls/{stall_id} [post]
func (h *FairHandler) LinkStall(c *gin.Context) {
	var q request.LinkStallQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidRequest.WithDetails(bindDetails(err)))
		return
	}

	if err := h.usecase.LinkStall(c.Request.Context(), c.Param("fair_id"), c.Param("stall_id"), q.PurchaseID); err != nil {
		fail(c, "fair", err, mapFairError)
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

// UnlinkStall
//
// @Summary   Unlink stall from fair
// @Tags      fairs
// @Produce   json
// @Security  Bearer
// @Param     fair_id  path string true "Fair ID"
// @Param     stall_id path string true "Stall ID"
// @Success   200 {object} response.OKResponse
// @Router    /fairs/{fair_id}/stalls/{stall_id} [delete]
func (h *FairHandler) UnlinkStall(c *gin.Context) {
	if err := h.usecase.UnlinkStall(c.Request.Context(), c.Param("fair_id"), c.Param("stall_id")); err != nil {
		fail(c, "fair", err, mapFairError)
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

func mapFairError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFairID):
		return errInvalidFairID
	case errors.Is(err, usecase.ErrFairNotFound):
		return errFairNotFound
	case errors.Is(err, usecase.ErrNoPurchaseAvailable):
		return errNoPurchaseAvailable
	case errors.Is(err, usecase.ErrPurchaseMismatch):
		return errPurchaseMismatch
	default:
		return mapStallError(err)
	}
}
