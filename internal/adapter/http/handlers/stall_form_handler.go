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
	errFormDocument = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Documento inválido", http.StatusBadRequest).WithDetails("Informe um CPF (11 dígitos) ou CNPJ (14 dígitos).")
	errFormRefused  = pkg.NewDomainErrorSimple("ACCESS_DENIED", "Documento sem acesso a esta feira.", http.StatusForbidden).WithDetails("Confira o CPF/CNPJ informado.")
)

// StallFormHandler serves the public stall form of a fair. Routes after
// validate read the visitor from the X-Document header.
type StallFormHandler struct {
	usecase usecase.IStallFormUseCase
}

func NewStallFormHandler(uc usecase.IStallFormUseCase) *StallFormHandler {
	return &StallFormHandler{usecase: uc}
}

// Validate checks the document against the fair.
//
// @Summary  Open stall form
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    fair_id path string true "Fair ID"
// @Param    body body request.StallFormDocumentRequest true "CPF/CNPJ"
// @Success  200 {object} response.StallsFormResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /public/fairs/{fair_id}/forms/stalls/validate [post]
func (h *StallFormHandler) Validate(c *gin.Context) {
	var payload request.StallFormDocumentRequest
	if !bindJSON(c, &payload) {
		return
	}

	view, err := h.usecase.Open(c.Request.Context(), c.Param("fair_id"), payload.Document)
	if err != nil {
		fail(c, "stall-form", err, mapStallFormError)
		return
	}
	c.JSON(http.StatusOK, response.FromStallsFormView(view))
}

// ListStalls
//
// @Summary  Stalls of the document
// @Tags     public
// @Produce  json
// @Param    fair_id    path   string true "Fair ID"
// @Param    X-Document header string true "CPF/CNPJ"
// @Success  200 {object} response.FormStallsResponse
// @Router   /public/fairs/{fair_id}/forms/stalls [get]
func (h *StallFormHandler) ListStalls(c *gin.Context) {
	stalls, err := h.usecase.ListStalls(c.Request.Context())
	if err != nil {
		fail(c, "stall-form", err, mapStallFormError)
		return
	}
	c.JSON(http.StatusOK, response.FromFormStalls(stalls))
}

// DeleteStall removes the stall from the system, not only from the fair.
//
// @Summary  Delete stall
// @Tags     public
// @Param    fair_id    path   string true "Fair ID"
// @Param    stall_id   path   string true "Stall ID"
// @Param    X-Document header string true "CPF/CNPJ"
// @Success  204
// @Router   /public/fairs/{fair_id}/forms/stalls/{stall_id} [delete]
func (h *StallFormHandler) DeleteStall(c *gin.Context) {
	if err := h.usecase.DeleteStall(c.Request.Context(), c.Param("stall_id")); err != nil {
		fail(c, "stall-form", err, mapStallFormError)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectStall
//
// @Summary  Link stall to the fair
// @Tags     public
// @Produce  json
// @Param    fair_id    path   string true "Fair ID"
// @Param    stall_id   path   string true "Stall ID"
// @Param    X-Document header string true "CPF/CNPJ"
// @Success  200 {object} entities.StallFairLink
// @Router   /public/fairs/{fair_id}/forms/stalls/{stall_id}/select [post]
func (h *StallFormHandler) SelectStall(c *gin.Context) {
	link, err := h.usecase.SelectStall(c.Request.Context(), c.Param("stall_id"))
	if err != nil {
		fail(c, "stall-form", err, mapStallFormError)
		return
	}
	c.JSON(http.StatusOK, link)
}

// UnlinkStall
//
// @Summary  Unlink stall from the fair
// @Tags     public
// @Param    fair_id    path   string true "Fair ID"
// @Param    stall_id   path   string true "Stall ID"
// @Param    X-Document header string true "CPF/CNPJ"
// @Success  204
// @Router   /public/fairs/{fair_id}/forms/stalls/{stall_id}/unlink [post]
func (h *StallFormHandler) UnlinkStall(c *gin.Context) {
	if err := h.usecase.UnlinkStall(c.Request.Context(), c.Param("stall_id")); err != nil {
		fail(c, "stall-form", err, mapStallFormError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapStallFormError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFormAccessRequired):
		return errFormDocument
	case errors.Is(err, usecase.ErrFormRefused):
		return errFormRefused
	default:
		return mapStallError(err)
	}
}
