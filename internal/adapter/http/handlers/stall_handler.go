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
	errInvalidStallID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "ID da barraca não encontrado.", http.StatusBadRequest)
	errStallNotFound  = pkg.NewDomainErrorSimple("NOT_FOUND", "Barraca não encontrada.", http.StatusNotFound)
)

// StallHandler serves the stall list, detail and delete.
type StallHandler struct {
	usecase usecase.IStallUseCase
}

func NewStallHandler(uc usecase.IStallUseCase) *StallHandler {
	return &StallHandler{usecase: uc}
}

// ListStalls
//
// @Summary   List stalls
// @Tags      stalls
// @Produce   json
// @Security  Bearer
// @Param     page     query int false "Page, from 1"
// @Param     pageSize query int false "Page size, up to 100"
// @Success   200 {object} response.StallPageResponse
// @Failure   401 {object} pkg.HTTPError
// @Router    /stalls [get]
func (h *StallHandler) ListStalls(c *gin.Context) {
	var q request.ListStallsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidRequest.WithDetails(bindDetails(err)))
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		fail(c, "stall", err, mapStallError)
		return
	}
	c.JSON(http.StatusOK, response.FromStallPage(page))
}

// GetStall
//
// @Summary   Stall detail
// @Tags      stalls
// @Produce   json
// @Security  Bearer
// @Param     stall_id path string true "Stall ID"
// @Success   200 {object} response.StallResponse
// @Failure   404 {object} pkg.HTTPError
// @Router    /stalls/{stall_id} [get]
func (h *StallHandler) GetStall(c *gin.Context) {
	stall, err := h.usecase.Get(c.Request.Context(), c.Param("stall_id"))
	if err != nil {
		fail(c, "stall", err, mapStallError)
		return
	}
	c.JSON(http.StatusOK, response.FromStall(stall))
}

// DeleteStall
//
// @Summary   Delete stall
// @Tags      stalls
// @Security  Bearer
// @Param     stall_id path string true "Stall ID"
// @Success   204
// @Failure   404 {object} pkg.HTTPError
// @Router    /stalls/{stall_id} [delete]
func (h *StallHandler) DeleteStall(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("stall_id")); err != nil {
		fail(c, "stall", err, mapStallError)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapStallError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStallID):
		return errInvalidStallID
	case errors.Is(err, usecase.ErrStallNotFound):
		return errStallNotFound
	default:
		return mapCommonError(err)
	}
}
