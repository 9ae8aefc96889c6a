package handlers

import (
	"errors"
	"net/http"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCEP      = pkg.NewDomainErrorSimple("INVALID_CEP", "CEP inválido.", http.StatusBadRequest)
	errAddressNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "CEP não encontrado.", http.StatusNotFound)
)

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// LookupAddress autofills an address. A lookup replaced by a newer one from
// the same owner answers 204.
//
// @Summary   Address by CEP
// @Tags      address
// @Produce   json
// @Security  Bearer
// @Param     cep path string true "CEP, masked or not"
// @Success   200 {object} response.AddressResponse
// @Success   204
// @Failure   404 {object} pkg.HTTPError
// @Router    /address/{cep} [get]
func (h *AddressHandler) LookupAddress(c *gin.Context) {
	addr, err := h.usecase.Lookup(c.Request.Context(), c.Param("cep"))
	if errors.Is(err, usecase.ErrLookupSuperseded) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		fail(c, "address", err, mapAddressError)
		return
	}
	c.JSON(http.StatusOK, response.FromAddress(addr))
}

func mapAddressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCEP):
		return errInvalidCEP
	case errors.Is(err, usecase.ErrAddressNotFound):
		return errAddressNotFound
	default:
		return mapCommonError(err)
	}
}
