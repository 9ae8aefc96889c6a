package handlers

import (
	"net/http"
	request "portal_expositor/internal/adapter/http/dto/request"
	"portal_expositor/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InterestHandler receives the public "quero expor" form.
type InterestHandler struct {
	usecase usecase.IInterestUseCase
}

func NewInterestHandler(uc usecase.IInterestUseCase) *InterestHandler {
	return &InterestHandler{usecase: uc}
}

// Register forwards a new exhibitor interest.
//
// @Summary  Register interest
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    body body request.PublicInterestRequest true "Interest form"
// @Success  201 {object} entities.PublicInterestResult
// @Failure  422 {object} pkg.HTTPError
// @Router   /public/interests [post]
func (h *InterestHandler) Register(c *gin.Context) {
	var payload request.PublicInterestRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		fail(c, "interest", err, mapCommonError)
		return
	}

	c.JSON(http.StatusCreated, res)
}
