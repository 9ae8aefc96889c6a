package handlers

import (
	"net/http"
	request "portal_expositor/internal/adapter/http/dto/request"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetProfile
//
// @Summary   Owner profile
// @Tags      profile
// @Produce   json
// @Security  Bearer
// @Success   200 {object} response.ProfileResponse
// @Failure   401 {object} pkg.HTTPError
// @Router    /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	me, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		fail(c, "profile", err, mapCommonError)
		return
	}
	c.JSON(http.StatusOK, response.FromOwnerMe(me))
}

// UpdateProfile saves the whole profile. Masked inputs are accepted.
//
// @Summary   Update profile
// @Tags      profile
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.UpdateProfileRequest true "Profile"
// @Success   200 {object} response.ProfileResponse
// @Failure   422 {object} pkg.HTTPError
// @Router    /profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var payload request.UpdateProfileRequest
	if !bindJSON(c, &payload) {
		return
	}

	me, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		fail(c, "profile", err, mapCommonError)
		return
	}
	c.JSON(http.StatusOK, response.FromOwnerMe(me))
}
