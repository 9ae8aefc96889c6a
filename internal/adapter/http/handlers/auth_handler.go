package handlers

import (
	"errors"
	"net/http"
	request "portal_expositor/internal/adapter/http/dto/request"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"
	"portal_expositor/pkg/upstream"

	"github.com/gin-gonic/gin"
)

const detailsLoginFailed = "E-mail ou senha inválidos. Se for seu primeiro acesso, utilize o link de ativação."

var (
	errLoginFailed       = pkg.NewDomainErrorSimple("LOGIN_FAILED", "Não foi possível entrar", http.StatusUnauthorized)
	errPasswordNotSet    = pkg.NewDomainErrorSimple("PASSWORD_NOT_SET", "Não foi possível salvar", http.StatusUnprocessableEntity).WithDetails("Tente novamente. Se persistir")
	errUnreadableSession = pkg.NewDomainErrorSimple("UPSTREAM_ERROR", upstream.MsgBadResponse, http.StatusBadGateway)
)

// AuthHandler serves login, the activation/reset links and the session.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges credentials for the backend token.
//
// @Summary  Login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "Credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, session, err := h.usecase.Login(c.Request.Context(), payload.ToEntity())
	if err != nil {
		fail(c, "auth", err, mapLoginError)
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(res, session))
}

// ValidateToken checks an activation or password reset link.
//
// @Summary  Validate a password link
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.ValidateTokenRequest true "Token"
// @Success  200 {object} response.TokenValidationResponse
// @Router   /auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var payload request.ValidateTokenRequest
	if !bindJSON(c, &payload) {
		return
	}

	v, err := h.usecase.ValidateToken(c.Request.Context(), payload.Token)
	if err != nil {
		fail(c, "auth", err, mapAuthError)
		return
	}

	c.JSON(http.StatusOK, response.FromTokenValidation(v))
}

// SetPassword activates the account or resets the password.
//
// @Summary  Set password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.SetPasswordRequest true "Token and new password"
// @Success  200 {object} response.OKResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /auth/set-password [post]
func (h *AuthHandler) SetPassword(c *gin.Context) {
	var payload request.SetPasswordRequest
	if !bindJSON(c, &payload) {
		return
	}

	if err := h.usecase.SetPassword(c.Request.Context(), payload.ToEntity()); err != nil {
		fail(c, "auth", err, mapAuthError)
		return
	}

	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

// Session returns the owner and expiry of the bearer token.
//
// @Summary   Current session
// @Tags      auth
// @Produce   json
// @Security  Bearer
// @Success   200 {object} response.SessionResponse
// @Failure   401 {object} pkg.HTTPError
// @Router    /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	s, err := h.usecase.Session(c.Request.Context())
	if err != nil {
		fail(c, "auth", err, mapAuthError)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout drops the cached reads and open wizards of the owner.
//
// @Summary   Logout
// @Tags      auth
// @Security  Bearer
// @Success   204
// @Router    /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		fail(c, "auth", err, mapAuthError)
		return
	}
	c.Status(http.StatusNoContent)
}

// mapLoginError keeps a rejected login away from SESSION_EXPIRED: there is no
// session yet.
func mapLoginError(err error) *pkg.AppError {
	if apiErr, ok := upstream.As(err); ok && apiErr.Kind == upstream.KindHTTP && apiErr.Status == http.StatusUnauthorized {
		details := apiErr.Message
		if details == "" || details == upstream.MsgUnauthorized {
			details = detailsLoginFailed
		}
		return errLoginFailed.WithDetails(details)
	}
	return mapAuthError(err)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLoginToken):
		return errUnreadableSession
	case errors.Is(err, usecase.ErrSetPasswordFailed):
		return errPasswordNotSet
	default:
		return mapCommonError(err)
	}
}
