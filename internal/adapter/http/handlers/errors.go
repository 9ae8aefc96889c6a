package handlers

import (
	"errors"
	"net/http"
	"portal_expositor/internal/domain/wizard"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"
	"portal_expositor/pkg/schema"
	"portal_expositor/pkg/upstream"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgSessionExpired     = "Sessão expirada"
	detailsSessionExpired = "Seu acesso expirou. Faça login novamente."
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Verifique os campos", http.StatusBadRequest)
	errSessionExpired = pkg.NewDomainErrorSimple("SESSION_EXPIRED", msgSessionExpired, http.StatusUnauthorized).WithDetails(detailsSessionExpired)
	errAccessDenied   = pkg.NewDomainErrorSimple("ACCESS_DENIED", upstream.MsgForbidden, http.StatusForbidden)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers what every area shares: local validation, wizard
// notices, the session and backend failures. Anything else is a 500.
func mapCommonError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return pkg.NewDomainError("VALIDATION_FAILED", vErr.Title, err, http.StatusUnprocessableEntity).WithDetails(vErr.Message)
	}
	if n, ok := wizard.AsNotice(err); ok {
		return pkg.NewDomainError("VALIDATION_FAILED", n.Title, err, http.StatusUnprocessableEntity).
			WithDetails(n.Subtitle).
			WithStep(int(n.Step))
	}
	if errors.Is(err, usecase.ErrSessionRequired) || errors.Is(err, usecase.ErrSessionExpired) {
		return errSessionExpired
	}
	if apiErr, ok := upstream.As(err); ok {
		return mapUpstreamError(apiErr)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapUpstreamError(apiErr *upstream.APIError) *pkg.AppError {
	switch {
	case apiErr.Kind == upstream.KindNetwork:
		return pkg.NewDomainError("NETWORK_ERROR", apiErr.Message, apiErr, http.StatusServiceUnavailable)
	case apiErr.Kind == upstream.KindValidation && apiErr.Status == http.StatusBadRequest:
		return pkg.NewDomainError("VALIDATION_FAILED", upstream.MsgRequest, apiErr, http.StatusUnprocessableEntity).WithDetails(apiErr.Message)
	case apiErr.Kind == upstream.KindValidation:
		return pkg.NewDomainError("UPSTREAM_ERROR", apiErr.Message, apiErr, http.StatusBadGateway)
	case apiErr.Status == http.StatusUnauthorized:
		return errSessionExpired
	case apiErr.Status == http.StatusForbidden:
		return errAccessDenied
	case apiErr.Status == http.StatusNotFound:
		return pkg.NewDomainError("NOT_FOUND", apiErr.Message, apiErr, http.StatusNotFound)
	case apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError:
		return pkg.NewDomainError("UPSTREAM_REJECTED", apiErr.Message, apiErr, apiErr.Status)
	default:
		return pkg.NewDomainError("UPSTREAM_ERROR", apiErr.Message, apiErr, http.StatusBadGateway)
	}
}

// bindJSON binds the body and answers INVALID_REQUEST with the first broken
// rule when it does not fit obj.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, errInvalidRequest.WithDetails(bindDetails(err)))
		return false
	}
	return true
}

func bindDetails(err error) string {
	if issues := schema.Issues(err); len(issues) > 0 {
		return issues[0].Message()
	}
	return "Dados inválidos."
}

// fail maps err and writes it, logging server-side failures.
func fail(c *gin.Context, area string, err error, mapper func(error) *pkg.AppError) {
	appErr := mapper(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", appErr.Code).Msgf("[%s][handler] request failed", area)
	} else {
		log.Debug().Err(err).Str("code", appErr.Code).Msgf("[%s][handler] request rejected", area)
	}
	_ = c.Error(err)
	respondError(c, appErr)
}
