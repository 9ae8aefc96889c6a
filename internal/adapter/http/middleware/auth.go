// Package middleware holds the gin middlewares of the portal routes.
package middleware

import (
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContextKeySession is the gin key holding the entities.Session of the request.
const ContextKeySession = "session"

var errSessionExpired = pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Sessão expirada", http.StatusUnauthorized).
	WithDetails("Seu acesso expirou. Faça login novamente.")

// Auth requires a live bearer token. A missing, unreadable or expired token is
// answered with SESSION_EXPIRED; so is any 401 the backend gives later in the
// request, after which everything held for that token is torn down.
func Auth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errSessionExpired.HTTPStatus, errSessionExpired.ToHTTPError())
			return
		}

		session, err := auth.Authenticate(token)
		if err != nil {
			log.Warn().Str("path", c.Request.URL.Path).Err(err).Msg("[auth][middleware] session rejected")
			c.AbortWithStatusJSON(errSessionExpired.HTTPStatus, errSessionExpired.ToHTTPError())
			return
		}

		c.Set(ContextKeySession, session)
		c.Request = c.Request.WithContext(entities.ContextWithSession(c.Request.Context(), session))

		c.Next()

		if c.Writer.Status() == http.StatusUnauthorized {
			log.Warn().Str("owner_id", session.OwnerID).Str("path", c.Request.URL.Path).Msg("[auth][middleware] backend refused the session")
			auth.Teardown(c.Request.Context(), session)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
