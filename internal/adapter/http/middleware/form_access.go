package middleware

import (
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HeaderDocument carries the CPF/CNPJ of a public stall form visitor.
const HeaderDocument = "X-Document"

var errFormDocument = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Documento inválido", http.StatusBadRequest).
	WithDetails("Informe um CPF (11 dígitos) ou CNPJ (14 dígitos).")

// FormAccess binds a public stall form request to the fair of its path and
// the document of its header. It never authenticates: the backend decides
// what the document may see.
func FormAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		access, err := usecase.NewFormAccess(c.Param("fair_id"), c.GetHeader(HeaderDocument))
		if err != nil {
			log.Debug().Str("path", c.Request.URL.Path).Msg("[stall-form][middleware] document rejected")
			c.AbortWithStatusJSON(errFormDocument.HTTPStatus, errFormDocument.ToHTTPError())
			return
		}
		c.Request = c.Request.WithContext(entities.ContextWithFormAccess(c.Request.Context(), access))
		c.Next()
	}
}
