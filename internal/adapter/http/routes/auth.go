package routes

import (
	"portal_expositor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth   = "/auth"
	PathPublic = "/public"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/validate-token", h.ValidateToken)
		auth.POST("/set-password", h.SetPassword)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.GET("/session", h.Session)
		auth.POST("/logout", h.Logout)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, h *handlers.InterestHandler) {
	public := rg.Group(PathPublic)
	{
		public.POST("/interests", h.Register)
	}
}
