package routes

import (
	"portal_expositor/internal/adapter/http/handlers"
	"portal_expositor/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathStallForm = "/public/fairs/:fair_id/forms/stalls"

func addStallFormRoutes(rg *gin.RouterGroup, h *handlers.StallFormHandler, wizardHandler *handlers.WizardHandler) {
	forms := rg.Group(PathStallForm)
	forms.POST("/validate", h.Validate)

	visitor := forms.Group("", middleware.FormAccess())
	{
		visitor.GET("", h.ListStalls)
		visitor.DELETE("/:stall_id", h.DeleteStall)
		visitor.POST("/:stall_id/select", h.SelectStall)
		visitor.POST("/:stall_id/unlink", h.UnlinkStall)
	}
	addWizardRoutes(visitor, wizardHandler)
}
