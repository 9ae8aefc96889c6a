package routes

import (
	"portal_expositor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStalls = "/stalls"
	PathWizard = "/wizard"
)

func addStallRoutes(rg *gin.RouterGroup, stallHandler *handlers.StallHandler, wizardHandler *handlers.WizardHandler) {
	stalls := rg.Group(PathStalls)
	{
		stalls.GET("", stallHandler.ListStalls)
		stalls.GET("/:stall_id", stallHandler.GetStall)
		stalls.DELETE("/:stall_id", stallHandler.DeleteStall)
	}

	addWizardRoutes(stalls, wizardHandler)
}

// addWizardRoutes mounts the wizard under rg. Owner and public form routes
// share it; the middleware in front decides who holds the sessions.
func addWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler) {
	wizard := rg.Group(PathWizard)
	{
		wizard.POST("", wizardHandler.StartWizard)
		wizard.GET("/:wizard_id", wizardHandler.GetWizard)
		wizard.DELETE("/:wizard_id", wizardHandler.CancelWizard)

		wizard.PUT("/:wizard_id/basic", wizardHandler.SetBasic)
		wizard.PUT("/:wizard_id/infra", wizardHandler.SetInfra)

		wizard.POST("/:wizard_id/menu/categories", wizardHandler.AddCategory)
		wizard.PATCH("/:wizard_id/menu/categories/:cat", wizardHandler.RenameCategory)
		wizard.DELETE("/:wizard_id/menu/categories/:cat", wizardHandler.RemoveCategory)
		wizard.POST("/:wizard_id/menu/categories/:cat/products", wizardHandler.AddProducts)
		wizard.PATCH("/:wizard_id/menu/categories/:cat/products/:prod", wizardHandler.EditProduct)
		wizard.DELETE("/:wizard_id/menu/categories/:cat/products/:prod", wizardHandler.RemoveProduct)

		wizard.POST("/:wizard_id/menu/drag/start", wizardHandler.StartDrag)
		wizard.POST("/:wizard_id/menu/drag/move", wizardHandler.MoveDrag)
		wizard.POST("/:wizard_id/menu/drag/end", wizardHandler.EndDrag)
		wizard.POST("/:wizard_id/menu/drag/cancel", wizardHandler.CancelDrag)

		wizard.POST("/:wizard_id/next", wizardHandler.Next)
		wizard.POST("/:wizard_id/back", wizardHandler.Back)
		wizard.POST("/:wizard_id/submit", wizardHandler.Submit)
	}
}
