package routes

import (
	"portal_expositor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathFairs = "/fairs"

func addFairRoutes(rg *gin.RouterGroup, h *handlers.FairHandler) {
	fairs := rg.Group(PathFairs)
	{
		fairs.GET("", h.ListFairs)
		fairs.POST("/:fair_id/stalls/:stall_id", h.LinkStall)
		fairs.DELETE("/:fair_id/stalls/:stall_id", h.UnlinkStall)
	}
}
