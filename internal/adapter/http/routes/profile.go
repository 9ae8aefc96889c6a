package routes

import (
	"portal_expositor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProfile = "/profile"
	PathAddress = "/address"
)

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler, addressHandler *handlers.AddressHandler) {
	profile := rg.Group(PathProfile)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PATCH("", profileHandler.UpdateProfile)
	}

	rg.GET(PathAddress+"/:cep", addressHandler.LookupAddress)
}
