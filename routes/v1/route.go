package route

import (
	"RealEstateAPI/controllers"
	"RealEstateAPI/handlers"
	"RealEstateAPI/middleware"
	"RealEstateAPI/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	listingController := controllers.NewListingController()
	predictionController := controllers.NewPredictionController()

	authGate := middleware.AuthMiddleware(services.NewAuthService(), services.NewTokenService())

	// Register the routes
	apiRoutes := router.Group("/api")
	{
		handlers.RegisterAuthRoutes(apiRoutes, authController, authGate)
		handlers.RegisterListingRoutes(apiRoutes, listingController, authGate)
		handlers.RegisterPredictionRoutes(apiRoutes, predictionController)
	}
}
