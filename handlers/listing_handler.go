package handlers

import (
	"RealEstateAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterListingRoutes(router *gin.RouterGroup, listingController *controllers.ListingController, authGate gin.HandlerFunc) {

	listingGroup := router.Group("/listings")
	{
		// Read paths are public
		listingGroup.GET("", listingController.GetListings)
		listingGroup.GET("/:id", listingController.GetSingleListing)

		// Mutations require an authenticated owner
		listingGroup.POST("", authGate, listingController.CreateListing)
		listingGroup.PUT("/:id", authGate, listingController.UpdateListing)
		listingGroup.DELETE("/:id", authGate, listingController.DeleteListing)
	}

}
