package handlers

import (
	"RealEstateAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPredictionRoutes(router *gin.RouterGroup, predictionController *controllers.PredictionController) {

	router.POST("/predict", predictionController.GetPricePrediction)

}
