package controllers

import (
	"RealEstateAPI/models"
	"RealEstateAPI/services"
	"RealEstateAPI/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PredictionController struct {
	PredictionService *services.PredictionService
}

func NewPredictionController() *PredictionController {
	return &PredictionController{
		PredictionService: services.NewPredictionService(),
	}
}

// GetPricePrediction handles POST /api/predict. The validated payload
// is forwarded verbatim and the upstream answer is relayed unchanged,
// status included.
func (h *PredictionController) GetPricePrediction(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	statusCode, body, err := h.PredictionService.Predict(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(statusCode, "application/json", body)
}
