package models

import (
	"RealEstateAPI/utils"
	"net/http"
)

// Enumerations accepted by the prediction service; casing must match
// the dataset the external model was trained on.
var (
	FurnishingStatuses = []string{"Furnished", "Semi-Furnished", "Unfurnished"}
	PropertyTypes      = []string{"Apartment", "Residential Plot", "Independent Floor", "Independent House", "Villa"}
)

type PredictionRequest struct {
	Location         string  `json:"location" validate:"required,min=3"`
	BHK              int     `json:"bhk" validate:"required,min=1"`
	Sqft             float64 `json:"sqft" validate:"required,min=100"`
	FurnishingStatus string  `json:"furnishing_status" validate:"required"`
	PropertyType     string  `json:"property_type" validate:"required"`
}

var predictionMessages = map[string]string{
	"Location.required":         "Location is required",
	"Location.min":              "Location cannot be empty",
	"BHK.required":              "BHK is required",
	"BHK.min":                   "BHK must be at least 1",
	"Sqft.required":             "Square footage is required",
	"Sqft.min":                  "Square footage must be at least 100",
	"FurnishingStatus.required": "Furnishing status is required",
	"PropertyType.required":     "Property type is required",
}

func (r *PredictionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewCustomError(http.StatusBadRequest, firstViolation(err, predictionMessages))
	}
	if !contains(FurnishingStatuses, r.FurnishingStatus) {
		return utils.NewCustomError(http.StatusBadRequest,
			`Furnishing status must be "Furnished", "Semi-Furnished", or "Unfurnished"`)
	}
	if !contains(PropertyTypes, r.PropertyType) {
		return utils.NewCustomError(http.StatusBadRequest,
			`Property type must be "Apartment", "Residential Plot", "Independent Floor", "Independent House", or "Villa"`)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
