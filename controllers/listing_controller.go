package controllers

import (
	"RealEstateAPI/models"
	"RealEstateAPI/services"
	"RealEstateAPI/utils"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	ListingService *services.ListingService
}

func NewListingController() *ListingController {
	return &ListingController{
		ListingService: services.NewListingService(),
	}
}

// GetListings handles GET /api/listings with an optional userId filter
func (h *ListingController) GetListings(c *gin.Context) {
	ownerID := c.Query("userId")

	listings, err := h.ListingService.GetAllListings(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GetSingleListing handles GET /api/listings/:id
func (h *ListingController) GetSingleListing(c *gin.Context) {
	listing, err := h.ListingService.GetListingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing handles POST /api/listings (multipart form, 1-4 image
// files under the "images" field)
func (h *ListingController) CreateListing(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, no token"))
		return
	}

	req, files, err := bindListingForm(c)
	if err != nil {
		c.Error(err)
		return
	}

	listing, err := h.ListingService.CreateListing(c.Request.Context(), userID.(string), req, files)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// UpdateListing handles PUT /api/listings/:id (owner only, optional
// replacement images)
func (h *ListingController) UpdateListing(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, no token"))
		return
	}

	req, files, err := bindListingForm(c)
	if err != nil {
		c.Error(err)
		return
	}

	listing, err := h.ListingService.UpdateListing(c.Request.Context(), userID.(string), c.Param("id"), req, files)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// DeleteListing handles DELETE /api/listings/:id (owner only)
func (h *ListingController) DeleteListing(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, no token"))
		return
	}

	if err := h.ListingService.DeleteListing(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing removed"})
}

// bindListingForm parses the multipart fields and validates them
// before any file is touched
func bindListingForm(c *gin.Context) (models.ListingRequest, []*multipart.FileHeader, error) {
	var req models.ListingRequest
	if err := c.ShouldBind(&req); err != nil {
		return req, nil, utils.NewCustomError(http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return req, nil, err
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["images"]
	}
	return req, files, nil
}
